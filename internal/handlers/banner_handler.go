package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nahid-mahmud/diacare-server/internal/models"
)

type bannerStatusUpdate struct {
	ID       string `json:"_id"`
	IsActive string `json:"is_Active"`
}

// validateBannerUpdates checks the whole batch before any write is issued,
// so a bad entry leaves every banner untouched. It returns the parsed ids in
// batch order.
func validateBannerUpdates(banners []bannerStatusUpdate) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(banners))
	for _, b := range banners {
		if b.IsActive != "true" && b.IsActive != "false" {
			return nil, fmt.Errorf("Invalid status value for banner with ID %s", b.ID)
		}
		id, err := primitive.ObjectIDFromHex(b.ID)
		if err != nil {
			return nil, fmt.Errorf("Invalid ID for banner with ID %s", b.ID)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (h *Handler) GetBanners(c *gin.Context) {
	cursor, err := h.DB.Collection(bannerCollection).Find(context.TODO(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve banners"})
		return
	}
	defer cursor.Close(context.TODO())

	var banners []models.Banner
	if err = cursor.All(context.TODO(), &banners); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode banners"})
		return
	}

	if banners == nil {
		banners = make([]models.Banner, 0)
	}

	c.JSON(http.StatusOK, banners)
}

func (h *Handler) CreateBanner(c *gin.Context) {
	var item models.Banner
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item.ID = primitive.NewObjectID()
	if _, err := h.DB.Collection(bannerCollection).InsertOne(context.TODO(), item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create banner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": item.ID})
}

// UpdateBannerStatus bulk-sets the active flag on a batch of banners. Each
// element is one independent update; the batch is validated up front.
func (h *Handler) UpdateBannerStatus(c *gin.Context) {
	var req struct {
		Banners []bannerStatusUpdate `json:"banners"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Banners) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or empty banners array"})
		return
	}

	ids, err := validateBannerUpdates(req.Banners)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection := h.DB.Collection(bannerCollection)
	for i, banner := range req.Banners {
		update := bson.M{"$set": bson.M{"is_Active": banner.IsActive}}
		if _, err := collection.UpdateOne(context.TODO(), bson.M{"_id": ids[i]}, update); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"modifiedCount": len(req.Banners)})
}
