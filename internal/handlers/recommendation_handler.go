package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nahid-mahmud/diacare-server/internal/models"
)

func (h *Handler) GetRecommendations(c *gin.Context) {
	cursor, err := h.DB.Collection(recommendationCollection).Find(context.TODO(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recommendations"})
		return
	}
	defer cursor.Close(context.TODO())

	var recommendations []models.Recommendation
	if err = cursor.All(context.TODO(), &recommendations); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode recommendations"})
		return
	}

	if recommendations == nil {
		recommendations = make([]models.Recommendation, 0)
	}

	c.JSON(http.StatusOK, recommendations)
}

func (h *Handler) CreateRecommendation(c *gin.Context) {
	var item models.Recommendation
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item.ID = primitive.NewObjectID()
	if _, err := h.DB.Collection(recommendationCollection).InsertOne(context.TODO(), item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recommendation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": item.ID})
}
