package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nahid-mahmud/diacare-server/internal/models"
)

// GetBookedTests lists every booking; admin only.
func (h *Handler) GetBookedTests(c *gin.Context) {
	cursor, err := h.DB.Collection(bookedTestsCollection).Find(context.TODO(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}
	defer cursor.Close(context.TODO())

	var bookings []models.BookedTest
	if err = cursor.All(context.TODO(), &bookings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode bookings"})
		return
	}

	if bookings == nil {
		bookings = make([]models.BookedTest, 0)
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBookedTestsByEmail lists the bookings recorded under the email query
// parameter. Only token validity gates this; the email is taken as given.
func (h *Handler) GetBookedTestsByEmail(c *gin.Context) {
	filter := bson.M{"email": c.Query("email")}

	cursor, err := h.DB.Collection(bookedTestsCollection).Find(context.TODO(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}
	defer cursor.Close(context.TODO())

	var bookings []models.BookedTest
	if err = cursor.All(context.TODO(), &bookings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode bookings"})
		return
	}

	if bookings == nil {
		bookings = make([]models.BookedTest, 0)
	}

	c.JSON(http.StatusOK, bookings)
}

// CreateBookedTest records a booking and takes one slot off the referenced
// test. The decrement and the insert are two independent writes; there is no
// rollback if the insert fails and no floor on the slot count.
func (h *Handler) CreateBookedTest(c *gin.Context) {
	var booking models.BookedTest
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	testID, err := primitive.ObjectIDFromHex(booking.TestID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	_, err = h.DB.Collection(testsCollection).UpdateOne(
		context.TODO(),
		bson.M{"_id": testID},
		bson.M{"$inc": bson.M{"slots": -1}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	booking.ID = primitive.NewObjectID()
	if _, err := h.DB.Collection(bookedTestsCollection).InsertOne(context.TODO(), booking); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": booking.ID})
}

// AttachReport sets the report text and pdf link on a booking and returns
// the post-update document.
func (h *Handler) AttachReport(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	var req struct {
		Report  string `json:"report"`
		PDFLink string `json:"pdfLink"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	update := bson.M{"$set": bson.M{"report": req.Report, "pdfLink": req.PDFLink}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.BookedTest
	err = h.DB.Collection(bookedTestsCollection).
		FindOneAndUpdate(context.TODO(), bson.M{"_id": id}, update, opts).
		Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteBookedTest(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	result, err := h.DB.Collection(bookedTestsCollection).DeleteOne(context.TODO(), bson.M{"_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}
