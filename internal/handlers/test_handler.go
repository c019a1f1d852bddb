package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nahid-mahmud/diacare-server/internal/models"
)

// availabilityFilter selects tests still bookable on or after startDate.
// Dates are YYYY-MM-DD strings, so $gte compares them lexicographically.
func availabilityFilter(startDate string) bson.M {
	if startDate == "" {
		startDate = time.Now().Format("2006-01-02")
	}
	return bson.M{"date": bson.M{"$gte": startDate}}
}

// GetTests lists tests available on or after the startDate query parameter,
// defaulting to today.
func (h *Handler) GetTests(c *gin.Context) {
	filter := availabilityFilter(c.Query("startDate"))

	cursor, err := h.DB.Collection(testsCollection).Find(context.TODO(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tests"})
		return
	}
	defer cursor.Close(context.TODO())

	var tests []models.Test
	if err = cursor.All(context.TODO(), &tests); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode tests"})
		return
	}

	if tests == nil {
		tests = make([]models.Test, 0)
	}

	c.JSON(http.StatusOK, tests)
}

// GetTest fetches one test by id. An absent document answers 200 with a null
// body, which is what the frontend expects.
func (h *Handler) GetTest(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	var test models.Test
	err = h.DB.Collection(testsCollection).FindOne(context.TODO(), bson.M{"_id": id}).Decode(&test)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, test)
}

func (h *Handler) CreateTest(c *gin.Context) {
	var item models.Test
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item.ID = primitive.NewObjectID()
	if _, err := h.DB.Collection(testsCollection).InsertOne(context.TODO(), item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create test"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": item.ID})
}

// UpdateTest applies a partial update over the fixed set of mutable fields.
func (h *Handler) UpdateTest(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	var req struct {
		TestName *string  `json:"testName"`
		Price    *float64 `json:"price"`
		Date     *string  `json:"date"`
		Slots    *int32   `json:"slots"`
		Details  *string  `json:"details"`
		Image    *string  `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updateFields := bson.M{}
	if req.TestName != nil {
		updateFields["testName"] = *req.TestName
	}
	if req.Price != nil {
		updateFields["price"] = *req.Price
	}
	if req.Date != nil {
		updateFields["date"] = *req.Date
	}
	if req.Slots != nil {
		updateFields["slots"] = *req.Slots
	}
	if req.Details != nil {
		updateFields["details"] = *req.Details
	}
	if req.Image != nil {
		updateFields["image"] = *req.Image
	}

	if len(updateFields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	result, err := h.DB.Collection(testsCollection).UpdateOne(context.TODO(), bson.M{"_id": id}, bson.M{"$set": updateFields})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update test"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount})
}

// CountTests returns the estimated collection size, used by the frontend for
// its pagination display. Estimated is fine, exactness is not required.
func (h *Handler) CountTests(c *gin.Context) {
	count, err := h.DB.Collection(testsCollection).EstimatedDocumentCount(context.TODO())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count tests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *Handler) DeleteTest(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	result, err := h.DB.Collection(testsCollection).DeleteOne(context.TODO(), bson.M{"_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete test"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}

// featuredTestsPipeline groups bookings by their referenced test, joins in
// the test details, keeps the five most-booked and projects the card shape
// the home page renders. Tie order between equal counts is whatever the
// server's sort yields.
func featuredTestsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$toObjectId", Value: "$testId"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: testsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "testDetails"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		{{Key: "$limit", Value: 5}},
		{{Key: "$unwind", Value: "$testDetails"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: "$testDetails._id"},
			{Key: "testName", Value: "$testDetails.testName"},
			{Key: "image", Value: "$testDetails.image"},
			{Key: "slots", Value: "$testDetails.slots"},
			{Key: "date", Value: "$testDetails.date"},
			{Key: "count", Value: 1},
		}}},
	}
}

// GetFeaturedTests computes the five most-booked tests across all bookings.
// Tests nobody has booked never appear.
func (h *Handler) GetFeaturedTests(c *gin.Context) {
	cursor, err := h.DB.Collection(bookedTestsCollection).Aggregate(context.TODO(), featuredTestsPipeline())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer cursor.Close(context.TODO())

	var featured []models.FeaturedTest
	if err = cursor.All(context.TODO(), &featured); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	if featured == nil {
		featured = make([]models.FeaturedTest, 0)
	}

	c.JSON(http.StatusOK, featured)
}
