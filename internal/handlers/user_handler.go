package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nahid-mahmud/diacare-server/internal/models"
)

func isValidRole(role string) bool {
	return role == "admin" || role == "user"
}

func isValidAccountStatus(status string) bool {
	return status == "active" || status == "blocked"
}

func (h *Handler) GetUsers(c *gin.Context) {
	cursor, err := h.DB.Collection(usersCollection).Find(context.TODO(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	defer cursor.Close(context.TODO())

	var users []models.User
	if err = cursor.All(context.TODO(), &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode users"})
		return
	}

	if users == nil {
		users = make([]models.User, 0)
	}

	c.JSON(http.StatusOK, users)
}

// RegisterUser inserts a new user unless one already exists under the same
// email. Re-registering is a no-op success, the frontend calls this on every
// social login.
func (h *Handler) RegisterUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	collection := h.DB.Collection(usersCollection)

	var existing models.User
	err := collection.FindOne(context.TODO(), bson.M{"email": user.Email}).Decode(&existing)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	user.ID = primitive.NewObjectID()
	if _, err := collection.InsertOne(context.TODO(), user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": user.ID})
}

// GetUserProfile fetches a user by id for the profile page.
func (h *Handler) GetUserProfile(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	var user models.User
	err = h.DB.Collection(usersCollection).FindOne(context.TODO(), bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUserProfile applies a partial update over the profile fields a user
// may edit about themself.
func (h *Handler) UpdateUserProfile(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	var req struct {
		Name       *string `json:"name"`
		Email      *string `json:"email"`
		BloodGroup *string `json:"bloodGroup"`
		District   *string `json:"district"`
		Upazila    *string `json:"upazila"`
		PhotoURL   *string `json:"photoURL"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updateFields := bson.M{}
	if req.Name != nil {
		updateFields["name"] = *req.Name
	}
	if req.Email != nil {
		updateFields["email"] = *req.Email
	}
	if req.BloodGroup != nil {
		updateFields["bloodGroup"] = *req.BloodGroup
	}
	if req.District != nil {
		updateFields["district"] = *req.District
	}
	if req.Upazila != nil {
		updateFields["upazila"] = *req.Upazila
	}
	if req.PhotoURL != nil {
		updateFields["photoURL"] = *req.PhotoURL
	}

	if len(updateFields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	result, err := h.DB.Collection(usersCollection).UpdateOne(context.TODO(), bson.M{"_id": id}, bson.M{"$set": updateFields})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount})
}

// GetUserByEmail returns the caller's own record; the self guard on the
// route has already matched the path email against the token.
func (h *Handler) GetUserByEmail(c *gin.Context) {
	var user models.User
	err := h.DB.Collection(usersCollection).FindOne(context.TODO(), bson.M{"email": c.Param("email")}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetAdminFlag reports whether the caller's own account is an admin.
func (h *Handler) GetAdminFlag(c *gin.Context) {
	var user models.User
	err := h.DB.Collection(usersCollection).FindOne(context.TODO(), bson.M{"email": c.Param("email")}).Decode(&user)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": err == nil && user.Role == "admin"})
}

// GetActiveFlag reports whether the caller's own account is active, the
// frontend blocks booking for blocked accounts.
func (h *Handler) GetActiveFlag(c *gin.Context) {
	var user models.User
	err := h.DB.Collection(usersCollection).FindOne(context.TODO(), bson.M{"email": c.Param("email")}).Decode(&user)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activeUser": err == nil && user.Status == "active"})
}

func (h *Handler) UpdateUserRole(c *gin.Context) {
	var req struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !isValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role value"})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	result, err := h.DB.Collection(usersCollection).UpdateOne(context.TODO(), bson.M{"_id": id}, bson.M{"$set": bson.M{"role": req.Role}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount})
}

func (h *Handler) UpdateUserStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !isValidAccountStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	result, err := h.DB.Collection(usersCollection).UpdateOne(context.TODO(), bson.M{"_id": id}, bson.M{"$set": bson.M{"status": req.Status}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	result, err := h.DB.Collection(usersCollection).DeleteOne(context.TODO(), bson.M{"_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}
