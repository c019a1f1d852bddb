package handlers

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nahid-mahmud/diacare-server/internal/models"
	"github.com/nahid-mahmud/diacare-server/internal/services"
)

// Collection names, matching the documents the frontend already stores.
const (
	usersCollection          = "users"
	testsCollection          = "tests"
	bookedTestsCollection    = "bookedTests"
	bannerCollection         = "banner"
	recommendationCollection = "recommendation"
)

// Handler holds the dependencies every route needs: the database handle, the
// payment collaborator and the token signing secret.
type Handler struct {
	DB          *mongo.Database
	Payments    *services.PaymentService
	TokenSecret []byte
}

func NewHandler(db *mongo.Database, payments *services.PaymentService, tokenSecret []byte) *Handler {
	return &Handler{
		DB:          db,
		Payments:    payments,
		TokenSecret: tokenSecret,
	}
}

// IsAdmin looks up the user registered under email and reports whether it
// holds the admin role. Used by the admin guard on every protected request.
func (h *Handler) IsAdmin(ctx context.Context, email string) (bool, error) {
	var user models.User
	err := h.DB.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return user.Role == "admin", nil
}
