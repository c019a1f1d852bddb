package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Banner carries home-page promotion content. IsActive is a string flag
// restricted to the literals "true" and "false", not a boolean.
type Banner struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CouponCode  string             `bson:"couponCode,omitempty" json:"couponCode,omitempty"`
	Rate        string             `bson:"rate,omitempty" json:"rate,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	IsActive    string             `bson:"is_Active,omitempty" json:"is_Active,omitempty"`
}
