package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`
	Role       string             `bson:"role,omitempty" json:"role,omitempty"`     // "admin" or "user"
	Status     string             `bson:"status,omitempty" json:"status,omitempty"` // "active" or "blocked"
	BloodGroup string             `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	District   string             `bson:"district,omitempty" json:"district,omitempty"`
	Upazila    string             `bson:"upazila,omitempty" json:"upazila,omitempty"`
	PhotoURL   string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
}
