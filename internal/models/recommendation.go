package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Recommendation struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title   string             `bson:"title,omitempty" json:"title,omitempty"`
	Details string             `bson:"details,omitempty" json:"details,omitempty"`
	Image   string             `bson:"image,omitempty" json:"image,omitempty"`
}
