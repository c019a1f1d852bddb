package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// BookedTest links a user (by email) to a Test (by the hex form of its id).
type BookedTest struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TestID   string             `bson:"testId,omitempty" json:"testId,omitempty"`
	Email    string             `bson:"email,omitempty" json:"email,omitempty"`
	TestName string             `bson:"testName,omitempty" json:"testName,omitempty"`
	Date     string             `bson:"date,omitempty" json:"date,omitempty"`
	Price    float64            `bson:"price,omitempty" json:"price,omitempty"`
	Report   string             `bson:"report,omitempty" json:"report,omitempty"`
	PDFLink  string             `bson:"pdfLink,omitempty" json:"pdfLink,omitempty"`
}
