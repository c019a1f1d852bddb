package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Test is a bookable diagnostic test. Date is kept as a plain YYYY-MM-DD
// string so availability filtering is a lexicographic comparison.
type Test struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TestName string             `bson:"testName,omitempty" json:"testName,omitempty"`
	Price    float64            `bson:"price,omitempty" json:"price,omitempty"`
	Date     string             `bson:"date,omitempty" json:"date,omitempty"`
	Slots    int32              `bson:"slots" json:"slots"`
	Details  string             `bson:"details,omitempty" json:"details,omitempty"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
}

// FeaturedTest is the projected shape produced by the most-booked aggregation.
type FeaturedTest struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	TestName string             `bson:"testName" json:"testName"`
	Image    string             `bson:"image" json:"image"`
	Slots    int32              `bson:"slots" json:"slots"`
	Date     string             `bson:"date" json:"date"`
	Count    int32              `bson:"count" json:"count"`
}
