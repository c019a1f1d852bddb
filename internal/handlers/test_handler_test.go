package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestAvailabilityFilterUsesGivenDate(t *testing.T) {
	filter := availabilityFilter("2099-01-01")
	assert.Equal(t, bson.M{"date": bson.M{"$gte": "2099-01-01"}}, filter)
}

func TestAvailabilityFilterDefaultsToToday(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	filter := availabilityFilter("")
	assert.Equal(t, bson.M{"date": bson.M{"$gte": today}}, filter)
}

func TestFeaturedTestsPipelineShape(t *testing.T) {
	pipeline := featuredTestsPipeline()
	assert.Len(t, pipeline, 6)

	stageNames := make([]string, 0, len(pipeline))
	for _, stage := range pipeline {
		stageNames = append(stageNames, stage[0].Key)
	}
	assert.Equal(t, []string{"$group", "$lookup", "$sort", "$limit", "$unwind", "$project"}, stageNames)
}

func TestFeaturedTestsPipelineLimitsToFive(t *testing.T) {
	pipeline := featuredTestsPipeline()
	assert.Equal(t, "$limit", pipeline[3][0].Key)
	assert.Equal(t, 5, pipeline[3][0].Value)
}

func TestFeaturedTestsPipelineSortsByCountDescending(t *testing.T) {
	pipeline := featuredTestsPipeline()
	assert.Equal(t, "$sort", pipeline[2][0].Key)
	sort, ok := pipeline[2][0].Value.(bson.D)
	assert.True(t, ok)
	assert.Equal(t, "count", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
}

func TestFeaturedTestsPipelineGroupsByTestID(t *testing.T) {
	pipeline := featuredTestsPipeline()
	group, ok := pipeline[0][0].Value.(bson.D)
	assert.True(t, ok)
	assert.Equal(t, "_id", group[0].Key)
	assert.Equal(t, bson.D{{Key: "$toObjectId", Value: "$testId"}}, group[0].Value)
}
