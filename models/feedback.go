// models/feedback.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback is write-once: there is no list or update endpoint.
type Feedback struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	JobID           string             `bson:"job_id" json:"job_id"`
	RatingOverall   int                `bson:"rating_overall" json:"rating_overall"`
	RatingEngineer  *int               `bson:"rating_engineer,omitempty" json:"rating_engineer,omitempty"`
	Comments        *string            `bson:"comments,omitempty" json:"comments,omitempty"`
	RequestFollowUp bool               `bson:"request_follow_up" json:"request_follow_up"`
}
