// models/analytics.go
package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnalyticsSnapshot is a declared document shape with no routes yet.
type AnalyticsSnapshot struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Month               string             `bson:"month" json:"month"` // YYYY-MM
	JobsCount           int                `bson:"jobs_count" json:"jobs_count"`
	DowntimeHours       float64            `bson:"downtime_hours" json:"downtime_hours"`
	EngineerPerformance []bson.M           `bson:"engineer_performance" json:"engineer_performance"`
}
