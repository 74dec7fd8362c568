// models/asset.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Asset statuses.
const (
	AssetStatusActive      = "active"
	AssetStatusInactive    = "inactive"
	AssetStatusMaintenance = "maintenance"
)

type Asset struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SiteID       string             `bson:"site_id" json:"site_id"` // reference to site _id, advisory only
	Name         string             `bson:"name" json:"name"`
	Type         string             `bson:"type" json:"type"`
	Status       string             `bson:"status" json:"status"`
	SerialNumber *string            `bson:"serial_number,omitempty" json:"serial_number,omitempty"`
	Model        *string            `bson:"model,omitempty" json:"model,omitempty"`
}

// Normalize fills defaults for fields the payload omitted.
func (a *Asset) Normalize() {
	if a.Status == "" {
		a.Status = AssetStatusActive
	}
}
