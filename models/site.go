// models/site.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Site struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Address *string            `bson:"address,omitempty" json:"address,omitempty"`
	City    *string            `bson:"city,omitempty" json:"city,omitempty"`
	State   *string            `bson:"state,omitempty" json:"state,omitempty"`
	Pincode *string            `bson:"pincode,omitempty" json:"pincode,omitempty"`
}
