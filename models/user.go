// models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleViewer     = "viewer"
	RoleTechnician = "technician"
	RoleCustomer   = "customer"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OrgName      *string            `bson:"org_name,omitempty" json:"org_name,omitempty"`
	Name         *string            `bson:"name,omitempty" json:"name,omitempty"`
	Email        string             `bson:"email" json:"email"`
	Phone        *string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         string             `bson:"role" json:"role"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// Normalize fills defaults for fields the payload omitted.
func (u *User) Normalize() {
	if u.Role == "" {
		u.Role = RoleCustomer
	}
}
