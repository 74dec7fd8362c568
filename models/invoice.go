// models/invoice.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Invoice statuses.
const (
	InvoiceStatusUnpaid  = "unpaid"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

type Invoice struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	JobID     string             `bson:"job_id" json:"job_id"` // reference to job _id, advisory only
	Amount    float64            `bson:"amount" json:"amount"`
	DueDate   *time.Time         `bson:"due_date,omitempty" json:"due_date,omitempty"`
	Status    string             `bson:"status" json:"status"`
	LineItems []bson.M           `bson:"line_items" json:"line_items"`
}

// Normalize fills defaults for fields the payload omitted.
func (i *Invoice) Normalize() {
	if i.Status == "" {
		i.Status = InvoiceStatusUnpaid
	}
	if i.LineItems == nil {
		i.LineItems = []bson.M{}
	}
}
