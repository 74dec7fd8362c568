// models/job.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service types.
const (
	ServiceTypeAMC          = "AMC"
	ServiceTypeRepair       = "Repair"
	ServiceTypeInstallation = "Installation"
	ServiceTypeEmergency    = "Emergency"
)

// Job statuses. Transitions are not enforced anywhere: status is set to
// New at creation and no endpoint writes it afterwards.
const (
	JobStatusNew        = "New"
	JobStatusAssigned   = "Assigned"
	JobStatusTravelling = "Travelling"
	JobStatusInProgress = "In Progress"
	JobStatusClosed     = "Closed"
)

// JobRequest is the input-only payload for job creation. It is never
// stored; CreateJob turns it into a Job.
type JobRequest struct {
	ServiceType string     `json:"service_type"`
	SiteID      string     `json:"site_id"`
	AssetIDs    []string   `json:"asset_ids"`
	Description *string    `json:"description,omitempty"`
	Schedule    *time.Time `json:"schedule,omitempty"`
	MediaURLs   []string   `json:"media_urls"`
}

// TimelineEntry records one status change with its timestamp.
type TimelineEntry struct {
	Status string    `bson:"status" json:"status"`
	At     time.Time `bson:"at" json:"at"`
}

type Job struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CustomerID           *string            `bson:"customer_id" json:"customer_id"`
	ServiceType          string             `bson:"service_type" json:"service_type"`
	Status               string             `bson:"status" json:"status"`
	SiteID               string             `bson:"site_id" json:"site_id"`
	AssetIDs             []string           `bson:"asset_ids" json:"asset_ids"`
	Description          *string            `bson:"description,omitempty" json:"description,omitempty"`
	ScheduledFor         *time.Time         `bson:"scheduled_for,omitempty" json:"scheduled_for,omitempty"`
	AssignedTechnicianID *string            `bson:"assigned_technician_id" json:"assigned_technician_id"`
	Timeline             []TimelineEntry    `bson:"timeline" json:"timeline"`
}

// NewJobFromRequest synthesizes the stored Job from a request payload:
// status forced to New, one seed timeline entry at now. The request's
// media_urls are accepted but not carried onto the stored Job.
func NewJobFromRequest(req JobRequest, now time.Time) Job {
	assetIDs := req.AssetIDs
	if assetIDs == nil {
		assetIDs = []string{}
	}

	return Job{
		CustomerID:           nil,
		ServiceType:          req.ServiceType,
		Status:               JobStatusNew,
		SiteID:               req.SiteID,
		AssetIDs:             assetIDs,
		Description:          req.Description,
		ScheduledFor:         req.Schedule,
		AssignedTechnicianID: nil,
		Timeline: []TimelineEntry{
			{Status: JobStatusNew, At: now},
		},
	}
}
