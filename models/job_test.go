package models_test

import (
	"testing"
	"time"

	"cueron/models"
)

func TestNewJobFromRequest(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	desc := "compressor rattle"

	job := models.NewJobFromRequest(models.JobRequest{
		ServiceType: models.ServiceTypeRepair,
		SiteID:      "s1",
		AssetIDs:    []string{"a1", "a2"},
		Description: &desc,
		MediaURLs:   []string{"https://example.com/p.jpg"},
	}, now)

	if job.Status != models.JobStatusNew {
		t.Fatalf("status must be forced to New, got %q", job.Status)
	}
	if job.CustomerID != nil || job.AssignedTechnicianID != nil {
		t.Fatal("customer and technician must start unset")
	}
	if len(job.Timeline) != 1 {
		t.Fatalf("expected a single seed timeline entry, got %d", len(job.Timeline))
	}
	if job.Timeline[0].Status != models.JobStatusNew || !job.Timeline[0].At.Equal(now) {
		t.Fatalf("unexpected seed entry %+v", job.Timeline[0])
	}
	if len(job.AssetIDs) != 2 {
		t.Fatalf("asset ids not carried over: %v", job.AssetIDs)
	}
}

func TestNewJobFromRequestEmptyLists(t *testing.T) {
	job := models.NewJobFromRequest(models.JobRequest{
		ServiceType: models.ServiceTypeAMC,
		SiteID:      "s1",
	}, time.Now())

	if job.AssetIDs == nil || len(job.AssetIDs) != 0 {
		t.Fatalf("absent asset_ids must default to an empty list, got %#v", job.AssetIDs)
	}
	if job.ScheduledFor != nil {
		t.Fatalf("absent schedule must stay nil, got %v", job.ScheduledFor)
	}
}
