package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"cueron/models"
	"cueron/schema"
	"cueron/storage"
	"cueron/utils"
)

// CreateJob accepts the lighter job-request payload and synthesizes the
// stored Job from it: status forced to New, a single timeline entry
// seeded with the creation timestamp.
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	body, ok := h.validateBody(w, r, schema.JobRequest)
	if !ok {
		return
	}

	var req models.JobRequest
	if err := json.Unmarshal(body, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	job := models.NewJobFromRequest(req, time.Now().UTC())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := h.Store.InsertOne(ctx, storage.CollectionJob, job)
	if err != nil {
		slog.Error("create job", slog.Any("err", err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to create job")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{
		"job_id": id,
		"status": models.JobStatusNew,
	})
}

// ListJobs returns stored jobs, optionally filtered by status.
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	limit := parseLimit(r, 200)
	filter := storage.JobFilter(r.URL.Query().Get("status"))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	docs, err := h.Store.Find(ctx, storage.CollectionJob, filter, limit)
	if err != nil {
		slog.Error("list jobs", slog.Any("err", err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to list jobs")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, stringifyIDs(docs))
}
