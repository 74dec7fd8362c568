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

// SubmitFeedback validates and stores job feedback. Feedback is
// write-once: there is no corresponding list or update endpoint.
func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	body, ok := h.validateBody(w, r, schema.Feedback)
	if !ok {
		return
	}

	var feedback models.Feedback
	if err := json.Unmarshal(body, &feedback); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := h.Store.InsertOne(ctx, storage.CollectionFeedback, feedback)
	if err != nil {
		slog.Error("submit feedback", slog.Any("err", err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to submit feedback")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"_id": id})
}
