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

// CreateSite validates and stores a new site.
func (h *Handler) CreateSite(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	body, ok := h.validateBody(w, r, schema.Site)
	if !ok {
		return
	}

	var site models.Site
	if err := json.Unmarshal(body, &site); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := h.Store.InsertOne(ctx, storage.CollectionSite, site)
	if err != nil {
		slog.Error("create site", slog.Any("err", err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to create site")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"_id": id})
}

// ListSites returns stored sites, up to an optional limit.
func (h *Handler) ListSites(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	limit := parseLimit(r, 100)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	docs, err := h.Store.Find(ctx, storage.CollectionSite, storage.SiteFilter(), limit)
	if err != nil {
		slog.Error("list sites", slog.Any("err", err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to list sites")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, stringifyIDs(docs))
}
