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

// CreateAsset validates and stores a new asset. The site_id reference
// is advisory: it is not checked against existing sites.
func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	body, ok := h.validateBody(w, r, schema.Asset)
	if !ok {
		return
	}

	var asset models.Asset
	if err := json.Unmarshal(body, &asset); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	asset.Normalize()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := h.Store.InsertOne(ctx, storage.CollectionAsset, asset)
	if err != nil {
		slog.Error("create asset", slog.Any("err", err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to create asset")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"_id": id})
}

// ListAssets returns stored assets, optionally filtered by site_id.
func (h *Handler) ListAssets(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	limit := parseLimit(r, 200)
	filter := storage.AssetFilter(r.URL.Query().Get("site_id"))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	docs, err := h.Store.Find(ctx, storage.CollectionAsset, filter, limit)
	if err != nil {
		slog.Error("list assets", slog.Any("err", err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to list assets")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, stringifyIDs(docs))
}
