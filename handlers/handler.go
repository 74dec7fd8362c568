// Package handlers maps HTTP requests onto schema validation and the
// persistence gateway, one handler per entity and verb.
package handlers

import (
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"cueron/schema"
	"cueron/storage"
	"cueron/utils"
)

// Result-count cap applied to every list endpoint.
const maxListLimit = 500

// Handler bundles the injected store and compiled schemas. A nil Store
// means the database was never configured: entity endpoints fail with a
// server error while diagnostics keep working.
type Handler struct {
	Store   storage.Store
	Schemas *schema.Registry
}

func NewHandler(store storage.Store, schemas *schema.Registry) *Handler {
	return &Handler{Store: store, Schemas: schemas}
}

// requireStore rejects the request when no store is configured.
func (h *Handler) requireStore(w http.ResponseWriter) bool {
	if h.Store == nil {
		utils.RespondWithError(w, http.StatusInternalServerError, storage.ErrNotConfigured.Error())
		return false
	}
	return true
}

// validateBody reads the request body and validates it against the
// named schema, answering the request itself on any failure.
func (h *Handler) validateBody(w http.ResponseWriter, r *http.Request, schemaName string) ([]byte, bool) {
	body, err := utils.ReadBody(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "failed to read request body")
		return nil, false
	}

	fieldErrs, err := h.Schemas.Validate(r.Context(), schemaName, body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON payload")
		return nil, false
	}
	if len(fieldErrs) > 0 {
		utils.RespondWithValidationErrors(w, fieldErrs)
		return nil, false
	}

	return body, true
}

// parseLimit reads the optional limit query parameter, falling back to
// the per-entity default and capping the result.
func parseLimit(r *http.Request, def int64) int64 {
	limit := def
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return limit
}

// stringifyIDs converts the store-generated identifier on every
// returned document to its display string.
func stringifyIDs(docs []bson.M) []bson.M {
	for _, doc := range docs {
		if oid, ok := doc["_id"].(primitive.ObjectID); ok {
			doc["_id"] = oid.Hex()
		}
	}
	return docs
}
