package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"cueron/config"
	"cueron/storage"
	"cueron/utils"
)

// Root returns the greeting message.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Hello from Cueron Backend!",
	})
}

// Health reports liveness. It never touches the store, so it stays
// healthy even when the database is down or unconfigured.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Echo returns the posted payload together with a timestamp.
func (h *Handler) Echo(w http.ResponseWriter, r *http.Request) {
	body, err := utils.ReadBody(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"received": payload,
		"time":     time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// TestDatabase probes store connectivity and reports flags rather than
// failing the request: store errors come back inline, truncated.
func (h *Handler) TestDatabase(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"backend":           "running",
		"database":          "not available",
		"database_url":      "not set",
		"database_name":     config.DBName,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.Store == nil {
		utils.RespondWithJSON(w, http.StatusOK, response)
		return
	}

	response["database"] = "available"
	if config.MongoURI != "" {
		response["database_url"] = "set"
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	names, err := h.Store.ListCollections(ctx)
	if err != nil {
		response["database"] = "connected but error: " + truncate(err.Error(), 80)
		utils.RespondWithJSON(w, http.StatusOK, response)
		return
	}

	response["collections"] = names
	response["connection_status"] = "Connected"
	response["database"] = "connected"
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SchemaInfo lists the entity collection names.
func (h *Handler) SchemaInfo(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"collections": storage.CollectionNames,
	})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
