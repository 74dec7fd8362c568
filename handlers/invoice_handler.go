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

// CreateInvoice validates and stores a new invoice. The job_id
// reference is advisory: it is not checked against existing jobs.
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	body, ok := h.validateBody(w, r, schema.Invoice)
	if !ok {
		return
	}

	var invoice models.Invoice
	if err := json.Unmarshal(body, &invoice); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	invoice.Normalize()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := h.Store.InsertOne(ctx, storage.CollectionInvoice, invoice)
	if err != nil {
		slog.Error("create invoice", slog.Any("err", err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to create invoice")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"_id": id})
}

// ListInvoices returns stored invoices, optionally filtered by status.
func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	limit := parseLimit(r, 200)
	filter := storage.InvoiceFilter(r.URL.Query().Get("status"))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	docs, err := h.Store.Find(ctx, storage.CollectionInvoice, filter, limit)
	if err != nil {
		slog.Error("list invoices", slog.Any("err", err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to list invoices")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, stringifyIDs(docs))
}
