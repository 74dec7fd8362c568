package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"cueron/handlers"
	"cueron/metrics"
	"cueron/middleware"
)

// HTTP method constants for better maintainability
var (
	MethodsGetOnly  = []string{"GET", "OPTIONS"}
	MethodsPostOnly = []string{"POST", "OPTIONS"}
)

func RegisterRoutes(r *mux.Router, h *handlers.Handler) {
	// ====================
	// DIAGNOSTICS (always reachable, store or not)
	// ====================
	r.HandleFunc("/", h.Root).Methods(MethodsGetOnly...)
	r.HandleFunc("/health", h.Health).Methods(MethodsGetOnly...)
	r.HandleFunc("/echo", h.Echo).Methods(MethodsPostOnly...)
	r.HandleFunc("/test", h.TestDatabase).Methods(MethodsGetOnly...)
	r.HandleFunc("/schema", h.SchemaInfo).Methods(MethodsGetOnly...)
	r.Handle("/metrics", metrics.Handler()).Methods(MethodsGetOnly...)

	// ====================
	// ENTITIES
	// ====================
	r.HandleFunc("/sites", h.CreateSite).Methods(MethodsPostOnly...)
	r.HandleFunc("/sites", h.ListSites).Methods(MethodsGetOnly...)

	r.HandleFunc("/assets", h.CreateAsset).Methods(MethodsPostOnly...)
	r.HandleFunc("/assets", h.ListAssets).Methods(MethodsGetOnly...)

	r.HandleFunc("/jobs", h.CreateJob).Methods(MethodsPostOnly...)
	r.HandleFunc("/jobs", h.ListJobs).Methods(MethodsGetOnly...)

	r.HandleFunc("/invoices", h.CreateInvoice).Methods(MethodsPostOnly...)
	r.HandleFunc("/invoices", h.ListInvoices).Methods(MethodsGetOnly...)

	r.HandleFunc("/feedback", h.SubmitFeedback).Methods(MethodsPostOnly...)

	// ====================
	// AUTH
	// ====================
	r.HandleFunc("/auth/register", h.Register).Methods(MethodsPostOnly...)
	r.HandleFunc("/auth/login", h.Login).Methods(MethodsPostOnly...)
	r.Handle("/auth/me", middleware.AuthMiddleware(http.HandlerFunc(h.Me))).Methods(MethodsGetOnly...)
}
