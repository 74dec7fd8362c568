package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register",
		`{"name":"Asha","email":"asha@example.com","role":"manager","password":"s3cret"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201 got %d (%s)", w.Code, w.Body.String())
	}

	// Duplicate email is rejected.
	w = doJSON(t, r, http.MethodPost, "/auth/register",
		`{"email":"asha@example.com","password":"other"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409 got %d", w.Code)
	}

	// Out-of-set role is rejected by schema.
	w = doJSON(t, r, http.MethodPost, "/auth/register",
		`{"email":"new@example.com","role":"owner","password":"pw"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("bad role: expected 422 got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/auth/login",
		`{"email":"asha@example.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad password: expected 401 got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/auth/login",
		`{"email":"asha@example.com","password":"s3cret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	body := decodeObject(t, w)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("expected a token")
	}
	if body["role"] != "manager" {
		t.Fatalf("expected role manager, got %v", body["role"])
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: expected 200 got %d (%s)", rec.Code, rec.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/auth/me", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("me without token: expected 401 got %d", w.Code)
	}
}
