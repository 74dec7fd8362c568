package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"cueron/middleware"
	"cueron/models"
	"cueron/schema"
	"cueron/storage"
	"cueron/utils"
)

type registerRequest struct {
	OrgName  *string `json:"org_name,omitempty"`
	Name     *string `json:"name,omitempty"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Role     string  `json:"role"`
	Password string  `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user account. Entity routes stay public; accounts
// only gate the /auth surface itself.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	body, ok := h.validateBody(w, r, schema.User)
	if !ok {
		return
	}

	var req registerRequest
	if err := json.Unmarshal(body, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.RespondWithValidationErrors(w, []schema.FieldError{
			{Field: "email", Message: "email and password are required"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	existing, err := h.Store.Find(ctx, storage.CollectionUser, storage.UserFilter(req.Email), 1)
	if err != nil {
		slog.Error("register lookup", slog.Any("err", err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to register user")
		return
	}
	if len(existing) > 0 {
		utils.RespondWithError(w, http.StatusConflict, "email already registered")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		slog.Error("register hash", slog.Any("err", err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	user := models.User{
		OrgName:      req.OrgName,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	user.Normalize()

	id, err := h.Store.InsertOne(ctx, storage.CollectionUser, user)
	if err != nil {
		slog.Error("register insert", slog.Any("err", err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"_id": id})
}

// Login verifies credentials and issues a JWT.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	var req loginRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	docs, err := h.Store.Find(ctx, storage.CollectionUser, storage.UserFilter(req.Email), 1)
	if err != nil {
		slog.Error("login lookup", slog.Any("err", err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to log in")
		return
	}
	if len(docs) == 0 {
		utils.RespondWithError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	doc := docs[0]
	hash, _ := doc["password_hash"].(string)
	if !utils.CheckPasswordHash(req.Password, hash) {
		utils.RespondWithError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	role, _ := doc["role"].(string)
	var userID string
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		userID = oid.Hex()
	}

	token, err := utils.GenerateJWT(userID, req.Email, role)
	if err != nil {
		slog.Error("login token", slog.Any("err", err))
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"token": token,
		"role":  role,
	})
}

// Me returns the claims of the authenticated caller.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(middleware.CtxUserID).(string)
	email, _ := r.Context().Value(middleware.CtxEmail).(string)
	role, _ := r.Context().Value(middleware.CtxRole).(string)

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"user_id": userID,
		"email":   email,
		"role":    role,
	})
}
