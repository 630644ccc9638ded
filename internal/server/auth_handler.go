package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/stylesense/internal/server/middleware"
	"github.com/jonathan/stylesense/internal/types"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles account, measurement and history HTTP requests.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
	validator   *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService *UserService, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		validator:   validator.New(),
	}
}

// Register handles signup requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.issueToken(w, http.StatusCreated, user)
}

// Login handles login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.issueToken(w, http.StatusOK, user)
}

func (h *AuthHandler) issueToken(w http.ResponseWriter, status int, user *types.User) {
	token, err := h.jwtService.GenerateToken(user.Email)
	if err != nil {
		log.Error().Err(err).Str("email", user.Email).Msg("failed to generate token")
		writeError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	writeJSON(w, status, types.LoginResponse{User: user, Token: token})
}

// Me returns the authenticated account's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	email, ok := authenticatedEmail(w, r)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(r.Context(), email)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateMeasurements replaces the authenticated account's measurements.
func (h *AuthHandler) UpdateMeasurements(w http.ResponseWriter, r *http.Request) {
	email, ok := authenticatedEmail(w, r)
	if !ok {
		return
	}

	var m types.Measurements
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateMeasurements(r.Context(), email, m)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// ListHistory returns the authenticated account's outfit history, newest first.
func (h *AuthHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	email, ok := authenticatedEmail(w, r)
	if !ok {
		return
	}

	history, err := h.userService.ListHistory(r.Context(), email)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"history": history,
		"count":   len(history),
	})
}

// AddHistory records a rated outfit for the authenticated account.
func (h *AuthHandler) AddHistory(w http.ResponseWriter, r *http.Request) {
	email, ok := authenticatedEmail(w, r)
	if !ok {
		return
	}

	var req types.AddHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	entry, err := h.userService.AddHistory(r.Context(), email, &req)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func authenticatedEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	email, err := middleware.GetEmail(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return email, true
}

// serviceError maps a service error to a response, hiding internal details.
func (h *AuthHandler) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("account operation failed")
		writeError(w, status, "Internal server error")
		return
	}
	writeError(w, status, err.Error())
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		// first failure only
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}
