package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/isdelr/inkwell-be/internal/services"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles HTTP requests for signup and signin.
type AuthHandler struct {
	service services.AccountServiceProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.AccountServiceProvider) *AuthHandler {
	return &AuthHandler{service: service}
}

// SignupPayload defines the structure for signup requests.
type SignupPayload struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninPayload defines the structure for signin requests.
type SigninPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles new account registration.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.service.Register(payload.Fullname, payload.Email, payload.Password)
	if err != nil {
		status := statusForError(err)
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register account")
		} else {
			log.Warn().Err(err).Str("email", payload.Email).Msg("Rejected signup")
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Signin handles authentication of an existing account.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var payload SigninPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		status := statusForError(err)
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Str("email", payload.Email).Msg("Failed to authenticate account")
		} else {
			log.Warn().Err(err).Str("email", payload.Email).Msg("Failed authentication attempt")
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// statusForError maps service errors to HTTP status codes. The duplicate
// email conflict maps to 500, matching the contract the front end expects.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrFullnameTooShort),
		errors.Is(err, services.ErrEmailRequired),
		errors.Is(err, services.ErrEmailInvalid),
		errors.Is(err, services.ErrPasswordInvalid),
		errors.Is(err, services.ErrEmailNotFound),
		errors.Is(err, services.ErrIncorrectPassword),
		errors.Is(err, services.ErrVerifyFailed):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
