package handler

import (
	"errors"
	"net/http"

	"github.com/shoplite/shoplite-go/internal/middleware"
	"github.com/shoplite/shoplite-go/internal/model"
	"github.com/shoplite/shoplite-go/internal/service"
)

// AuthHandler handles HTTP requests for registration, login and profile.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /api/auth/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case isValidationError(err):
			writeJSON(w, http.StatusBadRequest, messageResponse(err.Error()))
		case errors.Is(err, service.ErrEmailTaken):
			// Duplicate email answers 400, matching the login error shape.
			writeJSON(w, http.StatusBadRequest, messageResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, serverErrorResponse())
		}
		return
	}

	writeJSON(w, http.StatusCreated, model.TokenResponse{Token: token})
}

// HandleLogin handles POST /api/auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case isValidationError(err), errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusBadRequest, messageResponse("Invalid credentials"))
		default:
			writeJSON(w, http.StatusInternalServerError, serverErrorResponse())
		}
		return
	}

	writeJSON(w, http.StatusOK, model.TokenResponse{Token: token})
}

// HandleProfile handles GET /api/auth/profile requests.
func (h *AuthHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("No token provided, authorization denied"))
		return
	}

	resp, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, messageResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, messageResponse("Server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
