package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/campuskit/campus-auth/internal/apperr"
	"github.com/campuskit/campus-auth/internal/http/respond"
	"github.com/campuskit/campus-auth/internal/models/dto"
	"github.com/campuskit/campus-auth/internal/service"
	"github.com/campuskit/campus-auth/internal/validate"
)

// BasePath prefixes every auth route.
const BasePath = "/api/auth"

// AuthHandler owns the login and password-reset endpoints.
type AuthHandler struct {
	svc *service.AuthService
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(BasePath+"/login", h.handleLogin)
	mux.HandleFunc(BasePath+"/forgot-password", h.handleForgotPassword)
	mux.HandleFunc(BasePath+"/verify-code", h.handleVerifyCode)
	mux.HandleFunc(BasePath+"/reset-password", h.handleResetPassword)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !readJSON(w, r, &req) {
		return
	}
	userID := strings.TrimSpace(req.UserID)
	if userID == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "User ID and password are required")
		return
	}
	if !validate.UserID(userID) {
		respond.Error(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	result, err := h.svc.Login(r.Context(), userID, req.Password)
	if err != nil {
		fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		User:    result.User,
		Token:   result.Token,
	})
}

func (h *AuthHandler) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ForgotPasswordRequest
	if !readJSON(w, r, &req) {
		return
	}
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		respond.Error(w, http.StatusBadRequest, "User ID is required")
		return
	}
	if !validate.UserID(userID) {
		respond.Error(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	if err := h.svc.ForgotPassword(r.Context(), userID); err != nil {
		fail(w, err)
		return
	}
	// Same body whether or not the account exists.
	respond.JSON(w, http.StatusOK, dto.ForgotPasswordResponse{
		Success: true,
		Message: "If the user exists, a verification code has been sent to the registered mobile number",
	})
}

func (h *AuthHandler) handleVerifyCode(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyCodeRequest
	if !readJSON(w, r, &req) {
		return
	}
	userID := strings.TrimSpace(req.UserID)
	code := strings.TrimSpace(req.Code)
	if userID == "" || code == "" {
		respond.Error(w, http.StatusBadRequest, "User ID and verification code are required")
		return
	}
	if !validate.UserID(userID) {
		respond.Error(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}
	if !validate.Code(code) {
		respond.Error(w, http.StatusBadRequest, "Invalid verification code format. Code must be 6 digits")
		return
	}

	if err := h.svc.VerifyResetCode(r.Context(), userID, code); err != nil {
		fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.VerifyCodeResponse{
		Success:  true,
		Message:  "Verification code is valid",
		Verified: true,
	})
}

func (h *AuthHandler) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequest
	if !readJSON(w, r, &req) {
		return
	}
	userID := strings.TrimSpace(req.UserID)
	code := strings.TrimSpace(req.Code)
	if userID == "" || code == "" || req.NewPassword == "" {
		respond.Error(w, http.StatusBadRequest, "User ID, verification code, and new password are required")
		return
	}
	if !validate.UserID(userID) {
		respond.Error(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}
	if !validate.Code(code) {
		respond.Error(w, http.StatusBadRequest, "Invalid verification code format. Code must be 6 digits")
		return
	}
	if !validate.Password(req.NewPassword) {
		respond.Error(w, http.StatusBadRequest, "Password must be at least 8 characters long")
		return
	}

	if err := h.svc.ResetPassword(r.Context(), userID, code, req.NewPassword); err != nil {
		fail(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.ResetPasswordResponse{
		Success: true,
		Message: "Password has been reset successfully",
	})
}

// readJSON enforces POST, a JSON content type, and a decodable body before
// any field-level validation runs.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if ct := r.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		respond.Error(w, http.StatusBadRequest, "Content-Type must be application/json")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			respond.Error(w, http.StatusBadRequest, "Request body is required")
		} else {
			respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		}
		return false
	}
	return true
}

// fail maps a service error to its response. Server-side causes are logged
// in full here; clients only ever see status and message.
func fail(w http.ResponseWriter, err error) {
	ae := apperr.From(err)
	if ae.Status >= http.StatusInternalServerError {
		log.Printf("auth: %v", err)
	}
	respond.Error(w, ae.Status, ae.Message)
}
