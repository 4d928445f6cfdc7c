package handlers

import (
	"net/http"

	"github.com/campuskit/campus-auth/internal/auth"
	"github.com/campuskit/campus-auth/internal/http/respond"
	"github.com/campuskit/campus-auth/internal/middleware"
)

// MeHandler echoes the identity inside a verified bearer token. It is the
// one authenticated route and exists so clients can check token validity.
type MeHandler struct {
	tokens *auth.TokenManager
}

type meResponse struct {
	Success bool   `json:"success"`
	User    meUser `json:"user"`
}

type meUser struct {
	UserID   string `json:"user_id"`
	UserType string `json:"user_type"`
}

func NewMeHandler(tokens *auth.TokenManager) *MeHandler {
	return &MeHandler{tokens: tokens}
}

// Register wires the route behind the JWT middleware.
func (h *MeHandler) Register(mux *http.ServeMux) {
	mux.Handle(BasePath+"/me", middleware.Auth(h.tokens, http.HandlerFunc(h.handle)))
}

func (h *MeHandler) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	respond.JSON(w, http.StatusOK, meResponse{
		Success: true,
		User:    meUser{UserID: claims.UserID, UserType: claims.UserType},
	})
}
