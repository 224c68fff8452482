package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mina-p1/Open-Bet/internal/auth"
	"github.com/mina-p1/Open-Bet/pkg/models"
)

// GoogleAuth exchanges a Google ID token for a session user, creating the
// account on first sign-in
// POST /api/auth/google {"token": "..."}
func (h *Handler) GoogleAuth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	claims, err := h.verifier.Verify(ctx, req.Token)
	if errors.Is(err, auth.ErrInvalidToken) {
		respondError(w, http.StatusUnauthorized, "invalid token", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusBadGateway, "token verification failed", err)
		return
	}

	user, err := h.store.UpsertUser(ctx, models.User{
		UID:     claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save user", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Success",
		"user":    user,
	})
}

// UpdateUserProfile persists display name and favorite team edits
// PUT /api/user/update {"uid": "...", "displayName": "...", "favoriteTeam": "..."}
func (h *Handler) UpdateUserProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req struct {
		UID          string  `json:"uid"`
		DisplayName  *string `json:"displayName"`
		FavoriteTeam *string `json:"favoriteTeam"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.UID == "" {
		respondError(w, http.StatusBadRequest, "user ID required", nil)
		return
	}

	user, err := h.store.UpdateUserProfile(ctx, req.UID, req.DisplayName, req.FavoriteTeam)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update profile", err)
		return
	}

	if user == nil {
		respondError(w, http.StatusNotFound, "user not found", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Profile updated",
		"user":    user,
	})
}
