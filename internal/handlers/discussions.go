package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mina-p1/Open-Bet/pkg/models"
	"github.com/mina-p1/Open-Bet/pkg/schedule"
)

const maxPostLength = 2000

// GetDiscussions returns a daily thread's posts, newest first
// GET /api/discussions?date=2024-01-15
func (h *Handler) GetDiscussions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	date := r.URL.Query().Get("date")
	if date == "" {
		respondError(w, http.StatusBadRequest, "date required", nil)
		return
	}
	if !schedule.ValidDate(date) {
		respondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}

	posts, err := h.store.GetDiscussions(ctx, date)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve discussions", err)
		return
	}

	respondJSON(w, http.StatusOK, posts)
}

// CreateDiscussion posts a message to a daily thread
// POST /api/discussions {"uid": "...", "name": "...", "text": "...", "date": "..."}
func (h *Handler) CreateDiscussion(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req struct {
		UID  string `json:"uid"`
		Name string `json:"name"`
		Text string `json:"text"`
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.Text == "" || req.Date == "" {
		respondError(w, http.StatusBadRequest, "missing data", nil)
		return
	}
	if !schedule.ValidDate(req.Date) {
		respondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	if len(req.Text) > maxPostLength {
		respondError(w, http.StatusBadRequest, "message too long", nil)
		return
	}

	name := req.Name
	if name == "" {
		name = "Anonymous"
	}

	post, err := h.store.CreateDiscussion(ctx, models.DiscussionPost{
		ID:         uuid.NewString(),
		ThreadDate: req.Date,
		UID:        req.UID,
		Name:       name,
		Text:       req.Text,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create post", err)
		return
	}

	respondJSON(w, http.StatusCreated, post)
}
