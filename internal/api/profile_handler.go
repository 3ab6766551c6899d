package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/algonest/algonest/internal/auth"
	"github.com/algonest/algonest/internal/common"
	"github.com/algonest/algonest/internal/profile"
	"github.com/algonest/algonest/internal/store"
)

const (
	defaultActivityDays = 30
	maxActivityDays     = 366
)

func (h *Handler) Profile(c *gin.Context) {
	p, err := h.profiles.Build(c.Request.Context(), *auth.FromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Activity returns submission counts per day and per hour. The window is
// either ?days=N (default 30) or ?since=<date>.
func (h *Handler) Activity(c *gin.Context) {
	since, err := h.activitySince(c)
	if err != nil {
		respondError(c, err)
		return
	}
	a, err := h.profiles.Activity(c.Request.Context(), auth.FromContext(c).ID, since)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) activitySince(c *gin.Context) (time.Time, error) {
	now := h.clock().UTC()
	if raw := c.Query("since"); raw != "" {
		t, err := dateparse.ParseIn(raw, time.UTC)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: invalid since %q", common.ErrBadRequest, raw)
		}
		if t.After(now) {
			return time.Time{}, fmt.Errorf("%w: since is in the future", common.ErrBadRequest)
		}
		return t.UTC(), nil
	}

	days := defaultActivityDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxActivityDays {
			return time.Time{}, fmt.Errorf("%w: days must be between 1 and %d", common.ErrBadRequest, maxActivityDays)
		}
		days = n
	}
	return now.AddDate(0, 0, -days), nil
}

type updateProfileRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=2,max=50"`
	LastName  *string `json:"lastName" binding:"omitempty,max=50"`
	Age       *int32  `json:"age" binding:"omitempty,min=6,max=80"`
}

// UpdateProfile changes first name, last name or age. Omitted fields keep
// their current value.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var body updateProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := store.UpdateUserProfileParams{ID: auth.FromContext(c).ID}
	if body.FirstName != nil {
		params.FirstName = pgtype.Text{String: strings.TrimSpace(*body.FirstName), Valid: true}
	}
	if body.LastName != nil {
		params.LastName = pgtype.Text{String: strings.TrimSpace(*body.LastName), Valid: true}
	}
	if body.Age != nil {
		params.Age = pgtype.Int4{Int32: *body.Age, Valid: true}
	}

	u, err := h.queries.UpdateUserProfile(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": profile.PublicUser(u), "message": "profile updated"})
}
