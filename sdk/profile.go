package algonest

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

// ProfileService provides the progress dashboard.
type ProfileService struct {
	c *Client
}

func (s *ProfileService) Get(ctx context.Context) (*Dashboard, error) {
	return doRequest[Dashboard](ctx, s.c, http.MethodGet, "/profile/profile", nil, http.StatusOK)
}

// Activity returns submission counts for the last days days.
func (s *ProfileService) Activity(ctx context.Context, days int) (*Activity, error) {
	q := map[string]string{"days": strconv.Itoa(days)}
	return doRequestWithQuery[Activity](ctx, s.c, http.MethodGet, "/profile/activity", q, nil, http.StatusOK)
}

// ActivitySince returns submission counts since t.
func (s *ProfileService) ActivitySince(ctx context.Context, t time.Time) (*Activity, error) {
	q := map[string]string{"since": t.UTC().Format(time.RFC3339)}
	return doRequestWithQuery[Activity](ctx, s.c, http.MethodGet, "/profile/activity", q, nil, http.StatusOK)
}

func (s *ProfileService) Update(ctx context.Context, req ProfileUpdate) (*UserResponse, error) {
	return doRequest[UserResponse](ctx, s.c, http.MethodPut, "/profile/update", req, http.StatusOK)
}
