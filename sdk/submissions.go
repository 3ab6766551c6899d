package algonest

import (
	"context"
	"net/http"
	"net/url"
)

// SubmissionsService runs and submits code.
type SubmissionsService struct {
	c *Client
}

// Run evaluates code against the problem's visible test cases. Runs are
// rate-limited per user; see IsRateLimited.
func (s *SubmissionsService) Run(ctx context.Context, problemID string, code Code) (*RunResult, error) {
	return doRequestWithQuery[RunResult](ctx, s.c, http.MethodPost, "/submission/run/"+url.PathEscape(problemID), nil, code, http.StatusCreated, http.StatusOK)
}

// Submit judges code against the hidden test cases and records the result.
// The call blocks until the judge has finished.
func (s *SubmissionsService) Submit(ctx context.Context, problemID string, code Code) (*SubmitResult, error) {
	return doRequest[SubmitResult](ctx, s.c, http.MethodPost, "/submission/submit/"+url.PathEscape(problemID), code, http.StatusCreated)
}
