package algonest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ProblemsService provides problem catalogue operations.
type ProblemsService struct {
	c *Client
}

func (s *ProblemsService) List(ctx context.Context) ([]ProblemSummary, error) {
	out, err := doRequest[[]ProblemSummary](ctx, s.c, http.MethodGet, "/problem/getAllproblem", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func (s *ProblemsService) Get(ctx context.Context, id string) (*Problem, error) {
	return doRequest[Problem](ctx, s.c, http.MethodGet, "/problem/problemById/"+url.PathEscape(id), nil, http.StatusOK)
}

func (s *ProblemsService) GetBySlug(ctx context.Context, slug string) (*Problem, error) {
	return doRequest[Problem](ctx, s.c, http.MethodGet, "/problem/slug/"+url.PathEscape(slug), nil, http.StatusOK)
}

// Daily returns today's challenge.
func (s *ProblemsService) Daily(ctx context.Context) (*Problem, error) {
	return doRequest[Problem](ctx, s.c, http.MethodGet, "/problem/daily", nil, http.StatusOK)
}

// Solved lists the problems the signed-in user has solved.
func (s *ProblemsService) Solved(ctx context.Context) ([]ProblemSummary, error) {
	out, err := doRequest[[]ProblemSummary](ctx, s.c, http.MethodGet, "/problem/problemSolvedByUser", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// Submissions lists the signed-in user's submissions for a problem, newest first.
func (s *ProblemsService) Submissions(ctx context.Context, problemID string) ([]Submission, error) {
	out, err := doRequest[struct {
		Submissions []Submission `json:"submissions"`
	}](ctx, s.c, http.MethodGet, "/problem/submittedProblem/"+url.PathEscape(problemID), nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return out.Submissions, nil
}

// Create adds a problem. Every reference solution must pass the visible
// test cases. Requires an admin session.
func (s *ProblemsService) Create(ctx context.Context, req ProblemRequest) (*CreateProblemResponse, error) {
	return doRequest[CreateProblemResponse](ctx, s.c, http.MethodPost, "/problem/create", req, http.StatusCreated)
}

// Update replaces a problem. Requires an admin session.
func (s *ProblemsService) Update(ctx context.Context, id string, req ProblemRequest) (*Problem, error) {
	return doRequest[Problem](ctx, s.c, http.MethodPut, "/problem/update/"+url.PathEscape(id), req, http.StatusOK)
}

// Delete removes a problem. Requires an admin session.
func (s *ProblemsService) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/problem/delete/%s", url.PathEscape(id))
	_, err := doRequest[MessageResponse](ctx, s.c, http.MethodDelete, path, nil, http.StatusOK)
	return err
}
