package algonest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// AuthService provides account and session operations.
type AuthService struct {
	c *Client
}

// Register creates an account and signs the client in.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	return s.session(ctx, "/user/register", req, http.StatusCreated)
}

// Login signs the client in. The session token is taken from the cookie the
// server sets and sent as a Bearer token from then on.
func (s *AuthService) Login(ctx context.Context, email, password string) (*UserResponse, error) {
	body := map[string]string{"emailID": email, "password": password}
	return s.session(ctx, "/user/login", body, http.StatusOK)
}

// Logout revokes the current token and forgets it.
func (s *AuthService) Logout(ctx context.Context) error {
	resp, err := s.c.send(ctx, http.MethodPost, "/user/logout", nil, nil, http.StatusOK)
	if err != nil {
		return err
	}
	resp.Body.Close()
	s.c.setToken("")
	return nil
}

// Check returns the signed-in user.
func (s *AuthService) Check(ctx context.Context) (*UserResponse, error) {
	return doRequest[UserResponse](ctx, s.c, http.MethodGet, "/user/check", nil, http.StatusOK)
}

// DeleteAccount removes the signed-in user and all of their submissions.
func (s *AuthService) DeleteAccount(ctx context.Context) error {
	resp, err := s.c.send(ctx, http.MethodDelete, "/user/deleteProfile", nil, nil, http.StatusOK)
	if err != nil {
		return err
	}
	resp.Body.Close()
	s.c.setToken("")
	return nil
}

// RegisterAs creates an account with the given role. Requires an admin session.
func (s *AuthService) RegisterAs(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	return doRequest[UserResponse](ctx, s.c, http.MethodPost, "/user/admin/register", req, http.StatusCreated)
}

func (s *AuthService) session(ctx context.Context, path string, body any, expectedStatus int) (*UserResponse, error) {
	resp, err := s.c.send(ctx, http.MethodPost, path, nil, body, expectedStatus)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out UserResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("algonest: decode response: %w", err)
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == sessionCookie && ck.Value != "" {
			s.c.setToken(ck.Value)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("algonest: %s returned no session cookie", path)
}
