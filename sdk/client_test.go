package algonest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	algonest "github.com/algonest/algonest/sdk"
)

const testToken = "session-token"

// fakeServer answers the handful of routes the tests exercise.
func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /user/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body["emailID"] == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if body["password"] != "Sup3r$ecret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized access: invalid credentials"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "token", Value: testToken, HttpOnly: true})
		json.NewEncoder(w).Encode(map[string]any{"user": map[string]string{"email": body["emailID"]}, "message": "logged in successfully"})
	})
	mux.HandleFunc("POST /submission/run/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "authentication token missing"})
			return
		}
		if r.PathValue("id") == "busy" {
			w.Header().Set("Retry-After", "30")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]string{"error": "too many requests, try again later"})
			return
		}
		var code algonest.Code
		json.NewDecoder(r.Body).Decode(&code)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(algonest.RunResult{
			Success:         code.Language == "python",
			Status:          "accepted",
			TestCasesPassed: 2,
			TotalTestCases:  2,
		})
	})
	mux.HandleFunc("POST /user/logout", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginStoresTokenAndRunUsesIt(t *testing.T) {
	srv := fakeServer(t)
	client := algonest.New(srv.URL + "/")
	ctx := context.Background()

	if _, err := client.Submissions.Run(ctx, "p1", algonest.Code{Source: "print(1)", Language: "python"}); err == nil {
		t.Fatal("expected an error before login")
	}

	resp, err := client.Auth.Login(ctx, "ada@example.com", "Sup3r$ecret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.User.Email != "ada@example.com" {
		t.Errorf("unexpected user %+v", resp.User)
	}
	if client.Token() != testToken {
		t.Fatalf("expected token from cookie, got %q", client.Token())
	}

	res, err := client.Submissions.Run(ctx, "p1", algonest.Code{Source: "print(1)", Language: "python"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !res.Success || res.TestCasesPassed != 2 {
		t.Errorf("unexpected run result %+v", res)
	}

	if err := client.Auth.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if client.Token() != "" {
		t.Error("expected token to be cleared on logout")
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := fakeServer(t)
	client := algonest.New(srv.URL)

	_, err := client.Auth.Login(context.Background(), "ada@example.com", "wrong")
	apiErr, ok := err.(*algonest.APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T (%v)", err, err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "unauthorized access: invalid credentials" {
		t.Errorf("unexpected error %+v", apiErr)
	}
	if client.Token() != "" {
		t.Error("failed login must not set a token")
	}
}

func TestRun_RateLimited(t *testing.T) {
	srv := fakeServer(t)
	client := algonest.New(srv.URL, algonest.WithToken(testToken))

	_, err := client.Submissions.Run(context.Background(), "busy", algonest.Code{Source: "x", Language: "python"})
	if !algonest.IsRateLimited(err) {
		t.Fatalf("expected a rate limit error, got %v", err)
	}
	if err.(*algonest.APIError).RetryAfter != "30" {
		t.Errorf("expected Retry-After 30, got %q", err.(*algonest.APIError).RetryAfter)
	}
}

func TestHealth(t *testing.T) {
	srv := fakeServer(t)
	resp, err := algonest.New(srv.URL, algonest.WithHTTPClient(srv.Client())).Health(context.Background())
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected ok, got %q", resp.Status)
	}
}
