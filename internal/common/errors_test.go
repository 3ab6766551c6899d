package common_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/algonest/algonest/internal/common"
)

func TestHTTPStatusFromError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not found", common.ErrNotFound, http.StatusNotFound},
		{"no rows", fmt.Errorf("get problem: %w", pgx.ErrNoRows), http.StatusNotFound},
		{"unauthorized", common.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", common.ErrForbidden, http.StatusForbidden},
		{"bad request wrapped", fmt.Errorf("%w: some field missing", common.ErrBadRequest), http.StatusBadRequest},
		{"validation", common.ErrValidation, http.StatusBadRequest},
		{"conflict", common.ErrConflict, http.StatusConflict},
		{"rate limited", common.ErrRateLimited, http.StatusTooManyRequests},
		{"judge down", fmt.Errorf("submit: %w: %w", common.ErrJudgeUnavailable, errors.New("dial tcp")), http.StatusBadGateway},
		{"judge timeout", fmt.Errorf("%w", common.ErrJudgeTimeout), http.StatusGatewayTimeout},
		{"unique violation", fmt.Errorf("create user: %w", &pgconn.PgError{Code: "23505"}), http.StatusConflict},
		{"other pg error", &pgconn.PgError{Code: "23514"}, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := common.HTTPStatusFromError(tc.err); got != tc.want {
				t.Errorf("HTTPStatusFromError(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !common.IsUniqueViolation(fmt.Errorf("x: %w", &pgconn.PgError{Code: "23505"})) {
		t.Error("expected wrapped 23505 to be a unique violation")
	}
	if common.IsUniqueViolation(errors.New("23505")) {
		t.Error("plain error should not be a unique violation")
	}
}
