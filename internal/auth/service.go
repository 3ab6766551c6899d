package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/algonest/algonest/internal/common"
	"github.com/algonest/algonest/internal/store"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Service struct {
	queries   store.Querier
	issuer    *Issuer
	blocklist *Blocklist
}

func NewService(queries store.Querier, issuer *Issuer, blocklist *Blocklist) *Service {
	return &Service{queries: queries, issuer: issuer, blocklist: blocklist}
}

func (s *Service) Issuer() *Issuer { return s.issuer }

// Registration is the data needed to create an account.
type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// Register creates a user after checking password strength. The email is
// stored lower-cased; a duplicate surfaces as common.ErrConflict.
func (s *Service) Register(ctx context.Context, r Registration) (store.User, error) {
	if strings.TrimSpace(r.FirstName) == "" || r.Email == "" || r.Password == "" {
		return store.User{}, fmt.Errorf("%w: some field missing", common.ErrBadRequest)
	}
	if err := ValidatePassword(r.Password); err != nil {
		return store.User{}, err
	}
	role := r.Role
	if role == "" {
		role = RoleUser
	}
	if role != RoleUser && role != RoleAdmin {
		return store.User{}, fmt.Errorf("%w: unknown role %q", common.ErrValidation, role)
	}

	hash, err := HashPassword(r.Password)
	if err != nil {
		return store.User{}, err
	}
	return s.create(ctx, r.FirstName, r.LastName, r.Email, hash, role)
}

// Login returns the user for valid credentials. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (store.User, error) {
	if email == "" || password == "" {
		return store.User{}, fmt.Errorf("%w: email and password are required", common.ErrBadRequest)
	}
	u, err := s.queries.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.User{}, fmt.Errorf("%w: invalid credentials", common.ErrUnauthorized)
		}
		return store.User{}, fmt.Errorf("get user: %w", err)
	}
	if !CheckPassword(password, u.PasswordHash) {
		return store.User{}, fmt.Errorf("%w: invalid credentials", common.ErrUnauthorized)
	}
	return u, nil
}

// FindOrCreateExternal resolves a user signing in through an identity
// provider. New users get an unusable password hash.
func (s *Service) FindOrCreateExternal(ctx context.Context, email, firstName, lastName string) (store.User, error) {
	if email == "" {
		return store.User{}, fmt.Errorf("%w: provider returned no email", common.ErrBadRequest)
	}
	u, err := s.queries.GetUserByEmail(ctx, normalizeEmail(email))
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return store.User{}, fmt.Errorf("get user: %w", err)
	}
	if firstName == "" {
		firstName = strings.SplitN(email, "@", 2)[0]
	}
	return s.create(ctx, firstName, lastName, email, "!external:"+uuid.NewString(), RoleUser)
}

// Logout revokes token for the rest of its lifetime.
func (s *Service) Logout(ctx context.Context, token string) error {
	exp, ok := Expiry(token)
	if !ok {
		return nil
	}
	return s.blocklist.Revoke(ctx, token, exp)
}

// Authenticate verifies token and loads its user.
func (s *Service) Authenticate(ctx context.Context, token string) (*store.User, error) {
	claims, err := s.issuer.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnauthorized, err)
	}
	revoked, err := s.blocklist.IsRevoked(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("check blocklist: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("%w: token is revoked", common.ErrUnauthorized)
	}
	u, err := s.queries.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user not found", common.ErrUnauthorized)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (s *Service) create(ctx context.Context, firstName, lastName, email, hash, role string) (store.User, error) {
	u, err := s.queries.CreateUser(ctx, store.CreateUserParams{
		FirstName:    strings.TrimSpace(firstName),
		LastName:     pgtype.Text{String: strings.TrimSpace(lastName), Valid: strings.TrimSpace(lastName) != ""},
		Email:        normalizeEmail(email),
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		if common.IsUniqueViolation(err) {
			return store.User{}, fmt.Errorf("%w: email already registered", common.ErrConflict)
		}
		return store.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
