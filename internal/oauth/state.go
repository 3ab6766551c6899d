package oauth

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StatePayload travels through the provider in the OAuth state parameter.
// Nonce is also kept in a browser cookie so a callback can be tied to the
// browser that started the sign-in.
type StatePayload struct {
	RedirectURI string `json:"redirect_uri"`
	Nonce       string `json:"nonce"`
	IssuedAt    int64  `json:"iat"`
}

// Expired reports whether the sign-in started more than maxAge before now.
func (p *StatePayload) Expired(now time.Time, maxAge time.Duration) bool {
	return now.Sub(time.Unix(p.IssuedAt, 0)) > maxAge
}

// EncodeState builds the state parameter for a sign-in that should land on
// redirectURI, returning the nonce to bind to the browser.
func EncodeState(redirectURI string, now time.Time) (state, nonce string, err error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("generating nonce: %w", err)
	}
	nonce = base64.RawURLEncoding.EncodeToString(buf)

	b, err := json.Marshal(StatePayload{RedirectURI: redirectURI, Nonce: nonce, IssuedAt: now.Unix()})
	if err != nil {
		return "", "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nonce, nil
}

// DecodeState parses a state parameter produced by EncodeState.
func DecodeState(state string) (*StatePayload, error) {
	b, err := base64.RawURLEncoding.DecodeString(state)
	if err != nil {
		return nil, errors.New("invalid state encoding")
	}
	var p StatePayload
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, errors.New("invalid state payload")
	}
	if p.RedirectURI == "" || p.Nonce == "" || p.IssuedAt == 0 {
		return nil, errors.New("incomplete state payload")
	}
	return &p, nil
}
