// Package auth verifies Google ID tokens for the sign-in exchange.
// Verification goes through Google's tokeninfo endpoint, which validates
// the signature server-side; we check audience and expiry here.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	tokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"
	timeout      = 5 * time.Second
)

// ErrInvalidToken means the credential failed verification. Callers map
// this to 401; anything else is an upstream failure.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the identity fields extracted from a verified ID token
type Claims struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// Verifier validates Google ID tokens against an OAuth client ID
type Verifier struct {
	clientID   string
	endpoint   string
	httpClient *http.Client
}

// NewVerifier creates a verifier for the given OAuth client ID
func NewVerifier(clientID string) *Verifier {
	return &Verifier{
		clientID: clientID,
		endpoint: tokenInfoURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewVerifierWithEndpoint creates a verifier against an alternate
// tokeninfo endpoint, so tests can stand in an httptest server
func NewVerifierWithEndpoint(clientID, endpoint string) *Verifier {
	v := NewVerifier(clientID)
	v.endpoint = endpoint
	return v
}

// tokenInfoResponse mirrors the tokeninfo payload; numeric fields arrive
// as strings
type tokenInfoResponse struct {
	Audience string `json:"aud"`
	Subject  string `json:"sub"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Picture  string `json:"picture"`
	Expiry   string `json:"exp"` // unix seconds
}

// Verify checks a Google ID token and returns its identity claims.
// Returns ErrInvalidToken for a rejected, foreign-audience, or expired
// credential.
func (v *Verifier) Verify(ctx context.Context, token string) (*Claims, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	params := url.Values{}
	params.Set("id_token", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", v.endpoint, params.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("create tokeninfo request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read tokeninfo response: %w", err)
	}

	// Google answers 4xx for any token it rejects
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return nil, ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tokeninfo returned status %d", resp.StatusCode)
	}

	var info tokenInfoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("parse tokeninfo response: %w", err)
	}

	if info.Audience != v.clientID {
		return nil, ErrInvalidToken
	}

	if exp, err := strconv.ParseInt(info.Expiry, 10, 64); err != nil || time.Now().Unix() >= exp {
		return nil, ErrInvalidToken
	}

	if info.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{
		Subject: info.Subject,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}
