// Package auth implements the OAuth2 client_credentials token exchange
// for the pet adoption API.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/petfinder-community/petfinder-go/pkg/petfinder"
)

// TokenManager supplies bearer tokens for outbound API requests.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// OAuth2TokenManager exchanges the API key and secret for a bearer
// token using the client_credentials grant. The token is cached for its
// server-reported lifetime (3600 seconds); an expired token triggers a
// fresh exchange on the next request. There is no refresh-token grant.
type OAuth2TokenManager struct {
	config clientcredentials.Config

	mu    sync.Mutex
	token *oauth2.Token
}

// NewOAuth2TokenManager creates a token manager for the given token
// endpoint and credentials. The API expects the client id and secret in
// the form body rather than a basic-auth header.
func NewOAuth2TokenManager(tokenURL, key, secret string) *OAuth2TokenManager {
	return &OAuth2TokenManager{
		config: clientcredentials.Config{
			ClientID:     key,
			ClientSecret: secret,
			TokenURL:     tokenURL,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
	}
}

// GetToken returns the cached access token, performing the
// client_credentials exchange when no valid token is held.
func (m *OAuth2TokenManager) GetToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token.Valid() {
		return m.token.AccessToken, nil
	}

	token, err := m.config.Token(ctx)
	if err != nil {
		return "", exchangeError(err)
	}

	m.token = token

	return token.AccessToken, nil
}

// exchangeError maps token endpoint failures onto the API error
// taxonomy so that a 401 surfaces as an invalid-credentials error.
func exchangeError(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		return &petfinder.APIError{
			StatusCode: retrieveErr.Response.StatusCode,
			Title:      "invalid credentials",
			Detail:     retrieveErr.ErrorDescription,
		}
	}

	return fmt.Errorf("requesting access token: %w", err)
}

// StaticTokenManager provides a fixed token. Used in tests and when a
// caller already holds a valid bearer token.
type StaticTokenManager struct {
	Token string
}

// GetToken implements TokenManager.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.Token, nil
}
