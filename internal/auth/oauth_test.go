package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petfinder-community/petfinder-go/pkg/petfinder"
)

func TestOAuth2TokenManagerExchangesCredentials(t *testing.T) {
	var exchanges int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		exchanges++

		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "test-key", r.PostForm.Get("client_id"))
		assert.Equal(t, "test-secret", r.PostForm.Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token_type":"Bearer","expires_in":3600,"access_token":"test-token"}`))
	}))
	defer server.Close()

	manager := NewOAuth2TokenManager(server.URL, "test-key", "test-secret")

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test-token", token)
	assert.Equal(t, 1, exchanges)
}

func TestOAuth2TokenManagerCachesToken(t *testing.T) {
	var exchanges int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		exchanges++

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token_type":"Bearer","expires_in":3600,"access_token":"test-token"}`))
	}))
	defer server.Close()

	manager := NewOAuth2TokenManager(server.URL, "test-key", "test-secret")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		token, err := manager.GetToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "test-token", token)
	}

	assert.Equal(t, 1, exchanges, "the cached token serves every request within its lifetime")
}

func TestOAuth2TokenManagerReExchangesExpiredToken(t *testing.T) {
	var exchanges int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		exchanges++

		// expires_in below the client-side expiry delta, so the token is
		// already stale on the next request.
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token_type":"Bearer","expires_in":1,"access_token":"short-lived"}`))
	}))
	defer server.Close()

	manager := NewOAuth2TokenManager(server.URL, "test-key", "test-secret")
	ctx := context.Background()

	_, err := manager.GetToken(ctx)
	require.NoError(t, err)

	_, err = manager.GetToken(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, exchanges)
}

func TestOAuth2TokenManagerInvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client","error_description":"The client credentials are invalid"}`))
	}))
	defer server.Close()

	manager := NewOAuth2TokenManager(server.URL, "bad-key", "bad-secret")

	_, err := manager.GetToken(context.Background())
	require.Error(t, err)
	assert.True(t, petfinder.IsUnauthorized(err))

	apiErr := &petfinder.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid credentials", apiErr.Title)
	assert.Equal(t, "The client credentials are invalid", apiErr.Detail)
}

func TestStaticTokenManager(t *testing.T) {
	manager := &StaticTokenManager{Token: "fixed"}

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fixed", token)
}
