// Package pfclient provides the client constructor for the Petfinder V2
// pet adoption API.
package pfclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/petfinder-community/petfinder-go/internal/auth"
	"github.com/petfinder-community/petfinder-go/internal/client"
	"github.com/petfinder-community/petfinder-go/internal/constants"
	internalhttp "github.com/petfinder-community/petfinder-go/internal/http"
	"github.com/petfinder-community/petfinder-go/pkg/petfinder"
)

// New creates a new API client from the given configuration. The API
// key and secret are exchanged for a bearer token during construction,
// so invalid credentials fail here rather than on the first request.
func New(ctx context.Context, config *petfinder.Config) (petfinder.Client, error) {
	if config == nil {
		return nil, petfinder.ErrConfigRequired
	}

	if config.Key == "" || config.Secret == "" {
		return nil, petfinder.ErrCredentialsRequired
	}

	endpoint := normalizeEndpoint(config.APIEndpoint)
	baseURL := endpoint + constants.APIBasePath
	tokenURL := baseURL + constants.TokenPath

	tokenManager := auth.NewOAuth2TokenManager(tokenURL, config.Key, config.Secret)

	if _, err := tokenManager.GetToken(ctx); err != nil {
		return nil, fmt.Errorf("authenticating with %s: %w", endpoint, err)
	}

	httpClient := internalhttp.NewClient(baseURL, tokenManager, httpOptions(config)...)

	return client.New(httpClient, config.Logger), nil
}

// NewWithCredentials creates a client for the public API endpoint from
// an API key and secret.
func NewWithCredentials(ctx context.Context, key, secret string) (petfinder.Client, error) {
	return New(ctx, &petfinder.Config{Key: key, Secret: secret})
}

func httpOptions(config *petfinder.Config) []internalhttp.Option {
	var opts []internalhttp.Option

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	return opts
}

// normalizeEndpoint applies the default endpoint, adds the https scheme
// when missing, and strips any trailing slash.
func normalizeEndpoint(endpoint string) string {
	if endpoint == "" {
		return constants.DefaultAPIEndpoint
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return strings.TrimSuffix(endpoint, "/")
}
