// Package client implements the resource-oriented API clients on top of
// the shared HTTP transport.
package client

import (
	"encoding/json"
	"fmt"
	"net/url"

	internalhttp "github.com/petfinder-community/petfinder-go/internal/http"
	"github.com/petfinder-community/petfinder-go/pkg/petfinder"
)

// Client implements petfinder.Client.
type Client struct {
	httpClient *internalhttp.Client
	logger     petfinder.Logger

	animalTypes   *AnimalTypesClient
	breeds        *BreedsClient
	animals       *AnimalsClient
	organizations *OrganizationsClient
}

// New creates a resource client set sharing one transport.
func New(httpClient *internalhttp.Client, logger petfinder.Logger) *Client {
	if logger == nil {
		logger = petfinder.NoopLogger{}
	}

	c := &Client{
		httpClient: httpClient,
		logger:     logger,
	}

	c.animalTypes = &AnimalTypesClient{client: c}
	c.breeds = &BreedsClient{client: c}
	c.animals = &AnimalsClient{client: c}
	c.organizations = &OrganizationsClient{client: c}

	return c
}

// AnimalTypes returns the animal types client.
func (c *Client) AnimalTypes() petfinder.AnimalTypesClient {
	return c.animalTypes
}

// Breeds returns the breeds client.
func (c *Client) Breeds() petfinder.BreedsClient {
	return c.breeds
}

// Animals returns the animals client.
func (c *Client) Animals() petfinder.AnimalsClient {
	return c.animals
}

// Organizations returns the organizations client.
func (c *Client) Organizations() petfinder.OrganizationsClient {
	return c.organizations
}

// decode unmarshals a response body into target, wrapping parse
// failures with the request path for context.
func decode(resp *internalhttp.Response, path string, target interface{}) error {
	if err := json.Unmarshal(resp.Body, target); err != nil {
		return fmt.Errorf("parsing %s response: %w", path, err)
	}

	return nil
}

// cloneValues copies a query mapping so per-page mutations do not leak
// between fetches.
func cloneValues(values url.Values) url.Values {
	clone := make(url.Values, len(values))
	for key, vals := range values {
		clone[key] = append([]string(nil), vals...)
	}

	return clone
}

// pagesFrom converts the server-reported total page count into the
// number of pages reachable from the starting page.
func pagesFrom(pagination petfinder.Pagination, start int) int {
	available := pagination.TotalPages - start + 1
	if available < 0 {
		return 0
	}

	return available
}
