package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// API surface constants.
const (
	// DefaultAPIEndpoint is the public base URL of the API.
	DefaultAPIEndpoint = "https://api.petfinder.com"

	// APIBasePath is the versioned path prefix for every endpoint.
	APIBasePath = "/v2"

	// TokenPath is the OAuth2 token endpoint, relative to APIBasePath.
	TokenPath = "/oauth2/token"
)

// Pagination constants.
const (
	// FirstPage is the 1-based index of the first result page.
	FirstPage = 1

	// DefaultResultsPerPage is the page size the API applies when none
	// is requested.
	DefaultResultsPerPage = 20

	// MaxResultsPerPage is the largest page size the API accepts, used
	// when walking every page.
	MaxResultsPerPage = 100
)

// DefaultUserAgent identifies the library in outbound requests.
const DefaultUserAgent = "petfinder-go"
