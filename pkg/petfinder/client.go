package petfinder

import (
	"context"
	"time"
)

// Client provides access to the pet adoption API resource clients.
type Client interface {
	AnimalTypes() AnimalTypesClient
	Breeds() BreedsClient
	Animals() AnimalsClient
	Organizations() OrganizationsClient
}

// AnimalTypesClient provides access to the animal type endpoints.
type AnimalTypesClient interface {
	// List returns every animal type.
	List(ctx context.Context) ([]AnimalType, error)

	// Get returns a single animal type by name.
	Get(ctx context.Context, animalType string) (*AnimalType, error)

	// GetMany returns the given animal types, one fetch each, in input
	// order.
	GetMany(ctx context.Context, animalTypes ...string) ([]AnimalType, error)
}

// BreedsClient provides access to the breed endpoints.
type BreedsClient interface {
	// List returns the raw breed records of one animal type.
	List(ctx context.Context, animalType string) ([]Breed, error)

	// Names returns breed names keyed by animal type. With no types
	// given, every animal type is covered.
	Names(ctx context.Context, animalTypes ...string) (map[string][]string, error)
}

// AnimalsClient provides access to the animal endpoints.
type AnimalsClient interface {
	// Get returns a single animal record by identifier.
	Get(ctx context.Context, animalID int) (*Animal, error)

	// GetMany returns the given animals, one fetch each, in input order.
	GetMany(ctx context.Context, animalIDs ...int) ([]Animal, error)

	// Search finds adoptable animals matching params, aggregating the
	// result pages selected by spec.
	Search(ctx context.Context, params *AnimalSearchParams, spec PageSpec) (*AnimalSearchResult, error)
}

// OrganizationsClient provides access to the organization endpoints.
type OrganizationsClient interface {
	// Get returns a single organization record by identifier.
	Get(ctx context.Context, organizationID string) (*Organization, error)

	// GetMany returns the given organizations, one fetch each, in
	// input order.
	GetMany(ctx context.Context, organizationIDs ...string) ([]Organization, error)

	// Search finds organizations matching params, aggregating the
	// result pages selected by spec.
	Search(ctx context.Context, params *OrganizationSearchParams, spec PageSpec) (*OrganizationSearchResult, error)
}

// Config represents client configuration for building a petfinder.Client.
//
// Key and Secret are the two credential values issued by the API's
// developer registration; they are exchanged for a bearer token with
// the OAuth2 client_credentials grant when the client is constructed.
// The token is valid for the server-reported lifetime (3600 seconds)
// and shared, read-only, by every request within the client's lifetime.
type Config struct {
	// APIEndpoint is the base URL of the API. Defaults to the public
	// endpoint when empty; a missing scheme is normalized to https.
	APIEndpoint string

	// Key is the API key (OAuth2 client ID).
	Key string

	// Secret is the API secret (OAuth2 client secret).
	Secret string

	// HTTPTimeout overrides the default per-request timeout.
	HTTPTimeout time.Duration

	// Debug enables request/response logging when a Logger is set.
	Debug bool

	// Logger is the optional structured logger used by the HTTP layer.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
