// Package petfinder provides types, interfaces, and helpers for working
// with the Petfinder V2 pet adoption API.
//
// # Overview
//
// The petfinder package defines the domain types (Animal, Organization,
// AnimalType, Breed), the filter and validation layer for search
// parameters, the pagination aggregation driver, and the interfaces for
// resource-oriented clients (AnimalsClient, OrganizationsClient, and so
// on). A concrete implementation of these clients is provided by the
// pfclient package, which wires configuration, transport, and the OAuth2
// client_credentials token exchange. Most consumers should import
// pfclient to construct a client and then interact with the resource
// client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/petfinder-community/petfinder-go/pkg/petfinder"
//	  "github.com/petfinder-community/petfinder-go/pkg/pfclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := pfclient.New(ctx, &petfinder.Config{Key: "key", Secret: "secret"})
//	  if err != nil { log.Fatal(err) }
//
//	  result, err := cli.Animals().Search(ctx, &petfinder.AnimalSearchParams{
//	    Type: "dog",
//	    Size: petfinder.Some("small", "medium"),
//	  }, petfinder.PageSpec{Pages: 3})
//	  if err != nil { log.Fatal(err) }
//	  _ = result.Animals
//	}
//
// # Filters and validation
//
// Search parameters are validated against the API's fixed enumerations
// and numeric bounds before any request is sent. All violations are
// aggregated into a single ValidationError naming every offending value
// and the accepted set per dimension. Multi-valued dimensions (size,
// gender, age, coat) accept a scalar via One or a collection via Some.
//
// # Pagination
//
// Searches accept a PageSpec selecting how many result pages to
// aggregate. When the requested page count exceeds what the server
// reports available, the count is clamped and a BoundaryNotice is
// returned with the result; this is informational, never an error.
//
// # Errors
//
// API errors are represented by APIError. Helpers such as IsNotFound,
// IsUnauthorized, and IsInvalidParameters make it easy to branch on
// common cases. Validation failures surface as ValidationError before
// any I/O happens.
package petfinder
