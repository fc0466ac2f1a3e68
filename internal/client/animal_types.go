package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/petfinder-community/petfinder-go/pkg/petfinder"
)

// AnimalTypesClient implements petfinder.AnimalTypesClient.
type AnimalTypesClient struct {
	client *Client
}

// List returns every animal type.
func (c *AnimalTypesClient) List(ctx context.Context) ([]petfinder.AnimalType, error) {
	resp, err := c.client.httpClient.Get(ctx, "/types", nil)
	if err != nil {
		return nil, fmt.Errorf("listing animal types: %w", err)
	}

	var envelope struct {
		Types []petfinder.AnimalType `json:"types"`
	}
	if err := decode(resp, "/types", &envelope); err != nil {
		return nil, err
	}

	return envelope.Types, nil
}

// Get returns a single animal type by name. The name is checked against
// the known animal types before any request is sent.
func (c *AnimalTypesClient) Get(ctx context.Context, animalType string) (*petfinder.AnimalType, error) {
	if err := checkAnimalType(animalType); err != nil {
		return nil, err
	}

	path := "/types/" + animalType

	resp, err := c.client.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting animal type %s: %w", animalType, err)
	}

	var envelope struct {
		Type petfinder.AnimalType `json:"type"`
	}
	if err := decode(resp, path, &envelope); err != nil {
		return nil, err
	}

	return &envelope.Type, nil
}

// GetMany returns the given animal types in input order, one fetch each.
// A failed fetch aborts with no partial results.
func (c *AnimalTypesClient) GetMany(ctx context.Context, animalTypes ...string) ([]petfinder.AnimalType, error) {
	types := make([]petfinder.AnimalType, 0, len(animalTypes))

	for _, name := range animalTypes {
		animalType, err := c.Get(ctx, name)
		if err != nil {
			return nil, err
		}

		types = append(types, *animalType)
	}

	return types, nil
}

func checkAnimalType(animalType string) error {
	for _, valid := range petfinder.AnimalTypes {
		if animalType == valid {
			return nil
		}
	}

	return &petfinder.ValidationError{Violations: []petfinder.Violation{{
		Dimension: "animal_type",
		Message: fmt.Sprintf("animal type %s is not valid. Animal types must be of the following: %s",
			animalType, strings.Join(petfinder.AnimalTypes, ", ")),
	}}}
}
