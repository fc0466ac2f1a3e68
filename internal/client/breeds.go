package client

import (
	"context"
	"fmt"

	"github.com/petfinder-community/petfinder-go/pkg/petfinder"
)

// BreedsClient implements petfinder.BreedsClient.
type BreedsClient struct {
	client *Client
}

// List returns the raw breed records of one animal type. The type is
// checked against the known animal types before any request is sent.
func (c *BreedsClient) List(ctx context.Context, animalType string) ([]petfinder.Breed, error) {
	if err := checkAnimalType(animalType); err != nil {
		return nil, err
	}

	path := "/types/" + animalType + "/breeds"

	resp, err := c.client.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing %s breeds: %w", animalType, err)
	}

	var envelope struct {
		Breeds []petfinder.Breed `json:"breeds"`
	}
	if err := decode(resp, path, &envelope); err != nil {
		return nil, err
	}

	return envelope.Breeds, nil
}

// Names returns breed names keyed by animal type, one fetch per type.
// With no types given every animal type is covered. A failed fetch
// aborts with no partial results.
func (c *BreedsClient) Names(ctx context.Context, animalTypes ...string) (map[string][]string, error) {
	if len(animalTypes) == 0 {
		animalTypes = petfinder.AnimalTypes
	}

	names := make(map[string][]string, len(animalTypes))

	for _, animalType := range animalTypes {
		breeds, err := c.List(ctx, animalType)
		if err != nil {
			return nil, err
		}

		breedNames := make([]string, 0, len(breeds))
		for _, breed := range breeds {
			breedNames = append(breedNames, breed.Name)
		}

		names[animalType] = breedNames
	}

	return names, nil
}
