package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/petfinder-community/petfinder-go/internal/constants"
	"github.com/petfinder-community/petfinder-go/pkg/petfinder"
)

// AnimalsClient implements petfinder.AnimalsClient.
type AnimalsClient struct {
	client *Client
}

// Get returns a single animal record by identifier. Identifier fetches
// bypass validation and pagination entirely.
func (c *AnimalsClient) Get(ctx context.Context, animalID int) (*petfinder.Animal, error) {
	path := "/animals/" + strconv.Itoa(animalID)

	resp, err := c.client.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting animal %d: %w", animalID, err)
	}

	var envelope struct {
		Animal petfinder.Animal `json:"animal"`
	}
	if err := decode(resp, path, &envelope); err != nil {
		return nil, err
	}

	return &envelope.Animal, nil
}

// GetMany returns the given animals in input order, one fetch each. A
// failed fetch aborts with no partial results.
func (c *AnimalsClient) GetMany(ctx context.Context, animalIDs ...int) ([]petfinder.Animal, error) {
	animals := make([]petfinder.Animal, 0, len(animalIDs))

	for _, id := range animalIDs {
		animal, err := c.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		animals = append(animals, *animal)
	}

	return animals, nil
}

// Search finds adoptable animals matching params, aggregating the
// result pages selected by spec. Params are validated before any
// request is sent; a nil params searches without filters.
func (c *AnimalsClient) Search(ctx context.Context, params *petfinder.AnimalSearchParams, spec petfinder.PageSpec) (*petfinder.AnimalSearchResult, error) {
	if params == nil {
		params = &petfinder.AnimalSearchParams{}
	}

	values, err := params.ToValues()
	if err != nil {
		return nil, err
	}

	if spec.AllPages {
		values.Set("limit", strconv.Itoa(constants.MaxResultsPerPage))
	}

	start := constants.FirstPage
	if params.Page != nil {
		start = *params.Page
	}

	fetch := func(ctx context.Context, page int) ([]petfinder.Animal, int, error) {
		query := cloneValues(values)
		query.Set("page", strconv.Itoa(start + page - 1))

		resp, err := c.client.httpClient.Get(ctx, "/animals", query)
		if err != nil {
			return nil, 0, fmt.Errorf("searching animals: %w", err)
		}

		var envelope struct {
			Animals    []petfinder.Animal   `json:"animals"`
			Pagination petfinder.Pagination `json:"pagination"`
		}
		if err := decode(resp, "/animals", &envelope); err != nil {
			return nil, 0, err
		}

		return envelope.Animals, pagesFrom(envelope.Pagination, start), nil
	}

	animals, notice, err := petfinder.CollectPages(ctx, spec, fetch)
	if err != nil {
		return nil, err
	}

	c.warnOnClamp(notice)

	return &petfinder.AnimalSearchResult{Animals: animals, Notice: notice}, nil
}

func (c *AnimalsClient) warnOnClamp(notice *petfinder.BoundaryNotice) {
	if notice == nil {
		return
	}

	c.client.logger.Warn(notice.String(), map[string]interface{}{
		"requested_pages": notice.RequestedPages,
		"available_pages": notice.AvailablePages,
	})
}
