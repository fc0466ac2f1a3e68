package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/petfinder-community/petfinder-go/internal/constants"
	"github.com/petfinder-community/petfinder-go/pkg/petfinder"
)

// OrganizationsClient implements petfinder.OrganizationsClient.
type OrganizationsClient struct {
	client *Client
}

// Get returns a single organization record by identifier. Identifier
// fetches bypass validation and pagination entirely.
func (c *OrganizationsClient) Get(ctx context.Context, organizationID string) (*petfinder.Organization, error) {
	path := "/organizations/" + organizationID

	resp, err := c.client.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting organization %s: %w", organizationID, err)
	}

	var envelope struct {
		Organization petfinder.Organization `json:"organization"`
	}
	if err := decode(resp, path, &envelope); err != nil {
		return nil, err
	}

	return &envelope.Organization, nil
}

// GetMany returns the given organizations in input order, one fetch
// each. A failed fetch aborts with no partial results.
func (c *OrganizationsClient) GetMany(ctx context.Context, organizationIDs ...string) ([]petfinder.Organization, error) {
	organizations := make([]petfinder.Organization, 0, len(organizationIDs))

	for _, id := range organizationIDs {
		organization, err := c.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		organizations = append(organizations, *organization)
	}

	return organizations, nil
}

// Search finds organizations matching params, aggregating the result
// pages selected by spec. Params are validated before any request is
// sent; a nil params searches without filters.
func (c *OrganizationsClient) Search(ctx context.Context, params *petfinder.OrganizationSearchParams, spec petfinder.PageSpec) (*petfinder.OrganizationSearchResult, error) {
	if params == nil {
		params = &petfinder.OrganizationSearchParams{}
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

	fetch := func(ctx context.Context, page int) ([]petfinder.Organization, int, error) {
		query := cloneValues(values)
		query.Set("page", strconv.Itoa(start + page - 1))

		resp, err := c.client.httpClient.Get(ctx, "/organizations", query)
		if err != nil {
			return nil, 0, fmt.Errorf("searching organizations: %w", err)
		}

		var envelope struct {
			Organizations []petfinder.Organization `json:"organizations"`
			Pagination    petfinder.Pagination     `json:"pagination"`
		}
		if err := decode(resp, "/organizations", &envelope); err != nil {
			return nil, 0, err
		}

		return envelope.Organizations, pagesFrom(envelope.Pagination, start), nil
	}

	organizations, notice, err := petfinder.CollectPages(ctx, spec, fetch)
	if err != nil {
		return nil, err
	}

	if notice != nil {
		c.client.logger.Warn(notice.String(), map[string]interface{}{
			"requested_pages": notice.RequestedPages,
			"available_pages": notice.AvailablePages,
		})
	}

	return &petfinder.OrganizationSearchResult{Organizations: organizations, Notice: notice}, nil
}
