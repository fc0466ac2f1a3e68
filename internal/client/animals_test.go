package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petfinder-community/petfinder-go/internal/auth"
	internalhttp "github.com/petfinder-community/petfinder-go/internal/http"
	"github.com/petfinder-community/petfinder-go/pkg/petfinder"
)

// animalSearchServer serves /animals with a fixed total page count, one
// animal per page, and records the requested page numbers.
func animalSearchServer(t *testing.T, totalPages int, pages *[]string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/animals", r.URL.Path)

		page := r.URL.Query().Get("page")
		*pages = append(*pages, page)

		id, err := strconv.Atoi(page)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"animals": [{"id": %d, "name": "Animal %d", "type": "Dog"}],
			"pagination": {"count_per_page": 1, "total_count": %d, "current_page": %d, "total_pages": %d}
		}`, id, id, totalPages, id, totalPages)
	}))
}

func TestAnimalsGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/animals/123", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery, "identifier fetches carry no filter parameters")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"animal": {
				"id": 123,
				"name": "Rex",
				"type": "Dog",
				"breeds": {"primary": "Beagle", "mixed": true},
				"environment": {"children": true, "dogs": null}
			}
		}`))
	}))
	defer server.Close()

	animal, err := newTestClient(server).Animals().Get(context.Background(), 123)
	require.NoError(t, err)
	assert.Equal(t, 123, animal.ID)
	assert.Equal(t, "Rex", animal.Name)
	assert.Equal(t, "Beagle", animal.Breeds.Primary)
	assert.True(t, animal.Breeds.Mixed)
	require.NotNil(t, animal.Environment.Children)
	assert.True(t, *animal.Environment.Children)
	assert.Nil(t, animal.Environment.Dogs)
}

func TestAnimalsGetNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server).Animals().Get(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, petfinder.IsNotFound(err))
}

func TestAnimalsGetMany(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/animals/2":
			_, _ = w.Write([]byte(`{"animal": {"id": 2, "name": "Second"}}`))
		case "/animals/1":
			_, _ = w.Write([]byte(`{"animal": {"id": 1, "name": "First"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	animals, err := newTestClient(server).Animals().GetMany(context.Background(), 2, 1)
	require.NoError(t, err)
	require.Len(t, animals, 2)
	assert.Equal(t, 2, animals[0].ID, "results follow input order")
	assert.Equal(t, 1, animals[1].ID)
}

func TestAnimalsGetManyAbortsOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.URL.Path == "/animals/1" {
			_, _ = w.Write([]byte(`{"animal": {"id": 1}}`))

			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	animals, err := newTestClient(server).Animals().GetMany(context.Background(), 1, 999)
	require.Error(t, err)
	assert.Nil(t, animals)
	assert.True(t, petfinder.IsNotFound(err))
}

func TestAnimalsSearchSinglePage(t *testing.T) {
	var pages []string

	server := animalSearchServer(t, 5, &pages)
	defer server.Close()

	result, err := newTestClient(server).Animals().Search(context.Background(), &petfinder.AnimalSearchParams{
		Type: "dog",
	}, petfinder.PageSpec{})
	require.NoError(t, err)
	assert.Nil(t, result.Notice)
	assert.Len(t, result.Animals, 1)
	assert.Equal(t, []string{"1"}, pages)
}

func TestAnimalsSearchAggregatesPagesInOrder(t *testing.T) {
	var pages []string

	server := animalSearchServer(t, 5, &pages)
	defer server.Close()

	result, err := newTestClient(server).Animals().Search(context.Background(), nil, petfinder.PageSpec{Pages: 3})
	require.NoError(t, err)
	assert.Nil(t, result.Notice)
	require.Len(t, result.Animals, 3)
	assert.Equal(t, []string{"1", "2", "3"}, pages)
	assert.Equal(t, 1, result.Animals[0].ID)
	assert.Equal(t, 2, result.Animals[1].ID)
	assert.Equal(t, 3, result.Animals[2].ID)
}

func TestAnimalsSearchClampsToAvailablePages(t *testing.T) {
	var pages []string

	server := animalSearchServer(t, 2, &pages)
	defer server.Close()

	result, err := newTestClient(server).Animals().Search(context.Background(), nil, petfinder.PageSpec{Pages: 3})
	require.NoError(t, err)

	require.NotNil(t, result.Notice)
	assert.Equal(t, 3, result.Notice.RequestedPages)
	assert.Equal(t, 2, result.Notice.AvailablePages)

	assert.Len(t, result.Animals, 2)
	assert.Equal(t, []string{"1", "2"}, pages, "no request beyond the last available page")
}

func TestAnimalsSearchClampWarnsThroughLogger(t *testing.T) {
	var pages []string

	server := animalSearchServer(t, 2, &pages)
	defer server.Close()

	logger := &recordingLogger{}
	httpClient := internalhttp.NewClient(server.URL, &auth.StaticTokenManager{Token: "test-token"})
	client := New(httpClient, logger)

	_, err := client.Animals().Search(context.Background(), nil, petfinder.PageSpec{Pages: 3})
	require.NoError(t, err)

	require.Len(t, logger.warnings, 1)
	assert.Contains(t, logger.warnings[0], "requested 3 pages but only 2 pages are available")
}

func TestAnimalsSearchAllPagesForcesMaxLimit(t *testing.T) {
	var pages, limits []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages = append(pages, r.URL.Query().Get("page"))
		limits = append(limits, r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"animals": [{"id": 1}],
			"pagination": {"total_pages": 3}
		}`)
	}))
	defer server.Close()

	result, err := newTestClient(server).Animals().Search(context.Background(), &petfinder.AnimalSearchParams{
		ResultsPerPage: petfinder.Int(20),
	}, petfinder.PageSpec{AllPages: true})
	require.NoError(t, err)
	assert.Nil(t, result.Notice)
	assert.Len(t, result.Animals, 3)
	assert.Equal(t, []string{"1", "2", "3"}, pages)
	assert.Equal(t, []string{"100", "100", "100"}, limits)
}

func TestAnimalsSearchStartsFromRequestedPage(t *testing.T) {
	var pages []string

	server := animalSearchServer(t, 5, &pages)
	defer server.Close()

	result, err := newTestClient(server).Animals().Search(context.Background(), &petfinder.AnimalSearchParams{
		Page: petfinder.Int(3),
	}, petfinder.PageSpec{Pages: 2})
	require.NoError(t, err)
	assert.Nil(t, result.Notice)
	assert.Equal(t, []string{"3", "4"}, pages)
	require.Len(t, result.Animals, 2)
	assert.Equal(t, 3, result.Animals[0].ID)
}

func TestAnimalsSearchRejectsInvalidParamsWithoutRequest(t *testing.T) {
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	_, err := newTestClient(server).Animals().Search(context.Background(), &petfinder.AnimalSearchParams{
		Size:     petfinder.Some("small", "huge"),
		Distance: petfinder.Int(501),
	}, petfinder.PageSpec{})
	require.Error(t, err)
	assert.True(t, petfinder.IsValidation(err))
	assert.Equal(t, 0, requests)

	validationErr := &petfinder.ValidationError{}
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Violations, 2)
}

func TestAnimalsSearchSendsFilterParameters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "dog", query.Get("type"))
		assert.Equal(t, "small,medium", query.Get("size"))
		assert.Equal(t, "female", query.Get("gender"))
		assert.Equal(t, "50", query.Get("limit"))
		assert.False(t, query.Has("status"), "unset dimensions are dropped")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"animals": [], "pagination": {"total_pages": 1}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server).Animals().Search(context.Background(), &petfinder.AnimalSearchParams{
		Type:           "dog",
		Size:           petfinder.Some("small", "medium"),
		Gender:         petfinder.One("female"),
		ResultsPerPage: petfinder.Int(50),
	}, petfinder.PageSpec{})
	require.NoError(t, err)
}

func TestAnimalsSearchMidAggregationFailureAborts(t *testing.T) {
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		if r.URL.Query().Get("page") == "2" {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"animals": [{"id": 1}], "pagination": {"total_pages": 3}}`))
	}))
	defer server.Close()

	result, err := newTestClient(server).Animals().Search(context.Background(), nil, petfinder.PageSpec{Pages: 3})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 2, requests)
}
