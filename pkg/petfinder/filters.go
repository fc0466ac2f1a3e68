package petfinder

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Enumeration tables for the filter dimensions accepted by the API.
// Process-wide constants, never mutated.
var (
	// AnimalTypes lists the valid animal type tokens.
	AnimalTypes = []string{"dog", "cat", "rabbit", "small-furry", "horse", "bird", "scales-fins-other", "barnyard"}

	// Sizes lists the valid animal size tokens.
	Sizes = []string{"small", "medium", "large", "xlarge"}

	// Genders lists the valid gender tokens.
	Genders = []string{"male", "female", "unknown"}

	// Ages lists the valid age tokens.
	Ages = []string{"baby", "young", "adult", "senior"}

	// Coats lists the valid coat tokens.
	Coats = []string{"short", "medium", "long", "wire", "hairless", "curly"}

	// Statuses lists the valid adoption status tokens.
	Statuses = []string{"adoptable", "adopted", "found"}

	// SortOrders lists the valid sort tokens. A leading dash reverses
	// the sort.
	SortOrders = []string{"recent", "-recent", "distance", "-distance"}

	// LocationFormats lists the accepted location format labels. The
	// check is against the literal label, not the location string
	// itself, matching the API documentation's format tags.
	LocationFormats = []string{"city,state", "latitude,longitude", "postal code"}
)

// Numeric bounds enforced before any request is sent.
const (
	// MaxDistance is the maximum search radius in miles.
	MaxDistance = 500

	// MaxResultsPerPage is the maximum page size the API accepts.
	MaxResultsPerPage = 100
)

// FilterValue is a filter argument that accepts either a single token
// or an ordered collection of tokens. The zero value means unset.
type FilterValue struct {
	values []string
}

// One returns a FilterValue holding a single token.
func One(value string) FilterValue {
	return FilterValue{values: []string{value}}
}

// Some returns a FilterValue holding an ordered collection of tokens.
func Some(values ...string) FilterValue {
	return FilterValue{values: values}
}

// IsZero reports whether the filter is unset.
func (f FilterValue) IsZero() bool {
	return len(f.values) == 0
}

// Values returns the tokens in input order.
func (f FilterValue) Values() []string {
	return f.values
}

// Int returns a pointer to v, for use with the optional integer filters.
func Int(v int) *int {
	return &v
}

// AnimalSearchParams holds the user-facing filter arguments for an
// animal search. Unset fields are omitted from the outbound request.
type AnimalSearchParams struct {
	// Type filters by animal type. Single value only.
	Type string
	// Breed filters by one or more breed names.
	Breed FilterValue
	// Size filters by one or more of the Sizes tokens.
	Size FilterValue
	// Gender filters by one or more of the Genders tokens.
	Gender FilterValue
	// Age filters by one or more of the Ages tokens.
	Age FilterValue
	// Color filters by a single color name.
	Color string
	// Coat filters by one or more of the Coats tokens.
	Coat FilterValue
	// Status filters by a single adoption status.
	Status string
	// Name matches or partially matches animal names.
	Name string
	// OrganizationID restricts results to the given organizations.
	OrganizationID FilterValue
	// Location restricts results around a location, given as one of
	// the LocationFormats labels.
	Location string
	// Distance is the search radius in miles, at most MaxDistance.
	Distance *int
	// Sort orders results by one of the SortOrders tokens.
	Sort string
	// ResultsPerPage is the page size, at most MaxResultsPerPage. The
	// API defaults to 20 when unset.
	ResultsPerPage *int
	// Page selects a specific 1-based result page.
	Page *int
}

// Validate checks every set filter against its enumeration or numeric
// bound. It performs no I/O and returns a single ValidationError
// aggregating all violations, or an ArgumentError when a filter has an
// unsupported shape.
func (p *AnimalSearchParams) Validate() error {
	chk := newChecker()
	chk.single("animal_type", p.Type, AnimalTypes,
		"animal type %s is not valid. Animal types must be of the following: %s")
	chk.set("size", "sizes", p.Size, Sizes,
		"sizes %s are not valid. Sizes must be of the following: %s")
	chk.set("gender", "genders", p.Gender, Genders,
		"genders %s are not valid. Genders must be of the following: %s")
	chk.set("age", "ages", p.Age, Ages,
		"ages %s are not valid. Ages must be of the following: %s")
	chk.set("coat", "coats", p.Coat, Coats,
		"coats %s are not valid. Coats must be of the following: %s")
	chk.single("status", p.Status, Statuses,
		"animal status %s is not valid. Status must be of the following: %s")
	chk.single("sort", p.Sort, SortOrders,
		"sort order %s is not valid. Sort must be one of: %s")
	chk.location(p.Location)
	chk.distance(p.Distance)
	chk.limit(p.ResultsPerPage)

	return chk.err()
}

// ToValues validates the parameters and assembles the wire-level query
// mapping, containing only the dimensions whose value is set.
func (p *AnimalSearchParams) ToValues() (url.Values, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	values := url.Values{}
	setString(values, "type", p.Type)
	setFilter(values, "breed", p.Breed)
	setFilter(values, "size", p.Size)
	setFilter(values, "gender", p.Gender)
	setFilter(values, "age", p.Age)
	setString(values, "color", p.Color)
	setFilter(values, "coat", p.Coat)
	setString(values, "status", p.Status)
	setString(values, "name", p.Name)
	setFilter(values, "organization", p.OrganizationID)
	setString(values, "location", p.Location)
	setInt(values, "distance", p.Distance)
	setString(values, "sort", p.Sort)
	setInt(values, "limit", p.ResultsPerPage)
	setInt(values, "page", p.Page)

	return values, nil
}

// OrganizationSearchParams holds the user-facing filter arguments for
// an organization search.
type OrganizationSearchParams struct {
	// Name matches or partially matches organization names.
	Name string
	// Location restricts results around a location, given as one of
	// the LocationFormats labels.
	Location string
	// Distance is the search radius in miles, at most MaxDistance.
	Distance *int
	// State filters by a two-letter state code.
	State string
	// Country filters by a two-letter country code (US or CA).
	Country string
	// Query matches names, cities, or states.
	Query string
	// Sort orders results by one of the SortOrders tokens.
	Sort string
	// ResultsPerPage is the page size, at most MaxResultsPerPage.
	ResultsPerPage *int
	// Page selects a specific 1-based result page.
	Page *int
}

// Validate checks every set filter against its enumeration or numeric
// bound. The dimensions are checked in the same order as for animal
// searches.
func (p *OrganizationSearchParams) Validate() error {
	chk := newChecker()
	chk.single("sort", p.Sort, SortOrders,
		"sort order %s is not valid. Sort must be one of: %s")
	chk.location(p.Location)
	chk.distance(p.Distance)
	chk.limit(p.ResultsPerPage)

	return chk.err()
}

// ToValues validates the parameters and assembles the wire-level query
// mapping, containing only the dimensions whose value is set.
func (p *OrganizationSearchParams) ToValues() (url.Values, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	values := url.Values{}
	setString(values, "name", p.Name)
	setString(values, "location", p.Location)
	setInt(values, "distance", p.Distance)
	setString(values, "state", p.State)
	setString(values, "country", p.Country)
	setString(values, "query", p.Query)
	setString(values, "sort", p.Sort)
	setInt(values, "limit", p.ResultsPerPage)
	setInt(values, "page", p.Page)

	return values, nil
}

// checker accumulates per-dimension violations in check order.
type checker struct {
	violations []Violation
	argErr     *ArgumentError
}

func newChecker() *checker {
	return &checker{}
}

// single checks a single-valued dimension against its enumeration.
func (c *checker) single(dimension, value string, accepted []string, format string) {
	if value == "" {
		return
	}

	if !contains(accepted, value) {
		c.violations = append(c.violations, Violation{
			Dimension: dimension,
			Message:   fmt.Sprintf(format, value, strings.Join(accepted, ", ")),
		})
	}
}

// set checks a multi-valued dimension. A scalar is treated as a
// one-element collection before the set-difference comparison.
func (c *checker) set(dimension, plural string, value FilterValue, accepted []string, format string) {
	if value.IsZero() {
		return
	}

	for _, token := range value.Values() {
		if token == "" {
			c.argument(dimension, plural+" must not contain empty values")

			return
		}
	}

	diff := difference(value.Values(), accepted)
	if len(diff) > 0 {
		c.violations = append(c.violations, Violation{
			Dimension: dimension,
			Message:   fmt.Sprintf(format, strings.Join(diff, ", "), strings.Join(accepted, ", ")),
		})
	}
}

// location checks the location format label, not the location string
// itself. The accepted labels contain commas, so they are quoted in the
// message.
func (c *checker) location(value string) {
	if value == "" {
		return
	}

	if !contains(LocationFormats, value) {
		quoted := make([]string, len(LocationFormats))
		for i, format := range LocationFormats {
			quoted[i] = strconv.Quote(format)
		}

		c.violations = append(c.violations, Violation{
			Dimension: "location",
			Message: fmt.Sprintf("location format %q is not valid. Location must be one of the formats: %s",
				value, strings.Join(quoted, ", ")),
		})
	}
}

func (c *checker) distance(value *int) {
	if value == nil {
		return
	}

	if *value < 0 || *value > MaxDistance {
		c.violations = append(c.violations, Violation{
			Dimension: "distance",
			Message:   fmt.Sprintf("distance cannot be greater than %d or less than 0", MaxDistance),
		})
	}
}

func (c *checker) limit(value *int) {
	if value == nil {
		return
	}

	if *value > MaxResultsPerPage {
		c.violations = append(c.violations, Violation{
			Dimension: "limit",
			Message:   fmt.Sprintf("results per page cannot be greater than %d", MaxResultsPerPage),
		})
	}
}

func (c *checker) argument(argument, reason string) {
	if c.argErr == nil {
		c.argErr = &ArgumentError{Argument: argument, Reason: reason}
	}
}

// err returns the aggregated validation failure, if any. Argument shape
// errors take precedence since the offending filter cannot be compared
// against its enumeration.
func (c *checker) err() error {
	if c.argErr != nil {
		return c.argErr
	}

	if len(c.violations) > 0 {
		return &ValidationError{Violations: c.violations}
	}

	return nil
}

func contains(accepted []string, value string) bool {
	for _, a := range accepted {
		if a == value {
			return true
		}
	}

	return false
}

// difference returns the values not present in accepted, in input order.
func difference(values, accepted []string) []string {
	var diff []string

	seen := map[string]bool{}
	for _, v := range values {
		if !contains(accepted, v) && !seen[v] {
			diff = append(diff, v)
			seen[v] = true
		}
	}

	return diff
}

func setString(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

func setFilter(values url.Values, key string, value FilterValue) {
	if !value.IsZero() {
		values.Set(key, strings.Join(value.Values(), ","))
	}
}

func setInt(values url.Values, key string, value *int) {
	if value != nil {
		values.Set(key, strconv.Itoa(*value))
	}
}
