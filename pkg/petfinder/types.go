package petfinder

// Links represents the _links block attached to API resources.
type Links map[string]Link

// Link represents a single resource link.
type Link struct {
	Href string `json:"href" yaml:"href"`
}

// Pagination represents the pagination block of a list response envelope.
type Pagination struct {
	CountPerPage int `json:"count_per_page" yaml:"count_per_page"`
	TotalCount   int `json:"total_count"    yaml:"total_count"`
	CurrentPage  int `json:"current_page"   yaml:"current_page"`
	TotalPages   int `json:"total_pages"    yaml:"total_pages"`
}

// AnimalType represents one animal type and its attribute vocabularies.
type AnimalType struct {
	Name    string   `json:"name"    yaml:"name"`
	Coats   []string `json:"coats"   yaml:"coats"`
	Colors  []string `json:"colors"  yaml:"colors"`
	Genders []string `json:"genders" yaml:"genders"`
	Links   Links    `json:"_links"  yaml:"links"`
}

// Breed represents a single breed of an animal type.
type Breed struct {
	Name  string `json:"name"   yaml:"name"`
	Links Links  `json:"_links" yaml:"links"`
}

// Animal represents an adoptable animal record.
type Animal struct {
	ID              int               `json:"id"                 yaml:"id"`
	OrganizationID  string            `json:"organization_id"    yaml:"organization_id"`
	URL             string            `json:"url"                yaml:"url"`
	Type            string            `json:"type"               yaml:"type"`
	Species         string            `json:"species"            yaml:"species"`
	Breeds          AnimalBreeds      `json:"breeds"             yaml:"breeds"`
	Colors          AnimalColors      `json:"colors"             yaml:"colors"`
	Age             string            `json:"age"                yaml:"age"`
	Gender          string            `json:"gender"             yaml:"gender"`
	Size            string            `json:"size"               yaml:"size"`
	Coat            string            `json:"coat"               yaml:"coat"`
	Name            string            `json:"name"               yaml:"name"`
	Description     string            `json:"description"        yaml:"description"`
	Photos          []Photo           `json:"photos"             yaml:"photos"`
	Status          string            `json:"status"             yaml:"status"`
	StatusChangedAt string            `json:"status_changed_at"  yaml:"status_changed_at"`
	PublishedAt     string            `json:"published_at"       yaml:"published_at"`
	Attributes      AnimalAttributes  `json:"attributes"         yaml:"attributes"`
	Environment     AnimalEnvironment `json:"environment"        yaml:"environment"`
	Tags            []string          `json:"tags"               yaml:"tags"`
	Contact         Contact           `json:"contact"            yaml:"contact"`
	Distance        float64           `json:"distance,omitempty" yaml:"distance,omitempty"`
	Links           Links             `json:"_links"             yaml:"links"`
}

// AnimalBreeds describes the breed mix of an animal.
type AnimalBreeds struct {
	Primary   string `json:"primary"   yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
	Mixed     bool   `json:"mixed"     yaml:"mixed"`
	Unknown   bool   `json:"unknown"   yaml:"unknown"`
}

// AnimalColors describes the coloring of an animal.
type AnimalColors struct {
	Primary   string `json:"primary"   yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
	Tertiary  string `json:"tertiary"  yaml:"tertiary"`
}

// AnimalAttributes holds care and health flags.
type AnimalAttributes struct {
	SpayedNeutered bool `json:"spayed_neutered" yaml:"spayed_neutered"`
	HouseTrained   bool `json:"house_trained"   yaml:"house_trained"`
	Declawed       bool `json:"declawed"        yaml:"declawed"`
	SpecialNeeds   bool `json:"special_needs"   yaml:"special_needs"`
	ShotsCurrent   bool `json:"shots_current"   yaml:"shots_current"`
}

// AnimalEnvironment holds compatibility flags; nil means unknown.
type AnimalEnvironment struct {
	Children *bool `json:"children" yaml:"children"`
	Dogs     *bool `json:"dogs"     yaml:"dogs"`
	Cats     *bool `json:"cats"     yaml:"cats"`
}

// Photo holds the size variants of a single photo.
type Photo struct {
	Small  string `json:"small"  yaml:"small"`
	Medium string `json:"medium" yaml:"medium"`
	Large  string `json:"large"  yaml:"large"`
	Full   string `json:"full"   yaml:"full"`
}

// Contact holds contact details for an animal listing or organization.
type Contact struct {
	Email   string  `json:"email"   yaml:"email"`
	Phone   string  `json:"phone"   yaml:"phone"`
	Address Address `json:"address" yaml:"address"`
}

// Address represents a postal address.
type Address struct {
	Address1 string `json:"address1" yaml:"address1"`
	Address2 string `json:"address2" yaml:"address2"`
	City     string `json:"city"     yaml:"city"`
	State    string `json:"state"    yaml:"state"`
	Postcode string `json:"postcode" yaml:"postcode"`
	Country  string `json:"country"  yaml:"country"`
}

// Organization represents an animal welfare organization.
type Organization struct {
	ID               string         `json:"id"                  yaml:"id"`
	Name             string         `json:"name"                yaml:"name"`
	Email            string         `json:"email"               yaml:"email"`
	Phone            string         `json:"phone"               yaml:"phone"`
	Address          Address        `json:"address"             yaml:"address"`
	Hours            map[string]string `json:"hours"            yaml:"hours"`
	URL              string         `json:"url"                 yaml:"url"`
	Website          string         `json:"website"             yaml:"website"`
	MissionStatement string         `json:"mission_statement"   yaml:"mission_statement"`
	Adoption         AdoptionPolicy `json:"adoption"            yaml:"adoption"`
	SocialMedia      SocialMedia    `json:"social_media"        yaml:"social_media"`
	Photos           []Photo        `json:"photos"              yaml:"photos"`
	Distance         float64        `json:"distance,omitempty"  yaml:"distance,omitempty"`
	Links            Links          `json:"_links"              yaml:"links"`
}

// AdoptionPolicy describes an organization's adoption process.
type AdoptionPolicy struct {
	Policy string `json:"policy" yaml:"policy"`
	URL    string `json:"url"    yaml:"url"`
}

// SocialMedia holds an organization's social media links.
type SocialMedia struct {
	Facebook  string `json:"facebook"  yaml:"facebook"`
	Twitter   string `json:"twitter"   yaml:"twitter"`
	Youtube   string `json:"youtube"   yaml:"youtube"`
	Instagram string `json:"instagram" yaml:"instagram"`
	Pinterest string `json:"pinterest" yaml:"pinterest"`
}

// AnimalSearchResult holds animals aggregated across one or more result
// pages, in page order then in-page order. Notice is set when the
// requested page count was clamped to the server-reported maximum.
type AnimalSearchResult struct {
	Animals []Animal
	Notice  *BoundaryNotice
}

// Table flattens the aggregated animals into tabular form.
func (r *AnimalSearchResult) Table() (*Table, error) {
	return Flatten(r.Animals)
}

// OrganizationSearchResult holds organizations aggregated across one or
// more result pages.
type OrganizationSearchResult struct {
	Organizations []Organization
	Notice        *BoundaryNotice
}

// Table flattens the aggregated organizations into tabular form.
func (r *OrganizationSearchResult) Table() (*Table, error) {
	return Flatten(r.Organizations)
}
