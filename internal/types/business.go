package types

// Coordinates is a WGS84 point as returned by the places API.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Category is one places-API category attached to a business.
type Category struct {
	Alias string `json:"alias,omitempty"`
	Title string `json:"title"`
}

// BusinessLocation carries the address fields of a business record.
type BusinessLocation struct {
	Address1       string   `json:"address1,omitempty"`
	Address2       string   `json:"address2,omitempty"`
	Address3       string   `json:"address3,omitempty"`
	City           string   `json:"city,omitempty"`
	State          string   `json:"state,omitempty"`
	ZipCode        string   `json:"zip_code,omitempty"`
	Country        string   `json:"country,omitempty"`
	DisplayAddress []string `json:"display_address,omitempty"`
}

// Business is a raw place record from the search API. The pipeline only
// reads and reshapes it; fields pass through to the response verbatim.
type Business struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Rating       float64          `json:"rating"`
	ReviewCount  int              `json:"review_count"`
	Price        string           `json:"price,omitempty"`
	Categories   []Category       `json:"categories,omitempty"`
	URL          string           `json:"url,omitempty"`
	ImageURL     string           `json:"image_url,omitempty"`
	DisplayPhone string           `json:"display_phone,omitempty"`
	Location     BusinessLocation `json:"location"`
	Coordinates  *Coordinates     `json:"coordinates,omitempty"`
	// Distance is meters from the search origin. Not every record carries
	// one; a missing distance sorts last.
	Distance *float64 `json:"distance,omitempty"`
}

// BusinessSummary is the compact projection of a Business fed to the
// itinerary model. Nullable fields marshal as explicit nulls so the model
// sees a stable shape.
type BusinessSummary struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Rating         float64      `json:"rating"`
	ReviewCount    int          `json:"review_count"`
	Price          *string      `json:"price"`
	Categories     []string     `json:"categories"`
	URL            string       `json:"url"`
	Phone          *string      `json:"phone"`
	Address        *string      `json:"address"`
	DistanceMeters *float64     `json:"distance_meters"`
	Coordinates    *Coordinates `json:"coordinates"`
}
