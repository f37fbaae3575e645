package types

// PlanRequest is the immutable input to one pipeline run.
type PlanRequest struct {
	Prompt    string  `json:"prompt"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ItineraryStep is one stop in a plan. Latitude and Longitude are pointers
// so unresolved steps serialize as explicit nulls rather than zero values.
type ItineraryStep struct {
	Order              int      `json:"order"`
	PlaceID            string   `json:"place_id,omitempty"`
	PlaceName          string   `json:"place_name"`
	Activity           string   `json:"activity"`
	SuggestedStartTime *string  `json:"suggested_start_time,omitempty"`
	DurationMinutes    int      `json:"duration_minutes"`
	Address            *string  `json:"address"`
	Location           *string  `json:"location"`
	Details            string   `json:"details,omitempty"`
	Latitude           *float64 `json:"latitude"`
	Longitude          *float64 `json:"longitude"`
	MatchedBusinessID  string   `json:"matched_business_id,omitempty"`
}

// StartLocation anchors a plan to the caller's coordinates.
type StartLocation struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Location  string   `json:"location"`
}

// Plan is a structured itinerary, either model-generated or the
// deterministic fallback.
type Plan struct {
	Title                 string          `json:"title"`
	Description           string          `json:"description,omitempty"`
	MoodPrompt            string          `json:"mood_prompt,omitempty"`
	TotalEstimatedMinutes int             `json:"total_estimated_minutes,omitempty"`
	Itinerary             []ItineraryStep `json:"itinerary"`
	StartLocation         *StartLocation  `json:"start_location,omitempty"`
	Alternatives          []string        `json:"alternatives,omitempty"`
	WhyThisMatchesMood    string          `json:"why_this_matches_mood,omitempty"`
}

// PlanDebug carries pipeline counters surfaced to the client.
type PlanDebug struct {
	ExtractedTags      []string `json:"extracted_tags"`
	TotalRawBusinesses int      `json:"total_raw_businesses"`
	DedupedBusinesses  int      `json:"deduped_businesses"`
}

// PlanResponse is the body of a successful POST /api/plan.
type PlanResponse struct {
	Spots []Business `json:"spots"`
	Plan  *Plan      `json:"plan"`
	Debug PlanDebug  `json:"debug"`
}
