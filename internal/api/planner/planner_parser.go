package planner

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/FACorreiaa/go-mood-planner/internal/types"
)

// fencedBlockRe captures the contents of the first markdown code fence,
// optionally tagged "json".
var fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// extractJSONPayload returns the contents of the first fenced block when one
// is present, otherwise the raw response text.
func extractJSONPayload(response string) string {
	if m := fencedBlockRe.FindStringSubmatch(response); m != nil {
		return m[1]
	}
	return response
}

// parsePlan parses a model response into a Plan. Model outputs are
// inconsistent about the step list's field name (itinerary, steps or
// activities); aliases are normalized to itinerary immediately after
// parsing so downstream logic sees one shape.
func parsePlan(response string) (*types.Plan, error) {
	payload := strings.TrimSpace(extractJSONPayload(response))

	var raw struct {
		Title                 string                `json:"title"`
		Description           string                `json:"description"`
		TotalEstimatedMinutes int                   `json:"total_estimated_minutes"`
		Itinerary             []types.ItineraryStep `json:"itinerary"`
		Steps                 []types.ItineraryStep `json:"steps"`
		Activities            []types.ItineraryStep `json:"activities"`
		Alternatives          []string              `json:"alternatives"`
		WhyThisMatchesMood    string                `json:"why_this_matches_mood"`
	}
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse plan JSON: %w", err)
	}

	itinerary := raw.Itinerary
	if itinerary == nil {
		itinerary = raw.Steps
	}
	if itinerary == nil {
		itinerary = raw.Activities
	}
	if itinerary == nil {
		itinerary = []types.ItineraryStep{}
	}

	return &types.Plan{
		Title:                 raw.Title,
		Description:           raw.Description,
		TotalEstimatedMinutes: raw.TotalEstimatedMinutes,
		Itinerary:             itinerary,
		Alternatives:          raw.Alternatives,
		WhyThisMatchesMood:    raw.WhyThisMatchesMood,
	}, nil
}
