package planner

import (
	"regexp"
	"strings"

	"github.com/FACorreiaa/go-mood-planner/internal/types"
)

var nonAlphanumericRe = regexp.MustCompile(`[^a-zA-Z0-9\s]+`)

// normalizeMatchText lower-cases and strips everything that is not a letter,
// digit or whitespace, so "Blue Bottle Coffee!" and "blue bottle coffee"
// compare equal.
func normalizeMatchText(s string) string {
	return strings.ToLower(nonAlphanumericRe.ReplaceAllString(s, ""))
}

type businessIndexEntry struct {
	id          string
	name        string
	address     string
	coordinates *types.Coordinates
}

// buildBusinessIndex normalizes each business's name and joined address once
// so every step match works on canonical text.
func buildBusinessIndex(businesses []types.Business) []businessIndexEntry {
	index := make([]businessIndexEntry, 0, len(businesses))
	for _, b := range businesses {
		address := ""
		if joined := joinAddress(b.Location, " "); joined != nil {
			address = normalizeMatchText(*joined)
		}
		index = append(index, businessIndexEntry{
			id:          b.ID,
			name:        normalizeMatchText(b.Name),
			address:     address,
			coordinates: b.Coordinates,
		})
	}
	return index
}

// findBusinessMatch resolves free text to an indexed business. Rules apply
// in order, first hit wins, index order breaks ties:
//  1. name containment in either direction
//  2. address containment in either direction
//  3. any whitespace token of the text contained in a name or address
//
// This is a best-effort heuristic, not a verified lookup; short or common
// tokens can match the wrong business.
func findBusinessMatch(index []businessIndexEntry, text string) *businessIndexEntry {
	if text == "" {
		return nil
	}
	t := normalizeMatchText(text)

	for i := range index {
		if index[i].name != "" && (strings.Contains(t, index[i].name) || strings.Contains(index[i].name, t)) {
			return &index[i]
		}
	}

	for i := range index {
		if index[i].address != "" && (strings.Contains(t, index[i].address) || strings.Contains(index[i].address, t)) {
			return &index[i]
		}
	}

	tokens := strings.Fields(t)
	for i := range index {
		for _, token := range tokens {
			if (index[i].name != "" && strings.Contains(index[i].name, token)) ||
				(index[i].address != "" && strings.Contains(index[i].address, token)) {
				return &index[i]
			}
		}
	}

	return nil
}

// enrichPlanCoordinates matches every itinerary step back to a business
// record to recover coordinates. Unmatched steps keep whatever coordinates
// they already had. The plan's start location is always overwritten with the
// caller's coordinates.
func enrichPlanCoordinates(plan *types.Plan, businesses []types.Business, start types.Coordinates) {
	if plan == nil {
		return
	}

	index := buildBusinessIndex(businesses)

	for i := range plan.Itinerary {
		step := &plan.Itinerary[i]

		searchable := make([]string, 0, 5)
		for _, field := range []string{stringOrEmpty(step.Location), step.Activity, step.Details, step.PlaceName, stringOrEmpty(step.Address)} {
			if field != "" {
				searchable = append(searchable, field)
			}
		}

		match := findBusinessMatch(index, strings.Join(searchable, " - "))
		if match == nil || match.coordinates == nil {
			continue
		}

		latitude := match.coordinates.Latitude
		longitude := match.coordinates.Longitude
		step.Latitude = &latitude
		step.Longitude = &longitude
		step.MatchedBusinessID = match.id
	}

	startLatitude := start.Latitude
	startLongitude := start.Longitude
	plan.StartLocation = &types.StartLocation{
		Latitude:  &startLatitude,
		Longitude: &startLongitude,
		Location:  "Your Location",
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
