package planner

import (
	"fmt"

	"github.com/FACorreiaa/go-mood-planner/internal/types"
)

const (
	fallbackVisitMinutes = 60
	fallbackPlanStops    = 3
	fallbackAlternatives = 3
)

// buildFallbackPlan assembles a deterministic plan from the top summaries
// when itinerary generation fails: fixed-length visits to the first three
// businesses, with the next three offered as alternatives.
func buildFallbackPlan(userPrompt string, summaries []types.BusinessSummary, start types.Coordinates) *types.Plan {
	picks := summaries
	if len(picks) > fallbackPlanStops {
		picks = picks[:fallbackPlanStops]
	}

	itinerary := make([]types.ItineraryStep, 0, len(picks))
	for i, p := range picks {
		var latitude, longitude *float64
		if p.Coordinates != nil {
			lat := p.Coordinates.Latitude
			lon := p.Coordinates.Longitude
			latitude = &lat
			longitude = &lon
		}
		itinerary = append(itinerary, types.ItineraryStep{
			Order:           i + 1,
			PlaceID:         p.ID,
			PlaceName:       p.Name,
			Activity:        fmt.Sprintf("Visit %s.", p.Name),
			DurationMinutes: fallbackVisitMinutes,
			Address:         p.Address,
			Location:        p.Address,
			Details:         fmt.Sprintf("Rating: %g", p.Rating),
			Latitude:        latitude,
			Longitude:       longitude,
		})
	}

	alternatives := []string{}
	if len(summaries) > fallbackPlanStops {
		tail := summaries[fallbackPlanStops:]
		if len(tail) > fallbackAlternatives {
			tail = tail[:fallbackAlternatives]
		}
		for _, s := range tail {
			alternatives = append(alternatives, s.Name)
		}
	}

	startLatitude := start.Latitude
	startLongitude := start.Longitude

	return &types.Plan{
		Title:                 fmt.Sprintf("Simple plan for %s", userPrompt),
		MoodPrompt:            userPrompt,
		TotalEstimatedMinutes: len(itinerary) * fallbackVisitMinutes,
		Itinerary:             itinerary,
		StartLocation: &types.StartLocation{
			Latitude:  &startLatitude,
			Longitude: &startLongitude,
			Location:  "Your Location",
		},
		Alternatives:       alternatives,
		WhyThisMatchesMood: "Based on top nearby places.",
	}
}
