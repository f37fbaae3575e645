package planner

import (
	"sort"
	"strings"

	"github.com/FACorreiaa/go-mood-planner/internal/types"
)

const (
	// maxPlanBusinesses caps the summaries embedded in the itinerary prompt
	// to bound model input size.
	maxPlanBusinesses = 9

	// missingDistanceSentinel makes distance-less records sort after any
	// record with a real distance.
	missingDistanceSentinel = 999999.0
)

// dedupeBusinesses keeps the first occurrence of each business ID,
// preserving relative order otherwise. Running it twice is a no-op.
func dedupeBusinesses(businesses []types.Business) []types.Business {
	seen := make(map[string]struct{}, len(businesses))
	deduped := make([]types.Business, 0, len(businesses))
	for _, b := range businesses {
		if _, ok := seen[b.ID]; ok {
			continue
		}
		seen[b.ID] = struct{}{}
		deduped = append(deduped, b)
	}
	return deduped
}

// sortBusinesses orders by rating descending, then distance ascending.
// Missing distances are treated as the sentinel so they sort last.
func sortBusinesses(businesses []types.Business) {
	sort.SliceStable(businesses, func(i, j int) bool {
		if businesses[i].Rating != businesses[j].Rating {
			return businesses[i].Rating > businesses[j].Rating
		}
		return distanceOrSentinel(businesses[i].Distance) < distanceOrSentinel(businesses[j].Distance)
	})
}

func distanceOrSentinel(distance *float64) float64 {
	if distance == nil {
		return missingDistanceSentinel
	}
	return *distance
}

// summarizeBusinesses projects each business to the compact shape fed to
// the itinerary model, preserving order.
func summarizeBusinesses(businesses []types.Business) []types.BusinessSummary {
	summaries := make([]types.BusinessSummary, 0, len(businesses))
	for _, b := range businesses {
		titles := make([]string, 0, len(b.Categories))
		for _, c := range b.Categories {
			titles = append(titles, c.Title)
		}

		summaries = append(summaries, types.BusinessSummary{
			ID:             b.ID,
			Name:           b.Name,
			Rating:         b.Rating,
			ReviewCount:    b.ReviewCount,
			Price:          optionalString(b.Price),
			Categories:     titles,
			URL:            b.URL,
			Phone:          optionalString(b.DisplayPhone),
			Address:        joinAddress(b.Location, ", "),
			DistanceMeters: b.Distance,
			Coordinates:    b.Coordinates,
		})
	}
	return summaries
}

// joinAddress joins the address line, city and state, dropping empty parts.
// An entirely empty address becomes nil rather than an empty string.
func joinAddress(location types.BusinessLocation, separator string) *string {
	parts := make([]string, 0, 3)
	for _, part := range []string{location.Address1, location.City, location.State} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, separator)
	return &joined
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
