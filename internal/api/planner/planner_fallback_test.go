package planner

import (
	"testing"

	"github.com/FACorreiaa/go-mood-planner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fallbackSummaries() []types.BusinessSummary {
	names := []string{"First", "Second", "Third", "Fourth", "Fifth", "Sixth", "Seventh"}
	summaries := make([]types.BusinessSummary, 0, len(names))
	for i, name := range names {
		address := name + " Street"
		summaries = append(summaries, types.BusinessSummary{
			ID:          name,
			Name:        name,
			Rating:      4.5,
			Address:     &address,
			Coordinates: &types.Coordinates{Latitude: float64(i), Longitude: float64(-i)},
		})
	}
	return summaries
}

func TestBuildFallbackPlan(t *testing.T) {
	start := types.Coordinates{Latitude: 37.77, Longitude: -122.42}

	t.Run("builds a three-stop plan from the top summaries", func(t *testing.T) {
		plan := buildFallbackPlan("romantic evening", fallbackSummaries(), start)

		assert.Equal(t, "Simple plan for romantic evening", plan.Title)
		assert.Equal(t, "romantic evening", plan.MoodPrompt)
		require.Len(t, plan.Itinerary, 3)
		assert.Equal(t, 180, plan.TotalEstimatedMinutes)

		first := plan.Itinerary[0]
		assert.Equal(t, 1, first.Order)
		assert.Equal(t, "First", first.PlaceID)
		assert.Equal(t, "Visit First.", first.Activity)
		assert.Equal(t, 60, first.DurationMinutes)
		require.NotNil(t, first.Address)
		assert.Equal(t, "First Street", *first.Address)
		assert.Equal(t, first.Address, first.Location)
		assert.Equal(t, "Rating: 4.5", first.Details)
		require.NotNil(t, first.Latitude)
		assert.Equal(t, 0.0, *first.Latitude)

		assert.Equal(t, []string{"Fourth", "Fifth", "Sixth"}, plan.Alternatives)
		assert.Equal(t, "Based on top nearby places.", plan.WhyThisMatchesMood)

		require.NotNil(t, plan.StartLocation)
		require.NotNil(t, plan.StartLocation.Latitude)
		assert.Equal(t, start.Latitude, *plan.StartLocation.Latitude)
		assert.Equal(t, "Your Location", plan.StartLocation.Location)
	})

	t.Run("fewer summaries than stops", func(t *testing.T) {
		plan := buildFallbackPlan("coffee", fallbackSummaries()[:2], start)
		require.Len(t, plan.Itinerary, 2)
		assert.Equal(t, 120, plan.TotalEstimatedMinutes)
		assert.Empty(t, plan.Alternatives)
	})

	t.Run("empty summaries yield an empty plan, not a panic", func(t *testing.T) {
		plan := buildFallbackPlan("anything", nil, start)
		assert.NotNil(t, plan.Itinerary)
		assert.Empty(t, plan.Itinerary)
		assert.Equal(t, 0, plan.TotalEstimatedMinutes)
		assert.Empty(t, plan.Alternatives)
	})
}
