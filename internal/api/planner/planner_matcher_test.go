package planner

import (
	"testing"

	"github.com/FACorreiaa/go-mood-planner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matcherBusinesses() []types.Business {
	return []types.Business{
		{
			ID:   "blue-bottle",
			Name: "Blue Bottle Coffee",
			Location: types.BusinessLocation{
				Address1: "123 Main St",
				City:     "San Francisco",
				State:    "CA",
			},
			Coordinates: &types.Coordinates{Latitude: 37.77, Longitude: -122.42},
		},
		{
			ID:   "golden-gate",
			Name: "Golden Gate Park",
			Location: types.BusinessLocation{
				Address1: "501 Stanyan St",
				City:     "San Francisco",
				State:    "CA",
			},
			Coordinates: &types.Coordinates{Latitude: 37.769, Longitude: -122.486},
		},
	}
}

func TestNormalizeMatchText(t *testing.T) {
	assert.Equal(t, "blue bottle coffee", normalizeMatchText("Blue Bottle Coffee!"))
	assert.Equal(t, "caf 123", normalizeMatchText("Café: 123"))
	assert.Equal(t, "", normalizeMatchText("***"))
}

func TestFindBusinessMatch(t *testing.T) {
	index := buildBusinessIndex(matcherBusinesses())

	t.Run("name containment", func(t *testing.T) {
		match := findBusinessMatch(index, "Grab coffee at Blue Bottle Coffee")
		require.NotNil(t, match)
		assert.Equal(t, "blue-bottle", match.id)
	})

	t.Run("address containment", func(t *testing.T) {
		match := findBusinessMatch(index, "Head to 501 Stanyan St San Francisco CA")
		require.NotNil(t, match)
		assert.Equal(t, "golden-gate", match.id)
	})

	t.Run("token fallback", func(t *testing.T) {
		match := findBusinessMatch(index, "wander around stanyan gardens")
		require.NotNil(t, match)
		assert.Equal(t, "golden-gate", match.id)
	})

	t.Run("short tokens can match the wrong business", func(t *testing.T) {
		// Known heuristic limitation: "a" is contained in the first
		// business's address, so the first index entry wins.
		match := findBusinessMatch(index, "take a stroll")
		require.NotNil(t, match)
		assert.Equal(t, "blue-bottle", match.id)
	})

	t.Run("first index order wins on ambiguity", func(t *testing.T) {
		// "san francisco" appears in both addresses; the first entry wins.
		match := findBusinessMatch(index, "somewhere in San Francisco")
		require.NotNil(t, match)
		assert.Equal(t, "blue-bottle", match.id)
	})

	t.Run("no overlap", func(t *testing.T) {
		assert.Nil(t, findBusinessMatch(index, "xyzzy quux"))
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Nil(t, findBusinessMatch(index, ""))
	})
}

func TestEnrichPlanCoordinates(t *testing.T) {
	start := types.Coordinates{Latitude: 37.7749, Longitude: -122.4194}

	t.Run("step matched via activity gains coordinates and business id", func(t *testing.T) {
		plan := &types.Plan{
			Title: "Test",
			Itinerary: []types.ItineraryStep{
				{Order: 1, Activity: "Grab coffee at Blue Bottle Coffee"},
			},
		}

		enrichPlanCoordinates(plan, matcherBusinesses(), start)

		step := plan.Itinerary[0]
		require.NotNil(t, step.Latitude)
		require.NotNil(t, step.Longitude)
		assert.InDelta(t, 37.77, *step.Latitude, 0.0001)
		assert.InDelta(t, -122.42, *step.Longitude, 0.0001)
		assert.Equal(t, "blue-bottle", step.MatchedBusinessID)
	})

	t.Run("unmatched step keeps its coordinates", func(t *testing.T) {
		existing := 1.23
		plan := &types.Plan{
			Itinerary: []types.ItineraryStep{
				{Order: 1, Activity: "xyzzy"},
				{Order: 2, Activity: "quux", Latitude: &existing},
			},
		}

		enrichPlanCoordinates(plan, matcherBusinesses(), start)

		assert.Nil(t, plan.Itinerary[0].Latitude)
		assert.Nil(t, plan.Itinerary[0].Longitude)
		assert.Empty(t, plan.Itinerary[0].MatchedBusinessID)
		require.NotNil(t, plan.Itinerary[1].Latitude)
		assert.Equal(t, existing, *plan.Itinerary[1].Latitude)
	})

	t.Run("matched business without coordinates leaves the step untouched", func(t *testing.T) {
		businesses := []types.Business{{ID: "no-coords", Name: "Mystery Spot"}}
		plan := &types.Plan{
			Itinerary: []types.ItineraryStep{{Order: 1, PlaceName: "Mystery Spot"}},
		}

		enrichPlanCoordinates(plan, businesses, start)
		assert.Nil(t, plan.Itinerary[0].Latitude)
		assert.Empty(t, plan.Itinerary[0].MatchedBusinessID)
	})

	t.Run("start location is overwritten with caller coordinates", func(t *testing.T) {
		plan := &types.Plan{
			StartLocation: &types.StartLocation{Location: "Somewhere Else"},
		}

		enrichPlanCoordinates(plan, nil, start)

		require.NotNil(t, plan.StartLocation)
		require.NotNil(t, plan.StartLocation.Latitude)
		assert.Equal(t, start.Latitude, *plan.StartLocation.Latitude)
		assert.Equal(t, start.Longitude, *plan.StartLocation.Longitude)
		assert.Equal(t, "Your Location", plan.StartLocation.Location)
	})

	t.Run("nil plan is a no-op", func(t *testing.T) {
		enrichPlanCoordinates(nil, matcherBusinesses(), start)
	})
}
