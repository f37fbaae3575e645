package planner

import "fmt"

func getItineraryPrompt(userPrompt, summariesJSON string) string {
	return fmt.Sprintf(`You are an itinerary planner. Create a detailed itinerary based on the user's mood/request and the available nearby businesses.

User mood/request:
"%s"

Available nearby businesses:
%s

Return ONLY valid JSON in this exact format:
{
  "title": "Name of the itinerary",
  "description": "Brief description",
  "itinerary": [
    {
      "order": 1,
      "place_name": "Name of the place",
      "activity": "What to do there",
      "duration_minutes": 60,
      "address": "Street address",
      "location": "City, State",
      "details": "Any additional details"
    }
  ]
}

Make sure each activity in the itinerary matches one of the provided businesses. Use their exact names and addresses.`, userPrompt, summariesJSON)
}
