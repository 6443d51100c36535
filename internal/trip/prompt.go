package trip

import (
	"fmt"
	"strings"

	"tripgen/internal/ai"
	"tripgen/internal/types"
)

// itinerarySystemPrompt pins the output shape. Every decision about the
// itinerary's content belongs to the model; every decision about its shape is
// made here.
const itinerarySystemPrompt = `You are a travel planning assistant. Respond with a single JSON object and no prose.
The object must have exactly this shape:
{
  "itinerary": [
    {
      "day": 1,
      "date": "YYYY-MM-DD or Day 1",
      "activities": [
        {"time": "09:00", "title": "...", "details": "...", "durationMinutes": 90, "costUSD": 25}
      ]
    }
  ],
  "packing_list": ["..."]
}
Rules:
- "day" numbers start at 1 and increase without gaps, one entry per trip day.
- "time" uses 24-hour HH:MM.
- "costUSD" is the estimated cost in US dollars for the whole party; omit it for free activities.
- Include 3 to 6 activities per day, covering accommodation check-in, meals, transport and sightseeing.
- Do not wrap the JSON in markdown fences.`

// BuildPrompt renders the trip request into the provider input. Pure
// template, no decisions.
func BuildPrompt(req *types.TripRequest) ai.Prompt {
	var b strings.Builder

	fmt.Fprintf(&b, "Plan a %d-day trip to %s", req.Duration, req.Destination)
	if req.From != "" {
		fmt.Fprintf(&b, " starting on %s", req.From)
	}
	people := req.NumberOfPeople
	if people < 1 {
		people = 1
	}
	fmt.Fprintf(&b, " for %d traveller(s).", people)

	if budget := req.Budget(); budget != nil {
		fmt.Fprintf(&b, " The total budget is %.2f %s.", budget.Amount, budget.Currency)
	}
	if len(req.Interests) > 0 {
		fmt.Fprintf(&b, " Interests: %s.", strings.Join(req.Interests, ", "))
	}
	if len(req.Activities) > 0 {
		fmt.Fprintf(&b, " Preferred activity types: %s.", strings.Join(req.Activities, ", "))
	}
	if len(req.MustSee) > 0 {
		fmt.Fprintf(&b, " Must-see: %s.", strings.Join(req.MustSee, ", "))
	}
	if custom := strings.TrimSpace(req.CustomRequest); custom != "" {
		fmt.Fprintf(&b, " Additional preferences: %s.", custom)
	}

	return ai.Prompt{System: itinerarySystemPrompt, User: b.String()}
}
