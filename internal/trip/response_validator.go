package trip

import "fmt"

// ValidateItineraryShape is a total type guard over the decoded provider
// payload. It never panics and never throws; on failure it reports the path
// of the first violation so logs can point at what the model got wrong.
// Short-circuits on the first deviation.
func ValidateItineraryShape(doc any) (bool, string) {
	root, ok := doc.(map[string]any)
	if !ok {
		return false, "$"
	}

	days, ok := root["itinerary"].([]any)
	if !ok || len(days) == 0 {
		return false, "$.itinerary"
	}

	packing, ok := root["packing_list"].([]any)
	if !ok {
		return false, "$.packing_list"
	}
	for i, item := range packing {
		if _, ok := item.(string); !ok {
			return false, fmt.Sprintf("$.packing_list[%d]", i)
		}
	}

	for i, rawDay := range days {
		path := fmt.Sprintf("$.itinerary[%d]", i)
		day, ok := rawDay.(map[string]any)
		if !ok {
			return false, path
		}
		n, ok := day["day"].(float64)
		if !ok {
			return false, path + ".day"
		}
		// Day numbers are 1-based and strictly increasing with no gaps.
		if int(n) != i+1 {
			return false, path + ".day"
		}
		if _, ok := day["date"].(string); !ok {
			return false, path + ".date"
		}
		activities, ok := day["activities"].([]any)
		if !ok {
			return false, path + ".activities"
		}
		for j, rawAct := range activities {
			actPath := fmt.Sprintf("%s.activities[%d]", path, j)
			if ok, sub := validateActivityShape(rawAct); !ok {
				return false, actPath + sub
			}
		}
	}

	if raw, present := root["costSummary"]; present {
		if ok, sub := validateCostSummaryShape(raw); !ok {
			return false, "$.costSummary" + sub
		}
	}

	return true, ""
}

func validateActivityShape(raw any) (bool, string) {
	act, ok := raw.(map[string]any)
	if !ok {
		return false, ""
	}
	for _, key := range []string{"time", "title", "details"} {
		if _, ok := act[key].(string); !ok {
			return false, "." + key
		}
	}
	if v, present := act["durationMinutes"]; present {
		if _, ok := v.(float64); !ok {
			return false, ".durationMinutes"
		}
	}
	if v, present := act["costUSD"]; present {
		c, ok := v.(float64)
		if !ok || c < 0 {
			return false, ".costUSD"
		}
	}
	return true, ""
}

// validateCostSummaryShape checks the optional provider cost summary. The
// figures themselves are discarded and recomputed, but a malformed summary
// still fails the guard because it signals the model ignored the schema.
func validateCostSummaryShape(raw any) (bool, string) {
	cs, ok := raw.(map[string]any)
	if !ok {
		return false, ""
	}
	for _, key := range []string{"totalCostUSD", "dailyAverageCostUSD"} {
		if _, ok := cs[key].(float64); !ok {
			return false, "." + key
		}
	}
	breakdown, ok := cs["costBreakdown"].(map[string]any)
	if !ok {
		return false, ".costBreakdown"
	}
	for _, key := range []string{"accommodation", "food", "activities", "transportation", "other"} {
		if _, ok := breakdown[key].(float64); !ok {
			return false, ".costBreakdown." + key
		}
	}
	if rawBC, present := cs["budgetComparisonUSD"]; present {
		bc, ok := rawBC.(map[string]any)
		if !ok {
			return false, ".budgetComparisonUSD"
		}
		if _, ok := bc["budgetAmountUSD"].(float64); !ok {
			return false, ".budgetComparisonUSD.budgetAmountUSD"
		}
		if _, ok := bc["isOverBudget"].(bool); !ok {
			return false, ".budgetComparisonUSD.isOverBudget"
		}
	}
	return true, ""
}
