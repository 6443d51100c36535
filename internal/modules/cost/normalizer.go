// README: Pure cost normalizer: categorization, totals, breakdown, budget comparison.
package cost

import (
	"strings"

	"tripgen/internal/modules/currency"
	"tripgen/internal/types"
)

// Category is one of the five fixed cost buckets.
type Category string

const (
	CategoryAccommodation  Category = "accommodation"
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryActivities     Category = "activities"
	CategoryOther          Category = "other"
)

// categoryKeywords is evaluated in order and the first matching set wins.
// Lodging and dining terms come first because they are the least ambiguous;
// transportation is checked before activities so "museum tour transport"
// resolves to transportation rather than being shadowed by "tour".
var categoryKeywords = []struct {
	category Category
	words    []string
}{
	{CategoryAccommodation, []string{
		"hotel", "hostel", "check-in", "check in", "check-out", "check out",
		"resort", "airbnb", "accommodation", "lodge", "guesthouse", "motel", "camping",
	}},
	{CategoryFood, []string{
		"breakfast", "lunch", "dinner", "brunch", "restaurant", "cafe", "café",
		"food", "meal", "snack", "tasting", "bakery", "wine bar", "bistro",
	}},
	{CategoryTransportation, []string{
		"taxi", "transfer", "train", "bus", "flight", "airport", "metro",
		"subway", "tram", "ferry", "transport", "drive", "rental car", "uber",
	}},
	{CategoryActivities, []string{
		"tour", "museum", "visit", "explore", "hike", "beach", "show", "park",
		"gallery", "temple", "castle", "cruise", "excursion", "experience", "ticket",
	}},
}

// Categorize assigns an activity to a cost bucket by case-insensitive
// substring match over its title and details. Deterministic: the same text
// always yields the same category.
func Categorize(a types.Activity) Category {
	text := strings.ToLower(a.Title + " " + a.Details)
	for _, set := range categoryKeywords {
		for _, w := range set.words {
			if strings.Contains(text, w) {
				return set.category
			}
		}
	}
	return CategoryOther
}

// DailyCost sums a day's activity costs; a missing cost counts as 0.
func DailyCost(day types.DayPlan) float64 {
	var sum float64
	for _, a := range day.Activities {
		sum += a.CostUSD
	}
	return sum
}

// TotalCost sums daily costs across the whole itinerary.
func TotalCost(days []types.DayPlan) float64 {
	var sum float64
	for _, d := range days {
		sum += DailyCost(d)
	}
	return sum
}

// Breakdown buckets every activity cost by its category. The five buckets
// sum exactly to TotalCost.
func Breakdown(days []types.DayPlan) types.CostBreakdown {
	var b types.CostBreakdown
	for _, d := range days {
		for _, a := range d.Activities {
			switch Categorize(a) {
			case CategoryAccommodation:
				b.Accommodation += a.CostUSD
			case CategoryFood:
				b.Food += a.CostUSD
			case CategoryTransportation:
				b.Transportation += a.CostUSD
			case CategoryActivities:
				b.Activities += a.CostUSD
			default:
				b.Other += a.CostUSD
			}
		}
	}
	return b
}

// BudgetComparison relates the derived trip total to the user's budget,
// normalized to USD with the shared rate table. It returns nil only when no
// budget was supplied; an unrecognized currency falls back to rate 1 rather
// than failing.
func BudgetComparison(totalUSD float64, budget *types.Money, rates *currency.Table) *types.BudgetComparison {
	if budget == nil {
		return nil
	}
	budgetUSD := rates.ToUSD(budget.Amount, budget.Currency)
	diff := totalUSD - budgetUSD
	var pct float64
	if budgetUSD != 0 {
		pct = diff / budgetUSD * 100
	}
	return &types.BudgetComparison{
		BudgetAmount:         budget.Amount,
		BudgetCurrency:       strings.ToUpper(budget.Currency),
		BudgetAmountUSD:      budgetUSD,
		DifferenceUSD:        diff,
		DifferencePercentage: pct,
		IsOverBudget:         diff > 0,
	}
}

// Summarize derives the full cost annotation for an itinerary whose shape has
// already been validated. len(days) > 0 is guaranteed upstream by the
// response validator, so the daily average never divides by zero.
func Summarize(days []types.DayPlan, budget *types.Money, rates *currency.Table) types.CostSummary {
	total := TotalCost(days)
	return types.CostSummary{
		TotalCostUSD:        total,
		DailyAverageCostUSD: total / float64(len(days)),
		CostBreakdown:       Breakdown(days),
		BudgetComparisonUSD: BudgetComparison(total, budget, rates),
	}
}
