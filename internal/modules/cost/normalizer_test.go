package cost

import (
	"math"
	"testing"
	"time"

	"tripgen/internal/modules/currency"
	"tripgen/internal/types"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		activity types.Activity
		want     Category
	}{
		{"hotel check-in", types.Activity{Title: "Hotel check-in"}, CategoryAccommodation},
		{"hostel in details", types.Activity{Title: "Evening", Details: "Drop bags at the hostel"}, CategoryAccommodation},
		{"dinner", types.Activity{Title: "Dinner at a local restaurant"}, CategoryFood},
		{"cafe stop", types.Activity{Title: "Morning coffee", Details: "Popular cafe near the river"}, CategoryFood},
		{"airport taxi", types.Activity{Title: "Airport taxi transfer"}, CategoryTransportation},
		{"museum tour", types.Activity{Title: "Louvre museum tour"}, CategoryActivities},
		{"free time", types.Activity{Title: "Free time"}, CategoryOther},
		{"empty", types.Activity{}, CategoryOther},
		// Transportation is checked before activities, so mixed text
		// resolves to the transport bucket.
		{"mixed transport beats tour", types.Activity{Title: "museum tour transport"}, CategoryTransportation},
		{"case insensitive", types.Activity{Title: "HOTEL CHECK-IN"}, CategoryAccommodation},
		{"wine bar", types.Activity{Title: "Evening at a wine bar"}, CategoryFood},
		{"bistro", types.Activity{Title: "Cozy bistro in the old town"}, CategoryFood},
		// "Barcelona" and "harbor" must not be mistaken for drinking spots.
		{"barcelona is not food", types.Activity{Title: "Explore Barcelona's Gothic Quarter"}, CategoryActivities},
		{"harbor is not food", types.Activity{Title: "Harbor cruise at sunset"}, CategoryActivities},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.activity); got != tt.want {
				t.Errorf("Categorize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDailyCost(t *testing.T) {
	if got := DailyCost(types.DayPlan{}); got != 0 {
		t.Errorf("empty day cost = %v, want 0", got)
	}
	day := types.DayPlan{Activities: []types.Activity{
		{Title: "Hotel", CostUSD: 120},
		{Title: "Lunch", CostUSD: 18.5},
		{Title: "Free walk"}, // missing cost counts as 0
	}}
	if got := DailyCost(day); got != 138.5 {
		t.Errorf("DailyCost() = %v, want 138.5", got)
	}
}

func TestBreakdownSumsToTotal(t *testing.T) {
	days := []types.DayPlan{
		{Day: 1, Activities: []types.Activity{
			{Title: "Hotel check-in", CostUSD: 140},
			{Title: "Dinner at a local restaurant", CostUSD: 42.35},
			{Title: "Airport taxi transfer", CostUSD: 31.1},
		}},
		{Day: 2, Activities: []types.Activity{
			{Title: "Louvre museum tour", CostUSD: 22},
			{Title: "Free time"},
			{Title: "Street market browsing", CostUSD: 13.07},
		}},
	}

	total := TotalCost(days)
	b := Breakdown(days)
	sum := b.Accommodation + b.Food + b.Transportation + b.Activities + b.Other
	if math.Abs(sum-total) > 1e-6 {
		t.Errorf("breakdown sums to %v, total is %v", sum, total)
	}
	if b.Accommodation != 140 || b.Food != 42.35 || b.Transportation != 31.1 || b.Activities != 22 || b.Other != 13.07 {
		t.Errorf("unexpected buckets: %+v", b)
	}
}

func TestBudgetComparison(t *testing.T) {
	rates := currency.NewTable(time.Hour)

	t.Run("no budget", func(t *testing.T) {
		if got := BudgetComparison(500, nil, rates); got != nil {
			t.Errorf("expected nil comparison, got %+v", got)
		}
	})

	t.Run("over budget in usd", func(t *testing.T) {
		got := BudgetComparison(1000, &types.Money{Amount: 800, Currency: "USD"}, rates)
		if got == nil {
			t.Fatal("expected a comparison")
		}
		if got.DifferenceUSD != 200 {
			t.Errorf("DifferenceUSD = %v, want 200", got.DifferenceUSD)
		}
		if got.DifferencePercentage != 25 {
			t.Errorf("DifferencePercentage = %v, want 25", got.DifferencePercentage)
		}
		if !got.IsOverBudget {
			t.Error("IsOverBudget = false, want true")
		}
	})

	t.Run("under budget", func(t *testing.T) {
		got := BudgetComparison(600, &types.Money{Amount: 800, Currency: "USD"}, rates)
		if got.IsOverBudget {
			t.Error("IsOverBudget = true, want false")
		}
		if got.DifferenceUSD != -200 {
			t.Errorf("DifferenceUSD = %v, want -200", got.DifferenceUSD)
		}
	})

	t.Run("foreign currency normalized", func(t *testing.T) {
		got := BudgetComparison(1000, &types.Money{Amount: 920, Currency: "EUR"}, rates)
		if math.Abs(got.BudgetAmountUSD-1000) > 1e-6 {
			t.Errorf("BudgetAmountUSD = %v, want 1000", got.BudgetAmountUSD)
		}
		if got.BudgetCurrency != "EUR" {
			t.Errorf("BudgetCurrency = %q, want EUR", got.BudgetCurrency)
		}
	})

	t.Run("unknown currency degrades to rate 1", func(t *testing.T) {
		got := BudgetComparison(1000, &types.Money{Amount: 800, Currency: "XXX"}, rates)
		if got.BudgetAmountUSD != 800 {
			t.Errorf("BudgetAmountUSD = %v, want 800", got.BudgetAmountUSD)
		}
	})

	t.Run("zero budget guard", func(t *testing.T) {
		got := BudgetComparison(1000, &types.Money{Amount: 0, Currency: "USD"}, rates)
		if got.DifferencePercentage != 0 {
			t.Errorf("DifferencePercentage = %v, want 0 on zero budget", got.DifferencePercentage)
		}
	})
}

func TestSummarize(t *testing.T) {
	rates := currency.NewTable(time.Hour)
	days := []types.DayPlan{
		{Day: 1, Activities: []types.Activity{{Title: "Hotel check-in", CostUSD: 300}}},
		{Day: 2, Activities: []types.Activity{{Title: "Dinner", CostUSD: 100}}},
	}

	s := Summarize(days, &types.Money{Amount: 500, Currency: "USD"}, rates)
	if s.TotalCostUSD != 400 {
		t.Errorf("TotalCostUSD = %v, want 400", s.TotalCostUSD)
	}
	if s.DailyAverageCostUSD != 200 {
		t.Errorf("DailyAverageCostUSD = %v, want 200", s.DailyAverageCostUSD)
	}
	if s.BudgetComparisonUSD == nil || s.BudgetComparisonUSD.IsOverBudget {
		t.Errorf("unexpected budget comparison: %+v", s.BudgetComparisonUSD)
	}

	noBudget := Summarize(days, nil, rates)
	if noBudget.BudgetComparisonUSD != nil {
		t.Error("expected no budget comparison without a budget")
	}
}
