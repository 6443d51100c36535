package types

// TripRequest is the inbound generation request as posted by the client.
// Zero values on the optional numeric fields mean "not supplied"; the request
// validator persists the resolved duration back onto Duration when it was
// only implicit in the date range.
type TripRequest struct {
	Destination    string   `json:"destination"`
	From           string   `json:"from,omitempty"` // YYYY-MM-DD
	To             string   `json:"to,omitempty"`   // YYYY-MM-DD
	Duration       int      `json:"duration,omitempty"`
	NumberOfPeople int      `json:"numberOfPeople,omitempty"`
	BudgetAmount   float64  `json:"budgetAmount,omitempty"`
	BudgetCurrency string   `json:"budgetCurrency,omitempty"`
	Interests      []string `json:"interests,omitempty"`
	MustSee        []string `json:"mustSee,omitempty"`
	Activities     []string `json:"activities,omitempty"`
	CustomRequest  string   `json:"customRequest,omitempty"`
}

// Budget returns the requested budget as Money, or nil when none was
// supplied. A missing currency defaults to USD.
func (r *TripRequest) Budget() *Money {
	if r.BudgetAmount <= 0 {
		return nil
	}
	cur := r.BudgetCurrency
	if cur == "" {
		cur = "USD"
	}
	return &Money{Amount: r.BudgetAmount, Currency: cur}
}

// Activity is a single itinerary entry as produced by the provider.
type Activity struct {
	Time            string  `json:"time"` // 24-hour "HH:MM"
	Title           string  `json:"title"`
	Details         string  `json:"details"`
	DurationMinutes float64 `json:"durationMinutes,omitempty"`
	CostUSD         float64 `json:"costUSD,omitempty"`
}

// DayPlan groups the activities of one calendar day. DailyCostUSD is always
// recomputed server-side, never trusted from upstream.
type DayPlan struct {
	Day          int        `json:"day"`
	Date         string     `json:"date"`
	Activities   []Activity `json:"activities"`
	DailyCostUSD float64    `json:"dailyCostUSD"`
}

// CostBreakdown buckets the trip total by activity category. The five
// buckets always sum to the trip total.
type CostBreakdown struct {
	Accommodation  float64 `json:"accommodation"`
	Food           float64 `json:"food"`
	Activities     float64 `json:"activities"`
	Transportation float64 `json:"transportation"`
	Other          float64 `json:"other"`
}

// BudgetComparison relates the derived trip total to the user's budget,
// normalized to USD.
type BudgetComparison struct {
	BudgetAmount         float64 `json:"budgetAmount"`
	BudgetCurrency       string  `json:"budgetCurrency"`
	BudgetAmountUSD      float64 `json:"budgetAmountUSD"`
	DifferenceUSD        float64 `json:"differenceUSD"`
	DifferencePercentage float64 `json:"differencePercentage"`
	IsOverBudget         bool    `json:"isOverBudget"`
}

// CostSummary is the derived cost annotation for a whole itinerary.
type CostSummary struct {
	TotalCostUSD        float64           `json:"totalCostUSD"`
	DailyAverageCostUSD float64           `json:"dailyAverageCostUSD"`
	CostBreakdown       CostBreakdown     `json:"costBreakdown"`
	BudgetComparisonUSD *BudgetComparison `json:"budgetComparisonUSD,omitempty"`
}

// GenerationResult is the success payload handed to the rendering
// collaborator verbatim.
type GenerationResult struct {
	Itinerary      []DayPlan   `json:"itinerary"`
	PackingList    []string    `json:"packing_list"`
	CostSummary    CostSummary `json:"costSummary"`
	NumberOfPeople int         `json:"numberOfPeople"`
}
