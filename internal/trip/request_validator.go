package trip

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"tripgen/internal/types"
)

const (
	minDurationDays     = 1
	maxDurationDays     = 365
	longTripWarningDays = 30
	largePartyWarning   = 20
	lowBudgetWarning    = 50

	dateLayout = "2006-01-02"
)

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// Validation is the outcome of request validation. Findings are returned as
// data; nothing here panics or throws.
type Validation struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// ValidateRequest checks the inbound trip request for completeness and
// business-rule violations. Pure except for one documented side effect: the
// resolved duration is persisted back onto the request when it was only
// implicit in the date range.
func ValidateRequest(req *types.TripRequest) Validation {
	var v Validation

	if strings.TrimSpace(req.Destination) == "" {
		v.Errors = append(v.Errors, "destination is required")
	}

	if req.NumberOfPeople < 0 {
		v.Errors = append(v.Errors, "number of people must be at least 1")
	} else if req.NumberOfPeople > largePartyWarning {
		v.Warnings = append(v.Warnings, fmt.Sprintf("party size %d is unusually large", req.NumberOfPeople))
	}

	if req.BudgetAmount < 0 {
		v.Errors = append(v.Errors, "budget amount must be a positive number")
	} else if req.BudgetAmount > 0 && req.BudgetAmount < lowBudgetWarning {
		v.Warnings = append(v.Warnings, fmt.Sprintf("budget %.2f is unusually low for a trip", req.BudgetAmount))
	}

	if req.BudgetCurrency != "" && !currencyCodeRe.MatchString(req.BudgetCurrency) {
		v.Errors = append(v.Errors, "budget currency must be a 3-letter uppercase code")
	}

	resolveDuration(req, &v)

	v.Valid = len(v.Errors) == 0
	return v
}

// resolveDuration applies the precedence rule: a valid date range always wins
// over an explicit duration, and a disagreement between the two is a warning,
// never an error.
func resolveDuration(req *types.TripRequest, v *Validation) {
	hasDates := req.From != "" || req.To != ""

	var derived int
	if hasDates {
		from, errFrom := time.Parse(dateLayout, req.From)
		to, errTo := time.Parse(dateLayout, req.To)
		switch {
		case errFrom != nil || errTo != nil:
			v.Errors = append(v.Errors, "dates must use the YYYY-MM-DD format")
		case to.Before(from):
			v.Errors = append(v.Errors, "end date must not be before start date")
		default:
			// Inclusive of both endpoints: from == to is a one-day trip.
			derived = int(to.Sub(from).Hours()/24) + 1
		}
	}

	switch {
	case derived > 0 && req.Duration > 0 && derived != req.Duration:
		v.Warnings = append(v.Warnings, fmt.Sprintf(
			"date range implies %d days but duration says %d; using the date-derived value", derived, req.Duration))
		req.Duration = derived
	case derived > 0:
		req.Duration = derived
	case req.Duration == 0 && !hasDates:
		v.Errors = append(v.Errors, "must specify dates or duration")
	}

	if req.Duration != 0 && (req.Duration < minDurationDays || req.Duration > maxDurationDays) {
		v.Errors = append(v.Errors, fmt.Sprintf("duration must be between %d and %d days", minDurationDays, maxDurationDays))
	} else if req.Duration > longTripWarningDays {
		v.Warnings = append(v.Warnings, fmt.Sprintf("trips longer than %d days may produce a less detailed plan", longTripWarningDays))
	}
}
