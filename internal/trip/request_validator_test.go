package trip

import (
	"strings"
	"testing"

	"tripgen/internal/types"
)

func hasFinding(findings []string, substr string) bool {
	for _, f := range findings {
		if strings.Contains(f, substr) {
			return true
		}
	}
	return false
}

func TestValidateRequestErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     types.TripRequest
		wantErr string
	}{
		{"missing destination", types.TripRequest{Duration: 3}, "destination is required"},
		{"blank destination", types.TripRequest{Destination: "   ", Duration: 3}, "destination is required"},
		{"no dates or duration", types.TripRequest{Destination: "Kyoto"}, "must specify dates or duration"},
		{"negative people", types.TripRequest{Destination: "Kyoto", Duration: 3, NumberOfPeople: -1}, "number of people must be at least 1"},
		{"negative budget", types.TripRequest{Destination: "Kyoto", Duration: 3, BudgetAmount: -10}, "budget amount must be a positive number"},
		{"bad currency code", types.TripRequest{Destination: "Kyoto", Duration: 3, BudgetAmount: 500, BudgetCurrency: "eur"}, "budget currency must be a 3-letter uppercase code"},
		{"bad date format", types.TripRequest{Destination: "Kyoto", From: "05/01/2026", To: "2026-05-03"}, "dates must use the YYYY-MM-DD format"},
		{"end before start", types.TripRequest{Destination: "Kyoto", From: "2026-05-03", To: "2026-05-01"}, "end date must not be before start date"},
		{"duration too long", types.TripRequest{Destination: "Kyoto", Duration: 400}, "duration must be between 1 and 365 days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateRequest(&tt.req)
			if v.Valid {
				t.Fatalf("request should be invalid, got %+v", v)
			}
			if !hasFinding(v.Errors, tt.wantErr) {
				t.Errorf("errors %v missing %q", v.Errors, tt.wantErr)
			}
		})
	}
}

func TestValidateRequestDurationFromDates(t *testing.T) {
	req := types.TripRequest{Destination: "Kyoto", From: "2026-05-01", To: "2026-05-03"}
	v := ValidateRequest(&req)
	if !v.Valid {
		t.Fatalf("unexpected errors: %v", v.Errors)
	}
	// Both endpoints count: May 1 through May 3 is a 3-day trip.
	if req.Duration != 3 {
		t.Errorf("Duration = %d, want 3", req.Duration)
	}
}

func TestValidateRequestSameDayTrip(t *testing.T) {
	req := types.TripRequest{Destination: "Kyoto", From: "2026-05-01", To: "2026-05-01"}
	v := ValidateRequest(&req)
	if !v.Valid {
		t.Fatalf("unexpected errors: %v", v.Errors)
	}
	if req.Duration != 1 {
		t.Errorf("Duration = %d, want 1", req.Duration)
	}
}

func TestValidateRequestDateRangeWinsOverDuration(t *testing.T) {
	req := types.TripRequest{Destination: "Kyoto", From: "2026-05-01", To: "2026-05-03", Duration: 7}
	v := ValidateRequest(&req)
	if !v.Valid {
		t.Fatalf("unexpected errors: %v", v.Errors)
	}
	if req.Duration != 3 {
		t.Errorf("Duration = %d, want date-derived 3", req.Duration)
	}
	if !hasFinding(v.Warnings, "using the date-derived value") {
		t.Errorf("warnings %v missing disagreement notice", v.Warnings)
	}
}

func TestValidateRequestWarnings(t *testing.T) {
	tests := []struct {
		name string
		req  types.TripRequest
		want string
	}{
		{"long trip", types.TripRequest{Destination: "Kyoto", Duration: 45}, "less detailed plan"},
		{"large party", types.TripRequest{Destination: "Kyoto", Duration: 3, NumberOfPeople: 25}, "unusually large"},
		{"low budget", types.TripRequest{Destination: "Kyoto", Duration: 3, BudgetAmount: 20}, "unusually low"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateRequest(&tt.req)
			if !v.Valid {
				t.Fatalf("warnings must not fail validation: %v", v.Errors)
			}
			if !hasFinding(v.Warnings, tt.want) {
				t.Errorf("warnings %v missing %q", v.Warnings, tt.want)
			}
		})
	}
}

func TestValidateRequestMinimalValid(t *testing.T) {
	req := types.TripRequest{Destination: "Kyoto", Duration: 5}
	v := ValidateRequest(&req)
	if !v.Valid || len(v.Errors) != 0 || len(v.Warnings) != 0 {
		t.Errorf("minimal request should pass cleanly, got %+v", v)
	}
}
