package simulation

import (
	"math"
	"testing"

	"github.com/insurewise/agency-growth/pkg/mathutil"
)

func mustParams(t *testing.T, p Parameters) Parameters {
	t.Helper()
	params, err := NewParameters(p)
	if err != nil {
		t.Fatalf("NewParameters() error = %v", err)
	}
	return params
}

func TestSimulateMonthSeedScenario(t *testing.T) {
	params := mustParams(t, DefaultParameters())

	record := SimulateMonth(params, MonthInputs{
		Month:         1,
		PoliciesStart: 500,
		LeadSpend:     1000,
		StaffFTE:      2.0,
	})

	if !mathutil.WithinTolerance(record.Leads, 40, 1e-9) {
		t.Errorf("Leads = %v, expected 40", record.Leads)
	}
	// 40 leads across 2 FTE is well within the 150/FTE capacity, so the bind
	// rate is the unloaded 0.70*0.60*0.50.
	if !mathutil.WithinTolerance(record.EffectiveBindRate, 0.21, 1e-9) {
		t.Errorf("EffectiveBindRate = %v, expected 0.21", record.EffectiveBindRate)
	}
	if !mathutil.WithinTolerance(record.NewPolicies, 8.4, 1e-9) {
		t.Errorf("NewPolicies = %v, expected 8.4", record.NewPolicies)
	}

	monthlyRetention := math.Pow(0.85, 1.0/12.0)
	expectedRetained := 500 * monthlyRetention
	if !mathutil.WithinTolerance(record.RetainedPolicies, expectedRetained, 1e-9) {
		t.Errorf("RetainedPolicies = %v, expected %v", record.RetainedPolicies, expectedRetained)
	}

	expectedEnd := expectedRetained + 8.4
	if !mathutil.WithinTolerance(record.PoliciesEnd, expectedEnd, 1e-9) {
		t.Errorf("PoliciesEnd = %v, expected %v", record.PoliciesEnd, expectedEnd)
	}

	expectedRevenue := expectedEnd * (1500.0 / 12.0) * 0.12
	if !mathutil.WithinTolerance(record.CommissionRevenue, expectedRevenue, 1e-9) {
		t.Errorf("CommissionRevenue = %v, expected %v", record.CommissionRevenue, expectedRevenue)
	}

	expectedCosts := 1000.0 + 2.0*5000.0
	if !mathutil.WithinTolerance(record.TotalCosts, expectedCosts, 1e-9) {
		t.Errorf("TotalCosts = %v, expected %v", record.TotalCosts, expectedCosts)
	}
	if !mathutil.WithinTolerance(record.NetProfit, expectedRevenue-expectedCosts, 1e-9) {
		t.Errorf("NetProfit = %v, expected %v", record.NetProfit, expectedRevenue-expectedCosts)
	}
}

func TestSimulateMonthZeroStaff(t *testing.T) {
	params := mustParams(t, DefaultParameters())

	for _, spend := range []float64{0, 1000, 100000} {
		record := SimulateMonth(params, MonthInputs{
			Month:         1,
			PoliciesStart: 500,
			LeadSpend:     spend,
			StaffFTE:      0,
		})
		if record.NewPolicies != 0 {
			t.Errorf("NewPolicies = %v with zero staff and spend %v, expected 0", record.NewPolicies, spend)
		}
		if record.EffectiveBindRate != 0 {
			t.Errorf("EffectiveBindRate = %v with zero staff, expected 0", record.EffectiveBindRate)
		}
	}
}

func TestEffectiveBindRateCapacityPenalty(t *testing.T) {
	params := mustParams(t, DefaultParameters())
	base := params.BaseConversion()

	tests := []struct {
		name     string
		leads    float64
		staffFTE float64
		expected float64
	}{
		{name: "Well within capacity", leads: 40, staffFTE: 2, expected: base},
		{name: "Exactly at capacity", leads: 300, staffFTE: 2, expected: base},
		// 450 leads / 2 FTE = 225/FTE, ratio 1.5: penalty 1 - 0.5*0.05*10 = 0.75
		{name: "Moderate overload", leads: 450, staffFTE: 2, expected: base * 0.75},
		// Far past capacity the penalty bottoms out at half the base rate.
		{name: "Extreme overload hits floor", leads: 100000, staffFTE: 2, expected: base * 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := params.EffectiveBindRate(tt.leads, tt.staffFTE)
			if !mathutil.WithinTolerance(got, tt.expected, 1e-12) {
				t.Errorf("EffectiveBindRate(%v, %v) = %v, expected %v", tt.leads, tt.staffFTE, got, tt.expected)
			}
		})
	}
}

func TestEffectiveBindRateNeverBelowHalfBase(t *testing.T) {
	params := mustParams(t, DefaultParameters())
	floor := params.BaseConversion() * 0.5

	for leads := 100.0; leads <= 1e7; leads *= 10 {
		got := params.EffectiveBindRate(leads, 0.5)
		if got < floor-1e-12 {
			t.Errorf("EffectiveBindRate(%v, 0.5) = %v, below floor %v", leads, got, floor)
		}
	}
}

func TestMonthlyRetentionSystemStacking(t *testing.T) {
	params := mustParams(t, DefaultParameters())

	tests := []struct {
		name           string
		concierge      bool
		newsletter     bool
		expectedAnnual float64
	}{
		{name: "No systems", expectedAnnual: 0.85},
		{name: "Concierge only", concierge: true, expectedAnnual: 0.91},
		{name: "Newsletter only", newsletter: true, expectedAnnual: 0.87},
		{name: "Both systems", concierge: true, newsletter: true, expectedAnnual: 0.93},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := params.MonthlyRetention(tt.concierge, tt.newsletter)
			expected := math.Pow(tt.expectedAnnual, 1.0/12.0)
			if !mathutil.WithinTolerance(got, expected, 1e-12) {
				t.Errorf("MonthlyRetention(%t, %t) = %v, expected %v", tt.concierge, tt.newsletter, got, expected)
			}
		})
	}
}

func TestMonthlyRetentionCappedAtNinetyFivePercent(t *testing.T) {
	raw := DefaultParameters()
	raw.AnnualRetentionBase = 0.92
	raw.Concierge.RetentionBoost = 0.06
	raw.Newsletter.RetentionBoost = 0.05
	params := mustParams(t, raw)

	capped := math.Pow(0.95, 1.0/12.0)
	for _, flags := range [][2]bool{{true, false}, {false, true}, {true, true}} {
		got := params.MonthlyRetention(flags[0], flags[1])
		if got > capped+1e-12 {
			t.Errorf("MonthlyRetention(%t, %t) = %v, above cap %v", flags[0], flags[1], got, capped)
		}
	}

	if got := params.MonthlyRetention(true, true); !mathutil.WithinTolerance(got, capped, 1e-12) {
		t.Errorf("MonthlyRetention(true, true) = %v, expected capped %v", got, capped)
	}
}

func TestMonthlyRetentionExplicitOverrideSurvivesInertSystems(t *testing.T) {
	raw := DefaultParameters()
	raw.MonthlyRetentionBase = 0.99
	raw.Concierge.RetentionBoost = 0
	params := mustParams(t, raw)

	// The concierge system contributes no boost, so the explicit monthly base
	// stays in force whether or not it is toggled on.
	for _, concierge := range []bool{false, true} {
		if got := params.MonthlyRetention(concierge, false); got != 0.99 {
			t.Errorf("MonthlyRetention(%t, false) = %v, expected explicit base 0.99", concierge, got)
		}
	}

	// A nonzero boost recomputes from the stacked annual rate and the explicit
	// base no longer applies.
	expected := math.Pow(0.87, 1.0/12.0)
	if got := params.MonthlyRetention(false, true); !mathutil.WithinTolerance(got, expected, 1e-12) {
		t.Errorf("MonthlyRetention(false, true) = %v, expected %v from boosted annual", got, expected)
	}
}

func TestMonthlyRetentionCapAppliesWithoutSystems(t *testing.T) {
	raw := DefaultParameters()
	raw.AnnualRetentionBase = 0.97
	params := mustParams(t, raw)

	capped := math.Pow(0.95, 1.0/12.0)
	if got := params.MonthlyRetention(false, false); !mathutil.WithinTolerance(got, capped, 1e-12) {
		t.Errorf("MonthlyRetention(false, false) = %v, expected capped %v", got, capped)
	}
}

func TestSimulateMonthClampsNegativeInputs(t *testing.T) {
	params := mustParams(t, DefaultParameters())

	record := SimulateMonth(params, MonthInputs{
		Month:         1,
		PoliciesStart: -100,
		LeadSpend:     -500,
		StaffFTE:      -2,
	})

	if record.PoliciesStart != 0 {
		t.Errorf("PoliciesStart = %v, expected clamp to 0", record.PoliciesStart)
	}
	if record.Leads != 0 {
		t.Errorf("Leads = %v, expected 0 from clamped spend", record.Leads)
	}
	if record.StaffFTE != 0 {
		t.Errorf("StaffFTE = %v, expected clamp to 0", record.StaffFTE)
	}
	if record.PoliciesEnd != 0 {
		t.Errorf("PoliciesEnd = %v, expected 0", record.PoliciesEnd)
	}
	if record.TotalCosts != 0 {
		t.Errorf("TotalCosts = %v, expected 0", record.TotalCosts)
	}
}

func TestSimulateMonthSystemCosts(t *testing.T) {
	params := mustParams(t, DefaultParameters())

	record := SimulateMonth(params, MonthInputs{
		Month:         1,
		PoliciesStart: 500,
		LeadSpend:     1000,
		StaffFTE:      2,
		Concierge:     true,
		Newsletter:    true,
	})

	if !mathutil.WithinTolerance(record.SystemCosts, 950, 1e-9) {
		t.Errorf("SystemCosts = %v, expected 950", record.SystemCosts)
	}
	if !record.ConciergeActive || !record.NewsletterActive {
		t.Error("system flags not carried into the record")
	}
}
