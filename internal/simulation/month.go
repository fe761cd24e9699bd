package simulation

import (
	"github.com/insurewise/agency-growth/pkg/constants"
	"github.com/insurewise/agency-growth/pkg/mathutil"
)

// MonthRecord is one month of simulation output. Records are produced fresh
// by SimulateMonth and never mutated afterwards.
type MonthRecord struct {
	Month int

	PoliciesStart    float64
	PoliciesEnd      float64
	NewPolicies      float64
	RetainedPolicies float64

	Leads             float64
	EffectiveBindRate float64
	MonthlyRetention  float64

	CommissionRevenue float64
	LeadCosts         float64
	StaffCosts        float64
	SystemCosts       float64
	TotalCosts        float64
	NetProfit         float64

	LeadSpend        float64
	StaffFTE         float64
	ConciergeActive  bool
	NewsletterActive bool
}

// MonthInputs are the levers applied for a single simulated month. Negative
// numeric inputs are clamped to zero rather than rejected so a long scenario
// sweep never aborts mid-run.
type MonthInputs struct {
	Month         int
	PoliciesStart float64
	LeadSpend     float64
	StaffFTE      float64
	Concierge     bool
	Newsletter    bool
}

// SimulateMonth applies one month of the growth recurrence: leads from spend,
// conversions under the staff capacity penalty, retention of the existing
// book, and the month's commission and cost breakdown. Commission is earned
// on the ending policy count, so a policy bound this month already
// contributes to this month's revenue; the excluded payment-lag model would
// shift that, and this is a known simplification.
func SimulateMonth(p Parameters, in MonthInputs) MonthRecord {
	policiesStart := mathutil.ClampMin(in.PoliciesStart, 0)
	leadSpend := mathutil.ClampMin(in.LeadSpend, 0)
	staffFTE := mathutil.ClampMin(in.StaffFTE, 0)

	var leads float64
	if p.LeadCostPerLead > 0 {
		leads = leadSpend / p.LeadCostPerLead
	}

	effectiveBindRate := p.EffectiveBindRate(leads, staffFTE)
	newPolicies := leads * effectiveBindRate

	monthlyRetention := p.MonthlyRetention(in.Concierge, in.Newsletter)
	retainedPolicies := policiesStart * monthlyRetention
	policiesEnd := retainedPolicies + newPolicies

	commissionRevenue := policiesEnd * (p.AvgPremiumAnnual / constants.MonthsPerYear) * p.CommissionRate

	leadCosts := leadSpend
	staffCosts := staffFTE * p.StaffMonthlyCostPerFTE
	systemCosts := 0.0
	if in.Concierge {
		systemCosts += p.Concierge.MonthlyCost
	}
	if in.Newsletter {
		systemCosts += p.Newsletter.MonthlyCost
	}
	totalCosts := leadCosts + staffCosts + systemCosts

	return MonthRecord{
		Month:             in.Month,
		PoliciesStart:     policiesStart,
		PoliciesEnd:       policiesEnd,
		NewPolicies:       newPolicies,
		RetainedPolicies:  retainedPolicies,
		Leads:             leads,
		EffectiveBindRate: effectiveBindRate,
		MonthlyRetention:  monthlyRetention,
		CommissionRevenue: commissionRevenue,
		LeadCosts:         leadCosts,
		StaffCosts:        staffCosts,
		SystemCosts:       systemCosts,
		TotalCosts:        totalCosts,
		NetProfit:         commissionRevenue - totalCosts,
		LeadSpend:         leadSpend,
		StaffFTE:          staffFTE,
		ConciergeActive:   in.Concierge,
		NewsletterActive:  in.Newsletter,
	}
}

// EffectiveBindRate applies the staff capacity penalty to the base funnel
// conversion. No staff means no conversions regardless of lead volume, and
// overload can reduce conversion to at most half of its unloaded value.
func (p Parameters) EffectiveBindRate(leads, staffFTE float64) float64 {
	if staffFTE <= 0 {
		return 0
	}
	base := p.BaseConversion()

	leadsPerFTE := leads / staffFTE
	var capacityRatio float64
	if p.MaxLeadsPerFTEPerMonth > 0 {
		capacityRatio = leadsPerFTE / p.MaxLeadsPerFTEPerMonth
	}
	if capacityRatio <= 1.0 {
		return base
	}

	excessRatio := capacityRatio - 1.0
	penalty := 1.0 - excessRatio*p.EfficiencyPenaltyRate*constants.CapacityPenaltyScale
	if penalty < constants.CapacityPenaltyFloor {
		penalty = constants.CapacityPenaltyFloor
	}
	return base * penalty
}

// MonthlyRetention stacks the active retention systems onto the annual base,
// caps the stacked annual rate at the retention ceiling, and converts it to a
// monthly rate. The conversion happens per month because the systems can be
// toggled independently of the parameter set. While the active systems
// contribute no boost the parameter-level monthly base stays in force, so an
// explicitly supplied monthly override survives toggling an inert system;
// any nonzero boost (or a base above the cap) recomputes the monthly rate
// from the stacked, capped annual rate.
func (p Parameters) MonthlyRetention(concierge, newsletter bool) float64 {
	boost := 0.0
	if concierge {
		boost += p.Concierge.RetentionBoost
	}
	if newsletter {
		boost += p.Newsletter.RetentionBoost
	}
	if boost == 0 && p.AnnualRetentionBase <= constants.AnnualRetentionCap {
		return p.MonthlyRetentionBase
	}

	annual := p.AnnualRetentionBase + boost
	if annual > constants.AnnualRetentionCap {
		annual = constants.AnnualRetentionCap
	}
	annual = mathutil.Clamp(annual, 0, 1)
	return annualToMonthlyRetention(annual)
}
