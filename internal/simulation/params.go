// Package simulation implements the agency growth engine: the validated
// business parameter set, the monthly growth recurrence, and the scenario
// runner that drives it across a horizon.
package simulation

import (
	"fmt"
	"math"

	"github.com/insurewise/agency-growth/pkg/constants"
	"github.com/insurewise/agency-growth/pkg/validation"
	"go.uber.org/multierr"
)

// RetentionSystem describes an optional retention add-on (e.g. a concierge
// program or a client newsletter) that boosts annual retention for a flat
// monthly cost.
type RetentionSystem struct {
	Name           string
	RetentionBoost float64
	MonthlyCost    float64
}

// Parameters holds every business assumption the simulation runs on.
// Construct via NewParameters, which validates all fields and derives the
// monthly retention base; treat the result as read-only. To change
// assumptions, construct a new Parameters.
type Parameters struct {
	// Identity and scale
	CurrentPolicies   float64
	CurrentStaffFTE   float64
	BaselineLeadSpend float64

	// Lead funnel
	LeadCostPerLead float64
	ContactRate     float64
	QuoteRate       float64
	BindRate        float64

	// Commission economics
	AvgPremiumAnnual float64
	CommissionRate   float64

	// Retention. MonthlyRetentionBase is derived from AnnualRetentionBase
	// when left zero; supply it explicitly only to override the derivation.
	AnnualRetentionBase  float64
	MonthlyRetentionBase float64

	// Staffing capacity
	StaffMonthlyCostPerFTE float64
	MaxLeadsPerFTEPerMonth float64
	EfficiencyPenaltyRate  float64

	// Optional retention systems
	Concierge  RetentionSystem
	Newsletter RetentionSystem
}

// DefaultParameters returns the stock agency assumptions used as a starting
// point for configuration files and tests.
func DefaultParameters() Parameters {
	return Parameters{
		CurrentPolicies:        500,
		CurrentStaffFTE:        2.0,
		BaselineLeadSpend:      1000,
		LeadCostPerLead:        25,
		ContactRate:            0.70,
		QuoteRate:              0.60,
		BindRate:               0.50,
		AvgPremiumAnnual:       1500,
		CommissionRate:         0.12,
		AnnualRetentionBase:    0.85,
		StaffMonthlyCostPerFTE: 5000,
		MaxLeadsPerFTEPerMonth: 150,
		EfficiencyPenaltyRate:  0.05,
		Concierge: RetentionSystem{
			Name:           "concierge",
			RetentionBoost: 0.06,
			MonthlyCost:    800,
		},
		Newsletter: RetentionSystem{
			Name:           "newsletter",
			RetentionBoost: 0.02,
			MonthlyCost:    150,
		},
	}
}

// NewParameters validates the supplied assumptions and fills in the derived
// monthly retention base. Validation is strict: the returned error names
// every violated constraint, not just the first one found.
func NewParameters(p Parameters) (Parameters, error) {
	if err := p.validate(); err != nil {
		return Parameters{}, err
	}
	if p.MonthlyRetentionBase == 0 {
		p.MonthlyRetentionBase = annualToMonthlyRetention(p.AnnualRetentionBase)
	}
	return p, nil
}

func (p Parameters) validate() error {
	err := multierr.Combine(
		validation.NonNegative("currentPolicies", p.CurrentPolicies),
		validation.NonNegative("currentStaffFte", p.CurrentStaffFTE),
		validation.NonNegative("baselineLeadSpend", p.BaselineLeadSpend),
		validation.Positive("leadCostPerLead", p.LeadCostPerLead),
		validation.Probability("contactRate", p.ContactRate),
		validation.Probability("quoteRate", p.QuoteRate),
		validation.Probability("bindRate", p.BindRate),
		validation.NonNegative("avgPremiumAnnual", p.AvgPremiumAnnual),
		validation.Probability("commissionRate", p.CommissionRate),
		validation.Probability("annualRetentionBase", p.AnnualRetentionBase),
		validation.Probability("monthlyRetentionBase", p.MonthlyRetentionBase),
		validation.NonNegative("staffMonthlyCostPerFte", p.StaffMonthlyCostPerFTE),
		validation.Positive("maxLeadsPerFtePerMonth", p.MaxLeadsPerFTEPerMonth),
		validation.NonNegative("efficiencyPenaltyRate", p.EfficiencyPenaltyRate),
		p.Concierge.validate("concierge"),
		p.Newsletter.validate("newsletter"),
	)
	if err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}

func (s RetentionSystem) validate(name string) error {
	return multierr.Combine(
		validation.InRange(name+".retentionBoost", s.RetentionBoost, 0, constants.RetentionBoostMax),
		validation.NonNegative(name+".monthlyCost", s.MonthlyCost),
	)
}

// BaseConversion is the unloaded lead-to-policy conversion rate.
func (p Parameters) BaseConversion() float64 {
	return p.ContactRate * p.QuoteRate * p.BindRate
}

// annualToMonthlyRetention converts an annual retention rate to its monthly
// equivalent. Zero annual retention converts directly to zero.
func annualToMonthlyRetention(annual float64) float64 {
	if annual <= 0 {
		return 0
	}
	return math.Pow(annual, 1.0/float64(constants.MonthsPerYear))
}
