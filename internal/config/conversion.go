// Package config defines conversion utilities for configuration objects.
package config

import (
	"github.com/insurewise/agency-growth/internal/optimizer"
	"github.com/insurewise/agency-growth/internal/simulation"
)

// ToSimulationParameters converts the raw config values into a validated
// simulation parameter set. The returned error, when non-nil, names every
// violated constraint.
func (c *Configuration) ToSimulationParameters() (simulation.Parameters, error) {
	p := c.Parameters
	return simulation.NewParameters(simulation.Parameters{
		CurrentPolicies:        p.CurrentPolicies,
		CurrentStaffFTE:        p.CurrentStaffFte,
		BaselineLeadSpend:      p.BaselineLeadSpend,
		LeadCostPerLead:        p.LeadCostPerLead,
		ContactRate:            p.ContactRate,
		QuoteRate:              p.QuoteRate,
		BindRate:               p.BindRate,
		AvgPremiumAnnual:       p.AvgPremiumAnnual,
		CommissionRate:         p.CommissionRate,
		AnnualRetentionBase:    p.AnnualRetentionBase,
		MonthlyRetentionBase:   p.MonthlyRetentionBase,
		StaffMonthlyCostPerFTE: p.StaffMonthlyCostPerFte,
		MaxLeadsPerFTEPerMonth: p.MaxLeadsPerFtePerMonth,
		EfficiencyPenaltyRate:  p.EfficiencyPenaltyRate,
		Concierge: simulation.RetentionSystem{
			Name:           "concierge",
			RetentionBoost: p.Concierge.RetentionBoost,
			MonthlyCost:    p.Concierge.MonthlyCost,
		},
		Newsletter: simulation.RetentionSystem{
			Name:           "newsletter",
			RetentionBoost: p.Newsletter.RetentionBoost,
			MonthlyCost:    p.Newsletter.MonthlyCost,
		},
	})
}

// ToScenarioSpec converts the configured simulation levers into a scenario
// spec for the engine.
func (c *Configuration) ToScenarioSpec() simulation.ScenarioSpec {
	s := c.Simulation
	return simulation.ScenarioSpec{
		Months:             s.Months,
		LeadSpendMonthly:   s.LeadSpendMonthly,
		AdditionalStaffFTE: s.AdditionalStaffFte,
		Concierge:          s.Concierge,
		Newsletter:         s.Newsletter,
		StartingPolicies:   s.StartingPolicies,
	}
}

// ToOptimizerSpec converts the configured optimizer bounds into a grid-search
// spec, reusing the simulation horizon.
func (c *Configuration) ToOptimizerSpec() optimizer.Spec {
	return optimizer.Spec{
		Months:             c.Simulation.Months,
		MaxAdditionalSpend: c.Optimizer.MaxAdditionalSpend,
		SpendIncrement:     c.Optimizer.SpendIncrement,
		StaffOptions:       c.Optimizer.StaffOptions,
	}
}
