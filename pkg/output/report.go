// Package output provides utilities for formatting and displaying simulation
// results.
package output

import (
	"strings"

	"github.com/insurewise/agency-growth/internal/comparison"
	"github.com/insurewise/agency-growth/internal/optimizer"
	"github.com/insurewise/agency-growth/internal/simulation"
	"github.com/insurewise/agency-growth/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NoResultsMessage is returned by GenerateReport for an empty scenario.
const NoResultsMessage = "No simulation results available.\n"

// GenerateReport renders a scenario's aggregate statistics as human-readable
// text: the final month snapshot, total and average profit, and average
// funnel and cost figures. Pure formatting; an empty scenario yields
// NoResultsMessage.
func GenerateReport(name string, scenario simulation.Scenario) string {
	final, ok := scenario.Final()
	if !ok {
		return NoResultsMessage
	}

	p := message.NewPrinter(language.English)
	months := float64(len(scenario))

	var leads, bindRate, newPolicies, leadCosts, staffCosts, systemCosts float64
	for _, record := range scenario {
		leads += record.Leads
		bindRate += record.EffectiveBindRate
		newPolicies += record.NewPolicies
		leadCosts += record.LeadCosts
		staffCosts += record.StaffCosts
		systemCosts += record.SystemCosts
	}

	var b strings.Builder
	b.WriteString(p.Sprintf("--- Growth report for scenario %s (%d months) ---\n", name, len(scenario)))
	b.WriteString(p.Sprintf("Final policies in force:   %.1f\n", final.PoliciesEnd))
	b.WriteString(p.Sprintf("Final monthly net profit:  %s\n", format.Currency(final.NetProfit)))
	b.WriteString(p.Sprintf("Total net profit:          %s\n", format.Currency(scenario.TotalNetProfit())))
	b.WriteString(p.Sprintf("Average monthly profit:    %s\n", format.Currency(scenario.TotalNetProfit()/months)))
	b.WriteString(p.Sprintf("Total new policies:        %.1f\n", scenario.TotalNewPolicies()))
	b.WriteString(p.Sprintf("Average leads per month:   %.1f\n", leads/months))
	b.WriteString(p.Sprintf("Average effective bind:    %s\n", format.Percent(bindRate/months*100)))
	b.WriteString(p.Sprintf("Average new policies/mo:   %.1f\n", newPolicies/months))
	b.WriteString(p.Sprintf("Average lead costs:        %s\n", format.Currency(leadCosts/months)))
	b.WriteString(p.Sprintf("Average staff costs:       %s\n", format.Currency(staffCosts/months)))
	b.WriteString(p.Sprintf("Average system costs:      %s\n", format.Currency(systemCosts/months)))
	return b.String()
}

// ComparisonSummary renders the incremental comparison of a test scenario
// over its baseline.
func ComparisonSummary(result comparison.Result) string {
	p := message.NewPrinter(language.English)
	var b strings.Builder
	b.WriteString("--- Comparison vs baseline ---\n")
	b.WriteString(p.Sprintf("Total incremental profit:  %s\n", format.Currency(result.TotalIncrementalProfit)))
	b.WriteString(p.Sprintf("Total incremental cost:    %s\n", format.Currency(result.TotalIncrementalCost)))
	b.WriteString(p.Sprintf("ROI:                       %s\n", format.Percent(result.ROIPercent)))
	if result.PaybackMonth > 0 {
		b.WriteString(p.Sprintf("Payback month:             %d\n", result.PaybackMonth))
	} else {
		b.WriteString("Payback month:             not reached within horizon\n")
	}
	b.WriteString(p.Sprintf("Policy growth:             %.1f (%s)\n", result.PolicyGrowth, format.Percent(result.PolicyGrowthPercent)))
	return b.String()
}

// OptimizationSummary renders the optimizer's best candidate and its
// comparison.
func OptimizationSummary(result *optimizer.Result) string {
	if result == nil {
		return "No optimization result available.\n"
	}
	p := message.NewPrinter(language.English)
	var b strings.Builder
	b.WriteString("--- Optimal investment plan ---\n")
	b.WriteString(p.Sprintf("Additional lead spend:     %s/mo\n", format.Currency(result.Best.AdditionalSpend)))
	b.WriteString(p.Sprintf("Additional staff:          %.1f FTE\n", result.Best.AdditionalStaffFTE))
	b.WriteString(p.Sprintf("Concierge system:          %t\n", result.Best.Concierge))
	b.WriteString(p.Sprintf("Newsletter system:         %t\n", result.Best.Newsletter))
	b.WriteString(p.Sprintf("Additional monthly cost:   %s\n", format.Currency(result.AdditionalCost)))
	b.WriteString(p.Sprintf("Scenarios evaluated:       %d\n", result.ScenariosEvaluated))
	b.WriteString(ComparisonSummary(result.Comparison))
	return b.String()
}
