package output

import (
	"fmt"
	"strings"

	"github.com/insurewise/agency-growth/internal/simulation"
	"github.com/insurewise/agency-growth/pkg/datetime"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table of
// the scenario's monthly records. Month labels are derived from startMonth;
// when startMonth does not parse, plain month numbers are used instead.
func PrettyFormat(name, startMonth string, scenario simulation.Scenario) {
	p := message.NewPrinter(language.English)
	labels := monthLabels(startMonth, len(scenario))

	fmt.Printf("--- Results for scenario %s ---\n", name)
	fmt.Printf("Month   | Policies  | New     | Leads    | Revenue      | Costs        | Profit\n")
	fmt.Printf("_____   | ________  | ___     | _____    | _______      | _____        | ______\n")
	for i, record := range scenario {
		_, _ = p.Printf("%s | %9.1f | %7.1f | %8.1f | $%11.2f | $%11.2f | $%.2f\n",
			labels[i],
			record.PoliciesEnd,
			record.NewPolicies,
			record.Leads,
			record.CommissionRevenue,
			record.TotalCosts,
			record.NetProfit,
		)
	}
}

// CsvFormat outputs the scenario's monthly records in comma-separated value
// format.
func CsvFormat(startMonth string, scenario simulation.Scenario) {
	labels := monthLabels(startMonth, len(scenario))

	fmt.Printf(`"month","policies_start","policies_end","new_policies","retained_policies","leads","effective_bind_rate","monthly_retention","commission_revenue","lead_costs","staff_costs","system_costs","total_costs","net_profit"`)
	fmt.Printf("\n")
	for i, record := range scenario {
		fmt.Printf(`"%s","%.2f","%.2f","%.2f","%.2f","%.2f","%.4f","%.4f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
			labels[i],
			record.PoliciesStart,
			record.PoliciesEnd,
			record.NewPolicies,
			record.RetainedPolicies,
			record.Leads,
			record.EffectiveBindRate,
			record.MonthlyRetention,
			record.CommissionRevenue,
			record.LeadCosts,
			record.StaffCosts,
			record.SystemCosts,
			record.TotalCosts,
			record.NetProfit,
		)
		fmt.Printf("\n")
	}
}

// monthLabels maps record indexes to calendar month labels, falling back to
// bare month numbers when startMonth is empty or malformed.
func monthLabels(startMonth string, n int) []string {
	if strings.TrimSpace(startMonth) != "" {
		if labels, err := datetime.MonthLabels(startMonth, n); err == nil {
			return labels
		}
	}
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%7d", i+1)
	}
	return labels
}
