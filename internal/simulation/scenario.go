package simulation

import (
	"github.com/insurewise/agency-growth/pkg/mathutil"
	"go.uber.org/zap"
)

// Scenario is an ordered sequence of monthly records, one per simulated
// month. Each record's PoliciesStart equals the previous record's
// PoliciesEnd.
type Scenario []MonthRecord

// Final returns the last record of the scenario and whether one exists.
func (s Scenario) Final() (MonthRecord, bool) {
	if len(s) == 0 {
		return MonthRecord{}, false
	}
	return s[len(s)-1], true
}

// TotalNetProfit sums net profit across the whole scenario.
func (s Scenario) TotalNetProfit() float64 {
	total := 0.0
	for _, record := range s {
		total += record.NetProfit
	}
	return total
}

// TotalCosts sums total costs across the whole scenario.
func (s Scenario) TotalCosts() float64 {
	total := 0.0
	for _, record := range s {
		total += record.TotalCosts
	}
	return total
}

// TotalNewPolicies sums newly acquired policies across the whole scenario.
func (s Scenario) TotalNewPolicies() float64 {
	total := 0.0
	for _, record := range s {
		total += record.NewPolicies
	}
	return total
}

// ScenarioSpec describes the levers held constant across a scenario run.
type ScenarioSpec struct {
	Months             int
	LeadSpendMonthly   float64
	AdditionalStaffFTE float64
	Concierge          bool
	Newsletter         bool

	// StartingPolicies overrides the parameter set's current policy count
	// when non-nil.
	StartingPolicies *float64
}

// Engine runs growth scenarios against a validated parameter set. The
// parameter set is copied at construction and never mutated, so one engine
// may serve any number of runs.
type Engine struct {
	logger *zap.Logger
	params Parameters
}

// NewEngine creates a scenario engine with the given logger. If logger is
// nil, it will use a no-op logger to prevent panics.
func NewEngine(logger *zap.Logger, params Parameters) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger, params: params}
}

// Params returns the engine's parameter set.
func (e *Engine) Params() Parameters {
	return e.params
}

// RunScenario simulates the spec's levers month over month, threading each
// month's ending policy count into the next month's start. Months is clamped
// to zero or more; zero months yields an empty scenario.
func (e *Engine) RunScenario(spec ScenarioSpec) Scenario {
	months := spec.Months
	if months < 0 {
		months = 0
	}
	leadSpend := mathutil.ClampMin(spec.LeadSpendMonthly, 0)
	staffFTE := e.params.CurrentStaffFTE + mathutil.ClampMin(spec.AdditionalStaffFTE, 0)

	policies := e.params.CurrentPolicies
	if spec.StartingPolicies != nil {
		policies = mathutil.ClampMin(*spec.StartingPolicies, 0)
	}

	e.logger.Debug("running scenario",
		zap.String("op", "simulation.RunScenario"),
		zap.Int("months", months),
		zap.Float64("leadSpendMonthly", leadSpend),
		zap.Float64("staffFte", staffFTE),
		zap.Bool("concierge", spec.Concierge),
		zap.Bool("newsletter", spec.Newsletter),
		zap.Float64("startingPolicies", policies),
	)

	scenario := make(Scenario, 0, months)
	for month := 1; month <= months; month++ {
		record := SimulateMonth(e.params, MonthInputs{
			Month:         month,
			PoliciesStart: policies,
			LeadSpend:     leadSpend,
			StaffFTE:      staffFTE,
			Concierge:     spec.Concierge,
			Newsletter:    spec.Newsletter,
		})
		scenario = append(scenario, record)
		policies = record.PoliciesEnd
	}
	return scenario
}

// RunBaseline runs the do-nothing counterfactual: current staff at the
// baseline lead spend with no retention systems. Every comparison is
// measured against this run.
func (e *Engine) RunBaseline(months int) Scenario {
	return e.RunScenario(ScenarioSpec{
		Months:           months,
		LeadSpendMonthly: e.params.BaselineLeadSpend,
	})
}
