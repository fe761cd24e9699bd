// Package optimizer searches lever combinations for the best return on
// additional monthly investment.
package optimizer

import (
	"fmt"

	"github.com/insurewise/agency-growth/internal/comparison"
	"github.com/insurewise/agency-growth/internal/simulation"
	"github.com/insurewise/agency-growth/pkg/constants"
	"github.com/insurewise/agency-growth/pkg/mathutil"
	"go.uber.org/zap"
)

// DefaultStaffOptions is the candidate set of additional staff FTE the grid
// search evaluates.
var DefaultStaffOptions = []float64{0, 0.5, 1.0, 1.5, 2.0}

// Candidate is one lever combination evaluated by the grid search.
type Candidate struct {
	AdditionalSpend    float64
	AdditionalStaffFTE float64
	Concierge          bool
	Newsletter         bool
}

// Spec bounds the grid search.
type Spec struct {
	Months             int
	MaxAdditionalSpend float64

	// SpendIncrement is the grid step for additional lead spend; defaults to
	// constants.DefaultSpendIncrement when zero or negative.
	SpendIncrement float64

	// StaffOptions overrides DefaultStaffOptions when non-empty.
	StaffOptions []float64
}

// Result is the best candidate found, its comparison against the baseline,
// and how many scenarios the search actually evaluated.
type Result struct {
	Best               Candidate
	Comparison         comparison.Result
	AdditionalCost     float64
	ScenariosEvaluated int
}

// Runner drives the grid search against one engine.
type Runner struct {
	logger *zap.Logger
	engine *simulation.Engine
}

// NewRunner constructs a Runner for the provided engine.
func NewRunner(logger *zap.Logger, engine *simulation.Engine) (*Runner, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger, engine: engine}, nil
}

// Optimize exhaustively evaluates every (additional spend, additional staff,
// system toggles) combination whose total additional monthly cost fits the
// budget, and returns the candidate with the highest ROI against the
// baseline. Candidates over budget are skipped without being simulated.
//
// Ties on ROI are broken independently of iteration order: the cheaper
// candidate wins, and at equal cost the one adding less staff wins.
func (r *Runner) Optimize(spec Spec) (*Result, error) {
	months := spec.Months
	if months < 0 {
		months = 0
	}
	maxSpend := mathutil.ClampMin(spec.MaxAdditionalSpend, 0)
	increment := spec.SpendIncrement
	if increment <= 0 {
		increment = constants.DefaultSpendIncrement
	}
	staffOptions := spec.StaffOptions
	if len(staffOptions) == 0 {
		staffOptions = DefaultStaffOptions
	}

	params := r.engine.Params()
	baseline := r.engine.RunBaseline(months)

	var best *Result
	evaluated := 0
	skipped := 0

	// Epsilon keeps inexact budget/increment ratios (e.g. 0.3/0.1) from
	// truncating away the top spend step.
	spendSteps := int(maxSpend/increment + gridEpsilon)
	for step := 0; step <= spendSteps; step++ {
		spend := float64(step) * increment
		for _, staff := range staffOptions {
			for _, concierge := range []bool{false, true} {
				for _, newsletter := range []bool{false, true} {
					cost := spend + staff*params.StaffMonthlyCostPerFTE
					if concierge {
						cost += params.Concierge.MonthlyCost
					}
					if newsletter {
						cost += params.Newsletter.MonthlyCost
					}
					if cost > maxSpend+gridEpsilon {
						skipped++
						continue
					}

					scenario := r.engine.RunScenario(simulation.ScenarioSpec{
						Months:             months,
						LeadSpendMonthly:   params.BaselineLeadSpend + spend,
						AdditionalStaffFTE: staff,
						Concierge:          concierge,
						Newsletter:         newsletter,
					})
					evaluated++

					candidate := &Result{
						Best: Candidate{
							AdditionalSpend:    spend,
							AdditionalStaffFTE: staff,
							Concierge:          concierge,
							Newsletter:         newsletter,
						},
						Comparison:     comparison.Compare(baseline, scenario),
						AdditionalCost: cost,
					}
					if betterThan(candidate, best) {
						best = candidate
					}
				}
			}
		}
	}

	if best == nil {
		return nil, fmt.Errorf("no candidate fits within the additional monthly budget %.2f", maxSpend)
	}
	best.ScenariosEvaluated = evaluated

	r.logger.Info("optimizer selected candidate",
		zap.String("op", "optimizer.Optimize"),
		zap.Float64("additionalSpend", best.Best.AdditionalSpend),
		zap.Float64("additionalStaffFte", best.Best.AdditionalStaffFTE),
		zap.Bool("concierge", best.Best.Concierge),
		zap.Bool("newsletter", best.Best.Newsletter),
		zap.Float64("additionalCost", best.AdditionalCost),
		zap.Float64("roiPercent", best.Comparison.ROIPercent),
		zap.Int("evaluated", evaluated),
		zap.Int("skippedOverBudget", skipped),
	)

	return best, nil
}

const gridEpsilon = 1e-9

func betterThan(candidate, best *Result) bool {
	if best == nil {
		return true
	}
	if candidate.Comparison.ROIPercent > best.Comparison.ROIPercent+gridEpsilon {
		return true
	}
	if candidate.Comparison.ROIPercent < best.Comparison.ROIPercent-gridEpsilon {
		return false
	}
	if candidate.AdditionalCost < best.AdditionalCost-gridEpsilon {
		return true
	}
	if candidate.AdditionalCost > best.AdditionalCost+gridEpsilon {
		return false
	}
	return candidate.Best.AdditionalStaffFTE < best.Best.AdditionalStaffFTE
}
