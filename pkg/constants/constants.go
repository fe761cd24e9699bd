// Package constants provides shared constants for the agency-growth application.
package constants

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Simulation policy constants
const (
	// AnnualRetentionCap bounds stacked annual retention; no combination of
	// retention systems may push annual retention above this value.
	AnnualRetentionCap = 0.95

	// CapacityPenaltyFloor is the lowest multiplier staff overload may apply
	// to the base conversion rate.
	CapacityPenaltyFloor = 0.5

	// CapacityPenaltyScale scales the excess capacity ratio into a conversion
	// penalty together with the configured efficiency penalty rate.
	CapacityPenaltyScale = 10.0

	// RetentionBoostMax is the largest retention boost a single retention
	// system may claim.
	RetentionBoostMax = 0.2
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable table output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatReport is the aggregate text report output format
	OutputFormatReport = "report"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Optimizer defaults
const (
	// DefaultSpendIncrement is the grid step for additional monthly lead
	// spend when the configuration does not specify one.
	DefaultSpendIncrement = 250.0
)
