// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/insurewise/agency-growth/pkg/constants"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all configuration for agency-growth.
type Configuration struct {
	Parameters Parameters
	Simulation Simulation
	Optimizer  Optimizer     `yaml:"optimizer,omitempty"`
	Logging    LoggingConfig `yaml:"logging,omitempty"`
	Output     OutputConfig  `yaml:"output,omitempty"`
}

// Parameters holds the raw agency business assumptions as they appear in the
// config file. They are converted into a validated simulation parameter set
// by ToSimulationParameters.
type Parameters struct {
	CurrentPolicies        float64
	CurrentStaffFte        float64
	BaselineLeadSpend      float64
	LeadCostPerLead        float64
	ContactRate            float64
	QuoteRate              float64
	BindRate               float64
	AvgPremiumAnnual       float64
	CommissionRate         float64
	AnnualRetentionBase    float64
	MonthlyRetentionBase   float64 `yaml:"monthlyRetentionBase,omitempty"`
	StaffMonthlyCostPerFte float64
	MaxLeadsPerFtePerMonth float64
	EfficiencyPenaltyRate  float64
	Concierge              RetentionSystem `yaml:"concierge,omitempty"`
	Newsletter             RetentionSystem `yaml:"newsletter,omitempty"`
}

// RetentionSystem holds one optional retention add-on's boost and flat cost.
type RetentionSystem struct {
	RetentionBoost float64
	MonthlyCost    float64
}

// Simulation holds the scenario levers for a single configured run.
type Simulation struct {
	StartMonth         string `yaml:"startMonth,omitempty"` // DateTimeLayout; labels output timelines
	Months             int
	LeadSpendMonthly   float64
	AdditionalStaffFte float64
	Concierge          bool
	Newsletter         bool
	StartingPolicies   *float64 `yaml:"startingPolicies,omitempty"`
}

// Optimizer holds the grid-search bounds for the investment optimizer.
type Optimizer struct {
	Enabled            bool
	MaxAdditionalSpend float64
	SpendIncrement     float64   `yaml:"spendIncrement,omitempty"`
	StaffOptions       []float64 `yaml:"staffOptions,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, report
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}
