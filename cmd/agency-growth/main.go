package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/insurewise/agency-growth/internal/comparison"
	"github.com/insurewise/agency-growth/internal/config"
	"github.com/insurewise/agency-growth/internal/optimizer"
	"github.com/insurewise/agency-growth/internal/simulation"
	"github.com/insurewise/agency-growth/pkg/constants"
	"github.com/insurewise/agency-growth/pkg/output"
	"github.com/insurewise/agency-growth/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, report")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	optimizeFlag := flag.Bool("optimize", false, "run the investment optimizer after the scenario")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Strict construction-time validation; the error lists every violated
	// constraint at once.
	params, err := conf.ToSimulationParameters()
	if err != nil {
		logger.Fatal("invalid agency parameters",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	startMonth := conf.Simulation.StartMonth
	if startMonth == "" {
		startMonth = time.Now().Format(config.DateTimeLayout)
	}

	engine := simulation.NewEngine(logger, params)
	baseline := engine.RunBaseline(conf.Simulation.Months)
	scenario := engine.RunScenario(conf.ToScenarioSpec())
	result := comparison.Compare(baseline, scenario)

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat("configured", startMonth, scenario)
		fmt.Print(output.ComparisonSummary(result))
	case constants.OutputFormatCSV:
		output.CsvFormat(startMonth, scenario)
	case constants.OutputFormatReport:
		fmt.Print(output.GenerateReport("configured", scenario))
		fmt.Print(output.ComparisonSummary(result))
	}

	if *optimizeFlag || conf.Optimizer.Enabled {
		runner, err := optimizer.NewRunner(logger, engine)
		if err != nil {
			logger.Fatal("failed to construct optimizer",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		best, err := runner.Optimize(conf.ToOptimizerSpec())
		if err != nil {
			logger.Fatal("optimization failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fmt.Print(output.OptimizationSummary(best))
	}
}
