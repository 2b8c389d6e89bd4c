package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/governos/roi-calculator/internal/config"
	"github.com/governos/roi-calculator/internal/engine"
	"github.com/governos/roi-calculator/internal/sensitivity"
	"github.com/governos/roi-calculator/pkg/constants"
	"github.com/governos/roi-calculator/pkg/format"
	"github.com/governos/roi-calculator/pkg/output"
	"github.com/governos/roi-calculator/pkg/sharelink"
	"github.com/governos/roi-calculator/pkg/validation"
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

		// Verify the file is writable before handing it to zap
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
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	emitShare := flag.Bool("share", false, "print a shareable assumption token after the results")
	fromShare := flag.String("from-share", "", "load assumptions from a share token instead of the config file")
	runSensitivity := flag.Bool("sensitivity", false, "append a true per-driver sensitivity sweep to the results")
	flag.Parse()

	conf, err := loadAssumptions(*configLocation, *fromShare)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration\", \"error\": \"%v\"}\n", err)
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

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate assumptions and display any warnings; warnings never block
	// computation.
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Assumption warning: "+warning,
			zap.String("op", "main"),
		)
	}

	result := engine.Derive(conf.Assumptions)
	logger.Debug("projection derived",
		zap.String("op", "main"),
		zap.Int("quarters", len(result.Cashflows)),
		zap.Float64("totalAnnualBenefit", result.Summary.TotalAnnualBenefit),
	)

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(result)
	case constants.OutputFormatCSV:
		output.CsvFormat(result)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(result); err != nil {
			logger.Fatal("failed to render projection",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	if *runSensitivity && outputFormat == constants.OutputFormatPretty {
		fmt.Printf("\n--- NPV sensitivity (re-evaluated per driver) ---\n")
		for _, row := range sensitivity.NewRunner(logger, conf.Assumptions).Run() {
			fmt.Printf("%-26s | %s .. %s\n", row.Driver,
				format.Currency(conf.Profile.Currency, row.LowNPV),
				format.Currency(conf.Profile.Currency, row.HighNPV))
		}
	}

	if *emitShare {
		token, err := sharelink.Encode(conf.Assumptions)
		if err != nil {
			logger.Fatal("failed to encode share token",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fmt.Printf("\nShare token: %s\n", token)
	}
}

// loadAssumptions resolves the assumption record either from a share token
// or from the YAML config file. Token-supplied records still pick up
// logging and output preferences from defaults.
func loadAssumptions(configLocation, fromShare string) (*config.Configuration, error) {
	if fromShare != "" {
		assumptions, err := sharelink.Decode(fromShare)
		if err != nil {
			return nil, err
		}
		conf := config.DefaultConfiguration()
		conf.Assumptions = assumptions
		return conf, nil
	}
	return config.LoadConfiguration(configLocation)
}
