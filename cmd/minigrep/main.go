package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/minigrep/internal/application"
	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/logging"
)

var version = "dev"

var lookupEnv = os.LookupEnv

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run parses argv and performs one search. Flags must come before QUERY; a
// query starting with "-" has to follow "--". Help and version return an exit
// code instead of exiting the process.
func run(argv []string, stdout, stderr io.Writer) int {
	// Arguments are taken literally, so "@file" is a query, not an arguments file.
	kingpin.EnableFileExpansion = false

	terminated, exitCode := false, 0
	kingpinApp := kingpin.New("minigrep", "Prints every line of FILENAME containing QUERY. Set CASE_INSENSITIVE to ignore case. Use -- before a QUERY starting with a dash.")
	kingpinApp.Version(version)
	kingpinApp.UsageWriter(stderr)
	kingpinApp.ErrorWriter(stderr)
	kingpinApp.Interspersed(false)
	kingpinApp.Terminate(func(code int) {
		terminated, exitCode = true, code
	})

	configFile := kingpinApp.Flag("config", "Path to YAML or TOML settings file").String()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String()
	logEncoding := kingpinApp.Flag("log-encoding", "Log encoding (json or console)").String()
	var highlightSet bool
	highlight := kingpinApp.Flag("highlight", "Colour matches in printed lines").IsSetByUser(&highlightSet).Bool()
	positional := kingpinApp.Arg("args", "QUERY followed by FILENAME").Strings()

	_, err := kingpinApp.Parse(argv[1:])
	if terminated {
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "Problem parsing arguments: %v\n", err)
		return 1
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	if *logEncoding != "" {
		overrides.LogEncoding = logEncoding
	}

	if highlightSet {
		overrides.Highlight = highlight
	}

	settings, err := config.LoadSettings(overrides)
	if err != nil {
		fmt.Fprintf(stderr, "Problem parsing arguments: %v\n", err)
		return 1
	}

	cfg, err := config.New(append([]string{argv[0]}, *positional...), config.WithLookupEnv(lookupEnv))
	if err != nil {
		fmt.Fprintf(stderr, "Problem parsing arguments: %v\n", err)
		return 1
	}

	logger, err := logging.New(
		logging.WithLevel(settings.LogLevel),
		logging.WithEncoding(settings.LogEncoding),
	)
	if err != nil {
		fmt.Fprintf(stderr, "failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := application.New(cfg, logger,
		application.WithOutput(stdout),
		application.WithHighlight(settings.Highlight),
	)

	if err := app.Run(); err != nil {
		logger.Error("search failed", zap.String("file", cfg.Filename), zap.Error(err))
		fmt.Fprintf(stderr, "Application error: %v\n", err)
		return 1
	}

	return 0
}
