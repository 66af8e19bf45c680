package main

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/alexisbeaulieu97/brandkit/internal/brand"
	"github.com/alexisbeaulieu97/brandkit/internal/logger"
	"github.com/alexisbeaulieu97/brandkit/internal/settings"
	"github.com/alexisbeaulieu97/brandkit/internal/typography"
)

// appContext carries what every command needs once flags are parsed.
type appContext struct {
	settings *settings.Settings
	logger   *logger.Logger
	client   *http.Client
}

func newAppContext(flags *rootFlags, logOutput io.Writer) (*appContext, error) {
	s, err := settings.Load(flags.settingsPath)
	if err != nil {
		return nil, newCommandError("load settings", flags.settingsPath, err, "Check the settings file and BRANDKIT_* environment variables.")
	}

	level := s.Log.Level
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: s.Log.Human,
		Writer:        logOutput,
		Component:     "cli",
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return &appContext{
		settings: s,
		logger:   log,
		client:   &http.Client{},
	}, nil
}

// loadBrand parses the brand at path, or returns the built-in brand when
// path is empty.
func loadBrand(path string) (*brand.Definition, error) {
	if strings.TrimSpace(path) == "" {
		return brand.Default(), nil
	}
	def, err := brand.ParseFile(path)
	if err != nil {
		return nil, newCommandError("load brand", path, err, "Fix the brand definition and try again.")
	}
	return def, nil
}

func parsePlatform(value string) (typography.Platform, error) {
	switch typography.Platform(strings.ToLower(strings.TrimSpace(value))) {
	case typography.PlatformWeb:
		return typography.PlatformWeb, nil
	case typography.PlatformNative:
		return typography.PlatformNative, nil
	}
	return "", fmt.Errorf("unknown platform %q (want web or native)", value)
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	if e.context == "" {
		return fmt.Sprintf("Failed to %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.cause, e.suggestion)
	}
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
