package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"

	"go.uber.org/zap/zapcore"

	"github.com/nginxinc/weather-station/internal/mode/station/display"
)

const (
	debugLevel = "debug"
	infoLevel  = "info"
	errorLevel = "error"
)

var zapLevels = map[string]zapcore.Level{
	debugLevel: zapcore.DebugLevel,
	infoLevel:  zapcore.InfoLevel,
	errorLevel: zapcore.ErrorLevel,
}

func supportedLogLevels() []string {
	levels := make([]string, 0, len(zapLevels))
	for level := range zapLevels {
		levels = append(levels, level)
	}
	sort.Strings(levels)

	return levels
}

func validateLogLevel(value string) error {
	if _, ok := zapLevels[value]; !ok {
		return fmt.Errorf("unsupported log level %q; must be one of: %v", value, supportedLogLevels())
	}

	return nil
}

func validateScriptPath(value string) error {
	if value == "" {
		return errors.New("must be set")
	}

	info, err := os.Stat(value)
	if err != nil {
		return fmt.Errorf("cannot access script: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("%s is a directory", value)
	}

	return nil
}

func validateDisplays(values []string) error {
	if len(values) == 0 {
		return errors.New("must be set")
	}

	supported := display.Names()
	seen := make(map[string]struct{}, len(values))

	for _, v := range values {
		if v == "" {
			return errors.New("display name must not be empty")
		}

		if !slices.Contains(supported, v) {
			return fmt.Errorf("unsupported display %q; must be one of: %v", v, supported)
		}

		if _, exists := seen[v]; exists {
			return fmt.Errorf("display %q is listed more than once", v)
		}
		seen[v] = struct{}{}
	}

	return nil
}
