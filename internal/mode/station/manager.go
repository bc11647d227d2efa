package station

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nginxinc/weather-station/internal/mode/station/config"
	"github.com/nginxinc/weather-station/internal/mode/station/display"
	"github.com/nginxinc/weather-station/internal/mode/station/metrics/collectors"
	"github.com/nginxinc/weather-station/internal/mode/station/script"
	"github.com/nginxinc/weather-station/internal/mode/station/weather"
)

// StartStation builds the weather station described by cfg, attaches its displays and replays the script.
// It returns once the whole script has been replayed.
func StartStation(cfg config.Config) error {
	if cfg.Out == nil {
		return errors.New("output writer must be set")
	}

	cfg.Logger.Info(
		"Starting the weather station",
		"displays", cfg.Displays,
		"script", scriptName(cfg.ScriptPath),
		"metrics", cfg.MetricsConfig.Enabled,
	)

	sc, err := loadScript(cfg.ScriptPath)
	if err != nil {
		return err
	}

	if err := sc.Validate(cfg.Displays); err != nil {
		return fmt.Errorf("invalid script: %w", err)
	}

	var (
		metricsCollector weather.MetricsCollector = collectors.NewNotificationNoopCollector()
		registry         *prometheus.Registry
	)

	if cfg.MetricsConfig.Enabled {
		constLabels := map[string]string{}
		if cfg.Version != "" {
			constLabels["version"] = cfg.Version
		}

		notificationCollector := collectors.NewNotificationCollector(constLabels)

		registry = prometheus.NewRegistry()
		if err := registry.Register(notificationCollector); err != nil {
			return fmt.Errorf("cannot register notification metrics: %w", err)
		}

		metricsCollector = notificationCollector
	}

	weatherData := weather.NewWeatherData(cfg.Logger.WithName("weatherData"), metricsCollector)

	displays := make(map[string]display.Display, len(cfg.Displays))
	for _, name := range cfg.Displays {
		if _, exists := displays[name]; exists {
			return fmt.Errorf("display %q is attached more than once", name)
		}

		d, err := display.New(name, cfg.Out, cfg.Logger.WithName("display"))
		if err != nil {
			return fmt.Errorf("cannot create display: %w", err)
		}

		displays[name] = d
		weatherData.Register(d)
	}

	r := &runner{
		subject:  weatherData,
		displays: displays,
		out:      cfg.Out,
		logger:   cfg.Logger.WithName("runner"),
	}

	if err := r.run(sc); err != nil {
		return fmt.Errorf("failed to replay script: %w", err)
	}

	if registry != nil {
		if err := writeMetrics(registry, cfg.MetricsConfig.Out); err != nil {
			return err
		}
	}

	return nil
}

func scriptName(path string) string {
	if path == "" {
		return "built-in"
	}

	return path
}

func loadScript(path string) (*script.Script, error) {
	if path == "" {
		return script.Default(), nil
	}

	sc, err := script.Load(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load script: %w", err)
	}

	return sc, nil
}
