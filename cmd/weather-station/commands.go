package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	ctlrZap "sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/nginxinc/weather-station/internal/mode/station"
	"github.com/nginxinc/weather-station/internal/mode/station/config"
	"github.com/nginxinc/weather-station/internal/mode/station/display"
)

func createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "weather-station",
		Short:         "Push weather measurements to a set of displays",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	return rootCmd
}

func createSimulateCommand() *cobra.Command {
	// flag names
	const (
		scriptFlag   = "script"
		displaysFlag = "displays"
		logLevelFlag = "log-level"
		metricsFlag  = "metrics"
	)

	// flag values
	var (
		scriptPath = stringValidatingValue{
			validator: validateScriptPath,
		}

		displays = stringSliceValidatingValue{
			validator: validateDisplays,
			values:    display.Names(),
		}

		logLevel = stringValidatingValue{
			validator: validateLogLevel,
			value:     infoLevel,
		}

		printMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay a script of weather measurements against the weather station",
		RunE: func(cmd *cobra.Command, _ []string) error {
			atom := zap.NewAtomicLevel()
			atom.SetLevel(zapLevels[logLevel.value])

			logger := ctlrZap.New(ctlrZap.Level(atom), ctlrZap.WriteTo(cmd.ErrOrStderr()))

			commit, date, dirty := getBuildInfo()
			logger.Info(
				"Weather station build info",
				"version", version,
				"commit", commit,
				"date", date,
				"dirty", dirty,
			)

			conf := config.Config{
				Out:        cmd.OutOrStdout(),
				Logger:     logger,
				Version:    version,
				ScriptPath: scriptPath.value,
				Displays:   displays.values,
				MetricsConfig: config.MetricsConfig{
					Enabled: printMetrics,
					Out:     cmd.OutOrStdout(),
				},
			}

			if err := station.StartStation(conf); err != nil {
				return fmt.Errorf("failed to run the weather station: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().VarP(
		&scriptPath,
		scriptFlag,
		"s",
		"The path of the YAML script to replay. If not specified, the built-in script is replayed: "+
			"three measurements, the removal of the forecast display, then one more measurement.",
	)
	utilruntime.Must(cmd.MarkFlagFilename(scriptFlag, "yaml", "yml"))

	cmd.Flags().Var(
		&displays,
		displaysFlag,
		fmt.Sprintf(
			"Comma-separated list of the displays to attach, in registration order. Supported displays: %s",
			strings.Join(display.Names(), ", "),
		),
	)

	cmd.Flags().Var(
		&logLevel,
		logLevelFlag,
		fmt.Sprintf("The log level. Supported values: %s", strings.Join(supportedLogLevels(), ", ")),
	)

	cmd.Flags().BoolVar(
		&printMetrics,
		metricsFlag,
		false,
		"Print the notification metrics in the Prometheus text format once the script has been replayed.",
	)

	return cmd
}

func getBuildInfo() (commitHash string, commitTime string, dirtyBuild string) {
	commitHash = "unknown"
	commitTime = "unknown"
	dirtyBuild = "unknown"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, kv := range info.Settings {
		switch kv.Key {
		case "vcs.revision":
			commitHash = kv.Value
		case "vcs.time":
			commitTime = kv.Value
		case "vcs.modified":
			dirtyBuild = kv.Value
		}
	}

	return
}
