package config

import (
	"io"

	"github.com/go-logr/logr"
)

type Config struct {
	// Out is where the displays and the script messages are written.
	Out io.Writer
	// Logger is the Zap Logger used by all components.
	Logger logr.Logger
	// Version is the running weather station version.
	Version string
	// ScriptPath is the path of the script to replay. If empty, the built-in script is replayed.
	ScriptPath string
	// Displays are the names of the displays attached to the weather station, in registration order.
	Displays []string
	// MetricsConfig specifies the metrics config.
	MetricsConfig MetricsConfig
}

// MetricsConfig specifies the metrics config.
type MetricsConfig struct {
	// Out is where the metrics are written once the script has been replayed.
	Out io.Writer
	// Enabled is the flag for toggling metrics on or off.
	Enabled bool
}
