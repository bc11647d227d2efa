package display

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"github.com/nginxinc/weather-station/internal/framework/observer"
)

// Element is a view that can render its current state.
type Element interface {
	// Display renders the view.
	Display() error
}

// Display is an observer of the weather station that renders what it derives from the measurements.
type Display interface {
	observer.Observer
	Element
}

// Names of the supported displays.
const (
	CurrentConditionsName = "current"
	StatisticsName        = "statistics"
	ForecastName          = "forecast"
	HeatIndexName         = "heatindex"
)

// Names returns the names of the supported displays in their default order.
func Names() []string {
	return []string{CurrentConditionsName, StatisticsName, ForecastName, HeatIndexName}
}

// New creates the Display with the given name. The Display writes to out.
func New(name string, out io.Writer, logger logr.Logger) (Display, error) {
	logger = logger.WithName(name)

	switch name {
	case CurrentConditionsName:
		return NewCurrentConditions(out, logger), nil
	case StatisticsName:
		return NewStatistics(out, logger), nil
	case ForecastName:
		return NewForecast(out, logger), nil
	case HeatIndexName:
		return NewHeatIndex(out, logger), nil
	default:
		return nil, fmt.Errorf("unknown display %q", name)
	}
}

// renderer renders an Element and keeps a rendering failure inside the display.
type renderer struct {
	out    io.Writer
	logger logr.Logger
}

func (r renderer) render(e Element) {
	if err := e.Display(); err != nil {
		r.logger.Error(err, "Failed to render display")
	}
}

func (r renderer) writeLine(format string, args ...any) error {
	if _, err := fmt.Fprintf(r.out, format+"\n", args...); err != nil {
		return fmt.Errorf("failed to write display output: %w", err)
	}

	return nil
}
