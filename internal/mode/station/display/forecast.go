package display

import (
	"io"

	"github.com/go-logr/logr"

	"github.com/nginxinc/weather-station/internal/framework/observer"
)

// DefaultPressure is the pressure a Forecast compares its first reading against.
const DefaultPressure = 1013.25

// Trend is the direction in which the pressure moved between two readings.
type Trend int

const (
	// TrendUnknown means no reading was received yet.
	TrendUnknown Trend = iota
	// TrendImproving means the pressure rose.
	TrendImproving
	// TrendSame means the pressure did not change.
	TrendSame
	// TrendWorsening means the pressure fell.
	TrendWorsening
)

func (t Trend) String() string {
	switch t {
	case TrendImproving:
		return "improving"
	case TrendSame:
		return "same"
	case TrendWorsening:
		return "worsening"
	default:
		return "unknown"
	}
}

func trendOf(current, last float64) Trend {
	switch {
	case current > last:
		return TrendImproving
	case current == last:
		return TrendSame
	default:
		return TrendWorsening
	}
}

// Forecast displays a forecast based on the pressure trend.
type Forecast struct {
	renderer
	lastPressure    float64
	currentPressure float64
	trend           Trend
}

// NewForecast creates a new Forecast.
func NewForecast(out io.Writer, logger logr.Logger) *Forecast {
	return &Forecast{
		renderer:     renderer{out: out, logger: logger},
		lastPressure: DefaultPressure,
	}
}

// Update implements the observer.Observer interface.
// The new pressure is compared with the previous one before it becomes the previous one for the next Update.
func (f *Forecast) Update(subject observer.Readings) {
	f.currentPressure = subject.Pressure()
	f.trend = trendOf(f.currentPressure, f.lastPressure)

	f.render(f)

	f.lastPressure = f.currentPressure
}

// Trend returns the trend computed by the last Update.
func (f *Forecast) Trend() Trend {
	return f.trend
}

// LastPressure returns the pressure the next Update will be compared against.
func (f *Forecast) LastPressure() float64 {
	return f.lastPressure
}

// Display implements the Element interface.
func (f *Forecast) Display() error {
	switch f.trend {
	case TrendImproving:
		return f.writeLine("Forecast: Improving weather on the way!")
	case TrendSame:
		return f.writeLine("Forecast: More of the same.")
	case TrendWorsening:
		return f.writeLine("Forecast: Watch out for cooler, rainy weather.")
	default:
		return f.writeLine("Forecast: no readings yet")
	}
}
