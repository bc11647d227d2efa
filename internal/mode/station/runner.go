package station

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"github.com/nginxinc/weather-station/internal/mode/station/display"
	"github.com/nginxinc/weather-station/internal/mode/station/script"
	"github.com/nginxinc/weather-station/internal/mode/station/weather"
)

// runner replays the steps of a script against a WeatherData.
type runner struct {
	subject  *weather.WeatherData
	displays map[string]display.Display
	out      io.Writer
	logger   logr.Logger
}

func (r *runner) run(sc *script.Script) error {
	r.logger.Info("Replaying script", "steps", len(sc.Steps))

	for i, step := range sc.Steps {
		if err := r.runStep(step); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}

	r.logger.Info("Script replayed", "observers", len(r.subject.Observers()))

	return nil
}

func (r *runner) runStep(step script.Step) error {
	switch {
	case step.Measurements != nil:
		m := step.Measurements
		r.subject.SetMeasurements(m.Temperature, m.Humidity, m.Pressure)
	case step.Message != "":
		if _, err := fmt.Fprintln(r.out, step.Message); err != nil {
			return fmt.Errorf("failed to write message: %w", err)
		}
	case step.Register != "":
		d, err := r.display(step.Register)
		if err != nil {
			return err
		}
		r.subject.Register(d)
	case step.Remove != "":
		d, err := r.display(step.Remove)
		if err != nil {
			return err
		}
		r.subject.Remove(d)
	}

	return nil
}

func (r *runner) display(name string) (display.Display, error) {
	d, ok := r.displays[name]
	if !ok {
		return nil, fmt.Errorf("display %q is not attached to the weather station", name)
	}

	return d, nil
}
