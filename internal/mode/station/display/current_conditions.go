package display

import (
	"io"

	"github.com/go-logr/logr"

	"github.com/nginxinc/weather-station/internal/framework/observer"
)

// CurrentConditions displays the latest temperature and humidity.
type CurrentConditions struct {
	renderer
	temperature float64
	humidity    float64
}

// NewCurrentConditions creates a new CurrentConditions.
func NewCurrentConditions(out io.Writer, logger logr.Logger) *CurrentConditions {
	return &CurrentConditions{
		renderer: renderer{out: out, logger: logger},
	}
}

// Update implements the observer.Observer interface.
func (c *CurrentConditions) Update(subject observer.Readings) {
	c.temperature = subject.Temperature()
	c.humidity = subject.Humidity()

	c.render(c)
}

// Display implements the Element interface.
func (c *CurrentConditions) Display() error {
	return c.writeLine("Current conditions: %.1f°C and %.1f%% humidity", c.temperature, c.humidity)
}
