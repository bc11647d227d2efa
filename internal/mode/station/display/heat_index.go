package display

import (
	"io"

	"github.com/go-logr/logr"

	"github.com/nginxinc/weather-station/internal/framework/observer"
	"github.com/nginxinc/weather-station/internal/mode/station/heatindex"
)

// HeatIndex displays the heat index of the latest temperature and humidity.
type HeatIndex struct {
	renderer
	heatIndex float64
}

// NewHeatIndex creates a new HeatIndex.
func NewHeatIndex(out io.Writer, logger logr.Logger) *HeatIndex {
	return &HeatIndex{
		renderer: renderer{out: out, logger: logger},
	}
}

// Update implements the observer.Observer interface.
func (h *HeatIndex) Update(subject observer.Readings) {
	h.heatIndex = heatindex.Compute(subject.Temperature(), subject.Humidity())

	h.render(h)
}

// Value returns the heat index computed by the last Update.
func (h *HeatIndex) Value() float64 {
	return h.heatIndex
}

// Display implements the Element interface.
func (h *HeatIndex) Display() error {
	return h.writeLine("Heat index is %.2f", h.heatIndex)
}
