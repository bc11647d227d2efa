package display

import (
	"errors"
)

type readings struct {
	temperature float64
	humidity    float64
	pressure    float64
}

func (r readings) Temperature() float64 { return r.temperature }
func (r readings) Humidity() float64    { return r.humidity }
func (r readings) Pressure() float64    { return r.pressure }

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("write failed")
}
