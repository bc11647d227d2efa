package display

import (
	"io"
	"math"

	"github.com/go-logr/logr"

	"github.com/nginxinc/weather-station/internal/framework/observer"
)

// Statistics displays the average, maximum and minimum of all the temperatures it has received.
type Statistics struct {
	renderer
	maxTemp     float64
	minTemp     float64
	tempSum     float64
	numReadings int
}

// NewStatistics creates a new Statistics.
func NewStatistics(out io.Writer, logger logr.Logger) *Statistics {
	return &Statistics{
		renderer: renderer{out: out, logger: logger},
		maxTemp:  -math.MaxFloat64,
		minTemp:  math.MaxFloat64,
	}
}

// Update implements the observer.Observer interface.
func (s *Statistics) Update(subject observer.Readings) {
	temp := subject.Temperature()

	s.tempSum += temp
	s.numReadings++

	if temp > s.maxTemp {
		s.maxTemp = temp
	}
	if temp < s.minTemp {
		s.minTemp = temp
	}

	s.render(s)
}

// Average returns the average temperature. It returns false if no temperature was received yet.
func (s *Statistics) Average() (float64, bool) {
	if s.numReadings == 0 {
		return 0, false
	}

	return s.tempSum / float64(s.numReadings), true
}

// Max returns the highest temperature received.
func (s *Statistics) Max() float64 {
	return s.maxTemp
}

// Min returns the lowest temperature received.
func (s *Statistics) Min() float64 {
	return s.minTemp
}

// Count returns the number of temperatures received.
func (s *Statistics) Count() int {
	return s.numReadings
}

// Display implements the Element interface.
func (s *Statistics) Display() error {
	avg, ok := s.Average()
	if !ok {
		return s.writeLine("Avg/Max/Min temperature = no readings yet")
	}

	return s.writeLine("Avg/Max/Min temperature = %.1f/%.1f/%.1f", avg, s.maxTemp, s.minTemp)
}
