// Package script describes the scripted simulations replayed by the weather station.
//
// A script is a YAML document with a list of steps. Each step does exactly one thing:
//
//	steps:
//	- message: "--- Simulating weather measurements ---"
//	- measurements:
//	    temperature: 26.6
//	    humidity: 65
//	    pressure: 1013.1
//	- remove: forecast
//	- register: forecast
package script

import (
	"errors"
	"fmt"
	"math"
	"os"

	"sigs.k8s.io/yaml"
)

// Script is a sequence of steps replayed against the weather station.
type Script struct {
	Steps []Step `json:"steps"`
}

// Step is a single action of a Script. Exactly one field must be set.
type Step struct {
	// Measurements are new measurements to set on the weather station.
	Measurements *Measurements `json:"measurements,omitempty"`
	// Message is printed verbatim followed by a newline, leading newlines included.
	// An empty Message is not an action, so a blank line is written as a leading "\n" of the next Message.
	Message string `json:"message,omitempty"`
	// Register is the name of a display to register with the weather station.
	Register string `json:"register,omitempty"`
	// Remove is the name of a display to remove from the weather station.
	Remove string `json:"remove,omitempty"`
}

// Measurements are the values of a measurements step.
type Measurements struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Pressure    float64 `json:"pressure"`
}

// Default returns the built-in script: three measurement sets, the removal of the forecast display, then one more
// measurement set.
func Default() *Script {
	return &Script{
		Steps: []Step{
			{Message: "--- Simulating weather measurements ---"},
			{Measurements: &Measurements{Temperature: 26.6, Humidity: 65, Pressure: 1013.1}},
			{Measurements: &Measurements{Temperature: 27.2, Humidity: 70, Pressure: 1009.5}},
			{Measurements: &Measurements{Temperature: 25.4, Humidity: 90, Pressure: 1005.4}},
			{Message: "\n--- Removing the forecast display and updating again ---"},
			{Remove: "forecast"},
			{Measurements: &Measurements{Temperature: 28.0, Humidity: 75, Pressure: 1016.0}},
		},
	}
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse script %s: %w", path, err)
	}

	return s, nil
}

// Parse parses a YAML script. Unknown fields are rejected.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks that every step sets exactly one action, that measurements are finite numbers,
// and that every display a step refers to is one of displays.
func (s *Script) Validate(displays []string) error {
	if len(s.Steps) == 0 {
		return errors.New("script has no steps")
	}

	known := make(map[string]struct{}, len(displays))
	for _, d := range displays {
		known[d] = struct{}{}
	}

	var errs []error
	for i, step := range s.Steps {
		if err := step.validate(known); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

func (s Step) validate(known map[string]struct{}) error {
	actions := 0
	if s.Measurements != nil {
		actions++
	}
	if s.Message != "" {
		actions++
	}
	if s.Register != "" {
		actions++
	}
	if s.Remove != "" {
		actions++
	}

	if actions != 1 {
		return fmt.Errorf("must set exactly one of measurements, message, register or remove; got %d", actions)
	}

	switch {
	case s.Measurements != nil:
		return s.Measurements.validate()
	case s.Register != "":
		return validateDisplay(s.Register, known)
	case s.Remove != "":
		return validateDisplay(s.Remove, known)
	}

	return nil
}

func (m Measurements) validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{name: "temperature", value: m.Temperature},
		{name: "humidity", value: m.Humidity},
		{name: "pressure", value: m.Pressure},
	}

	var errs []error
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			errs = append(errs, fmt.Errorf("%s must be a finite number", f.name))
		}
	}

	return errors.Join(errs...)
}

func validateDisplay(name string, known map[string]struct{}) error {
	if _, ok := known[name]; !ok {
		return fmt.Errorf("display %q is not attached to the weather station", name)
	}

	return nil
}
