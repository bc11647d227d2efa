package main

import (
	"strings"

	"github.com/spf13/pflag"
)

// stringValidatingValue is a string flag value with custom validation logic.
// it implements the pflag.Value interface.
type stringValidatingValue struct {
	validator func(v string) error
	value     string
}

func (v *stringValidatingValue) String() string {
	return v.value
}

func (v *stringValidatingValue) Set(param string) error {
	if err := v.validator(param); err != nil {
		return err
	}
	v.value = param
	return nil
}

func (v *stringValidatingValue) Type() string {
	return "string"
}

// stringSliceValidatingValue is a comma-separated list flag value with custom validation logic.
// it implements the pflag.Value interface.
type stringSliceValidatingValue struct {
	validator func(v []string) error
	values    []string
}

func (v *stringSliceValidatingValue) String() string {
	return strings.Join(v.values, ",")
}

func (v *stringSliceValidatingValue) Set(param string) error {
	var values []string
	for _, s := range strings.Split(param, ",") {
		values = append(values, strings.TrimSpace(s))
	}

	if err := v.validator(values); err != nil {
		return err
	}

	v.values = values
	return nil
}

func (v *stringSliceValidatingValue) Type() string {
	return "strings"
}

var (
	_ pflag.Value = &stringValidatingValue{}
	_ pflag.Value = &stringSliceValidatingValue{}
)
