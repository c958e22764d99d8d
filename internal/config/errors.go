package config

import (
	"errors"
	"fmt"
)

// ErrFileNotFound is returned when the resolved configuration path does not
// exist.
var ErrFileNotFound = errors.New("config file not found")

// LoadFileError reports a path template placeholder whose environment
// variable is not set.
type LoadFileError struct {
	Name     string
	Template string
}

func (e *LoadFileError) Error() string {
	return fmt.Sprintf("environment variable %q referenced by %q is not set", e.Name, e.Template)
}
