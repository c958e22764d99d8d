package config

import (
	"io"
	"os"
)

// Files opens configuration files for reading.
type Files interface {
	Open(name string) (io.ReadCloser, error)
}

// OSFiles returns a Files implementation backed by the local disk.
func OSFiles() Files {
	return osFiles{}
}

type osFiles struct{}

func (osFiles) Open(name string) (io.ReadCloser, error) { return os.Open(name) }
