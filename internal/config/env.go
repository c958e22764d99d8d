package config

import "os"

// Env looks up environment variables by name.
type Env interface {
	LookupEnv(name string) (string, bool)
}

// EnvFunc adapts a lookup function to Env.
type EnvFunc func(name string) (string, bool)

func (f EnvFunc) LookupEnv(name string) (string, bool) { return f(name) }

// OSEnv reads the process environment.
var OSEnv Env = EnvFunc(os.LookupEnv)

// MapEnv is a fixed environment, mostly useful in tests.
type MapEnv map[string]string

func (m MapEnv) LookupEnv(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

var (
	_ Env = EnvFunc(nil)
	_ Env = MapEnv(nil)
)
