package config

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"github.com/die-net/socksd/internal/atyp"
)

// Authentication methods accepted in AUTH_METHOD.
const (
	AuthNone     = 0x00
	AuthUserPass = 0x02
)

const (
	DefaultListenHost = "0.0.0.0"
	DefaultListenPort = 1080
)

// ErrInvalidSettings wraps every Validate failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the typed view of a configuration Dict used at startup.
type Settings struct {
	ListenHost  string            `json:"LISTEN_HOST" yaml:"LISTEN_HOST"`
	ListenPort  int               `json:"LISTEN_PORT" yaml:"LISTEN_PORT"`
	AuthMethod  int               `json:"AUTH_METHOD" yaml:"AUTH_METHOD"`
	AccessLog   bool              `json:"ACCESS_LOG" yaml:"ACCESS_LOG"`
	Debug       bool              `json:"DEBUG" yaml:"DEBUG"`
	Strict      bool              `json:"STRICT" yaml:"STRICT"`
	DstReplaces map[string]string `json:"DST_REPLACES" yaml:"DST_REPLACES"`
	Users       map[string]string `json:"USERS" yaml:"USERS"`
}

// DefaultSettings returns the settings used for keys a document leaves out.
func DefaultSettings() Settings {
	return Settings{
		ListenHost:  DefaultListenHost,
		ListenPort:  DefaultListenPort,
		AuthMethod:  AuthNone,
		DstReplaces: map[string]string{},
		Users:       map[string]string{},
	}
}

// FromDict overlays the recognized keys of d onto DefaultSettings. Unknown
// keys are ignored. A recognized key holding a value of the wrong shape is an
// error; all such errors are reported together.
func FromDict(d Dict) (Settings, error) {
	s := DefaultSettings()

	var err error
	for _, k := range d.Keys() {
		v := d[k]
		var kerr error
		switch k {
		case "LISTEN_HOST":
			s.ListenHost, kerr = asString(v)
		case "LISTEN_PORT":
			s.ListenPort, kerr = asInt(v)
		case "AUTH_METHOD":
			s.AuthMethod, kerr = asInt(v)
		case "ACCESS_LOG":
			s.AccessLog, kerr = asBool(v)
		case "DEBUG":
			s.Debug, kerr = asBool(v)
		case "STRICT":
			s.Strict, kerr = asBool(v)
		case "DST_REPLACES":
			s.DstReplaces, kerr = asStringMap(v)
		case "USERS":
			s.Users, kerr = asStringMap(v)
		default:
			continue
		}
		if kerr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", k, kerr))
		}
	}
	if err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports every problem with s, joined into one error that matches
// ErrInvalidSettings.
func (s Settings) Validate() error {
	var err error
	if strings.TrimSpace(s.ListenHost) == "" {
		err = multierr.Append(err, errors.New("listen host cannot be empty"))
	}
	if s.ListenPort < 0 || s.ListenPort > math.MaxUint16 {
		err = multierr.Append(err, fmt.Errorf("listen port %d out of range", s.ListenPort))
	}
	switch s.AuthMethod {
	case AuthNone:
	case AuthUserPass:
		if len(s.Users) == 0 {
			err = multierr.Append(err, errors.New("username/password auth requires at least one user"))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("unsupported auth method 0x%02x", s.AuthMethod))
	}
	for _, src := range sortedKeys(s.DstReplaces) {
		if strings.TrimSpace(src) == "" || strings.TrimSpace(s.DstReplaces[src]) == "" {
			err = multierr.Append(err, fmt.Errorf("destination replacement %q -> %q has an empty side", src, s.DstReplaces[src]))
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}

// DstReplaceTypes returns the address type each destination replacement
// target will be encoded with.
func (s Settings) DstReplaceTypes() map[string]atyp.Type {
	types := make(map[string]atyp.Type, len(s.DstReplaces))
	for src, dst := range s.DstReplaces {
		types[src] = atyp.Classify(dst)
	}
	return types
}

func asString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", v)
	}
	return s, nil
}

func asBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("expected bool, got %T", v)
	}
	return b, nil
}

// JSON numbers decode as float64, YAML integers as int.
func asInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		if n > math.MaxInt32 {
			return 0, fmt.Errorf("integer %d too large", n)
		}
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
			return 0, fmt.Errorf("expected integer, got %v", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}

func asStringMap(v any) (map[string]string, error) {
	var m map[string]any
	switch vm := v.(type) {
	case map[string]any:
		m = vm
	case Dict:
		m = vm
	default:
		return nil, fmt.Errorf("expected object, got %T", v)
	}
	out := make(map[string]string, len(m))
	for k, raw := range m {
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%s: expected string, got %T", k, raw)
		}
		out[k] = s
	}
	return out, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
