package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dict is a decoded configuration document.
type Dict map[string]any

// Keys returns the top-level keys of d in sorted order.
func (d Dict) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var errNotObject = errors.New("top-level value is not an object")

// Loader resolves path templates and decodes the files they point at.
// The zero value uses the process environment and the local disk.
type Loader struct {
	Env   Env
	Files Files
}

// Load is Loader{}.Load(template).
func Load(template string) (Dict, error) {
	return Loader{}.Load(template)
}

// Load expands template, reads the file it names and decodes it.
func (l Loader) Load(template string) (Dict, error) {
	env := l.Env
	if env == nil {
		env = OSEnv
	}
	files := l.Files
	if files == nil {
		files = OSFiles()
	}

	path, err := ExpandPath(template, env)
	if err != nil {
		return nil, err
	}

	f, err := files.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
		}
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	d, err := decode(f, path)
	if err != nil {
		return nil, fmt.Errorf("decoding config file %s: %w", path, err)
	}
	return d, nil
}

// decode targets a plain map so nested objects come back as map[string]any
// from both decoders; yaml.v3 would otherwise reuse Dict for every level.
func decode(r io.Reader, path string) (Dict, error) {
	var m map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(r).Decode(&m); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("empty document")
			}
			return nil, err
		}
	default:
		dec := json.NewDecoder(r)
		if err := dec.Decode(&m); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("empty document")
			}
			return nil, err
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, errors.New("unexpected data after top-level value")
		}
	}
	if m == nil {
		return nil, errNotObject
	}
	return Dict(m), nil
}
