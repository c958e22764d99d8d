package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/die-net/socksd/internal/atyp"
)

func TestFromDictDefaults(t *testing.T) {
	s, err := FromDict(Dict{"SOMETHING_ELSE": []any{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
	require.NoError(t, s.Validate())
}

func TestFromDictJSONAndYAMLNumbers(t *testing.T) {
	for name, port := range map[string]any{"json": float64(1081), "yaml": 1081} {
		t.Run(name, func(t *testing.T) {
			s, err := FromDict(Dict{
				"LISTEN_HOST":  "127.0.0.1",
				"LISTEN_PORT":  port,
				"AUTH_METHOD":  AuthUserPass,
				"ACCESS_LOG":   true,
				"DEBUG":        true,
				"STRICT":       true,
				"USERS":        map[string]any{"alice": "secret"},
				"DST_REPLACES": map[string]any{"10.0.0.1": "example.com"},
			})
			require.NoError(t, err)
			assert.Equal(t, Settings{
				ListenHost:  "127.0.0.1",
				ListenPort:  1081,
				AuthMethod:  AuthUserPass,
				AccessLog:   true,
				Debug:       true,
				Strict:      true,
				DstReplaces: map[string]string{"10.0.0.1": "example.com"},
				Users:       map[string]string{"alice": "secret"},
			}, s)
			require.NoError(t, s.Validate())
		})
	}
}

func TestFromDictLoadedFiles(t *testing.T) {
	files := map[string]string{
		"config.json": `{
  "LISTEN_HOST": "127.0.0.1",
  "LISTEN_PORT": 1081,
  "AUTH_METHOD": 2,
  "STRICT": true,
  "USERS": {"alice": "secret", "bob": "hunter2"},
  "DST_REPLACES": {"10.0.0.1": "example.com", "10.0.0.2": "2001:db8::1"}
}`,
		"config.yaml": `LISTEN_HOST: 127.0.0.1
LISTEN_PORT: 1081
AUTH_METHOD: 2
STRICT: true
USERS:
  alice: secret
  bob: hunter2
DST_REPLACES:
  10.0.0.1: example.com
  10.0.0.2: "2001:db8::1"
`,
		"config.yml": `{LISTEN_HOST: 127.0.0.1, LISTEN_PORT: 1081, AUTH_METHOD: 2, STRICT: true,
  USERS: {alice: secret, bob: hunter2},
  DST_REPLACES: {10.0.0.1: example.com, 10.0.0.2: "2001:db8::1"}}
`,
	}

	dir := t.TempDir()
	got := make(map[string]Settings, len(files))
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			d, err := Loader{Env: MapEnv{"DIR": dir}}.Load("${DIR}/" + name)
			require.NoError(t, err)

			s, err := FromDict(d)
			require.NoError(t, err)
			require.NoError(t, s.Validate())
			got[name] = s
		})
	}

	want := Settings{
		ListenHost:  "127.0.0.1",
		ListenPort:  1081,
		AuthMethod:  AuthUserPass,
		Strict:      true,
		DstReplaces: map[string]string{"10.0.0.1": "example.com", "10.0.0.2": "2001:db8::1"},
		Users:       map[string]string{"alice": "secret", "bob": "hunter2"},
	}
	for name := range files {
		assert.Equal(t, want, got[name], name)
	}
}

func TestFromDictNestedDict(t *testing.T) {
	s, err := FromDict(Dict{"USERS": Dict{"alice": "secret"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "secret"}, s.Users)
}

func TestFromDictTypeErrors(t *testing.T) {
	_, err := FromDict(Dict{
		"LISTEN_HOST": 5,
		"LISTEN_PORT": 1080.5,
		"DEBUG":       "yes",
		"USERS":       map[string]any{"alice": 1},
	})
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 4)
	assert.Contains(t, err.Error(), "LISTEN_HOST: expected string, got int")
	assert.Contains(t, err.Error(), "LISTEN_PORT: expected integer, got 1080.5")
	assert.Contains(t, err.Error(), "DEBUG: expected bool, got string")
	assert.Contains(t, err.Error(), "USERS: alice: expected string, got int")
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr []string
	}{
		{name: "defaults", mutate: func(*Settings) {}},
		{name: "port zero", mutate: func(s *Settings) { s.ListenPort = 0 }},
		{name: "port max", mutate: func(s *Settings) { s.ListenPort = 65535 }},
		{
			name:    "port too large",
			mutate:  func(s *Settings) { s.ListenPort = 65536 },
			wantErr: []string{"listen port 65536 out of range"},
		},
		{
			name:    "empty host",
			mutate:  func(s *Settings) { s.ListenHost = " " },
			wantErr: []string{"listen host cannot be empty"},
		},
		{
			name:    "unknown auth",
			mutate:  func(s *Settings) { s.AuthMethod = 0x01 },
			wantErr: []string{"unsupported auth method 0x01"},
		},
		{
			name:    "userpass without users",
			mutate:  func(s *Settings) { s.AuthMethod = AuthUserPass },
			wantErr: []string{"requires at least one user"},
		},
		{
			name: "several problems",
			mutate: func(s *Settings) {
				s.ListenPort = -1
				s.AuthMethod = AuthUserPass
				s.DstReplaces = map[string]string{"1.1.1.1": ""}
			},
			wantErr: []string{"listen port -1 out of range", "requires at least one user", `"1.1.1.1" -> "" has an empty side`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidSettings)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestDstReplaceTypes(t *testing.T) {
	s := DefaultSettings()
	s.DstReplaces = map[string]string{
		"a": "192.0.2.1",
		"b": "2001:db8::1",
		"c": "example.com",
	}
	assert.Equal(t, map[string]atyp.Type{
		"a": atyp.IPv4,
		"b": atyp.IPv6,
		"c": atyp.Domain,
	}, s.DstReplaceTypes())
}
