package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/die-net/socksd/internal/config"
	"github.com/die-net/socksd/internal/log"
)

const defaultConfigTemplate = "${SOCKSD_CONFIG}"

type configOptions struct {
	template string
	output   string
}

func addConfigFlags(fs *pflag.FlagSet, o *configOptions) {
	fs.StringVar(&o.template, "config", defaultConfigTemplate, "Config file path; ${NAME} is replaced by environment variable NAME")
	fs.StringVar(&o.output, "output", "json", "Output format: json | yaml")
	fs.SortFlags = false
}

func newConfigCmd() *cobra.Command {
	var o configOptions

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Load, validate and print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd.OutOrStdout(), o)
		},
	}
	addConfigFlags(cmd.Flags(), &o)
	return cmd
}

func runConfig(w io.Writer, o configOptions) error {
	if o.output != "json" && o.output != "yaml" {
		return fmt.Errorf("invalid --output %q: expected json or yaml", o.output)
	}

	d, err := config.Load(o.template)
	if err != nil {
		logLoadError(o.template, err)
		return err
	}
	log.Debug("config loaded", "template", o.template, "keys", d.Keys())

	s, err := config.FromDict(d)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return err
	}
	log.Info("settings loaded",
		"listen", net.JoinHostPort(s.ListenHost, strconv.Itoa(s.ListenPort)),
		"auth_method", s.AuthMethod,
		"users", len(s.Users),
		"dst_replaces", len(s.DstReplaces))
	for src, t := range s.DstReplaceTypes() {
		log.Debug("destination replacement", "src", src, "dst", s.DstReplaces[src], "atyp", t.String())
	}

	s = redactUsers(s)
	switch o.output {
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
}

func logLoadError(template string, err error) {
	var lfe *config.LoadFileError
	switch {
	case errors.As(err, &lfe):
		log.Error("config path references an unset environment variable", "var", lfe.Name, "template", lfe.Template)
	case errors.Is(err, config.ErrFileNotFound):
		log.Error("config file not found", "template", template, "error", err)
	default:
		log.Error("config file unreadable", "template", template, "error", err)
	}
}

func redactUsers(s config.Settings) config.Settings {
	users := make(map[string]string, len(s.Users))
	for name := range s.Users {
		users[name] = "********"
	}
	s.Users = users
	return s
}
