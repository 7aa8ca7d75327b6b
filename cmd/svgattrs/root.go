package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/svgattr"
)

const (
	envPrefix = "SVGATTRS"

	cfgKeyFormat   = "format"
	cfgKeyLogLevel = "log-level"
	cfgKeyStrict   = "strict"
	cfgKeyForeign  = "foreign"
)

// config is the resolved configuration of one invocation:
// flag > SVGATTRS_* environment > config file > default.
type config struct {
	Format   string
	LogLevel slog.Level
	Strict   bool
	Foreign  bool
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	var configFile string

	root := &cobra.Command{
		Use:           "svgattrs",
		Short:         "Resolve typed SVG attributes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := readConfig(v, configFile); err != nil {
				return err
			}
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			svgattr.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: cfg.LogLevel,
			})))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (YAML)")
	root.PersistentFlags().String(cfgKeyLogLevel, "warn", "log level: debug, info, warn, error")
	if err := v.BindPFlag(cfgKeyLogLevel, root.PersistentFlags().Lookup(cfgKeyLogLevel)); err != nil {
		panic(err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(newInspectCommand(v))
	return root
}

// readConfig loads an explicitly named config file. Without --config no
// file is read.
func readConfig(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

var errBadFormat = errors.New("format must be yaml or json")

func loadConfig(v *viper.Viper) (config, error) {
	cfg := config{
		Format:  strings.ToLower(v.GetString(cfgKeyFormat)),
		Strict:  v.GetBool(cfgKeyStrict),
		Foreign: v.GetBool(cfgKeyForeign),
	}
	switch cfg.Format {
	case "":
		cfg.Format = "yaml"
	case "yaml", "json":
	default:
		return config{}, fmt.Errorf("%w, got %q", errBadFormat, cfg.Format)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(cfgKeyLogLevel))); err != nil {
		return config{}, fmt.Errorf("log level: %w", err)
	}
	return cfg, nil
}
