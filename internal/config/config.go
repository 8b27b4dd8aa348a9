// Package config loads command line configuration from files, environment
// variables and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ukaji3/ordernums-go/pkg/ordernums"
)

const (
	// Name is the configuration file base name searched for.
	Name = "ordernums"
	// EnvPrefix prefixes environment overrides, e.g. ORDERNUMS_EXTRACT_SOURCE_SHEET.
	EnvPrefix = "ORDERNUMS"

	KeyLogLevel       = "common.log_level"
	KeyLogFormat      = "common.log_format"
	KeySourceSheet    = "extract.source_sheet"
	KeyOutputSheet    = "extract.output_sheet"
	KeyExcludedOwners = "extract.excluded_owners"
)

// Configuration is the full command line configuration.
type Configuration struct {
	Common  CommonConfiguration  `mapstructure:"common" yaml:"common"`
	Extract ExtractConfiguration `mapstructure:"extract" yaml:"extract"`
}

// CommonConfiguration stores logging settings.
type CommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// ExtractConfiguration stores processing settings.
type ExtractConfiguration struct {
	SourceSheet    string   `mapstructure:"source_sheet" yaml:"source_sheet"`
	OutputSheet    string   `mapstructure:"output_sheet" yaml:"output_sheet"`
	ExcludedOwners []string `mapstructure:"excluded_owners" yaml:"excluded_owners"`
}

// Options converts the extract section into processing options.
func (c ExtractConfiguration) Options() ordernums.Options {
	opts := ordernums.DefaultOptions()
	opts.SourceSheet = strings.TrimSpace(c.SourceSheet)
	opts.OutputSheet = strings.TrimSpace(c.OutputSheet)
	if c.ExcludedOwners != nil {
		opts.ExcludedOwners = sanitizeTokens(c.ExcludedOwners)
	}
	return opts
}

func sanitizeTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token != "" {
			out = append(out, token)
		}
	}
	return out
}

// Defaults returns the default value of every configuration key.
func Defaults() map[string]any {
	opts := ordernums.DefaultOptions()
	return map[string]any{
		KeyLogLevel:       "info",
		KeyLogFormat:      "console",
		KeySourceSheet:    opts.SourceSheet,
		KeyOutputSheet:    opts.OutputSheet,
		KeyExcludedOwners: opts.ExcludedOwners,
	}
}

// FlagBindings maps command line flag names to configuration keys.
var FlagBindings = map[string]string{
	"log-level":     KeyLogLevel,
	"log-format":    KeyLogFormat,
	"source-sheet":  KeySourceSheet,
	"output-sheet":  KeyOutputSheet,
	"exclude-owner": KeyExcludedOwners,
}

// Loaded describes where configuration came from.
type Loaded struct {
	ConfigFileUsed string
}

// Loader reads configuration with viper.
type Loader struct {
	searchPaths []string
}

// NewLoader returns a loader searching the given directories for ordernums.yaml.
func NewLoader(searchPaths ...string) *Loader {
	paths := make([]string, len(searchPaths))
	copy(paths, searchPaths)
	return &Loader{searchPaths: paths}
}

// Load resolves configuration from defaults, the config file (configPath if
// set, otherwise the search paths), ORDERNUMS_* environment variables and
// changed flags, in increasing precedence. flags may be nil.
func (l *Loader) Load(configPath string, flags *pflag.FlagSet) (Configuration, Loaded, error) {
	v := viper.New()
	v.SetConfigName(Name)
	v.SetConfigType("yaml")
	for _, path := range l.searchPaths {
		v.AddConfigPath(path)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	if flags != nil {
		for flagName, key := range FlagBindings {
			flag := flags.Lookup(flagName)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Configuration{}, Loaded{}, fmt.Errorf("bind flag %s: %w", flagName, err)
			}
		}
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return Configuration{}, Loaded{}, fmt.Errorf("failed to read configuration: %w", err)
		}
		v.SetConfigFile(configPath)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Configuration{}, Loaded{}, fmt.Errorf("failed to read configuration: %w", err)
		}
	}

	var cfg Configuration
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return Configuration{}, Loaded{}, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return cfg, Loaded{ConfigFileUsed: v.ConfigFileUsed()}, nil
}
