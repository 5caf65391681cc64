package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the CLI.
const EnvPrefix = "QBANK"

type Config struct {
	Input     string // Spreadsheet to convert when no path argument is given
	Sheet     string // Sheet to read; empty falls back to the mapping file, then the default sheet
	Mapping   string // YAML mapping file; empty uses the built-in mapping
	Output    string // Explicit output file; overrides OutputDir
	OutputDir string // Directory receiving <input base name>.json
	Encoding  string // CSV input encoding
	Verbose   bool
	Dump      bool // Dump the converted result to stderr
}

// NewConfig resolves the configuration from flags, QBANK_* environment
// variables and defaults, in that order of precedence.
func NewConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("input", "")
	v.SetDefault("sheet", "")
	v.SetDefault("mapping", "")
	v.SetDefault("output", "")
	v.SetDefault("output-dir", ".")
	v.SetDefault("encoding", "utf-8")
	v.SetDefault("verbose", false)
	v.SetDefault("dump", false)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, err
		}
	}

	return &Config{
		Input:     v.GetString("input"),
		Sheet:     v.GetString("sheet"),
		Mapping:   v.GetString("mapping"),
		Output:    v.GetString("output"),
		OutputDir: v.GetString("output-dir"),
		Encoding:  v.GetString("encoding"),
		Verbose:   v.GetBool("verbose"),
		Dump:      v.GetBool("dump"),
	}, nil
}
