package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("sheet", "", "")
	fs.String("output-dir", ".", "")
	fs.String("encoding", "utf-8", "")
	fs.Bool("verbose", false, "")
	return fs
}

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Sheet)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "utf-8", cfg.Encoding)
	assert.False(t, cfg.Verbose)
}

func TestNewConfigEnv(t *testing.T) {
	t.Setenv("QBANK_OUTPUT_DIR", "/tmp/out")
	t.Setenv("QBANK_INPUT", "bank.xlsx")
	t.Setenv("QBANK_VERBOSE", "true")

	cfg, err := NewConfig(newFlags())
	require.NoError(t, err)

	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, "bank.xlsx", cfg.Input)
	assert.True(t, cfg.Verbose)
}

func TestNewConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("QBANK_SHEET", "fromenv")

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--sheet", "题目", "--encoding", "gbk"}))

	cfg, err := NewConfig(fs)
	require.NoError(t, err)

	assert.Equal(t, "题目", cfg.Sheet)
	assert.Equal(t, "gbk", cfg.Encoding)
}
