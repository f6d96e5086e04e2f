// Package config loads settings for the command line tools from flags and
// MINICHESS_* environment variables.
package config

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	bb "github.com/jimherefornonsense/mini-chess/bitboard"
)

const (
	ConfigDebug       = "debug"
	ConfigLayout      = "layout"
	ConfigLayoutFile  = "layout-file"
	ConfigHistoryFile = "history-file"
	ConfigDepth       = "depth"
	ConfigRepeat      = "repeat"
	ConfigDivide      = "divide"
	ConfigVerify      = "verify"
	ConfigColor       = "color"
	ConfigCPUProfile  = "cpuprofile"
	ConfigMemProfile  = "memprofile"
)

const envPrefix = "MINICHESS"

type Config struct {
	*viper.Viper
}

// Load parses args into a fresh viper instance. Flags win over the
// environment, which wins over the defaults. Positional arguments are
// returned for the caller.
func (c *Config) Load(name string, args []string) ([]string, error) {
	c.Viper = viper.New()

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigLayout, bb.MiniLayout, "starting layout, rows separated by '/'")
	fs.String(ConfigLayoutFile, "", "read the starting layout from this file instead")
	fs.String(ConfigHistoryFile, "/tmp/minichess_readline.tmp", "shell history file")
	fs.Int(ConfigDepth, 3, "perft depth")
	fs.Int(ConfigRepeat, 1, "number of timed perft runs")
	fs.Bool(ConfigDivide, false, "print per-square divide counts")
	fs.Bool(ConfigVerify, false, "cross-check the layout against the reference generators")
	fs.String(ConfigColor, "white", "side to move first")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	fs.String(ConfigMemProfile, "", "write a heap profile to this file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := c.BindPFlags(fs); err != nil {
		return nil, err
	}
	c.SetEnvPrefix(envPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return fs.Args(), nil
}

// StartingLayout returns the layout named by layout-file if set, otherwise
// the layout string.
func (c *Config) StartingLayout() (bb.Layout, error) {
	if path := c.GetString(ConfigLayoutFile); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return bb.ParseLayout(string(raw))
	}
	return bb.ParseLayout(c.GetString(ConfigLayout))
}

// SanitizedSettings returns the settings for logging at startup.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
