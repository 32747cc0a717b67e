package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"chess-rules/magicmg"
)

const (
	ConfigDebug         = "debug"
	ConfigFile          = "config"
	ConfigMagicSource   = "magic-source"
	ConfigMagicFile     = "magic-file"
	ConfigMagicSeed     = "magic-seed"
	ConfigMagicAttempts = "magic-attempts"
	ConfigMagicStrict   = "magic-strict"
	ConfigStartRecord   = "start-record"
	ConfigHistoryFile   = "history-file"
	ConfigCPUProfile    = "cpu-profile"
)

// Magic sources.
const (
	MagicSourcePrecomputed = "precomputed"
	MagicSourceSearch      = "search"
	MagicSourceFile        = "file"
)

const envPrefix = "chessrules"

var ErrBadMagicSource = errors.New("magic-source must be precomputed, search or file")

// Config layers command-line flags over CHESSRULES_* environment variables over
// an optional config file over defaults.
type Config struct {
	*viper.Viper
	args []string
}

func (c *Config) Load(args []string) error {
	c.Viper = viper.New()

	fs := pflag.NewFlagSet("chessrules", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigFile, "", "optional config file (yaml, toml or json)")
	fs.String(ConfigMagicSource, MagicSourcePrecomputed, "where slider magics come from: precomputed, search or file")
	fs.String(ConfigMagicFile, "", "YAML magic set to load when magic-source is file")
	fs.Uint32(ConfigMagicSeed, magicmg.DefaultSeed, "xorshift seed for the magic search")
	fs.Int(ConfigMagicAttempts, magicmg.MaxMagicAttempts, "candidate draws per square before the search gives up")
	fs.Bool(ConfigMagicStrict, true, "abort startup when a magic cannot be found")
	fs.String(ConfigStartRecord, magicmg.StartRecord, "position record a new game starts from")
	fs.String(ConfigHistoryFile, "/tmp/chessrules_history.tmp", "readline history file")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix(envPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if f := c.GetString(ConfigFile); f != "" {
		c.SetConfigFile(f)
		if err := c.ReadInConfig(); err != nil {
			return err
		}
	}
	c.args = fs.Args()
	return c.validate()
}

func (c *Config) validate() error {
	switch c.GetString(ConfigMagicSource) {
	case MagicSourcePrecomputed, MagicSourceSearch, MagicSourceFile:
		return nil
	}
	return ErrBadMagicSource
}

// Args returns the positional arguments left after flag parsing.
func (c *Config) Args() []string { return c.args }

// MagicOptions returns the search settings.
func (c *Config) MagicOptions() magicmg.MagicOptions {
	return magicmg.MagicOptions{
		Seed:        c.GetUint32(ConfigMagicSeed),
		MaxAttempts: c.GetInt(ConfigMagicAttempts),
		Strict:      c.GetBool(ConfigMagicStrict),
	}
}

// SanitizedSettings is AllSettings, for logging at startup.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
