// Package config holds the settings shared by lexicon construction and
// puzzle rules. Values come from defaults, an optional config file, and
// XWORDFILL_-prefixed environment variables, in increasing precedence.
package config

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	ConfigDataPath       = "data-path"
	ConfigWordList       = "word-list"
	ConfigMaxWordLength  = "max-word-length"
	ConfigDefaultLexicon = "default-lexicon"
	ConfigDebug          = "debug"
)

const (
	DefaultWordList      = "/usr/share/dict/words"
	DefaultMaxWordLength = 15
)

type Config struct {
	*viper.Viper
}

// DefaultConfig returns a config with defaults set and environment
// overrides bound. It does not read any file.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.SetDefault(ConfigDataPath, "./data")
	c.SetDefault(ConfigWordList, DefaultWordList)
	c.SetDefault(ConfigMaxWordLength, DefaultMaxWordLength)
	c.SetDefault(ConfigDefaultLexicon, "")
	c.SetDefault(ConfigDebug, false)

	c.SetEnvPrefix("XWORDFILL")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return c
}

// Load reads the given config file on top of the defaults. An empty path
// leaves the defaults and environment in place.
func (c *Config) Load(path string) error {
	if path != "" {
		c.SetConfigFile(path)
		if err := c.ReadInConfig(); err != nil {
			return err
		}
		log.Debug().Str("file", c.ConfigFileUsed()).Msg("loaded-config")
	}
	c.AdjustLogLevel()
	return nil
}

// AdjustLogLevel sets the global zerolog level from the debug setting.
func (c *Config) AdjustLogLevel() {
	if c.GetBool(ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func (c *Config) WordList() string {
	return c.GetString(ConfigWordList)
}

func (c *Config) MaxWordLength() int {
	return c.GetInt(ConfigMaxWordLength)
}

func (c *Config) DefaultLexicon() string {
	return c.GetString(ConfigDefaultLexicon)
}
