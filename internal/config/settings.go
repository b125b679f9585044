package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var Formats = []string{"json", "yaml", "msgpack"}

// Settings are the runtime knobs of simsvc, independent of what is being
// simulated.
type Settings struct {
	LogLevel   string        `mapstructure:"logLevel"`
	LogConsole bool          `mapstructure:"logConsole"`
	Workers    int           `mapstructure:"workers"`
	Seed       int64         `mapstructure:"seed"`
	Format     string        `mapstructure:"format"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Grid       int           `mapstructure:"grid"`
}

// Load reads simsvc.yaml from dir when present. Defaults apply otherwise,
// and SIMSVC_* environment variables override both.
func Load(dir string) (Settings, error) {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logConsole", true)
	viper.SetDefault("workers", 0)
	viper.SetDefault("seed", 12345)
	viper.SetDefault("format", "json")
	viper.SetDefault("timeout", "0s")
	viper.SetDefault("grid", 20)

	viper.SetConfigName("simsvc")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(dir)
	viper.SetEnvPrefix("SIMSVC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	s.Format = strings.ToLower(s.Format)
	if !slices.Contains(Formats, s.Format) {
		return Settings{}, fmt.Errorf("unknown output format %q, want one of %v", s.Format, Formats)
	}
	return s, nil
}
