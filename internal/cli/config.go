package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds CLI settings merged from defaults, config file, SECUREPASS_*
// environment variables and flags, in increasing priority.
type Config struct {
	Length   int  `mapstructure:"length"`
	Count    int  `mapstructure:"count"`
	Estimate bool `mapstructure:"estimate"`
	JSON     bool `mapstructure:"json"`
	Copy     bool `mapstructure:"copy"`
	Check    bool `mapstructure:"check"`
}

var defaults = map[string]any{
	"length":   12,
	"count":    1,
	"estimate": true,
	"json":     false,
	"copy":     false,
	"check":    false,
}

func loadConfig(v *viper.Viper, cmd *cobra.Command, cfgFile string) (Config, error) {
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("securepass")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "securepass"))
		}
	}

	v.SetEnvPrefix("SECUREPASS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, fmt.Errorf("binding flags: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
