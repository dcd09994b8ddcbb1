package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for environment-variable overrides
// (XAPP_LOGGING_LEVEL overrides logging.level).
const envPrefix = "XAPP"

// LoaderOption customizes Load behavior.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	envFile string
}

// WithEnvFile loads the given .env file before reading environment overrides.
func WithEnvFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.envFile = path }
}

// Load reads the configuration file at path into cfg.
//
// Precedence, lowest to highest: file values, .env file values,
// process environment. The file format is inferred from the extension.
func Load(path string, cfg interface{}, opts ...LoaderOption) error {
	var o loaderOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil {
			return fmt.Errorf("loading env file %s: %w", o.envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshaling config file %s: %w", path, err)
	}
	return nil
}
