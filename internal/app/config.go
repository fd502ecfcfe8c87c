package app

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"pwned/internal/lookup"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Pwned lookup.Config `mapstructure:"pwned"`
	Log   LogConfig     `mapstructure:"log"`

	// HTTP is optional; NewWire builds a pooled HTTP/2 client when nil.
	HTTP *http.Client `mapstructure:"-"`
}

// LogConfig selects the logger level and encoding ("console" or "json").
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig reads path, or pwned.{yaml,json,toml} from the working directory
// and $HOME/.pwned when path is empty, then applies PWNED_* environment
// overrides. A missing default config file is not an error.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pwned")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".pwned"))
		}
	}

	// pwned.useragent reads PWNED_USERAGENT.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("log.level", "PWNED_LOG_LEVEL")
	_ = v.BindEnv("log.format", "PWNED_LOG_FORMAT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := lookup.DefaultConfig()
	v.SetDefault("pwned.useragent", "")
	v.SetDefault("pwned.serviceapiurl", d.ServiceAPIURL)
	v.SetDefault("pwned.serviceapiversion", d.ServiceAPIVersion)
	v.SetDefault("pwned.serviceapikey", "")
	v.SetDefault("pwned.passwordsapiurl", d.PasswordsAPIURL)
	v.SetDefault("pwned.breachtimeout", d.BreachTimeout)
	v.SetDefault("pwned.breachretries", d.BreachRetries)
	v.SetDefault("pwned.breachbackoff", d.BreachBackoff)
	v.SetDefault("pwned.passwordtimeout", d.PasswordTimeout)
	v.SetDefault("pwned.passwordretries", d.PasswordRetries)
	v.SetDefault("pwned.passwordbackoff", d.PasswordBackoff)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
}
