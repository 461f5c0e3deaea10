package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally a config
// file. Environment variables take precedence over values from config
// files. Returns a populated Config struct or an error if loading or
// validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout", 10)
	v.SetDefault("zmanim.candle_lighting_minutes", 18)
	v.SetDefault("catalog.dir", "data/catalog")
	v.SetDefault("events.enabled", true)
	v.SetDefault("events.timeout_seconds", 10)

	// Optional config file in the working directory; absence is fine.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("LUACH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface env-only keys to Unmarshal;
	// each key has to be bound explicitly.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"server.shutdown_timeout",
		"location.latitude",
		"location.longitude",
		"location.time_zone",
		"location.israel",
		"zmanim.candle_lighting_minutes",
		"zmanim.use_magen_avraham",
		"catalog.dir",
		"events.enabled",
		"events.base_url",
		"events.timeout_seconds",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	if err := validateLocation(cfg.Location); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validateLocation enforces the all-or-nothing rule the struct tags
// cannot express: a usable location needs both coordinates and a zone.
func validateLocation(l LocationConfig) error {
	if !l.Set() {
		return nil
	}
	if l.Latitude == nil || l.Longitude == nil || l.TimeZone == "" {
		return errors.New("location requires latitude, longitude, and time_zone together")
	}
	return nil
}
