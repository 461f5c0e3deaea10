package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Location LocationConfig `mapstructure:"location"`
	Zmanim   ZmanimConfig   `mapstructure:"zmanim"`
	Catalog  CatalogConfig  `mapstructure:"catalog" validate:"required"`
	Events   EventsConfig   `mapstructure:"events"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" validate:"gte=0"`
}

// LocationConfig is the server's default observation point for zmanim.
// A fully empty location is valid and simply disables default zmanim
// computation.
type LocationConfig struct {
	Latitude  *float64 `mapstructure:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `mapstructure:"longitude" validate:"omitempty,gte=-180,lte=180"`
	TimeZone  string   `mapstructure:"time_zone"`
	// Israel selects the Israeli holiday scheme for event lookups.
	Israel bool `mapstructure:"israel"`
}

// Set reports whether a default location is configured at all.
func (l LocationConfig) Set() bool {
	return l.Latitude != nil || l.Longitude != nil || l.TimeZone != ""
}

// ZmanimConfig carries the halachic calculation knobs.
type ZmanimConfig struct {
	// CandleLightingMinutes is the gap before sunset for candle lighting.
	CandleLightingMinutes int `mapstructure:"candle_lighting_minutes" validate:"gte=0"`
	// UseMagenAvraham switches the proportional-hour clock from the
	// sunrise-to-sunset day to the dawn-to-nightfall day.
	UseMagenAvraham bool `mapstructure:"use_magen_avraham"`
}

// CatalogConfig locates the liturgical catalog on disk.
type CatalogConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

// EventsConfig configures the external calendar-event source. An empty
// base URL keeps the built-in default; Enabled false runs fully offline.
type EventsConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	BaseURL        string `mapstructure:"base_url" validate:"omitempty,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
}
