package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "ATLAS"
	DateLayout = "2006-01-02"
)

type Config struct {
	Database   DatabaseConfig   `mapstructure:"database"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Frontline  FrontlineConfig  `mapstructure:"frontline"`
	Explosions ExplosionsConfig `mapstructure:"explosions"`
	Server     ServerConfig     `mapstructure:"server"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type CatalogConfig struct {
	Path       string `mapstructure:"path"`
	AwsProfile string `mapstructure:"aws_profile"`
	CacheDir   string `mapstructure:"cache_dir"`
}

type AnchorConfig struct {
	Name      string  `mapstructure:"name"`
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
}

type MonthlyConfig struct {
	Start      string `mapstructure:"start"`
	StrideDays int    `mapstructure:"stride_days"`
	Steps      int    `mapstructure:"steps"`
}

type FrontlineConfig struct {
	NorthernCutoff  string                    `mapstructure:"northern_cutoff"`
	MinLatitude     float64                   `mapstructure:"northern_min_latitude"`
	MaxLongitude    float64                   `mapstructure:"northern_max_longitude"`
	BufferTolerance float64                   `mapstructure:"buffer_tolerance"`
	Monthly         MonthlyConfig             `mapstructure:"monthly"`
	Anchors         map[string][]AnchorConfig `mapstructure:"anchors"`
}

type ExplosionsConfig struct {
	CachePath        string  `mapstructure:"cache_path"`
	UseCache         bool    `mapstructure:"use_cache"`
	RadiusKm         float64 `mapstructure:"radius_km"`
	WindowBeforeDays int     `mapstructure:"window_before_days"`
	WindowAfterDays  int     `mapstructure:"window_after_days"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", ":memory:")
	v.SetDefault("catalog.path", "datasets.ini")
	v.SetDefault("catalog.aws_profile", "")
	v.SetDefault("catalog.cache_dir", "")

	v.SetDefault("frontline.northern_cutoff", "2022-04-07")
	v.SetDefault("frontline.northern_min_latitude", 50.20)
	v.SetDefault("frontline.northern_max_longitude", 35.0364)
	v.SetDefault("frontline.buffer_tolerance", 0.01)
	v.SetDefault("frontline.monthly.start", "2022-03-07")
	v.SetDefault("frontline.monthly.stride_days", 30)
	v.SetDefault("frontline.monthly.steps", 11)

	v.SetDefault("explosions.cache_path", "civilian_explosions.csv")
	v.SetDefault("explosions.use_cache", true)
	v.SetDefault("explosions.radius_km", 100.0)
	v.SetDefault("explosions.window_before_days", 21)
	v.SetDefault("explosions.window_after_days", 10)

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("logging.level", "info")
}

// LoadConfig reads the YAML file at path on top of the built-in defaults.
// An empty path yields the defaults; ATLAS_* variables override both.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse atlas config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := c.Frontline.Cutoff(); err != nil {
		return err
	}
	if _, err := c.Frontline.Monthly.StartDate(); err != nil {
		return err
	}
	if c.Frontline.BufferTolerance < 0 {
		return fmt.Errorf("frontline.buffer_tolerance must not be negative")
	}
	if c.Frontline.Monthly.StrideDays <= 0 || c.Frontline.Monthly.Steps <= 0 {
		return fmt.Errorf("frontline.monthly stride_days and steps must be positive")
	}
	if c.Explosions.RadiusKm <= 0 {
		return fmt.Errorf("explosions.radius_km must be positive")
	}
	return nil
}

// Cutoff returns the zero time when no northern cutoff is configured.
func (f FrontlineConfig) Cutoff() (time.Time, error) {
	if f.NorthernCutoff == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, f.NorthernCutoff)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid frontline.northern_cutoff: %w", err)
	}
	return t, nil
}

func (m MonthlyConfig) StartDate() (time.Time, error) {
	t, err := time.Parse(DateLayout, m.Start)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid frontline.monthly.start: %w", err)
	}
	return t, nil
}

func (e ExplosionsConfig) WindowBefore() time.Duration {
	return time.Duration(e.WindowBeforeDays) * 24 * time.Hour
}

func (e ExplosionsConfig) WindowAfter() time.Duration {
	return time.Duration(e.WindowAfterDays) * 24 * time.Hour
}

func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}
