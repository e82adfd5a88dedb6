package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const devConnectionString = "file:./stride-dev.db"

type Config struct {
	DB      DBConfig      `toml:"database"`
	Auth    AuthConfig    `toml:"auth"`
	Log     LogConfig     `toml:"log"`
	Display DisplayConfig `toml:"display"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // libsql://, https:// or a local sqlite file.
	AuthToken        string `toml:"auth_token"`
}

type AuthConfig struct {
	JWTSecret string   `toml:"jwt_secret"`
	Issuer    string   `toml:"issuer"`
	TokenTTL  Duration `toml:"token_ttl"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	File   string `toml:"file"`
	JSON   bool   `toml:"json"`
	Stdout bool   `toml:"stdout"`
}

type DisplayConfig struct {
	Timezone string `toml:"timezone"`
}

// Duration lets durations be written as "720h" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Returns the directory holding the config and the local state files.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "stride"), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Default() *Config {
	dir, err := GetConfigDir()
	if err != nil {
		dir = "."
	}

	return &Config{
		DB: DBConfig{
			ConnectionString: filepath.Join(dir, "stride.db"),
		},
		Auth: AuthConfig{
			Issuer:   "stride",
			TokenTTL: Duration{30 * 24 * time.Hour},
		},
		Log: LogConfig{
			Level: "warn",
		},
		Display: DisplayConfig{
			Timezone: "Local",
		},
	}
}

// LoadConfig reads the configuration from path (the default location when
// empty). A missing file is not an error: defaults and the environment are
// used instead.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return nil, err
		}
	}

	// A .env in the working directory is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := firstEnv("STRIDE_DATABASE_URL", "TURSO_DATABASE_URL"); v != "" {
		cfg.DB.ConnectionString = v
	}
	if v := getEnv("TURSO_AUTH_TOKEN"); v != "" {
		cfg.DB.AuthToken = v
	}
	if v := getEnv("STRIDE_JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := getEnv("STRIDE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Check for a DEV_MODE environment variable.
	if getEnv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = devConnectionString
		cfg.DB.AuthToken = ""
	}
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := getEnv(key); v != "" {
			return v
		}
	}
	return ""
}

// Location resolves the display timezone, falling back to the local zone.
func (c *Config) Location() *time.Location {
	if c.Display.Timezone == "" || c.Display.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
