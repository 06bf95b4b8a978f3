package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultAPIBase is used when API_BASE is not configured anywhere.
const DefaultAPIBase = "https://church-automation-api.up.railway.app"

// Config holds runtime settings shared by the API server and the CLI.
type Config struct {
	Addr              string        `yaml:"addr"`
	DataDir           string        `yaml:"data_dir"`
	AssetsDir         string        `yaml:"assets_dir"`
	APIBase           string        `yaml:"api_base"`
	DefaultVersion    string        `yaml:"default_version"`
	DefaultBackground string        `yaml:"default_background"`
	DefaultHymnal     string        `yaml:"default_hymnal"`
	GeneratorTimeout  time.Duration `yaml:"generator_timeout"`
	GeneratorRPS      float64       `yaml:"generator_rps"`
	AllowedOrigins    []string      `yaml:"allowed_origins"`
	MaxUploadBytes    int64         `yaml:"max_upload_bytes"`
	RateLimitRPS      float64       `yaml:"rate_limit_rps"`
	RateLimitBurst    int           `yaml:"rate_limit_burst"`
	LogLevel          string        `yaml:"log_level"`
	EnableHSTS        bool          `yaml:"enable_hsts"`
}

func Default() Config {
	return Config{
		Addr:              ":8080",
		DataDir:           "data",
		AssetsDir:         "public",
		APIBase:           DefaultAPIBase,
		DefaultVersion:    "NRSVUE",
		DefaultBackground: "images/backgrounds/default.jpg",
		DefaultHymnal:     "UMH",
		GeneratorTimeout:  2 * time.Minute,
		GeneratorRPS:      2,
		AllowedOrigins:    []string{"http://localhost:3000", "http://localhost:3001"},
		MaxUploadBytes:    10 << 20,
		RateLimitRPS:      1,
		RateLimitBurst:    5,
		LogLevel:          "info",
	}
}

// LoadEnvFiles reads .env and .env.local without overriding variables
// already present in the process environment.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load builds the configuration from defaults, an optional YAML file named
// by CONFIG_FILE and finally environment variables.
func Load() (Config, error) {
	LoadEnvFiles()

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Addr, "APP_ADDR")
	setString(&c.DataDir, "DATA_DIR")
	setString(&c.AssetsDir, "ASSETS_DIR")
	setString(&c.APIBase, "API_BASE")
	setString(&c.DefaultVersion, "DEFAULT_VERSION")
	setString(&c.DefaultBackground, "DEFAULT_BACKGROUND")
	setString(&c.DefaultHymnal, "DEFAULT_HYMNAL")
	setString(&c.LogLevel, "LOG_LEVEL")

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = splitList(v)
	}

	if v := os.Getenv("GENERATOR_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("GENERATOR_TIMEOUT: %w", err)
		}
		c.GeneratorTimeout = d
	}
	if err := setFloat(&c.GeneratorRPS, "GENERATOR_RPS"); err != nil {
		return err
	}
	if err := setFloat(&c.RateLimitRPS, "RATE_LIMIT_RPS"); err != nil {
		return err
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT_BURST: %w", err)
		}
		c.RateLimitBurst = n
	}
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MAX_UPLOAD_BYTES: %w", err)
		}
		c.MaxUploadBytes = n
	}

	if v := os.Getenv("ENABLE_HSTS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ENABLE_HSTS: %w", err)
		}
		c.EnableHSTS = b
	}

	c.APIBase = strings.TrimRight(c.APIBase, "/")
	if c.APIBase == "" {
		c.APIBase = DefaultAPIBase
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setFloat(dst *float64, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
