package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Paths     PathsConfig     `yaml:"paths" envconfig:"PATHS"`
	Scraper   ScraperConfig   `yaml:"scraper" envconfig:"SCRAPER"`
	Analysis  AnalysisConfig  `yaml:"analysis" envconfig:"ANALYSIS"`
	Scheduler SchedulerConfig `yaml:"scheduler" envconfig:"SCHEDULER"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output string `yaml:"output" envconfig:"OUTPUT" default:"console"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	DataDir      string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	DatabaseFile string `yaml:"database_file" envconfig:"DATABASE_FILE" default:"prices.db"`
	ReportsDir   string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"reports"`
}

// ScraperConfig controls how price histories are downloaded
type ScraperConfig struct {
	RequestsPerSecond float64       `yaml:"requests_per_second" envconfig:"REQUESTS_PER_SECOND" default:"2"`
	Concurrency       int           `yaml:"concurrency" envconfig:"CONCURRENCY" default:"4"`
	Timeout           time.Duration `yaml:"timeout" envconfig:"TIMEOUT" default:"30s"`
	RetryCount        int           `yaml:"retry_count" envconfig:"RETRY_COUNT" default:"3"`
}

// AnalysisConfig controls the seasonal sweep defaults
type AnalysisConfig struct {
	Concurrency int `yaml:"concurrency" envconfig:"CONCURRENCY" default:"4"`
	AverageDays int `yaml:"average_days" envconfig:"AVERAGE_DAYS" default:"1"`
	TopN        int `yaml:"top_n" envconfig:"TOP_N" default:"20"`
}

// SchedulerConfig controls the nightly data refresh
type SchedulerConfig struct {
	Enabled bool   `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	Refresh string `yaml:"refresh" envconfig:"REFRESH" default:"0 30 18 * * MON-FRI"`
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("NQ", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg.merge(fileCfg)
	}

	if err := cfg.resolvePaths(); err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// merge overlays non-zero file values onto the env-derived config.
// Environment variables win only where the file is silent.
func (c *Config) merge(file *Config) {
	if file.Server.Port != 0 {
		c.Server.Port = file.Server.Port
	}
	if file.Server.ReadTimeout != 0 {
		c.Server.ReadTimeout = file.Server.ReadTimeout
	}
	if file.Server.WriteTimeout != 0 {
		c.Server.WriteTimeout = file.Server.WriteTimeout
	}
	if file.Logging.Level != "" {
		c.Logging.Level = file.Logging.Level
	}
	if file.Logging.Format != "" {
		c.Logging.Format = file.Logging.Format
	}
	if file.Paths.DataDir != "" {
		c.Paths.DataDir = file.Paths.DataDir
	}
	if file.Paths.DatabaseFile != "" {
		c.Paths.DatabaseFile = file.Paths.DatabaseFile
	}
	if file.Paths.ReportsDir != "" {
		c.Paths.ReportsDir = file.Paths.ReportsDir
	}
	if file.Scraper.RequestsPerSecond != 0 {
		c.Scraper.RequestsPerSecond = file.Scraper.RequestsPerSecond
	}
	if file.Scraper.Concurrency != 0 {
		c.Scraper.Concurrency = file.Scraper.Concurrency
	}
	if file.Analysis.Concurrency != 0 {
		c.Analysis.Concurrency = file.Analysis.Concurrency
	}
	if file.Scheduler.Refresh != "" {
		c.Scheduler.Refresh = file.Scheduler.Refresh
	}
}

func getConfigFilePath() string {
	if path := os.Getenv("NQ_CONFIG_FILE"); path != "" {
		return path
	}
	return "nordquant.yaml"
}

func (c *Config) resolvePaths() error {
	abs, err := filepath.Abs(c.Paths.DataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	c.Paths.DataDir = abs

	if !filepath.IsAbs(c.Paths.DatabaseFile) {
		c.Paths.DatabaseFile = filepath.Join(c.Paths.DataDir, c.Paths.DatabaseFile)
	}
	if !filepath.IsAbs(c.Paths.ReportsDir) {
		c.Paths.ReportsDir = filepath.Join(c.Paths.DataDir, c.Paths.ReportsDir)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}
	if c.Scraper.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests per second must be positive, got %v", c.Scraper.RequestsPerSecond)
	}
	if c.Scraper.Concurrency < 1 {
		return fmt.Errorf("scraper concurrency must be at least 1, got %d", c.Scraper.Concurrency)
	}
	if c.Analysis.Concurrency < 1 {
		return fmt.Errorf("analysis concurrency must be at least 1, got %d", c.Analysis.Concurrency)
	}
	if c.Analysis.AverageDays < 1 {
		return fmt.Errorf("average days must be at least 1, got %d", c.Analysis.AverageDays)
	}
	return nil
}

// EnsureDirs creates the configured directories if they do not exist.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.ReportsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
