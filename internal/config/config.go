package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Pricing   PricingConfig   `yaml:"pricing"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// PricingConfig contains settlement rate settings
type PricingConfig struct {
	// FuelFeeCentsPerPct is charged per percent of fuel missing at return.
	FuelFeeCentsPerPct int64 `yaml:"fuel_fee_cents_per_pct"`
	// DefaultKmRateCents is the fallback per-kilometre overage rate for
	// vehicles without a catalog rate.
	DefaultKmRateCents int64 `yaml:"default_km_rate_cents"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	AuditVehiclePricing   string `yaml:"audit_vehicle_pricing"`
	ScanOdometerAnomalies string `yaml:"scan_odometer_anomalies"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Pricing
	if val := os.Getenv("FUEL_FEE_CENTS_PER_PCT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Pricing.FuelFeeCentsPerPct)
	}
	if val := os.Getenv("DEFAULT_KM_RATE_CENTS"); val != "" {
		fmt.Sscanf(val, "%d", &c.Pricing.DefaultKmRateCents)
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Database validation
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	// Pricing defaults
	if c.Pricing.FuelFeeCentsPerPct < 0 {
		return fmt.Errorf("fuel fee rate must not be negative")
	}
	if c.Pricing.FuelFeeCentsPerPct == 0 {
		c.Pricing.FuelFeeCentsPerPct = 2 // 2 cents per percent
	}
	if c.Pricing.DefaultKmRateCents < 0 {
		return fmt.Errorf("default km rate must not be negative")
	}
	if c.Pricing.DefaultKmRateCents == 0 {
		c.Pricing.DefaultKmRateCents = 50 // €0.50 per km
	}

	// Scheduler defaults
	if c.Scheduler.AuditVehiclePricing == "" {
		c.Scheduler.AuditVehiclePricing = "0 0 2 * * *" // 2 AM UTC
	}
	if c.Scheduler.ScanOdometerAnomalies == "" {
		c.Scheduler.ScanOdometerAnomalies = "0 30 2 * * *" // 2:30 AM UTC
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
