package models

import "time"

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Redis      RedisConfig
	NATS       NATSConfig
	JWT        JWTConfig
	Sheet      SheetConfig
	Simulation SimulationConfig
	Gemini     GeminiConfig
	Auth       AuthConfig
	NewRelic   NewRelicConfig
	Logger     LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// SheetConfig points at the spreadsheet-backed script endpoint that serves
// both terminal rows and user rows.
type SheetConfig struct {
	URL     string
	Timeout time.Duration
}

// SimulationConfig controls the demo GPS random walk
type SimulationConfig struct {
	Enabled     bool
	Interval    time.Duration
	StepDegrees float64
}

// GeminiConfig contains the text-generation API settings
type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// AuthConfig contains login behaviour switches
type AuthConfig struct {
	FallbackEnabled      bool
	SessionCheckInterval time.Duration // how often expired sessions are noticed
}

// NewRelicConfig contains APM agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
