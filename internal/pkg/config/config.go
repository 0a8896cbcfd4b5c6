package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
)

// InitConfig loads the env file when running locally and builds the
// application config from the environment.
func InitConfig(configPath string) *models.Config {
	v := newViper()
	if v.GetString("APP_ENV") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "drb-operacao")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 10)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 10)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "nats://localhost:4222")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRATION", 480)
	v.SetDefault("JWT_ISSUER", "drb-operacao")

	v.SetDefault("SHEET_URL", "")
	v.SetDefault("SHEET_TIMEOUT", "10s")

	v.SetDefault("SIM_ENABLED", true)
	v.SetDefault("SIM_INTERVAL", "3s")
	v.SetDefault("SIM_STEP_DEGREES", 0.005)

	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_TEMPERATURE", 0.4)
	v.SetDefault("GEMINI_TIMEOUT", "30s")

	v.SetDefault("AUTH_FALLBACK_ENABLED", true)
	v.SetDefault("AUTH_SESSION_CHECK_INTERVAL", "30s")

	v.SetDefault("NEW_RELIC_LICENSE_KEY", "")
	v.SetDefault("NEW_RELIC_APP_NAME", "drb-operacao")
	v.SetDefault("NEW_RELIC_ENABLED", false)
	v.SetDefault("NEW_RELIC_FORWARD_LOGS", false)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NATS config
	configs.NATS.URL = v.GetString("NATS_URL")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// Backend sheet
	configs.Sheet.URL = v.GetString("SHEET_URL")
	configs.Sheet.Timeout = durationOr(v, "SHEET_TIMEOUT", 10*time.Second)

	// Simulation
	configs.Simulation.Enabled = v.GetBool("SIM_ENABLED")
	configs.Simulation.Interval = durationOr(v, "SIM_INTERVAL", 3*time.Second)
	configs.Simulation.StepDegrees = v.GetFloat64("SIM_STEP_DEGREES")

	// Gemini
	configs.Gemini.APIKey = v.GetString("GEMINI_API_KEY")
	configs.Gemini.Model = v.GetString("GEMINI_MODEL")
	configs.Gemini.Temperature = float32(v.GetFloat64("GEMINI_TEMPERATURE"))
	configs.Gemini.Timeout = durationOr(v, "GEMINI_TIMEOUT", 30*time.Second)

	// Auth
	configs.Auth.FallbackEnabled = v.GetBool("AUTH_FALLBACK_ENABLED")
	configs.Auth.SessionCheckInterval = durationOr(v, "AUTH_SESSION_CHECK_INTERVAL", 30*time.Second)

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

// durationOr reads a duration, warning and falling back on malformed input
func durationOr(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: Invalid duration value for %s, using default: %s", key, def)
		return def
	}
	return d
}
