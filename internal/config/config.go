package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"

	"github.com/jwalitptl/passcheck/pkg/generator"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Generator GeneratorConfig `mapstructure:"generator"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port" envconfig:"PORT"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" envconfig:"REQUEST_TIMEOUT"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes" envconfig:"MAX_BODY_BYTES"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" envconfig:"LOG_LEVEL"`
	Pretty bool   `mapstructure:"pretty" envconfig:"LOG_PRETTY"`
}

type GeneratorConfig struct {
	DefaultLength int `mapstructure:"default_length" envconfig:"GENERATOR_DEFAULT_LENGTH"`
}

type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled" envconfig:"RATE_LIMIT_ENABLED"`
	// Backend is "memory" or "redis"
	Backend  string        `mapstructure:"backend" envconfig:"RATE_LIMIT_BACKEND"`
	RPS      float64       `mapstructure:"rps" envconfig:"RATE_LIMIT_RPS"`
	Burst    int           `mapstructure:"burst" envconfig:"RATE_LIMIT_BURST"`
	RedisURL string        `mapstructure:"redis_url" envconfig:"REDIS_URL"`
	Window   time.Duration `mapstructure:"window" envconfig:"RATE_LIMIT_WINDOW"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" envconfig:"CORS_ALLOWED_ORIGINS"`
}

type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled" envconfig:"METRICS_ENABLED"`
	Path      string `mapstructure:"path" envconfig:"METRICS_PATH"`
	Namespace string `mapstructure:"namespace" envconfig:"METRICS_NAMESPACE"`
}

// EnvPrefix prefixes every environment override, e.g. PASSCHECK_PORT
const EnvPrefix = "PASSCHECK"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.request_timeout", 5*time.Second)
	v.SetDefault("server.max_body_bytes", 1<<16)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.SetDefault("generator.default_length", generator.DefaultLength)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.backend", "memory")
	v.SetDefault("rate_limit.rps", 5)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("rate_limit.window", time.Minute)

	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.namespace", "passcheck")
}

// LoadConfig reads config.yaml from the given paths (default "." and
// "./config"), then applies PASSCHECK_* environment overrides. A missing
// config file is not an error.
func LoadConfig(paths ...string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	for _, section := range []interface{}{
		&config.Server, &config.Log, &config.Generator,
		&config.RateLimit, &config.CORS, &config.Metrics,
	} {
		if err := envconfig.Process(EnvPrefix, section); err != nil {
			return nil, fmt.Errorf("failed to process environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks values that would otherwise fail at first use
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Generator.DefaultLength < generator.MinLength || c.Generator.DefaultLength > generator.MaxLength {
		return fmt.Errorf("generator default length %d not in [%d, %d]",
			c.Generator.DefaultLength, generator.MinLength, generator.MaxLength)
	}
	if !c.RateLimit.Enabled {
		return nil
	}
	switch c.RateLimit.Backend {
	case "memory":
	case "redis":
		if c.RateLimit.RedisURL == "" {
			return errors.New("rate_limit.redis_url is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown rate limit backend %q", c.RateLimit.Backend)
	}
	return nil
}
