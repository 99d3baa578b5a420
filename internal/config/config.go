// README: Config loader reading an optional YAML file and env overrides for HTTP, DB, Redis, AI and Maps.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the variable holding an optional YAML config file.
const PathEnv = "ONEYATRA_CONFIG"

type Config struct {
	HTTP  HTTPConfig  `yaml:"http"`
	Log   LogConfig   `yaml:"log"`
	DB    DBConfig    `yaml:"db"`
	Redis RedisConfig `yaml:"redis"`
	AI    AIConfig    `yaml:"ai"`
	Maps  MapsConfig  `yaml:"maps"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr" env:"ONEYATRA_HTTP_ADDR" env-default:":8080"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"ONEYATRA_LOG_LEVEL" env-default:"info"`
}

// DBConfig is optional; an empty DSN disables click analytics persistence.
type DBConfig struct {
	DSN string `yaml:"dsn" env:"ONEYATRA_DB_DSN"`
}

// RedisConfig is optional; an empty address disables the route cache.
type RedisConfig struct {
	Addr          string        `yaml:"addr" env:"ONEYATRA_REDIS_ADDR"`
	RouteCacheTTL time.Duration `yaml:"route_cache_ttl" env:"ONEYATRA_ROUTE_CACHE_TTL" env-default:"15m"`
}

// AIConfig gates live generation: without GeminiKey the planner serves mock data.
type AIConfig struct {
	GeminiKey      string        `yaml:"gemini_key" env:"GEMINI_API_KEY"`
	Model          string        `yaml:"model" env:"ONEYATRA_AI_MODEL"`
	Timeout        time.Duration `yaml:"timeout" env:"ONEYATRA_AI_TIMEOUT" env-default:"30s"`
	RetryBaseDelay time.Duration `yaml:"retry_base_delay" env:"ONEYATRA_AI_RETRY_BASE_DELAY" env-default:"1s"`
	MaxRetries     int           `yaml:"max_retries" env:"ONEYATRA_AI_MAX_RETRIES" env-default:"3"`
}

type MapsConfig struct {
	APIKey string `yaml:"api_key" env:"GOOGLE_MAPS_API_KEY"`
}

// Load reads the YAML file named by ONEYATRA_CONFIG when set, then applies environment variables.
func Load() (Config, error) {
	return LoadFromPath(os.Getenv(PathEnv))
}

func LoadFromPath(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env config: %w", err)
	}

	if cfg.AI.MaxRetries < 0 {
		return Config{}, fmt.Errorf("ONEYATRA_AI_MAX_RETRIES must not be negative, got %d", cfg.AI.MaxRetries)
	}
	return cfg, nil
}
