package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string `yaml:"env" env:"ENV" env-default:"local"`
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-required:"true"`
	RedisAddr   string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	HTTPServer  `yaml:"http_server"`
	SummaryAPI  `yaml:"summary_api"`
	Jobs        `yaml:"jobs"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" env-default:"localhost:8080"`
	Timeout         time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"15s"`
}

// SummaryAPI points at the external text-generation service used for monthly
// monitoring summaries. An empty URL disables the summarize endpoint.
type SummaryAPI struct {
	URL     string        `yaml:"url" env:"SUMMARY_API_URL" env-default:""`
	APIKey  string        `yaml:"api_key" env:"SUMMARY_API_KEY" env-default:""`
	Timeout time.Duration `yaml:"timeout" env-default:"30s"`
}

type Jobs struct {
	// Cron expression for the sweep that flips pending finance records past their
	// due date to LATE.
	OverdueSchedule string `yaml:"overdue_schedule" env-default:"0 3 * * *"`
}

func MustLoad() *Config {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("Config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	return &cfg
}
