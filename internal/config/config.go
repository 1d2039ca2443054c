package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // минуты
	} `yaml:"jwt"`

	Redis struct {
		URL string `yaml:"url"` // пусто = rate limiter отключен
	} `yaml:"redis"`

	RateLimit struct {
		LoginAttempts int `yaml:"login_attempts"`
		WindowSeconds int `yaml:"window_seconds"`
	} `yaml:"rate_limit"`

	Email struct {
		Enabled      bool   `yaml:"enabled"`
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Notify struct {
		DispatchTimeoutSeconds int `yaml:"dispatch_timeout_seconds"`
	} `yaml:"notify"`

	Maintenance struct {
		CronSpec      string `yaml:"cron_spec"`      // напр. "@every 6h"
		RetentionDays int    `yaml:"retention_days"` // хранение прочитанных уведомлений
	} `yaml:"maintenance"`

	Seed struct {
		AdminEmail    string `yaml:"admin_email"`
		AdminPassword string `yaml:"admin_password"`
	} `yaml:"seed"`
}

var AppConfig *Config

// LoadConfig загружает конфигурацию.
// Приоритет: переменные окружения (режим теста/контейнера) > config.yaml.
func LoadConfig() {
	var cfg Config

	// .env подхватывается если есть; отсутствие файла - не ошибка
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	log.Println("Загрузка конфигурации из переменных окружения")

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60
	cfg.Redis.URL = os.Getenv("REDIS_URL")
	cfg.Seed.AdminEmail = os.Getenv("SEED_ADMIN_EMAIL")
	cfg.Seed.AdminPassword = os.Getenv("SEED_ADMIN_PASSWORD")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.RateLimit.LoginAttempts == 0 {
		cfg.RateLimit.LoginAttempts = 10
	}
	if cfg.RateLimit.WindowSeconds == 0 {
		cfg.RateLimit.WindowSeconds = 60
	}
	if cfg.Notify.DispatchTimeoutSeconds == 0 {
		cfg.Notify.DispatchTimeoutSeconds = 3
	}
	if cfg.Maintenance.CronSpec == "" {
		cfg.Maintenance.CronSpec = "@every 6h"
	}
	if cfg.Maintenance.RetentionDays == 0 {
		cfg.Maintenance.RetentionDays = 30
	}
}

// SetConfig подменяет глобальную конфигурацию (для тестов)
func SetConfig(cfg *Config) {
	applyDefaults(cfg)
	AppConfig = cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
