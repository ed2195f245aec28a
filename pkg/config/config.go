// Файл: pkg/config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port        string   `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// APIConfig описывает подключение к удалённому API обслуживания.
type APIConfig struct {
	Provider string `yaml:"provider"`
	BaseURL  string `yaml:"base_url"`
	Token    string `yaml:"token"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	// Timeout равный нулю означает отсутствие таймаута у HTTP-клиента.
	Timeout  time.Duration `yaml:"timeout"`
	TokenTTL time.Duration `yaml:"token_ttl"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type Config struct {
	Server ServerConfig `yaml:"server"`
	API    APIConfig    `yaml:"api"`
	Redis  RedisConfig  `yaml:"redis"`
	Log    LogConfig    `yaml:"log"`
}

const (
	ProviderHTTP = "http"
	ProviderMock = "mock"
)

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "8080",
			CORSOrigins: []string{"http://localhost:5173"},
		},
		API: APIConfig{
			Provider: ProviderHTTP,
			BaseURL:  "http://127.0.0.1:8001/api",
			TokenTTL: time.Hour,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// New собирает конфигурацию: значения по умолчанию, затем YAML-файл из CONFIG_FILE,
// затем переменные окружения (включая .env).
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := LoadFile(path, cfg); err != nil {
			log.Printf("Предупреждение: не удалось прочитать %s: %v", path, err)
		}
	}
	applyEnv(cfg)
	return cfg
}

// LoadFile накладывает значения из YAML-файла поверх cfg.
func LoadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("ошибка парсинга YAML конфигурации: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = getEnv("SERVER_PORT", cfg.Server.Port)
	if origins := getEnv("CORS_ORIGINS", ""); origins != "" {
		cfg.Server.CORSOrigins = splitList(origins)
	}

	cfg.API.Provider = getEnv("GEARGUARD_PROVIDER", cfg.API.Provider)
	cfg.API.BaseURL = strings.TrimRight(getEnv("GEARGUARD_API_URL", cfg.API.BaseURL), "/")
	cfg.API.Token = getEnv("GEARGUARD_API_TOKEN", cfg.API.Token)
	cfg.API.Username = getEnv("GEARGUARD_API_USERNAME", cfg.API.Username)
	cfg.API.Password = getEnv("GEARGUARD_API_PASSWORD", cfg.API.Password)
	cfg.API.Timeout = getEnvDuration("GEARGUARD_API_TIMEOUT", cfg.API.Timeout)
	cfg.API.TokenTTL = getEnvDuration("GEARGUARD_TOKEN_TTL", cfg.API.TokenTTL)

	cfg.Redis.Address = getEnv("REDIS_ADDRESS", cfg.Redis.Address)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvInt("REDIS_DB", cfg.Redis.DB)

	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = getEnv("LOG_FILE", cfg.Log.File)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Предупреждение: %s=%q не является числом, используется %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Предупреждение: %s=%q не является длительностью, используется %s", key, value, fallback)
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
