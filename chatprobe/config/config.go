package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "CHATPROBE_CONFIG"

type Config struct {
	BaseURL string        `yaml:"base_url" env:"CHATPROBE_BASE_URL" env-default:"http://127.0.0.1:8000"`
	Timeout time.Duration `yaml:"timeout" env:"CHATPROBE_TIMEOUT" env-default:"0s"`
	Log     Log           `yaml:"log"`
	Stub    Stub          `yaml:"stub"`
}

type Log struct {
	Dir     string `yaml:"dir" env:"CHATPROBE_LOG_DIR" env-default:"./logs"`
	Level   string `yaml:"level" env:"CHATPROBE_LOG_LEVEL" env-default:"info"`
	Console bool   `yaml:"console" env:"CHATPROBE_LOG_CONSOLE" env-default:"false"`
}

// Stub configures the in-memory chat service.
type Stub struct {
	Addr string `yaml:"addr" env:"CHATPROBE_STUB_ADDR" env-default:":8000"`
}

// LoadConfig reads path when given, or CHATPROBE_CONFIG, falling back to the
// environment alone. An optional .env in the working directory is applied first;
// variables already set win over it.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("read config from env: %w", err)
		}
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}
