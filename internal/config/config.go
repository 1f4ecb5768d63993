package config

import (
	"flag"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

type Config struct {
	Env     string          `yaml:"env" env-default:"development"` // environment
	Server  ServerConfig    `yaml:"server"`
	Catalog []ProductConfig `yaml:"catalog" validate:"dive"`
}

// ServerConfig выбирает вариант хранилища товаров
type ServerConfig struct {
	Kind string `yaml:"kind" env:"SERVER_KIND" env-default:"list" validate:"oneof=list map"`
}

// ProductConfig - товар каталога в исходном виде, название проверяется при сборке приложения
type ProductConfig struct {
	Name  string  `yaml:"name" validate:"required"`
	Price float64 `yaml:"price"`
}

var validate = validator.New()

// MustLoad - если не загружаем - паникуем
func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		log.Fatal("CONFIG_PATH not exists")
	}
	return MustLoadByPath(configPath)
}

func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return path
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file not found: " + configPath)
	}

	cfg, err := LoadByPath(configPath)
	if err != nil {
		log.Fatalf("can't read config file %s: %v", configPath, err)
	}

	return cfg
}

// LoadByPath читает конфиг из файла и переменных окружения и проверяет его
func LoadByPath(configPath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, errors.Wrapf(err, "read config %s", configPath)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, errors.Wrapf(err, "validate config %s", configPath)
	}

	return &cfg, nil
}
