package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"os"
	"time"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	ProgramID  string     `yaml:"program_id" env:"PROGRAM_ID" env-required:"true"`
	Storage    string     `yaml:"storage" env:"STORAGE" env-default:"memory"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	NATS       NATS       `yaml:"nats"`
	Escrow     Escrow     `yaml:"escrow"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Database struct {
	Host         string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port         int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User         string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password     string `yaml:"password" env:"DB_PASSWORD"`
	DBName       string `yaml:"dbname" env:"DB_NAME" env-default:"event_escrow"`
	SSLMode      string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
	MaxOpenConns int    `yaml:"max_open_conns" env-default:"25"`
	MaxIdleConns int    `yaml:"max_idle_conns" env-default:"5"`
}

// NATS is optional; receipts are not published when URL is empty.
type NATS struct {
	URL string `yaml:"url" env:"NATS_URL"`
}

type Escrow struct {
	SponsorCounting          string `yaml:"sponsor_counting" env:"ESCROW_SPONSOR_COUNTING" env-default:"per_call"`
	SponsorWhileInactive     bool   `yaml:"sponsor_while_inactive" env:"ESCROW_SPONSOR_WHILE_INACTIVE"`
	CloseRequiresEmptyVaults bool   `yaml:"close_requires_empty_vaults" env:"ESCROW_CLOSE_REQUIRES_EMPTY_VAULTS"`
}

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	switch cfg.Storage {
	case StorageMemory, StoragePostgres:
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}

	return &cfg, nil
}
