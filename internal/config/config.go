package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

type Storage struct {
	// Backend selects the key-value store: bolt, redis or memory.
	Backend string `yaml:"backend" env:"STORAGE_BACKEND" env-default:"bolt"`
	Path    string `yaml:"path" env:"STORAGE_PATH" env-default:"inventory.db"`
	Bucket  string `yaml:"bucket" env:"STORAGE_BUCKET" env-default:"inventory"`
	Key     string `yaml:"key" env:"STORAGE_KEY" env-default:"inventory_products"`
}

type RedisConnect struct {
	Addr     string `yaml:"REDIS_ADDR" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type Inventory struct {
	// MutationDelay is the cosmetic latency applied before create and
	// update operations. Zero by default, so tests run synchronously.
	MutationDelay time.Duration `yaml:"mutation_delay" env:"MUTATION_DELAY" env-default:"0s"`
	Locale        string        `yaml:"locale" env:"LOCALE" env-default:"en"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	Storage      Storage      `yaml:"storage"`
	RedisConnect RedisConnect `yaml:"redis"`
	Inventory    Inventory    `yaml:"inventory"`
}

func MustLoad() *Config {

	var configPath string

	configPath = os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {

			log.Fatal("Config path is not set")

		}

	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	err := cleanenv.ReadConfig(configPath, &cfg)

	if err != nil {

		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg

}
