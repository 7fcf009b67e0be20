package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Upstream struct {
		BaseURL     string `yaml:"base_url"`
		ListShape   string `yaml:"list_shape"`
		SearchShape string `yaml:"search_shape"`
		APIKey      string `yaml:"-"`
	} `yaml:"upstream"`
	S3 struct {
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
		Endpoint  string `yaml:"endpoint"`
		PublicURL string `yaml:"public_url"`
		AccessKey string `yaml:"-"`
		SecretKey string `yaml:"-"`
	} `yaml:"s3"`
	JWT struct {
		Secret string `yaml:"-"`
	} `yaml:"jwt"`
}

func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	// Secrets come from the environment, not the config file. A missing
	// upstream key degrades to an empty x-api-key header upstream instead
	// of failing locally.
	cfg.Upstream.APIKey = os.Getenv("UPSTREAM_API_KEY")
	cfg.S3.AccessKey = os.Getenv("S3_ACCESS_KEY")
	cfg.S3.SecretKey = os.Getenv("S3_SECRET_KEY")
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")

	return cfg
}
