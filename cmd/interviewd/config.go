package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"

	"github.com/hrkit/interviewd/internal/api"
	"github.com/hrkit/interviewd/internal/store"
	"github.com/hrkit/interviewd/pkg/environment"
	"github.com/hrkit/interviewd/pkg/errors"
)

type StorageConfig struct {
	// Driver selects the backing store: "mongo" or "memory".
	Driver string `yaml:"driver" env:"STORAGE_DRIVER"`

	Mongo store.MongoConfig `yaml:"mongo"`
}

type Config struct {
	Environment environment.Env `yaml:"environment"`
	API         api.Config      `yaml:"api"`
	Storage     StorageConfig   `yaml:"storage"`
}

var (
	configPath = flag.String("config", "config.yaml", "path to config file")
	rawEnv     = flag.String("env", "", "environment (dev, prod)")
)

// loadConfig reads the yaml config, then lets environment variables
// and flags override it, in that order.
func loadConfig() (*Config, error) {
	flag.Parse()

	path, err := filepath.Abs(*configPath)
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFail(err, "read config file")
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	err = env.Parse(&cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "apply env overrides")
	}

	if *rawEnv != "" {
		cfg.Environment = environment.FromString(*rawEnv)
	}

	return &cfg, nil
}
