package store

import (
	"time"
)

type MongoConfig struct {
	URL     string        `yaml:"url"     env:"MONGO_URL"`
	Timeout time.Duration `yaml:"timeout" env:"MONGO_TIMEOUT"`

	Database string `yaml:"database" env:"MONGO_DATABASE"`

	Collections struct {
		Persons   string `yaml:"persons"`
		Timeslots string `yaml:"timeslots"`
	} `yaml:"collections"`

	Auth struct {
		Username string `yaml:"username" env:"MONGO_USERNAME"`
		Password string `yaml:"password" env:"MONGO_PASSWORD"`
	} `yaml:"auth"`
}
