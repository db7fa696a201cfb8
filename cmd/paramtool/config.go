package main

import (
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "PARAMS"

type Config struct {
	// Baseline is a .json or .yaml current-law file; empty uses the embedded table.
	Baseline string `envconfig:"BASELINE"`
	RedisURL string `envconfig:"REDIS_URL"`
	RedisKey string `envconfig:"REDIS_KEY" default:"paramtool"`

	Reform    string   `envconfig:"REFORM"`
	StartYear int      `envconfig:"START_YEAR" default:"2013"`
	NumYears  int      `envconfig:"NUM_YEARS" default:"12"`
	Names     []string `envconfig:"NAMES"`

	// Output is a .csv or .xlsx path; empty writes CSV to stdout.
	Output string `envconfig:"OUTPUT"`
	Debug  bool   `envconfig:"DEBUG"`
}

func LoadConfig() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
