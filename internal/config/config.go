package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/davidjspooner/ecsig/pkg/ecsig"
	"github.com/davidjspooner/ecsig/pkg/logevent"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Listen           string `yaml:"listen"`
	LogLevel         string `yaml:"log_level"`
	PemLabel         string `yaml:"pem_label"`
	BatchParallelism int    `yaml:"batch_parallelism"`
	ReadTimeout      string `yaml:"read_timeout"`
	MaxBodyBytes     int64  `yaml:"max_body_bytes"`

	// filled by resolve
	Level               slog.Level    `yaml:"-"`
	ReadTimeoutDuration time.Duration `yaml:"-"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	config := &Config{}
	if err := config.resolve(); err != nil {
		panic(err)
	}
	return config
}

// Load reads a yaml config file. An empty path gives the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	config, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

// Decode rejects unknown fields so typos in the file are reported.
func Decode(r io.Reader) (*Config, error) {
	config := &Config{}
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	err := d.Decode(config)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	err = config.resolve()
	if err != nil {
		return nil, err
	}
	return config, nil
}

func (config *Config) resolve() error {
	if config.Listen == "" {
		config.Listen = ":8001"
	}
	if config.PemLabel == "" {
		config.PemLabel = ecsig.DefaultPemLabel
	}
	if config.BatchParallelism == 0 {
		config.BatchParallelism = 10
	}
	if config.BatchParallelism < 0 {
		return fmt.Errorf("batch_parallelism must be positive, got %d", config.BatchParallelism)
	}
	if config.MaxBodyBytes == 0 {
		config.MaxBodyBytes = 64 * 1024
	}
	if config.MaxBodyBytes < 0 {
		return fmt.Errorf("max_body_bytes must be positive, got %d", config.MaxBodyBytes)
	}

	if config.ReadTimeout == "" {
		config.ReadTimeout = "10s"
	}
	readTimeout, err := time.ParseDuration(config.ReadTimeout)
	if err != nil {
		return fmt.Errorf("could not parse read timeout: %s", err)
	}
	config.ReadTimeoutDuration = readTimeout

	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	config.Level, err = logevent.ParseLevel(config.LogLevel)
	if err != nil {
		return fmt.Errorf("could not parse log level: %s", err)
	}
	return nil
}
