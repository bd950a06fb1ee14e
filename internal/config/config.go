package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the log file sink, and the
// drill runner.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Log contains the file-sink settings. Console logging is always on;
	// the rotating file sink is attached only when ToFile is set.
	Log struct {
		// ToFile enables duplicating log entries into a rotating file
		ToFile bool `env:"LOG_TO_FILE" env-default:"false" yaml:"toFile"`
		// Dir is the directory holding the log file and its backups
		Dir string `env:"LOG_DIR" env-default:"logs" yaml:"dir"`
		// Filename is the name of the active log file inside Dir
		Filename string `env:"LOG_FILENAME" env-default:"drills.log" yaml:"filename"`
		// MaxBytes is the size threshold that triggers rotation
		MaxBytes int64 `env:"LOG_MAX_BYTES" env-default:"1048576" yaml:"maxBytes"`
		// MaxBackups bounds how many rotated files are retained
		MaxBackups int `env:"LOG_MAX_BACKUPS" env-default:"3" yaml:"maxBackups"`
		// Compress gzips rotated backups
		Compress bool `env:"LOG_COMPRESS" env-default:"false" yaml:"compress"`
	} `yaml:"log"`

	// Runner contains settings for executing drills
	Runner struct {
		// DataDir is where per-run scratch directories are created; empty means the system temp dir
		DataDir string `env:"RUNNER_DATA_DIR" env-default:"" yaml:"dataDir"`
		// StopOnFailure halts a run after the first failing drill
		StopOnFailure bool `env:"RUNNER_STOP_ON_FAILURE" env-default:"false" yaml:"stopOnFailure"`
		// KeepWorkdir preserves the per-run scratch directory for inspection
		KeepWorkdir bool `env:"RUNNER_KEEP_WORKDIR" env-default:"false" yaml:"keepWorkdir"`
	} `yaml:"runner"`
}

// Load receives the path for a yaml config file and returns a filled Config
// struct. A missing config file is not an error: defaults and environment
// variables alone are enough to run.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
