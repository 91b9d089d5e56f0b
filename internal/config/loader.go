package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfigPath names the variable that points at the YAML file.
const EnvConfigPath = "CONFIG_PATH"

// searchPaths are tried in order when CONFIG_PATH is unset.
var searchPaths = []string{"config.yaml", "configs/foodgram.yaml"}

// Load builds the service configuration: server, database, auth, storage,
// pagination, rate_limit, log and cors sections. Values come from env
// variables, then the YAML file, then env-default tags.
//
// An explicit CONFIG_PATH must exist. Without it the first file found in
// searchPaths is used, and with no file at all only env and defaults apply.
// The result is validated before it is returned.
func Load() (*Config, error) {
	path, err := resolvePath(os.Getenv(EnvConfigPath))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var cfg Config
	if path == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", describe(path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// resolvePath returns the YAML file to read, or "" for env-only loading.
func resolvePath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	for _, p := range searchPaths {
		_, err := os.Stat(p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("file %s: %w", p, err)
		}
	}
	return "", nil
}

func describe(path string) string {
	if path == "" {
		return "env"
	}
	return path
}
