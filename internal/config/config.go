package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdem-table-server/internal/util"
)

// Config provides configuration for the hold'em table server
type Config struct {
	loaded bool
	JWT    struct {
		Secret string `yaml:"secret" envconfig:"secret"`
	}
	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is fine; env vars
// and defaults cover everything.
func Load() error {
	config = Config{}

	configFile := util.Getenv("HTS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		err = yaml.NewDecoder(file).Decode(&config)
		_ = file.Close()
		if err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("hts", &config); err != nil {
		return err
	}

	// without a configured secret, reconnect tokens only survive until the
	// next restart
	if config.JWT.Secret == "" {
		config.JWT.Secret = randomSecret()
	}

	config.loaded = true
	return nil
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}

	return hex.EncodeToString(b)
}
