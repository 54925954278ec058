package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// StorageConfig selects and parameterizes the snapshot persister.
type StorageConfig struct {
	// Driver is "file" (one JSON document) or "sqlite".
	Driver string `mapstructure:"driver"`
	// Dir is where the file driver keeps its document.
	Dir string `mapstructure:"dir"`
	// Path is the sqlite database file.
	Path string `mapstructure:"path"`
	// Namespace is the fixed key the snapshot is stored under.
	Namespace string `mapstructure:"namespace"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	// Nested keys map to env vars: storage.driver -> STORAGE_DRIVER.
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("storage.driver", "file")
	viper.SetDefault("storage.dir", "data")
	viper.SetDefault("storage.path", "data/gym_tracker.db")
	viper.SetDefault("storage.namespace", "gymTrackerMVP:v1")

	err = viper.ReadInConfig()
	// The config file is optional; defaults and env vars are enough.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
