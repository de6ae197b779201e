// Package config implements configuration for the sift executable using
// https://github.com/spf13/viper.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Contains all the keys for sift's shared config
const (
	LogLevelKey = "loglevel"
)

// LogLevel is the logging level used when the --loglevel flag
// is not given
var LogLevel string

// Load sift's config.
func Load() error {
	// Set any defaults
	viper.SetDefault(LogLevelKey, "warn")

	// Tell viper that the config can be read from SIFT_<entry>
	// environment variables
	viper.SetEnvPrefix("SIFT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read the (optional) config file
	cdir, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	viper.SetConfigName("sift")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Join(cdir, "sift"))
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	// Load the shared config
	LogLevel = viper.GetString(LogLevelKey)

	return nil
}
