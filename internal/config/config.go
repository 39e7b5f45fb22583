// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvJSON holds a JSON document merged over the TOML configuration.
	EnvJSON = "GOBULMA_CONFIG_JSON"

	// DefaultPath is used when ReadConfig gets an empty path.
	DefaultPath = "./etc/"

	defaultShutDownTime = 5
	defaultIDLength     = 8
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c   Config
		err error
	)

	// Read main configuration
	if path == "" {
		path = DefaultPath
	}

	v := viper.New()
	v.SetConfigFile(strings.TrimSuffix(path, "/") + "/main.toml")
	v.SetConfigType("toml")

	if err = v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	if JSONConfigEnv := os.Getenv(EnvJSON); JSONConfigEnv != "" {
		if err = mergeJSON(v, JSONConfigEnv); err != nil {
			return Config{}, err
		}
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	return c, validate(&c)
}

func mergeJSON(v *viper.Viper, configAsJSON string) error {
	v.SetConfigType("json")

	if err := v.MergeConfig(strings.NewReader(configAsJSON)); err != nil {
		return errors.Wrapf(err, "failed to read %s", EnvJSON)
	}

	return nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	if c == nil {
		return "", ErrNilConfig
	}

	var buffer bytes.Buffer

	if err := toml.NewEncoder(&buffer).Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	if c == nil {
		return "", ErrNilConfig
	}

	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal config settings and applies defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c == nil {
		return errors.Wrap(ErrNilConfig, invalidErrMessage)
	}

	// validate webserver listening port
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Preview.Documents == "" {
		return errors.Wrap(ErrEmptyDocuments, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Preview.IDLength <= 0 {
		c.Preview.IDLength = defaultIDLength
	}

	return nil
}
