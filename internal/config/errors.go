package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrEmptyDocuments error if config preview.documents is empty.
	ErrEmptyDocuments = errors.New("toml config preview.documents can not be empty")

	// ErrNilConfig is returned by functions taking a *Config when nil is passed.
	ErrNilConfig = errors.New("config is nil")
)
