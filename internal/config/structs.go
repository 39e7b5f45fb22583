package config

import (
	"github.com/GoBulma/GoBulma/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Log       logger.Log
	Title     string
	Webserver Webserver
	Preview   Preview
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}

// Preview configures the widget preview pages.
type Preview struct {
	Documents string // directory holding the *.yaml widget documents
	IDPrefix  string // prefix of generated element ids, empty keeps the widget default
	RandomIDs bool   // random ids instead of a per request counter
	IDLength  int    // length of random ids
}
