// Package daemon runs the preview web service.
package daemon

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoBulma/GoBulma/internal/config"
	"github.com/GoBulma/GoBulma/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Addr is the listen address of the web service.
func (d *Daemon) Addr() string {
	return ":" + strconv.Itoa(d.cfg.Webserver.Port)
}

// Start starts the Daemon's web service and blocks until it was shut down by SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	log.Info().
		Str("addr", d.Addr()).
		Str("url", d.cfg.Webserver.URL).
		Str("documents", d.cfg.Preview.Documents).
		Msg("starting widget preview")

	return d.webService.Start(d.Addr())
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, config.ErrNilConfig
	}

	webService, err := web.New(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create web service")
	}

	return &Daemon{
		cfg:        cfg,
		webService: webService,
	}, nil
}
