// Package web serves the widget preview pages.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/GoBulma/GoBulma/internal/config"
	fiberlogger "github.com/GoBulma/GoBulma/internal/logger/adapter/fiber"
	"github.com/GoBulma/GoBulma/internal/metric"
	"github.com/GoBulma/GoBulma/internal/web/handler"
	"github.com/GoBulma/GoBulma/internal/web/handler/preview"
)

const (
	// CheckAlivePath answers 200 while the service accepts traffic and 503 during graceful shutdown.
	CheckAlivePath = "/checkalive"

	// MetricsPath serves the prometheus metrics.
	MetricsPath = "/metrics"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	registry     *prometheus.Registry
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// Alive reports whether /checkalive answers with 200.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// Registry returns the registry of the service metrics.
func (s *Service) Registry() *prometheus.Registry {
	return s.registry
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the server down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown stops the server. Unless dev mode is on, /checkalive fails for ShutDownTime seconds first.
func (s *Service) Shutdown() {
	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config) (*Service, error) {
	if cfg == nil {
		return nil, config.ErrNilConfig
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	for name, fn := range handler.TemplateFuncs() {
		templateEngine.AddFunc(name, fn)
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize:        8192,
			AppName:               "gobulma",
			CaseSensitive:         true,
			Prefork:               false,
			Immutable:             true,
			DisableStartupMessage: !cfg.DevMode,
			Views:                 templateEngine,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:   cfg.Log,
		SkipURIs: []string{CheckAlivePath, MetricsPath},
	}))

	// runtime and log statement metrics live in the default registry, widget metrics per service
	registry := prometheus.NewRegistry()

	service := &Service{
		cfg:          cfg,
		App:          app,
		fastShutDown: cfg.DevMode,
		registry:     registry,
	}
	service.alive.Store(true)

	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})

	app.Get(MetricsPath, adaptor.HTTPHandler(
		metric.GetHandlerForRegistry(prometheus.Gatherers{prometheus.DefaultGatherer, registry}),
	))

	// init handlers
	if err := preview.Handler.Init(app, cfg, metric.NewRenderCounter(registry)); err != nil {
		return nil, err
	}

	return service, nil
}
