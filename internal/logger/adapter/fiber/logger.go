// Package fiber is a zerolog access log middleware for the preview server.
package fiber

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GoBulma/GoBulma/internal/logger"
	"github.com/GoBulma/GoBulma/internal/uniuri"
)

const (
	// HeaderRequestID carries the id of a request, taken from the client or generated.
	HeaderRequestID = "X-Request-ID"

	// LocalRequestID is the fiber.Ctx Locals key of the request id.
	LocalRequestID = "requestID"
)

// Config implements fiber middleware struct.
type Config struct {
	// Next defines a function to skip this middleware when returned true.
	//
	// Optional. Default: nil
	Next func(c *fiber.Ctx) bool

	// Config of the logger.
	Config logger.Log

	// CacheControlError max-age caching on chain errors.
	CacheControlError string

	// SkipURIs are not logged when Config.DisableCheckAlive is set, e.g. /checkalive and /metrics.
	SkipURIs []string
}

// ConfigDefault is the default config for fiber.
var ConfigDefault = Config{ //nolint:gochecknoglobals
	Next:              nil,
	CacheControlError: "max-age=0",
}

func configDefault(config ...Config) Config {
	if len(config) < 1 {
		return ConfigDefault
	}

	cfg := config[0]

	if cfg.CacheControlError == "" {
		cfg.CacheControlError = ConfigDefault.CacheControlError
	}

	return cfg
}

// New creates a new fiber access logging middleware using zerolog.
func New(config ...Config) fiber.Handler {
	cfg := configDefault(config...)

	skip := make(map[string]bool, len(cfg.SkipURIs))
	for _, uri := range cfg.SkipURIs {
		skip[uri] = true
	}

	accessLogger := zerolog.New(zerolog.MultiLevelWriter(writers(cfg.Config)...)).
		With().
		Timestamp().
		Logger().
		Level(zerolog.NoLevel)

	return func(ctx *fiber.Ctx) error {
		// Don't execute middleware if Next returns true
		if cfg.Next != nil && cfg.Next(ctx) {
			return ctx.Next()
		}

		requestID := ctx.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uniuri.New()
		}

		ctx.Locals(LocalRequestID, requestID)
		ctx.Set(HeaderRequestID, requestID)

		start := time.Now()

		// Handle request, store err for logging
		chainErr := ctx.Next()
		if chainErr != nil {
			if errH := ctx.App().ErrorHandler(ctx, chainErr); errH != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError) //nolint:errcheck // ok here
				// ensure also 500 has a Cache-Control
				ctx.Response().Header.Set(fiber.HeaderCacheControl, cfg.CacheControlError)
			}
		}

		elapsed := time.Since(start).Seconds()
		ctx.Response().Header.Set("X-Performance", strconv.FormatFloat(elapsed, 'f', 6, 64))

		if cfg.Config.DisableCheckAlive && skip[ctx.Path()] {
			return nil
		}

		// fasthttp normalizes paths like /2//test to /2/test, log the path as requested.
		p := string(ctx.Request().URI().PathOriginal())
		if len(ctx.Queries()) > 0 {
			p = p + "?" + string(ctx.Request().URI().QueryString())
		}

		event := accessLogger.Log().
			Str("IP", ctx.IP()).
			Str("requestID", requestID).
			Int("status", ctx.Response().StatusCode()).
			Float64("X-Performance", elapsed).
			Str("URI", p).
			Str("method", ctx.Method()).
			Bytes("host", ctx.Request().Host()).
			Str(fiber.HeaderXForwardedFor, ctx.Get(fiber.HeaderXForwardedFor)).
			Str(fiber.HeaderUserAgent, ctx.Get(fiber.HeaderUserAgent)).
			Str(fiber.HeaderReferer, ctx.Get(fiber.HeaderReferer))

		if chainErr != nil {
			event.Err(chainErr)
		}

		event.Send()

		return nil
	}
}

// RequestID returns the id the middleware assigned to the request, empty without the middleware.
func RequestID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(LocalRequestID).(string)
	return id
}

func writers(cfg logger.Log) []io.Writer {
	var out []io.Writer

	if cfg.File.Enabled && cfg.File.Access.Name != "" {
		if err := os.MkdirAll(cfg.File.Path, 0o750); err != nil { //nolint: mnd
			log.Error().Err(err).Str("path", cfg.File.Path).Msg("can't create log directory")
		} else {
			out = append(out, logger.RollingFile(cfg.File.Path, cfg.File.Access))
		}
	}

	// console output needs both the general console switch and the access log switch
	if cfg.Console.Enabled && cfg.EnableAccessLogToConsole {
		if cfg.Console.UseConsoleWriter {
			out = append(out, zerolog.ConsoleWriter{
				Out:          os.Stdout,
				NoColor:      false,
				TimeFormat:   zerolog.TimeFieldFormat,
				PartsExclude: []string{"level"},
			})
		} else {
			out = append(out, os.Stdout)
		}
	}

	return out
}
