// Package handler holds what the preview page handlers share.
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GoBulma/GoBulma/internal/config"
	"github.com/GoBulma/GoBulma/internal/metric"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, rendered metric.IncrementalCounter) error
}
