package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthChecker - зависимость, умеющая отвечать на ping
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler - обработчик health check с проверкой зависимостей
type HealthHandler struct {
	db     HealthChecker
	cache  HealthChecker
	logger *zap.Logger
}

// NewHealthHandler - создание нового HealthHandler
func NewHealthHandler(db, cache HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// Check godoc
// @Summary Health check
// @Description Проверяет доступность сервиса и его зависимостей
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	checks := fiber.Map{
		"database": "ok",
		"cache":    "ok",
	}

	if h.db != nil {
		if err := h.db.Health(ctx); err != nil {
			h.logger.Warn("Database health check failed", zap.Error(err))
			checks["database"] = "unavailable"
			status = fiber.StatusServiceUnavailable
		}
	}
	if h.cache != nil {
		if err := h.cache.Health(ctx); err != nil {
			h.logger.Warn("Cache health check failed", zap.Error(err))
			checks["cache"] = "unavailable"
			status = fiber.StatusServiceUnavailable
		}
	}

	state := "healthy"
	if status != fiber.StatusOK {
		state = "degraded"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": state,
		"checks": checks,
		"time":   time.Now().UTC(),
	})
}
