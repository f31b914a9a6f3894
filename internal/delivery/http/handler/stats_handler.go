package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/pkg/utils"
	"github.com/fuel-route-service/internal/usecase"
)

// StatsHandler - обработчик запросов статистики по ценам
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler - создание нового StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStats godoc
// @Summary Get fuel price statistics
// @Description Возвращает агрегированную статистику по загруженным станциям и ценам
// @Tags Statistics
// @Produce json
// @Success 200 {object} domain.PriceStats
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetStats(c.Context())
	if err != nil {
		h.logger.Error("Failed to get stats", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, stats)
}
