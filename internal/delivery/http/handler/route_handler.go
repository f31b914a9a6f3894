package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/pkg/utils"
	"github.com/fuel-route-service/internal/pkg/validator"
	"github.com/fuel-route-service/internal/usecase"
	"github.com/fuel-route-service/internal/usecase/dto"
)

// RouteHandler - обработчик запросов оптимизации поездок
type RouteHandler struct {
	tripUC *usecase.TripUseCase
	logger *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(tripUC *usecase.TripUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		tripUC: tripUC,
		logger: logger,
	}
}

// Optimize godoc
// @Summary Optimize fuel stops for a trip
// @Description Строит автомобильный маршрут между двумя локациями США и подбирает экономически оптимальные остановки для заправки
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.OptimizeRouteRequest true "Start and end locations"
// @Success 200 {object} dto.OptimizeRouteResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 504 {object} utils.ErrorResponse
// @Router /api/v1/routes/optimize [post]
func (h *RouteHandler) Optimize(c *fiber.Ctx) error {
	var req dto.OptimizeRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.tripUC.OptimizeRoute(c.Context(), req)
	if err != nil {
		h.logger.Warn("Trip optimization failed",
			zap.String("start", req.StartLocation),
			zap.String("end", req.EndLocation),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, result)
}
