package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/pkg/utils"
	"github.com/fuel-route-service/internal/pkg/validator"
	"github.com/fuel-route-service/internal/usecase"
	"github.com/fuel-route-service/internal/usecase/dto"
)

// StationHandler - обработчик запросов поиска станций
type StationHandler struct {
	stationUC *usecase.StationUseCase
	logger    *zap.Logger
}

// NewStationHandler - создание нового StationHandler
func NewStationHandler(stationUC *usecase.StationUseCase, logger *zap.Logger) *StationHandler {
	return &StationHandler{
		stationUC: stationUC,
		logger:    logger,
	}
}

// SearchByRadius godoc
// @Summary Search fuel stations in radius
// @Description Возвращает станции в радиусе от точки, отсортированные по расстоянию
// @Tags Stations
// @Accept json
// @Produce json
// @Param request body dto.RadiusStationsRequest true "Center point and radius"
// @Success 200 {object} dto.RadiusStationsResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/stations/radius [post]
func (h *StationHandler) SearchByRadius(c *fiber.Ctx) error {
	var req dto.RadiusStationsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.stationUC.SearchByRadius(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, result)
}
