package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/discovery-microservice/internal/pkg/errors"
	"github.com/discovery-microservice/internal/pkg/utils"
	"github.com/discovery-microservice/internal/pkg/validator"
	"github.com/discovery-microservice/internal/usecase"
	"github.com/discovery-microservice/internal/usecase/dto"
)

// SnapHandler - обработчик привязки GPS-треков к дорожной сети
type SnapHandler struct {
	snapUC *usecase.SnapUseCase
	logger *zap.Logger
}

// NewSnapHandler - создание нового SnapHandler
func NewSnapHandler(snapUC *usecase.SnapUseCase, logger *zap.Logger) *SnapHandler {
	return &SnapHandler{
		snapUC: snapUC,
		logger: logger,
	}
}

// Snap godoc
// @Summary Привязка GPS-трека к дорогам
// @Description Привязывает точки трека к дорожной сети пачками. Сбойные пачки пропускаются, порядок точек сохраняется.
// @Tags Snap
// @Accept json
// @Produce json
// @Param request body dto.SnapRequest true "Точки трека"
// @Success 200 {object} utils.SuccessResponse{data=dto.SnapResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/snap [post]
func (h *SnapHandler) Snap(c *fiber.Ctx) error {
	var req dto.SnapRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(validator.ValidationDetails(err)))
	}

	for _, p := range req.Points {
		if !p.IsValid() {
			return utils.SendError(c, errors.ErrInvalidCoordinates)
		}
	}

	start := time.Now()
	snapped := h.snapUC.SnapToRoads(c.Context(), req.Points)

	return utils.SendSuccess(c, dto.SnapResponse{
		Points: snapped,
		Total:  len(snapped),
	}, &utils.Meta{
		Total:    len(snapped),
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}
