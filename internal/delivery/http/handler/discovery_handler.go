package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/discovery-microservice/internal/domain"
	"github.com/discovery-microservice/internal/pkg/errors"
	"github.com/discovery-microservice/internal/pkg/utils"
	"github.com/discovery-microservice/internal/pkg/validator"
	"github.com/discovery-microservice/internal/usecase"
	"github.com/discovery-microservice/internal/usecase/dto"
)

// DiscoveryHandler - обработчик запросов поиска мест вдоль маршрута
type DiscoveryHandler struct {
	discoveryUC *usecase.DiscoveryUseCase
	logger      *zap.Logger
}

// NewDiscoveryHandler - создание нового DiscoveryHandler
func NewDiscoveryHandler(discoveryUC *usecase.DiscoveryUseCase, logger *zap.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUC: discoveryUC,
		logger:      logger,
	}
}

// Discover godoc
// @Summary Поиск мест вдоль маршрута
// @Description Ищет места вдоль переданного маршрута с учётом предпочтений пользователя. При недоступности поиска вдоль маршрута выполняется поиск вокруг центра маршрута. Дубликаты схлопываются, уже сохранённые и отклонённые места исключаются.
// @Tags Discovery
// @Accept json
// @Produce json
// @Param request body dto.DiscoverRequest true "Маршрут и предпочтения"
// @Success 200 {object} utils.SuccessResponse{data=dto.DiscoverResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/discover [post]
func (h *DiscoveryHandler) Discover(c *fiber.Ctx) error {
	var req dto.DiscoverRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(validator.ValidationDetails(err)))
	}

	// Оркестратор паникует на nil-карте, снимаем это на границе API
	if req.Preferences.Types == nil {
		return utils.SendError(c, errors.ErrNoPreferencesEnabled)
	}

	for _, p := range req.Route {
		if !p.IsValid() {
			return utils.SendError(c, errors.ErrInvalidCoordinates)
		}
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	start := time.Now()
	candidates := h.discoveryUC.DiscoverAlongRoute(
		c.Context(), req.Route, req.Preferences, language, req.UserID)

	// Выдача отсортирована по убыванию рейтинга, места без рейтинга в конце
	usecase.SortCandidatesByRating(candidates)

	return utils.SendSuccess(c, dto.DiscoverResponse{
		Candidates: candidates,
		Total:      len(candidates),
	}, &utils.Meta{
		Total:    len(candidates),
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// GetPlaceTypes godoc
// @Summary Список поддерживаемых типов мест
// @Description Возвращает известные ключи типов мест и их отображаемые названия для построения поискового запроса
// @Tags Discovery
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.PlaceTypesResponse}
// @Router /api/v1/place-types [get]
func (h *DiscoveryHandler) GetPlaceTypes(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.PlaceTypesResponse{
		Types: domain.PlaceTypeDisplayNames,
	}, nil)
}
