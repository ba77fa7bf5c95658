package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/discovery-microservice/internal/domain"
	"github.com/discovery-microservice/internal/domain/repository"
	"github.com/discovery-microservice/internal/usecase"
	"github.com/discovery-microservice/internal/worker"
)

// RouteDiscoveryWorker обрабатывает события завершения маршрута:
// опционально привязывает трек к дорогам, ищет места вдоль маршрута
// и публикует результат в выходной стрим.
type RouteDiscoveryWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	discoveryUC  *usecase.DiscoveryUseCase
	snapUC       *usecase.SnapUseCase
	consumerName string
}

// NewRouteDiscoveryWorker создает новый RouteDiscoveryWorker
func NewRouteDiscoveryWorker(
	streamRepo repository.StreamRepository,
	discoveryUC *usecase.DiscoveryUseCase,
	snapUC *usecase.SnapUseCase,
	consumerGroup string,
	logger *zap.Logger,
) *RouteDiscoveryWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &RouteDiscoveryWorker{
		BaseWorker:   worker.NewBaseWorker("route-discovery", consumerGroup, logger),
		streamRepo:   streamRepo,
		discoveryUC:  discoveryUC,
		snapUC:       snapUC,
		consumerName: consumerName,
	}
}

// Start запускает воркер
func (w *RouteDiscoveryWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting RouteDiscoveryWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamRouteCompleted, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	msgChan, err := w.streamRepo.ConsumeStream(
		ctx, domain.StreamRouteCompleted, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to start stream consumer: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-msgChan:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

// handleMessage обрабатывает одно событие завершения маршрута.
// Битые сообщения подтверждаются, чтобы не застревали в pending.
func (w *RouteDiscoveryWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.RouteCompletedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to parse route completed event, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		w.ack(ctx, msg.ID)
		return
	}

	logger.Info("Processing route completed event",
		zap.String("route_id", event.RouteID.String()),
		zap.Int("points", len(event.Points)))

	if event.Preferences.Types == nil {
		w.publishDone(ctx, domain.DiscoveryDoneEvent{
			RouteID: event.RouteID,
			UserID:  event.UserID,
			Error:   "preferences types missing",
		})
		w.ack(ctx, msg.ID)
		return
	}

	route := event.Points
	if event.SnapToRoads && w.snapUC != nil {
		snapped := w.snapUC.SnapToRoads(ctx, route)
		if len(snapped) > 0 {
			route = snapped
		}
	}

	language := event.Language
	if language == "" {
		language = "en"
	}

	candidates := w.discoveryUC.DiscoverAlongRoute(
		ctx, route, event.Preferences, language, event.UserID)

	w.publishDone(ctx, domain.DiscoveryDoneEvent{
		RouteID:    event.RouteID,
		UserID:     event.UserID,
		Candidates: candidates,
	})

	w.ack(ctx, msg.ID)

	logger.Info("Route discovery event processed",
		zap.String("route_id", event.RouteID.String()),
		zap.Int("candidates", len(candidates)))
}

func (w *RouteDiscoveryWorker) publishDone(ctx context.Context, event domain.DiscoveryDoneEvent) {
	if err := w.streamRepo.PublishToStream(ctx, domain.StreamDiscoveryDone, &event); err != nil {
		w.Logger().Error("Failed to publish discovery done event",
			zap.String("route_id", event.RouteID.String()),
			zap.Error(err))
	}
}

func (w *RouteDiscoveryWorker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamRouteCompleted, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Error("Failed to ack message",
			zap.String("message_id", messageID),
			zap.Error(err))
	}
}
