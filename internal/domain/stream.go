package domain

import "github.com/google/uuid"

// Stream names (должны совпадать с трекером маршрутов)
const (
	StreamRouteCompleted = "stream:route:completed"
	StreamDiscoveryDone  = "stream:discovery:done"
)

// RouteCompletedEvent - входящее событие о завершении маршрута
type RouteCompletedEvent struct {
	RouteID     uuid.UUID     `json:"route_id"`
	UserID      string        `json:"user_id,omitempty"`
	Language    string        `json:"language,omitempty"`
	Points      []Coordinate  `json:"points"`
	Preferences PreferenceSet `json:"preferences"`
	SnapToRoads bool          `json:"snap_to_roads,omitempty"`
}

// DiscoveryDoneEvent - результат поиска мест вдоль маршрута
type DiscoveryDoneEvent struct {
	RouteID    uuid.UUID        `json:"route_id"`
	UserID     string           `json:"user_id,omitempty"`
	Candidates []PlaceCandidate `json:"candidates"`
	Error      string           `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
