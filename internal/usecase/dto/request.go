package dto

import "github.com/discovery-microservice/internal/domain"

// DiscoverRequest - запрос поиска мест вдоль маршрута
type DiscoverRequest struct {
	Route       []domain.Coordinate  `json:"route"`
	Preferences domain.PreferenceSet `json:"preferences"`
	Language    string               `json:"language" validate:"omitempty,bcp47_language_tag"`
	UserID      string               `json:"user_id,omitempty"`
}

// SnapRequest - запрос привязки GPS-трека к дорожной сети
type SnapRequest struct {
	Points []domain.Coordinate `json:"points" validate:"max=10000"`
}
