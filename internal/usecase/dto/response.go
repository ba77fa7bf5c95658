package dto

import "github.com/discovery-microservice/internal/domain"

// DiscoverResponse - результат поиска мест вдоль маршрута
type DiscoverResponse struct {
	Candidates []domain.PlaceCandidate `json:"candidates"`
	Total      int                     `json:"total"`
}

// SnapResponse - результат привязки трека к дорогам
type SnapResponse struct {
	Points []domain.Coordinate `json:"points"`
	Total  int                 `json:"total"`
}

// PlaceTypesResponse - доступные типы мест
type PlaceTypesResponse struct {
	Types map[string]string `json:"types"`
}
