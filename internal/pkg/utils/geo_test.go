package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/discovery-microservice/internal/domain"
	"github.com/discovery-microservice/internal/pkg/utils"
)

func TestHaversineDistanceMeters(t *testing.T) {
	barcelona := domain.Coordinate{Lat: 41.3851, Lon: 2.1734}
	madrid := domain.Coordinate{Lat: 40.4168, Lon: -3.7038}

	t.Run("identity", func(t *testing.T) {
		assert.Equal(t, 0.0, utils.HaversineDistanceMeters(barcelona, barcelona))
	})

	t.Run("symmetry", func(t *testing.T) {
		assert.Equal(t,
			utils.HaversineDistanceMeters(barcelona, madrid),
			utils.HaversineDistanceMeters(madrid, barcelona))
	})

	t.Run("known distance", func(t *testing.T) {
		// Барселона - Мадрид примерно 505 км
		d := utils.HaversineDistanceMeters(barcelona, madrid)
		assert.InDelta(t, 505000, d, 5000)
	})

	t.Run("short distance", func(t *testing.T) {
		a := domain.Coordinate{Lat: 41.38510, Lon: 2.17340}
		b := domain.Coordinate{Lat: 41.38537, Lon: 2.17340}
		// 0.00027 градуса широты - около 30 метров
		d := utils.HaversineDistanceMeters(a, b)
		assert.InDelta(t, 30, d, 1)
	})
}

func TestRouteBoundingCircle(t *testing.T) {
	t.Run("empty input clamps to minimum radius", func(t *testing.T) {
		circle := utils.RouteBoundingCircle(nil)
		assert.Equal(t, 50.0, circle.RadiusMeters)
	})

	t.Run("single point clamps to minimum radius", func(t *testing.T) {
		circle := utils.RouteBoundingCircle([]domain.Coordinate{{Lat: 41.4, Lon: 2.2}})
		assert.Equal(t, 41.4, circle.CenterLat)
		assert.Equal(t, 2.2, circle.CenterLon)
		assert.Equal(t, 50.0, circle.RadiusMeters)
	})

	t.Run("center is extent midpoint", func(t *testing.T) {
		circle := utils.RouteBoundingCircle([]domain.Coordinate{
			{Lat: 41.0, Lon: 2.0},
			{Lat: 42.0, Lon: 3.0},
		})
		assert.Equal(t, 41.5, circle.CenterLat)
		assert.Equal(t, 2.5, circle.CenterLon)
	})

	t.Run("huge extent clamps to maximum radius", func(t *testing.T) {
		circle := utils.RouteBoundingCircle([]domain.Coordinate{
			{Lat: 35.0, Lon: -5.0},
			{Lat: 55.0, Lon: 25.0},
		})
		assert.Equal(t, 50000.0, circle.RadiusMeters)
	})
}

func TestRouteCenter(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		center := utils.RouteCenter(nil)
		assert.Equal(t, 0.0, center.Lat)
		assert.Equal(t, 0.0, center.Lon)
	})

	t.Run("arithmetic mean", func(t *testing.T) {
		center := utils.RouteCenter([]domain.Coordinate{
			{Lat: 40.0, Lon: 2.0},
			{Lat: 42.0, Lon: 4.0},
		})
		assert.Equal(t, 41.0, center.Lat)
		assert.Equal(t, 3.0, center.Lon)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(41.3851, 2.1734))
	assert.True(t, utils.ValidateCoordinates(-90, 180))
	assert.False(t, utils.ValidateCoordinates(90.1, 0))
	assert.False(t, utils.ValidateCoordinates(0, -180.5))
}
