package utils

import (
	"math"

	"github.com/discovery-microservice/internal/domain"
)

const (
	earthRadiusMeters = 6371000.0

	// metersPerDegreeLat - приближение метров на градус широты
	metersPerDegreeLat = 111139.0

	minBoundingRadiusMeters = 50.0
	maxBoundingRadiusMeters = 50000.0
)

// HaversineDistanceMeters вычисляет расстояние по большому кругу в метрах
func HaversineDistanceMeters(a, b domain.Coordinate) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180.0
	dLon := (b.Lon - a.Lon) * math.Pi / 180.0

	lat1Rad := a.Lat * math.Pi / 180.0
	lat2Rad := b.Lat * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// RouteBoundingCircle вычисляет окружность, охватывающую маршрут.
// Центр - середина экстента, радиус - половина диагонали в метровом
// приближении, ограниченная [50, 50000] м.
func RouteBoundingCircle(coords []domain.Coordinate) domain.BoundingCircle {
	if len(coords) == 0 {
		return domain.BoundingCircle{RadiusMeters: minBoundingRadiusMeters}
	}

	minLat, maxLat := coords[0].Lat, coords[0].Lat
	minLon, maxLon := coords[0].Lon, coords[0].Lon
	for _, c := range coords[1:] {
		minLat = math.Min(minLat, c.Lat)
		maxLat = math.Max(maxLat, c.Lat)
		minLon = math.Min(minLon, c.Lon)
		maxLon = math.Max(maxLon, c.Lon)
	}

	centerLat := (minLat + maxLat) / 2
	centerLon := (minLon + maxLon) / 2

	latMeters := (maxLat - minLat) * metersPerDegreeLat
	lonMeters := (maxLon - minLon) * metersPerDegreeLat * math.Cos(centerLat*math.Pi/180.0)

	radius := math.Sqrt(latMeters*latMeters+lonMeters*lonMeters) / 2
	radius = math.Max(minBoundingRadiusMeters, math.Min(maxBoundingRadiusMeters, radius))

	return domain.BoundingCircle{
		CenterLat:    centerLat,
		CenterLon:    centerLon,
		RadiusMeters: radius,
	}
}

// RouteCenter возвращает среднее арифметическое координат маршрута
func RouteCenter(coords []domain.Coordinate) domain.Coordinate {
	if len(coords) == 0 {
		return domain.Coordinate{}
	}

	var sumLat, sumLon float64
	for _, c := range coords {
		sumLat += c.Lat
		sumLon += c.Lon
	}

	return domain.Coordinate{
		Lat: sumLat / float64(len(coords)),
		Lon: sumLon / float64(len(coords)),
	}
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
