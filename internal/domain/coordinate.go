package domain

// Coordinate - точка GPS-трека
type Coordinate struct {
	Lat         float64 `json:"lat" db:"lat"`
	Lon         float64 `json:"lon" db:"lon"`
	TimestampMs *int64  `json:"timestamp_ms,omitempty"`
}

// BoundingCircle - окружность, охватывающая маршрут.
// Используется как параметр fallback-поиска, не для точной геодезии.
type BoundingCircle struct {
	CenterLat    float64 `json:"center_lat"`
	CenterLon    float64 `json:"center_lon"`
	RadiusMeters float64 `json:"radius_meters"`
}

// IsValid проверяет, что координаты в допустимых пределах
func (c Coordinate) IsValid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}
