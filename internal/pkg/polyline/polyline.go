// Package polyline реализует Google Polyline Algorithm Format (Polyline5):
// дельта-кодирование координат с точностью 1e-5 градуса.
// https://developers.google.com/maps/documentation/utilities/polylinealgorithm
package polyline

import (
	"errors"
	"math"

	"github.com/discovery-microservice/internal/domain"
)

// Encode кодирует последовательность координат в polyline-строку.
// Пустой вход даёт пустую строку.
func Encode(coords []domain.Coordinate) string {
	if len(coords) == 0 {
		return ""
	}

	result := make([]byte, 0, len(coords)*12)

	prevLat := 0
	prevLon := 0

	for _, c := range coords {
		lat := int(math.Round(c.Lat * 1e5))
		lon := int(math.Round(c.Lon * 1e5))

		result = appendSigned(result, lat-prevLat)
		result = appendSigned(result, lon-prevLon)

		prevLat = lat
		prevLon = lon
	}

	return string(result)
}

// Decode декодирует polyline-строку в последовательность координат
func Decode(encoded string) ([]domain.Coordinate, error) {
	if len(encoded) == 0 {
		return []domain.Coordinate{}, nil
	}

	coords := make([]domain.Coordinate, 0, len(encoded)/8+1)

	index := 0
	prevLat := 0
	prevLon := 0

	for index < len(encoded) {
		lat, newIndex, err := decodeValue(encoded, index, prevLat)
		if err != nil {
			return nil, err
		}
		index = newIndex
		prevLat = lat

		if index >= len(encoded) {
			return nil, errors.New("invalid polyline: unexpected end of string")
		}
		lon, newIndex, err := decodeValue(encoded, index, prevLon)
		if err != nil {
			return nil, err
		}
		index = newIndex
		prevLon = lon

		coords = append(coords, domain.Coordinate{
			Lat: float64(lat) * 1e-5,
			Lon: float64(lon) * 1e-5,
		})
	}

	return coords, nil
}

// decodeValue читает одно зигзаг-закодированное значение начиная с index
func decodeValue(encoded string, index, prev int) (int, int, error) {
	result := 0
	shift := 0

	for {
		if index >= len(encoded) {
			return 0, 0, errors.New("invalid polyline: unexpected end of string")
		}
		b := int(encoded[index]) - 63
		index++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}

	delta := (result >> 1) ^ (-(result & 1))
	return prev + delta, index, nil
}

// appendSigned дописывает знаковое значение пятибитными группами
// с битом продолжения 0x20 и смещением +63
func appendSigned(buf []byte, value int) []byte {
	s := value << 1
	if value < 0 {
		s = ^s
	}

	for s >= 0x20 {
		buf = append(buf, byte((0x20|(s&0x1f))+63))
		s >>= 5
	}
	return append(buf, byte(s+63))
}
