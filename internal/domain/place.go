package domain

// CandidateSource - режим поиска, которым получен кандидат
type CandidateSource string

const (
	SourceRouteSearch       CandidateSource = "ROUTE_SEARCH"
	SourceCenterPointSearch CandidateSource = "CENTER_POINT_SEARCH"
)

// UnknownPlaceName подставляется, если провайдер не вернул название
const UnknownPlaceName = "Unknown Place"

// PhotoRef - ссылка на фотографию места у провайдера
type PhotoRef struct {
	Reference string `json:"reference"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
}

// PlaceCandidate - нормализованный кандидат места.
// Единая схема для результатов обоих режимов поиска.
type PlaceCandidate struct {
	ExternalID    string          `json:"external_id,omitempty"`
	Name          string          `json:"name"`
	Types         []string        `json:"types,omitempty"`
	PrimaryType   string          `json:"primary_type"`
	Rating        *float64        `json:"rating,omitempty"`
	ReviewCount   int             `json:"review_count"`
	Location      Coordinate      `json:"location"`
	Address       string          `json:"address,omitempty"`
	Description   string          `json:"description,omitempty"`
	Photos        []PhotoRef      `json:"photos,omitempty"`
	Source        CandidateSource `json:"source"`
	CombinedTypes []string        `json:"combined_types,omitempty"`
}

// HasValidLocation проверяет, что координаты кандидата в допустимых пределах
func (p PlaceCandidate) HasValidLocation() bool {
	return p.Location.IsValid()
}
