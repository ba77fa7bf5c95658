package domain

// ProviderResult - сырой результат внешнего поиска, приведённый к единой
// форме на границе с провайдером. Внутренняя логика не видит
// провайдер-специфичных структур.
type ProviderResult struct {
	PlaceID     string          `json:"place_id,omitempty"`
	Name        string          `json:"name,omitempty"`
	Types       []string        `json:"types,omitempty"`
	PrimaryType string          `json:"primary_type,omitempty"`
	Rating      *float64        `json:"rating,omitempty"`
	ReviewCount int             `json:"review_count,omitempty"`
	Lat         float64         `json:"lat"`
	Lon         float64         `json:"lon"`
	Address     string          `json:"address,omitempty"`
	Description string          `json:"description,omitempty"`
	Photos      []PhotoRef      `json:"photos,omitempty"`
	Source      CandidateSource `json:"source"`
}
