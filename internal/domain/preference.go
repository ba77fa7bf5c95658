package domain

import (
	"sort"
	"strings"
)

// PreferenceSet - пользовательские предпочтения по типам мест.
// Types: ключ типа -> включён ли. Ключи, не известные таблице типов,
// игнорируются построителем запроса, но сохраняются для фильтрации.
type PreferenceSet struct {
	Types      map[string]bool `json:"types"`
	MinRating  *float64        `json:"min_rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	MinReviews *int            `json:"min_reviews,omitempty" validate:"omitempty,gte=0"`
	Type       *string         `json:"type,omitempty"`
}

// EnabledTypes возвращает включённые ключи типов в отсортированном порядке.
// Сортировка даёт детерминированный порядок: итерация по map в Go случайна.
func (p PreferenceSet) EnabledTypes() []string {
	keys := make([]string, 0, len(p.Types))
	for key, enabled := range p.Types {
		if enabled {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// BuildSearchQuery строит текстовый запрос из включённых типов.
// Пустая строка означает "нечего искать" - вызывающий обязан
// пропустить обращение к провайдеру.
func BuildSearchQuery(prefs PreferenceSet) string {
	enabled := prefs.EnabledTypes()
	if len(enabled) == 0 {
		return ""
	}

	terms := make([]string, 0, len(enabled))
	for _, key := range enabled {
		terms = append(terms, DisplayNameForType(key))
	}

	return strings.Join(terms, " ")
}
