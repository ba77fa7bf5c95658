package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/discovery-microservice/internal/domain"
)

func TestBuildSearchQuery_JoinsDisplayNames(t *testing.T) {
	prefs := domain.PreferenceSet{
		Types: map[string]bool{
			"cafe":        true,
			"gas_station": true,
			"park":        false,
		},
	}

	query := domain.BuildSearchQuery(prefs)

	// Ключи отсортированы, выключенные типы не участвуют
	assert.Equal(t, "cafe gas station", query)
}

func TestBuildSearchQuery_UnknownKeyPassedThrough(t *testing.T) {
	prefs := domain.PreferenceSet{
		Types: map[string]bool{"speakeasy": true},
	}

	query := domain.BuildSearchQuery(prefs)

	assert.Equal(t, "speakeasy", query)
}

func TestBuildSearchQuery_EmptyWhenNothingEnabled(t *testing.T) {
	t.Run("all disabled", func(t *testing.T) {
		prefs := domain.PreferenceSet{Types: map[string]bool{"cafe": false}}
		assert.Equal(t, "", domain.BuildSearchQuery(prefs))
	})

	t.Run("empty map", func(t *testing.T) {
		prefs := domain.PreferenceSet{Types: map[string]bool{}}
		assert.Equal(t, "", domain.BuildSearchQuery(prefs))
	})
}

func TestEnabledTypes_Sorted(t *testing.T) {
	prefs := domain.PreferenceSet{
		Types: map[string]bool{"park": true, "cafe": true, "museum": true},
	}

	assert.Equal(t, []string{"cafe", "museum", "park"}, prefs.EnabledTypes())
}

func TestDisplayNameForType_Fallback(t *testing.T) {
	assert.Equal(t, "gas station", domain.DisplayNameForType("gas_station"))
	assert.Equal(t, "unknown_key", domain.DisplayNameForType("unknown_key"))
}
