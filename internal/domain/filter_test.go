package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChefs() []Chef {
	return []Chef{
		{
			ID:          "1",
			Name:        "Marco Rossi",
			Cuisine:     []string{"Italian", "Mediterranean"},
			HourlyRate:  6225,
			Distance:    2.3,
			Specialties: []string{"Pasta", "Risotto"},
		},
		{
			ID:          "2",
			Name:        "Priya Sharma",
			Cuisine:     []string{"Indian"},
			HourlyRate:  4500,
			Distance:    5.1,
			Specialties: []string{"Biryani", "Curry"},
		},
		{
			ID:          "3",
			Name:        "Kenji Tanaka",
			Cuisine:     []string{"Japanese"},
			HourlyRate:  8000,
			Distance:    12.0,
			Specialties: []string{"Sushi", "Ramen"},
		},
	}
}

func TestDefaultFilterOptions(t *testing.T) {
	opts := DefaultFilterOptions()

	assert.True(t, opts.IsValid())
	assert.Equal(t, 0, opts.ActiveCount())

	// Дефолтный фильтр пропускает весь каталог
	chefs := testChefs()
	assert.Equal(t, chefs, FilterChefs(chefs, "", opts))
}

func TestFilterOptions_IsValid(t *testing.T) {
	opts := DefaultFilterOptions()
	opts.PriceRange.Low = 5000
	opts.PriceRange.High = 1000
	assert.False(t, opts.IsValid())

	opts = DefaultFilterOptions()
	opts.MaxDistance = -1
	assert.False(t, opts.IsValid())
}

func TestFilterOptions_ActiveCount(t *testing.T) {
	opts := DefaultFilterOptions()
	opts.PriceRange.High = 7000
	opts.MaxDistance = 10
	opts.CuisineTypes = []string{"Italian"}

	assert.Equal(t, 3, opts.ActiveCount())
}

func TestFilterChefs_PriceBoundsAreInclusive(t *testing.T) {
	opts := DefaultFilterOptions()
	opts.PriceRange = PriceRange{Low: 4500, High: 6225}

	result := FilterChefs(testChefs(), "", opts)

	require.Len(t, result, 2)
	assert.Equal(t, "1", result[0].ID)
	assert.Equal(t, "2", result[1].ID)
}

func TestFilterChefs_MaxDistanceExcludesStrictlyFarther(t *testing.T) {
	opts := DefaultFilterOptions()
	opts.MaxDistance = 5.1

	result := FilterChefs(testChefs(), "", opts)

	// Ровно на границе — проходит, дальше — нет
	require.Len(t, result, 2)
	assert.Equal(t, "2", result[1].ID)
}

func TestFilterChefs_CuisineIsDisjunctionWithinFilter(t *testing.T) {
	opts := DefaultFilterOptions()
	opts.CuisineTypes = []string{"Indian", "Japanese"}

	result := FilterChefs(testChefs(), "", opts)

	require.Len(t, result, 2)
	assert.Equal(t, "2", result[0].ID)
	assert.Equal(t, "3", result[1].ID)
}

func TestFilterChefs_SearchMatchesNameCuisineSpecialties(t *testing.T) {
	chefs := testChefs()
	opts := DefaultFilterOptions()

	// По имени, без учёта регистра
	result := FilterChefs(chefs, "marco", opts)
	require.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)

	// По кухне
	result = FilterChefs(chefs, "indian", opts)
	require.Len(t, result, 1)
	assert.Equal(t, "2", result[0].ID)

	// По специализации
	result = FilterChefs(chefs, "sushi", opts)
	require.Len(t, result, 1)
	assert.Equal(t, "3", result[0].ID)

	// Нет совпадений
	result = FilterChefs(chefs, "french", opts)
	assert.Empty(t, result)
}

func TestFilterChefs_ConjunctionOfPredicates(t *testing.T) {
	opts := DefaultFilterOptions()
	opts.CuisineTypes = []string{"Italian", "Indian"}
	opts.MaxDistance = 3

	// Priya проходит по кухне, но не по расстоянию
	result := FilterChefs(testChefs(), "", opts)

	require.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)
}

func TestFilterChefs_IsPureAndIdempotent(t *testing.T) {
	chefs := testChefs()
	opts := DefaultFilterOptions()
	opts.MaxDistance = 6

	first := FilterChefs(chefs, "", opts)
	second := FilterChefs(first, "", opts)

	// Повторное применение того же фильтра ничего не меняет
	assert.Equal(t, first, second)
	// Исходный список не изменяется
	assert.Len(t, chefs, 3)
}

func TestCuisineVocabulary(t *testing.T) {
	chefs := []Chef{
		{Cuisine: []string{"Italian", "Mediterranean"}},
		{Cuisine: []string{"Indian"}},
		{Cuisine: []string{"Italian"}},
	}

	vocabulary := CuisineVocabulary(chefs)

	assert.Equal(t, []string{"Indian", "Italian", "Mediterranean"}, vocabulary)
}
