package domain

import (
	"sort"
	"strings"
)

// PriceRange инклюзивный диапазон почасовой ставки
type PriceRange struct {
	Low  float64
	High float64
}

// FilterOptions параметры фильтрации каталога поваров
// Пустой CuisineTypes означает отсутствие ограничения по кухне
type FilterOptions struct {
	PriceRange   PriceRange
	MaxDistance  float64
	CuisineTypes []string
}

// DefaultFilterOptions возвращает фильтр по умолчанию (сброс фильтров)
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		PriceRange:  PriceRange{Low: DefaultPriceMin, High: DefaultPriceMax},
		MaxDistance: DefaultMaxDistance,
	}
}

// IsValid проверяет согласованность фильтра
func (f FilterOptions) IsValid() bool {
	return f.PriceRange.Low <= f.PriceRange.High && f.MaxDistance >= 0
}

// ActiveCount считает количество активных (суженных относительно дефолта) фильтров
// Чисто отображаемое значение, без побочных эффектов
func (f FilterOptions) ActiveCount() int {
	count := 0
	if f.PriceRange.Low > DefaultPriceMin || f.PriceRange.High < DefaultPriceMax {
		count++
	}
	if f.MaxDistance < DefaultMaxDistance {
		count++
	}
	if len(f.CuisineTypes) > 0 {
		count++
	}
	return count
}

// Matches возвращает true, если повар проходит все предикаты фильтра и поиска
// Поиск: подстрока без учёта регистра по имени, кухням и специализациям;
// пустая строка поиска совпадает со всеми
func (f FilterOptions) Matches(chef *Chef, search string) bool {
	if !matchesSearch(chef, search) {
		return false
	}

	if chef.HourlyRate < f.PriceRange.Low || chef.HourlyRate > f.PriceRange.High {
		return false
	}

	if chef.Distance > f.MaxDistance {
		return false
	}

	if len(f.CuisineTypes) == 0 {
		return true
	}
	for _, wanted := range f.CuisineTypes {
		if chef.HasCuisine(wanted) {
			return true
		}
	}
	return false
}

// FilterChefs applies the filter conjunction over the chef list.
// Pure function; the result preserves the relative order of the input.
func FilterChefs(chefs []Chef, search string, opts FilterOptions) []Chef {
	filtered := make([]Chef, 0, len(chefs))
	for _, chef := range chefs {
		if opts.Matches(&chef, search) {
			filtered = append(filtered, chef)
		}
	}
	return filtered
}

// CuisineVocabulary returns the deduplicated, lexicographically sorted union
// of every chef's cuisine tags. Recomputed whenever the chef list changes.
func CuisineVocabulary(chefs []Chef) []string {
	seen := make(map[string]struct{})
	for _, chef := range chefs {
		for _, tag := range chef.Cuisine {
			seen[tag] = struct{}{}
		}
	}

	vocabulary := make([]string, 0, len(seen))
	for tag := range seen {
		vocabulary = append(vocabulary, tag)
	}
	sort.Strings(vocabulary)
	return vocabulary
}

func matchesSearch(chef *Chef, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)

	if strings.Contains(strings.ToLower(chef.Name), needle) {
		return true
	}
	for _, tag := range chef.Cuisine {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	for _, tag := range chef.Specialties {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
