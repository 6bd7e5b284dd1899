package list_chefs

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
)

func TestParseListQuery_DefaultsWhenParamsMissing(t *testing.T) {
	req, err := parseListQuery("token-1", url.Values{})
	require.NoError(t, err)

	assert.Equal(t, "token-1", req.SessionToken)
	assert.Empty(t, req.Search)
	// Отсутствующие параметры заполняются дефолтами фильтра
	assert.Equal(t, domain.DefaultFilterOptions(), req.Filters)
	assert.Equal(t, 0, req.Filters.ActiveCount())
}

func TestParseListQuery_ParsesAllParams(t *testing.T) {
	query := url.Values{}
	query.Set("search", "marco")
	query.Set("min_price", "1500")
	query.Set("max_price", "7000.5")
	query.Set("max_distance", "10")
	query.Set("cuisines", "Italian, Indian, ,Japanese")

	req, err := parseListQuery("token-1", query)
	require.NoError(t, err)

	assert.Equal(t, "marco", req.Search)
	assert.Equal(t, 1500.0, req.Filters.PriceRange.Low)
	assert.Equal(t, 7000.5, req.Filters.PriceRange.High)
	assert.Equal(t, 10.0, req.Filters.MaxDistance)
	// Пустые фрагменты выбрасываются, пробелы обрезаются
	assert.Equal(t, []string{"Italian", "Indian", "Japanese"}, req.Filters.CuisineTypes)
	assert.Equal(t, 3, req.Filters.ActiveCount())
}

func TestParseListQuery_PartialParamsKeepOtherDefaults(t *testing.T) {
	query := url.Values{}
	query.Set("max_price", "5000")

	req, err := parseListQuery("token-1", query)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultPriceMin, req.Filters.PriceRange.Low)
	assert.Equal(t, 5000.0, req.Filters.PriceRange.High)
	assert.Equal(t, domain.DefaultMaxDistance, req.Filters.MaxDistance)
	assert.Empty(t, req.Filters.CuisineTypes)
}

func TestParseListQuery_RejectsMalformedNumbers(t *testing.T) {
	for _, param := range []string{"min_price", "max_price", "max_distance"} {
		query := url.Values{}
		query.Set(param, "not-a-number")

		_, err := parseListQuery("token-1", query)
		assert.Error(t, err, param)
	}
}
