package list_chefs

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
	"github.com/chefhub-in/ChefHub-BookingService/internal/service/directory/models"
)

// parseListQuery разбирает query-параметры каталога
// Отсутствующие параметры заменяются дефолтами фильтра
func parseListQuery(sessionToken string, query url.Values) (*models.ListChefsRequest, error) {
	filters := domain.DefaultFilterOptions()

	if raw := query.Get("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid min_price: %v", err)
		}
		filters.PriceRange.Low = v
	}

	if raw := query.Get("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid max_price: %v", err)
		}
		filters.PriceRange.High = v
	}

	if raw := query.Get("max_distance"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid max_distance: %v", err)
		}
		filters.MaxDistance = v
	}

	if raw := query.Get("cuisines"); raw != "" {
		for _, cuisine := range strings.Split(raw, ",") {
			if cuisine = strings.TrimSpace(cuisine); cuisine != "" {
				filters.CuisineTypes = append(filters.CuisineTypes, cuisine)
			}
		}
	}

	return &models.ListChefsRequest{
		SessionToken: sessionToken,
		Search:       query.Get("search"),
		Filters:      filters,
	}, nil
}
