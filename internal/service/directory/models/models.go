package models

import "github.com/chefhub-in/ChefHub-BookingService/internal/domain"

// Request модели

// ListChefsRequest запрос на получение каталога поваров
type ListChefsRequest struct {
	SessionToken string
	Search       string
	Filters      domain.FilterOptions
}

// Response модели

// ChefResponse ответ с данными повара
type ChefResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Cuisine           []string `json:"cuisine"`
	HourlyRate        float64  `json:"hourlyRate"`
	Location          string   `json:"location"`
	Distance          float64  `json:"distance"`
	Image             string   `json:"image,omitempty"`
	Rating            float64  `json:"rating"`
	ReviewCount       int      `json:"reviewCount"`
	Experience        int      `json:"experience"`
	Bio               string   `json:"bio,omitempty"`
	Specialties       []string `json:"specialties"`
	Available         bool     `json:"available"`
	IsVeg             bool     `json:"isVeg,omitempty"`
	OnlyIndoorCooking bool     `json:"onlyIndoorCooking,omitempty"`
}

// ChefListResponse ответ со списком поваров и метаданными фильтрации
type ChefListResponse struct {
	Chefs             []ChefResponse `json:"chefs"`
	Total             int            `json:"total"`
	ActiveFilterCount int            `json:"activeFilterCount"`
	AvailableCuisines []string       `json:"availableCuisines"`
}

// Методы конвертации

// FromDomainChef конвертирует domain модель в DTO
func FromDomainChef(c *domain.Chef) *ChefResponse {
	if c == nil {
		return nil
	}

	return &ChefResponse{
		ID:                c.ID,
		Name:              c.Name,
		Cuisine:           c.Cuisine,
		HourlyRate:        c.HourlyRate,
		Location:          c.Location,
		Distance:          c.Distance,
		Image:             c.Image,
		Rating:            c.Rating,
		ReviewCount:       c.ReviewCount,
		Experience:        c.Experience,
		Bio:               c.Bio,
		Specialties:       c.Specialties,
		Available:         c.Available,
		IsVeg:             c.IsVeg,
		OnlyIndoorCooking: c.OnlyIndoorCooking,
	}
}

// FromDomainChefList конвертирует список domain моделей в DTO
func FromDomainChefList(chefs []domain.Chef, activeFilterCount int, cuisines []string) *ChefListResponse {
	resp := &ChefListResponse{
		Chefs:             make([]ChefResponse, 0, len(chefs)),
		Total:             len(chefs),
		ActiveFilterCount: activeFilterCount,
		AvailableCuisines: cuisines,
	}

	for i := range chefs {
		resp.Chefs = append(resp.Chefs, *FromDomainChef(&chefs[i]))
	}

	return resp
}
