package chefdirectory

import (
	"strconv"
	"strings"

	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
)

// RawChef запись повара в том виде, в котором её отдаёт внешний каталог
// Апстрим слабо типизирован: числа и флаги приходят строками
type RawChef struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Cuisine           string `json:"cuisine"`     // "Italian, Mediterranean"
	HourlyRate        string `json:"hourlyRate"`  // "6225"
	Location          string `json:"location"`
	Distance          string `json:"distance"` // "2.3"
	Image             string `json:"image"`
	Rating            string `json:"rating"`      // "4.9"
	ReviewCount       string `json:"reviewCount"` // "127"
	Experience        string `json:"experience"`  // "12"
	Bio               string `json:"bio"`
	Specialties       string `json:"specialties"` // "Pasta, Risotto"
	Available         string `json:"available"`   // "yes" | "daily" | прочее
	IsVeg             string `json:"isVeg"`       // "1" | прочее
	OnlyIndoorCooking string `json:"onlyIndoorCooking"`
}

// Normalize converts a loosely-typed upstream record into the canonical chef
// model. Total and pure: malformed input never fails, it degrades to the
// documented defaults instead (numbers to 0, empty cuisine to "General").
func (r RawChef) Normalize() domain.Chef {
	cuisine := splitTags(r.Cuisine)
	if len(cuisine) == 0 {
		cuisine = []string{domain.DefaultCuisineTag}
	}

	available := strings.EqualFold(r.Available, "yes") || strings.EqualFold(r.Available, "daily")

	return domain.Chef{
		ID:                r.ID,
		Name:              r.Name,
		Cuisine:           cuisine,
		HourlyRate:        parseFloat(r.HourlyRate),
		Location:          r.Location,
		Distance:          parseFloat(r.Distance),
		Image:             r.Image,
		Rating:            parseFloat(r.Rating),
		ReviewCount:       parseInt(r.ReviewCount),
		Experience:        parseInt(r.Experience),
		Bio:               r.Bio,
		Specialties:       splitTags(r.Specialties),
		Available:         available,
		IsVeg:             r.IsVeg == "1",
		OnlyIndoorCooking: r.OnlyIndoorCooking == "1",
	}
}

// splitTags разбивает строку тегов по запятым, обрезает пробелы
// и выбрасывает пустые фрагменты
func splitTags(s string) []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}
