package domain

// Chef represents a chef record in the directory
// Constructed once per directory fetch, immutable afterwards
type Chef struct {
	ID                string
	Name              string
	Cuisine           []string // non-empty after normalization
	HourlyRate        float64
	Location          string
	Distance          float64 // unit-less proximity score
	Image             string
	Rating            float64 // 0-5
	ReviewCount       int
	Experience        int // years
	Bio               string
	Specialties       []string
	Available         bool
	IsVeg             bool
	OnlyIndoorCooking bool
}

// HasCuisine returns true if the chef has the given cuisine tag
func (c *Chef) HasCuisine(cuisine string) bool {
	for _, tag := range c.Cuisine {
		if tag == cuisine {
			return true
		}
	}
	return false
}
