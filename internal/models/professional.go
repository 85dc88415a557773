package models

// Location представляет географическую привязку пользователя или специалиста
type Location struct {
	Country  string `json:"country"`
	Province string `json:"province"`
	City     string `json:"city"`
}

// Availability определяет формат занятости специалиста
type Availability string

const (
	AvailabilityFullTime  Availability = "FULL_TIME"
	AvailabilityFreelance Availability = "FREELANCE"
	AvailabilityRemote    Availability = "REMOTE"
	AvailabilityHybrid    Availability = "HYBRID"
)

// Professional представляет специалиста из каталога платформы
type Professional struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Role            string       `json:"role"`
	Specialty       string       `json:"specialty"`
	Location        Location     `json:"location"`
	Bio             string       `json:"bio"`
	Rating          float64      `json:"rating"`
	ReviewCount     int          `json:"review_count"`
	Portfolio       []string     `json:"portfolio"`
	Badges          []string     `json:"badges"`
	Availability    Availability `json:"availability"`
	HourlyRate      float64      `json:"hourly_rate,omitempty"`
	ExperienceYears int          `json:"experience_years"`
	Avatar          string       `json:"avatar"`
	CoverImage      string       `json:"cover_image"`
}
