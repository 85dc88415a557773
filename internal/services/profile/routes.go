package profile

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes настраивает маршруты для API профиля и настроек
func (s *ProfileService) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Маршруты профиля сессии
	api.Get("/profile", s.GetProfile)
	api.Put("/profile/location", s.UpdateLocation)

	// Маршруты настроек интерфейса
	api.Get("/settings", s.GetSettings)
	api.Put("/settings", s.UpdateSettings)
}
