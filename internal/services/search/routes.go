package search

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes настраивает маршруты для API поиска
func (s *SearchService) SetupRoutes(app *fiber.App) {
	// Маршрут для подбора специалистов под запрос
	app.Post("/api/search", s.Search)
}
