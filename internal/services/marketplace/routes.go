package marketplace

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes настраивает маршруты для API каталога
func (s *MarketplaceService) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Маршруты каталога специалистов
	api.Get("/professionals", s.GetProfessionals)
	api.Get("/professionals/:id", s.GetProfessional)

	// Маршрут товаров маркетплейса
	api.Get("/products", s.GetProducts)

	// Маршрут ленты сообщества
	api.Get("/posts", s.GetPosts)
}
