package contract

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes настраивает маршруты для API контрактов
func (s *ContractService) SetupRoutes(app *fiber.App) {
	// Группа для API контрактов
	api := app.Group("/api/contracts")

	// Маршрут для создания контракта из активной переписки
	api.Post("/", s.CreateContract)

	// Маршрут для получения контракта активной переписки
	api.Get("/active", s.GetActiveContract)

	// Маршрут для цифровой подписи специалиста
	api.Post("/:id/sign", s.SignContract)

	// Маршрут для перевода контракта в конечный статус
	api.Put("/:id/status", s.UpdateContractStatus)
}
