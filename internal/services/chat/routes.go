package chat

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes настраивает маршруты для API переписки
func (s *ChatService) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Маршрут для открытия переписки со специалистом
	api.Post("/chats", s.OpenChat)

	// Маршрут для получения всех переписок сессии
	api.Get("/chats", s.GetChats)

	// Маршрут для получения журнала активной переписки
	api.Get("/messages", s.GetMessages)

	// Маршрут для отправки сообщения в активную переписку
	api.Post("/messages", s.SendMessage)
}
