package websocket

import (
	"log"

	fws "github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"

	"github.com/conectaplus/conecta-api/internal/middleware"
)

// Handler возвращает fiber-обработчик, поднимающий WebSocket соединение
// для push-событий текущей сессии
func (m *Manager) Handler() fiber.Handler {
	upgrader := fws.FastHTTPUpgrader{
		CheckOrigin: func(ctx *fasthttp.RequestCtx) bool { return true },
	}

	return func(c fiber.Ctx) error {
		sess := middleware.SessionFromCtx(c)
		if sess == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Сессия не найдена"})
		}
		sessionID := sess.ID.String()

		err := upgrader.Upgrade(c.RequestCtx(), func(conn *fws.Conn) {
			client := NewClient(sessionID, conn, m)
			client.Run()
		})
		if err != nil {
			log.Printf("Ошибка апгрейда WebSocket соединения: %v", err)
		}
		return err
	}
}
