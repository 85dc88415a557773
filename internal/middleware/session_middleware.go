package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/conectaplus/conecta-api/internal/session"
)

// Заголовок, в котором клиент передает идентификатор своей сессии
const SessionHeader = "X-Session-ID"

// SessionMiddleware создаёт middleware, гарантирующее наличие сессии
// для каждого запроса. Если клиент не прислал идентификатор или сессия
// не найдена, создается новая; ее идентификатор возвращается в заголовке
// ответа, чтобы клиент продолжил с ней работать.
func SessionMiddleware(store *session.Store) fiber.Handler {
	return func(c fiber.Ctx) error {
		var sess *session.Session

		if header := c.Get(SessionHeader); header != "" {
			id, err := uuid.Parse(header)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Неверный формат ID сессии",
				})
			}
			sess, _ = store.Get(id)
		}

		if sess == nil {
			sess = store.Create()
		}

		// Добавляем сессию в контекст запроса
		c.Locals("session", sess)
		c.Set(SessionHeader, sess.ID.String())

		return c.Next()
	}
}

// SessionFromCtx достает сессию текущего запроса из контекста
func SessionFromCtx(c fiber.Ctx) *session.Session {
	sess, _ := c.Locals("session").(*session.Session)
	return sess
}
