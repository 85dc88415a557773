package chat

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/conectaplus/conecta-api/internal/catalog"
	"github.com/conectaplus/conecta-api/internal/config"
	"github.com/conectaplus/conecta-api/internal/middleware"
	"github.com/conectaplus/conecta-api/internal/websocket"
)

// ChatService представляет сервис для работы с перепиской
type ChatService struct {
	cfg     *config.Config
	catalog *catalog.Store
	ws      *websocket.Manager
}

// NewChatService создает новый экземпляр ChatService
func NewChatService(cfg *config.Config, catalogStore *catalog.Store, ws *websocket.Manager) *ChatService {
	return &ChatService{
		cfg:     cfg,
		catalog: catalogStore,
		ws:      ws,
	}
}

// OpenChat открывает переписку со специалистом. Журнал всегда начинается
// заново с одного приветственного сообщения от его имени.
func (s *ChatService) OpenChat(c fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	// Получаем данные запроса
	var requestData struct {
		ProfessionalID string `json:"professional_id"`
	}

	if err := c.Bind().Body(&requestData); err != nil {
		log.Printf("Ошибка чтения тела запроса: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	if requestData.ProfessionalID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID специалиста не указан"})
	}

	// Проверяем, существует ли специалист в каталоге
	prof, ok := s.catalog.ProfessionalByID(requestData.ProfessionalID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Специалист не найден"})
	}

	messages := sess.OpenConversation(prof)

	s.notify(sess.ID.String(), websocket.EventConversationOpened, prof.ID, messages[0])

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"professional": prof,
		"messages":     messages,
		"success":      true,
	})
}

// GetChats возвращает сводку по всем перепискам сессии
func (s *ChatService) GetChats(c fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	chats := sess.Conversations()
	return c.JSON(fiber.Map{
		"chats": chats,
		"count": len(chats),
	})
}

// GetMessages возвращает журнал активной переписки
func (s *ChatService) GetMessages(c fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	prof, ok := sess.ActiveProfessional()
	if !ok {
		return c.JSON(fiber.Map{
			"professional": nil,
			"messages":     []any{},
			"count":        0,
		})
	}

	messages := sess.Messages()
	return c.JSON(fiber.Map{
		"professional": prof,
		"messages":     messages,
		"count":        len(messages),
	})
}

// SendMessage добавляет сообщение клиента в активную переписку
func (s *ChatService) SendMessage(c fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	// Получаем данные запроса
	var requestData struct {
		Text string `json:"text"`
	}

	if err := c.Bind().Body(&requestData); err != nil {
		log.Printf("Ошибка чтения тела запроса: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	msg, ok := sess.Send(requestData.Text)
	if !ok {
		// Пустой текст или отсутствие активной переписки — не ошибка,
		// журнал просто остается без изменений
		return c.JSON(fiber.Map{
			"message": nil,
			"success": true,
		})
	}

	if prof, ok := sess.ActiveProfessional(); ok {
		s.notify(sess.ID.String(), websocket.EventNewMessage, prof.ID, msg)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": msg,
		"success": true,
	})
}

// notify отправляет событие в WebSocket канал сессии
func (s *ChatService) notify(sessionID string, eventType websocket.EventType, professionalID string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Ошибка сериализации события %s: %v", eventType, err)
		return
	}

	s.ws.SendToSession(sessionID, websocket.Event{
		Type:           eventType,
		ProfessionalID: professionalID,
		Payload:        data,
	})
}
