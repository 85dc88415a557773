package contract

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/conectaplus/conecta-api/internal/config"
	"github.com/conectaplus/conecta-api/internal/middleware"
	"github.com/conectaplus/conecta-api/internal/models"
	"github.com/conectaplus/conecta-api/internal/websocket"
)

// ContractService представляет сервис для работы с контрактами
type ContractService struct {
	cfg *config.Config
	ws  *websocket.Manager
}

// NewContractService создает новый экземпляр ContractService
func NewContractService(cfg *config.Config, ws *websocket.Manager) *ContractService {
	return &ContractService{
		cfg: cfg,
		ws:  ws,
	}
}

// CreateContract создает контракт для активной переписки.
// Условия заполняются по умолчанию из профиля специалиста, клиент
// считается акцептовавшим их в момент создания.
func (s *ContractService) CreateContract(c fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	contract, ok := sess.CreateContract()
	if !ok {
		// Без активной переписки контракт не создается; это не ошибка
		return c.JSON(fiber.Map{
			"contract": nil,
			"created":  false,
		})
	}

	s.notifyStatus(sess.ID.String(), contract)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"contract": contract,
		"created":  true,
	})
}

// GetActiveContract возвращает контракт активной переписки
func (s *ContractService) GetActiveContract(c fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	contract, ok := sess.ActiveContract()
	if !ok {
		return c.JSON(fiber.Map{"contract": nil})
	}

	return c.JSON(fiber.Map{"contract": contract})
}

// SignContract фиксирует цифровую подпись специалиста под контрактом.
// Повторная подпись и подпись в недопустимом статусе молча игнорируются:
// клиент получает текущее состояние контракта без изменений.
func (s *ContractService) SignContract(c fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	contractID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID контракта"})
	}

	current, ok := sess.ActiveContract()
	if !ok || current.ID != contractID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Контракт не найден"})
	}

	contract, notice, changed := sess.SignAsProfessional(contractID)
	if !changed {
		return c.JSON(fiber.Map{
			"contract": current,
			"changed":  false,
		})
	}

	sessionID := sess.ID.String()
	s.notifyStatus(sessionID, contract)
	s.notifyNotice(sessionID, contract.ProfessionalID, notice)

	return c.JSON(fiber.Map{
		"contract": contract,
		"changed":  true,
	})
}

// UpdateContractStatus переводит контракт в один из конечных статусов
// (отмена или завершение). Статус ACTIVE достигается только подписью
// специалиста, поэтому здесь он не принимается.
func (s *ContractService) UpdateContractStatus(c fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	contractID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID контракта"})
	}

	// Получаем новый статус из запроса
	var requestData struct {
		Status models.ContractStatus `json:"status"`
	}

	if err := c.Bind().Body(&requestData); err != nil {
		log.Printf("Ошибка декодирования тела запроса: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	// Проверяем допустимость статуса
	if requestData.Status != models.ContractCancelled && requestData.Status != models.ContractCompleted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Недопустимый статус контракта"})
	}

	current, ok := sess.ActiveContract()
	if !ok || current.ID != contractID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Контракт не найден"})
	}

	var (
		contract models.Contract
		changed  bool
	)
	switch requestData.Status {
	case models.ContractCancelled:
		contract, changed = sess.CancelContract(contractID)
	case models.ContractCompleted:
		contract, changed = sess.CompleteContract(contractID)
	}

	if !changed {
		// Недопустимый переход молча игнорируется
		return c.JSON(fiber.Map{
			"contract": current,
			"changed":  false,
		})
	}

	s.notifyStatus(sess.ID.String(), contract)

	return c.JSON(fiber.Map{
		"contract": contract,
		"changed":  true,
	})
}

// notifyStatus отправляет событие о смене статуса контракта в WebSocket сессии
func (s *ContractService) notifyStatus(sessionID string, contract models.Contract) {
	data, err := json.Marshal(contract)
	if err != nil {
		log.Printf("Ошибка сериализации контракта %s: %v", contract.ID, err)
		return
	}

	s.ws.SendToSession(sessionID, websocket.Event{
		Type:           websocket.EventContractStatus,
		ProfessionalID: contract.ProfessionalID,
		Payload:        data,
	})
}

// notifyNotice отправляет системное уведомление из переписки в WebSocket сессии
func (s *ContractService) notifyNotice(sessionID, professionalID string, notice models.Message) {
	data, err := json.Marshal(notice)
	if err != nil {
		log.Printf("Ошибка сериализации уведомления %s: %v", notice.ID, err)
		return
	}

	s.ws.SendToSession(sessionID, websocket.Event{
		Type:           websocket.EventNewMessage,
		ProfessionalID: professionalID,
		Payload:        data,
	})
}
