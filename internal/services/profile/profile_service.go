package profile

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/conectaplus/conecta-api/internal/config"
	"github.com/conectaplus/conecta-api/internal/middleware"
	"github.com/conectaplus/conecta-api/internal/models"
)

// ProfileService представляет сервис профиля и настроек сессии
type ProfileService struct {
	cfg *config.Config
}

// NewProfileService создает новый экземпляр ProfileService
func NewProfileService(cfg *config.Config) *ProfileService {
	return &ProfileService{cfg: cfg}
}

// GetProfile возвращает профиль текущей сессии
func (s *ProfileService) GetProfile(c fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	return c.JSON(fiber.Map{
		"user_id":    models.ClientSenderID,
		"session_id": sess.ID,
		"location":   sess.Location(),
		"settings":   sess.Settings(),
	})
}

// UpdateLocation обновляет локацию пользователя; она используется
// при подборе специалистов
func (s *ProfileService) UpdateLocation(c fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	var requestData models.Location
	if err := c.Bind().Body(&requestData); err != nil {
		log.Printf("Ошибка чтения тела запроса: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	if requestData.Country == "" || requestData.Province == "" || requestData.City == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Локация указана не полностью"})
	}

	sess.SetLocation(requestData)

	return c.JSON(fiber.Map{
		"location": requestData,
		"success":  true,
	})
}

// GetSettings возвращает настройки интерфейса сессии
func (s *ProfileService) GetSettings(c fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	return c.JSON(fiber.Map{"settings": sess.Settings()})
}

// UpdateSettings заменяет настройки интерфейса сессии
func (s *ProfileService) UpdateSettings(c fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	var requestData models.AppSettings
	if err := c.Bind().Body(&requestData); err != nil {
		log.Printf("Ошибка чтения тела запроса: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	if requestData.Theme != models.ThemeLight && requestData.Theme != models.ThemeDark {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Недопустимая тема оформления"})
	}

	if requestData.Language != models.LanguagePT && requestData.Language != models.LanguageEN {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Недопустимый язык интерфейса"})
	}

	sess.UpdateSettings(requestData)

	return c.JSON(fiber.Map{
		"settings": requestData,
		"success":  true,
	})
}
