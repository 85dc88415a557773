package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/conectaplus/conecta-api/internal/catalog"
	"github.com/conectaplus/conecta-api/internal/config"
	"github.com/conectaplus/conecta-api/internal/gemini"
	"github.com/conectaplus/conecta-api/internal/middleware"
	"github.com/conectaplus/conecta-api/internal/services/chat"
	"github.com/conectaplus/conecta-api/internal/services/contract"
	"github.com/conectaplus/conecta-api/internal/services/marketplace"
	"github.com/conectaplus/conecta-api/internal/services/profile"
	"github.com/conectaplus/conecta-api/internal/services/search"
	"github.com/conectaplus/conecta-api/internal/session"
	"github.com/conectaplus/conecta-api/internal/websocket"
)

func main() {
	// Загружаем конфигурацию
	cfg := config.LoadConfig()

	// Каталог и сессии живут в памяти процесса
	catalogStore := catalog.NewStore(catalog.Seed())
	sessionStore := session.NewStore(catalog.DefaultLocation())

	// Клиент Gemini для подбора специалистов; без ключа поиск
	// работает через детерминированный fallback
	var ranker search.Ranker
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("⚠️ Не удалось создать клиент Gemini: %v", err)
		} else {
			ranker = client
		}
	}

	// Менеджер WebSocket соединений для push-событий сессий
	wsManager := websocket.NewManager()

	// Создаём экземпляр Fiber
	app := fiber.New(fiber.Config{
		AppName:      "Conecta+ API (MVP)",
		ErrorHandler: errorHandler,
	})

	// Добавляем middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.SessionHeader},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{middleware.SessionHeader},
		AllowCredentials: false,
	}))
	app.Use(middleware.SessionMiddleware(sessionStore))

	// Создаём сервисы
	chatService := chat.NewChatService(cfg, catalogStore, wsManager)
	contractService := contract.NewContractService(cfg, wsManager)
	searchService := search.NewSearchService(cfg, catalogStore, ranker)
	marketplaceService := marketplace.NewMarketplaceService(cfg, catalogStore)
	profileService := profile.NewProfileService(cfg)

	// Регистрируем маршруты
	chatService.SetupRoutes(app)
	contractService.SetupRoutes(app)
	searchService.SetupRoutes(app)
	marketplaceService.SetupRoutes(app)
	profileService.SetupRoutes(app)

	// WebSocket канал push-событий сессии
	app.Get("/ws", wsManager.Handler())

	// Запускаем сервер
	log.Printf("✅ Conecta+ API запущен на порту %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

// errorHandler обрабатывает ошибки Fiber
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	// Проверяем, является ли ошибка из Fiber
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Отправляем ошибку в JSON
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
