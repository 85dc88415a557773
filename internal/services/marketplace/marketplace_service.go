package marketplace

import (
	"github.com/gofiber/fiber/v3"

	"github.com/conectaplus/conecta-api/internal/catalog"
	"github.com/conectaplus/conecta-api/internal/config"
	"github.com/conectaplus/conecta-api/internal/models"
)

// MarketplaceService отдает каталог платформы: специалистов, товары и ленту
type MarketplaceService struct {
	cfg     *config.Config
	catalog *catalog.Store
}

// NewMarketplaceService создает новый экземпляр MarketplaceService
func NewMarketplaceService(cfg *config.Config, catalogStore *catalog.Store) *MarketplaceService {
	return &MarketplaceService{
		cfg:     cfg,
		catalog: catalogStore,
	}
}

// GetProfessionals возвращает список специалистов с необязательным
// фильтром по провинции
func (s *MarketplaceService) GetProfessionals(c fiber.Ctx) error {
	var professionals []models.Professional
	if province := c.Query("province"); province != "" {
		professionals = s.catalog.ProfessionalsByProvince(province)
	} else {
		professionals = s.catalog.Professionals()
	}

	return c.JSON(fiber.Map{
		"professionals": professionals,
		"count":         len(professionals),
	})
}

// GetProfessional возвращает одного специалиста по ID
func (s *MarketplaceService) GetProfessional(c fiber.Ctx) error {
	prof, ok := s.catalog.ProfessionalByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Специалист не найден"})
	}

	return c.JSON(fiber.Map{"professional": prof})
}

// GetProducts возвращает товары маркетплейса с фильтрами по категории и типу
func (s *MarketplaceService) GetProducts(c fiber.Ctx) error {
	products := s.catalog.Products(c.Query("category"), models.ProductType(c.Query("type")))

	return c.JSON(fiber.Map{
		"products": products,
		"count":    len(products),
	})
}

// GetPosts возвращает публикации ленты сообщества
func (s *MarketplaceService) GetPosts(c fiber.Ctx) error {
	posts := s.catalog.Posts()

	return c.JSON(fiber.Map{
		"posts": posts,
		"count": len(posts),
	})
}
