package search

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/conectaplus/conecta-api/internal/catalog"
	"github.com/conectaplus/conecta-api/internal/config"
	"github.com/conectaplus/conecta-api/internal/gemini"
	"github.com/conectaplus/conecta-api/internal/middleware"
	"github.com/conectaplus/conecta-api/internal/models"
)

// Ranker абстрагирует внешний сервис ранжирования специалистов
type Ranker interface {
	RecommendProfessionals(ctx context.Context, query string, location models.Location, candidates []gemini.Candidate) (*gemini.Recommendation, error)
}

const (
	// Текст пояснения при детерминированном fallback-подборе
	fallbackReasoning = "Fallback matching"

	// Максимальная длина шорт-листа
	maxRecommendations = 3

	// Таймаут одного обращения к оракулу; повторных попыток нет,
	// по истечении сразу включается fallback
	oracleTimeout = 15 * time.Second
)

// SearchService представляет сервис подбора специалистов под запрос
type SearchService struct {
	cfg     *config.Config
	catalog *catalog.Store
	ranker  Ranker // nil, если ключ Gemini не задан

	// Поисковые запросы выполняются строго по одному, чтобы результаты
	// параллельных обращений к модели не перемешивались
	mu sync.Mutex
}

// NewSearchService создает новый экземпляр SearchService
func NewSearchService(cfg *config.Config, catalogStore *catalog.Store, ranker Ranker) *SearchService {
	return &SearchService{
		cfg:     cfg,
		catalog: catalogStore,
		ranker:  ranker,
	}
}

// Search обрабатывает поисковый запрос и возвращает шорт-лист специалистов
func (s *SearchService) Search(c fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	// Получаем данные запроса
	var requestData struct {
		Query string `json:"query"`
	}

	if err := c.Bind().Body(&requestData); err != nil {
		log.Printf("Ошибка чтения тела запроса: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	professionals, reasoning := s.shortlist(requestData.Query, sess.Location())

	return c.JSON(fiber.Map{
		"professionals": professionals,
		"reasoning":     reasoning,
		"count":         len(professionals),
	})
}

// shortlist возвращает подборку специалистов под запрос.
// Ошибок не бывает: любой сбой оракула сводится к детерминированному fallback.
func (s *SearchService) shortlist(query string, location models.Location) ([]models.Professional, string) {
	roster := s.catalog.Professionals()

	// Пустой запрос модели не отправляем: показываем каталог целиком
	if strings.TrimSpace(query) == "" {
		return roster, ""
	}

	rec := s.recommend(query, location, roster)

	// Вторая линия защиты: неизвестные ID отбрасываются, а если после
	// фильтрации никого не осталось — возвращаем каталог целиком
	filtered := filterRoster(roster, rec.RecommendedIDs)
	if len(filtered) == 0 {
		return roster, rec.Reasoning
	}
	return filtered, rec.Reasoning
}

// recommend обращается к оракулу. На любой сбой — транспортный, пустой
// или некорректный ответ — отвечает fallback-подборкой, никогда ошибкой.
func (s *SearchService) recommend(query string, location models.Location, roster []models.Professional) *gemini.Recommendation {
	if s.ranker == nil {
		return fallback(roster)
	}

	ctx, cancel := context.WithTimeout(context.Background(), oracleTimeout)
	defer cancel()

	rec, err := s.ranker.RecommendProfessionals(ctx, query, location, toCandidates(roster))
	if err != nil || rec == nil {
		log.Printf("Ошибка подбора через Gemini: %v", err)
		return fallback(roster)
	}

	if len(rec.RecommendedIDs) > maxRecommendations {
		rec.RecommendedIDs = rec.RecommendedIDs[:maxRecommendations]
	}
	return rec
}

// fallback — первые специалисты каталога в исходном порядке
func fallback(roster []models.Professional) *gemini.Recommendation {
	n := maxRecommendations
	if len(roster) < n {
		n = len(roster)
	}

	ids := make([]string, 0, n)
	for _, p := range roster[:n] {
		ids = append(ids, p.ID)
	}

	return &gemini.Recommendation{
		RecommendedIDs: ids,
		Reasoning:      fallbackReasoning,
	}
}

// toCandidates сокращает профили до полей, передаваемых модели
func toCandidates(roster []models.Professional) []gemini.Candidate {
	candidates := make([]gemini.Candidate, 0, len(roster))
	for _, p := range roster {
		candidates = append(candidates, gemini.Candidate{
			ID:        p.ID,
			Name:      p.Name,
			Specialty: p.Specialty,
			Location:  p.Location,
			Rating:    p.Rating,
		})
	}
	return candidates
}

// filterRoster сохраняет порядок, предложенный моделью,
// и отбрасывает идентификаторы, которых нет в каталоге
func filterRoster(roster []models.Professional, ids []string) []models.Professional {
	byID := make(map[string]models.Professional, len(roster))
	for _, p := range roster {
		byID[p.ID] = p
	}

	var result []models.Professional
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			result = append(result, p)
		}
	}
	return result
}
