package catalog

import (
	"github.com/conectaplus/conecta-api/internal/models"
)

// Store хранит каталог платформы: специалистов, товары и публикации ленты.
// Каталог наполняется один раз при старте и дальше только читается,
// поэтому блокировки не требуются.
type Store struct {
	professionals []models.Professional
	products      []models.Product
	posts         []models.Post
	profIndex     map[string]int
}

// NewStore создает каталог поверх переданных данных
func NewStore(professionals []models.Professional, products []models.Product, posts []models.Post) *Store {
	index := make(map[string]int, len(professionals))
	for i, p := range professionals {
		index[p.ID] = i
	}

	return &Store{
		professionals: professionals,
		products:      products,
		posts:         posts,
		profIndex:     index,
	}
}

// Professionals возвращает всех специалистов в исходном порядке каталога
func (s *Store) Professionals() []models.Professional {
	result := make([]models.Professional, len(s.professionals))
	copy(result, s.professionals)
	return result
}

// ProfessionalsByProvince возвращает специалистов из указанной провинции
func (s *Store) ProfessionalsByProvince(province string) []models.Professional {
	var result []models.Professional
	for _, p := range s.professionals {
		if p.Location.Province == province {
			result = append(result, p)
		}
	}
	return result
}

// ProfessionalByID ищет специалиста по его идентификатору
func (s *Store) ProfessionalByID(id string) (models.Professional, bool) {
	i, ok := s.profIndex[id]
	if !ok {
		return models.Professional{}, false
	}
	return s.professionals[i], true
}

// Products возвращает товары, отфильтрованные по категории и типу.
// Пустые значения фильтров означают "все".
func (s *Store) Products(category string, productType models.ProductType) []models.Product {
	var result []models.Product
	for _, p := range s.products {
		if category != "" && p.Category != category {
			continue
		}
		if productType != "" && p.Type != productType {
			continue
		}
		result = append(result, p)
	}
	return result
}

// Posts возвращает публикации ленты в исходном порядке
func (s *Store) Posts() []models.Post {
	result := make([]models.Post, len(s.posts))
	copy(result, s.posts)
	return result
}
