package catalog

import (
	"github.com/conectaplus/conecta-api/internal/models"
)

// Seed возвращает стартовые данные каталога Conecta+.
// Персистентность между сессиями не входит в задачи MVP,
// поэтому каталог живет только в памяти процесса.
func Seed() ([]models.Professional, []models.Product, []models.Post) {
	professionals := []models.Professional{
		{
			ID:          "p1",
			Name:        "António Manuel",
			Role:        "Desenvolvedor Full-Stack",
			Specialty:   "React, Node.js & Mobile",
			Location:    models.Location{Country: "Angola", Province: "Luanda", City: "Luanda"},
			Bio:         "Especialista em criar soluções digitais para o mercado angolano.",
			Rating:      4.9,
			ReviewCount: 124,
			Portfolio: []string{
				"https://picsum.photos/400/300?1",
				"https://picsum.photos/400/300?2",
			},
			Badges:          []string{"Verificado", "Top Avaliado"},
			Availability:    models.AvailabilityRemote,
			HourlyRate:      25,
			ExperienceYears: 5,
			Avatar:          "https://i.pravatar.cc/150?u=p1",
			CoverImage:      "https://picsum.photos/1200/400?1",
		},
		{
			ID:          "p2",
			Name:        "Elsa Santos",
			Role:        "Designer Gráfica",
			Specialty:   "Branding & UI/UX",
			Location:    models.Location{Country: "Angola", Province: "Benguela", City: "Benguela"},
			Bio:         "Transformando ideias em identidades visuais impactantes.",
			Rating:      4.7,
			ReviewCount: 89,
			Portfolio: []string{
				"https://picsum.photos/400/300?3",
				"https://picsum.photos/400/300?4",
			},
			Badges:          []string{"Verificado"},
			Availability:    models.AvailabilityHybrid,
			HourlyRate:      15,
			ExperienceYears: 3,
			Avatar:          "https://i.pravatar.cc/150?u=p2",
			CoverImage:      "https://picsum.photos/1200/400?2",
		},
		{
			ID:              "p3",
			Name:            "Carlos Bento",
			Role:            "Eletricista Certificado",
			Specialty:       "Instalações Residenciais",
			Location:        models.Location{Country: "Angola", Province: "Luanda", City: "Talatona"},
			Bio:             "Serviços elétricos com segurança e rapidez.",
			Rating:          4.8,
			ReviewCount:     56,
			Portfolio:       []string{},
			Badges:          []string{"Verificado", "Entrega Rápida"},
			Availability:    models.AvailabilityFullTime,
			HourlyRate:      10,
			ExperienceYears: 8,
			Avatar:          "https://i.pravatar.cc/150?u=p3",
			CoverImage:      "https://picsum.photos/1200/400?3",
		},
	}

	products := []models.Product{
		{
			ID:          "prod1",
			Name:        "Curso de Marketing Digital Pro",
			Description: "Aprenda a vender nas redes sociais com foco no mercado africano.",
			Price:       5000,
			Type:        models.ProductCourse,
			Category:    "Educação",
			Images:      []string{"https://picsum.photos/400/400?course"},
			Rating:      5,
			Stock:       999,
			VendorID:    "p1",
		},
		{
			ID:          "prod2",
			Name:        "Mochila Profissional Tech",
			Description: "Resistente e com compartimento para laptop de até 17 polegadas.",
			Price:       15000,
			Type:        models.ProductPhysical,
			Category:    "Acessórios",
			Images:      []string{"https://picsum.photos/400/400?bag"},
			Rating:      4.5,
			Stock:       12,
			VendorID:    "v1",
		},
	}

	posts := []models.Post{
		{
			ID:         "post1",
			UserID:     "p1",
			UserName:   "António Manuel",
			UserAvatar: "https://i.pravatar.cc/150?u=p1",
			Content:    "Acabei de lançar o novo portal de e-commerce para uma loja local! O mercado digital em Angola não para de crescer. 🚀",
			Image:      "https://picsum.photos/800/600?tech",
			Likes:      45,
			Comments:   12,
			Timestamp:  "2h atrás",
		},
		{
			ID:         "post2",
			UserID:     "p2",
			UserName:   "Elsa Santos",
			UserAvatar: "https://i.pravatar.cc/150?u=p2",
			Content:    "Design não é apenas o que parece, é como funciona. Novo projeto de UI finalizado hoje.",
			Likes:      82,
			Comments:   5,
			Timestamp:  "5h atrás",
		},
	}

	return professionals, products, posts
}

// DefaultLocation возвращает локацию пользователя по умолчанию
func DefaultLocation() models.Location {
	return models.Location{Country: "Angola", Province: "Luanda", City: "Luanda"}
}
