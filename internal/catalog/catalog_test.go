package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectaplus/conecta-api/internal/models"
)

func TestSeedCatalog(t *testing.T) {
	store := NewStore(Seed())

	professionals := store.Professionals()
	require.Len(t, professionals, 3)
	assert.Equal(t, "p1", professionals[0].ID)

	prof, ok := store.ProfessionalByID("p1")
	require.True(t, ok)
	assert.Equal(t, "António Manuel", prof.Name)
	assert.Equal(t, 25.0, prof.HourlyRate)

	_, ok = store.ProfessionalByID("ghost")
	assert.False(t, ok)

	assert.Len(t, store.Posts(), 2)
}

func TestProfessionalsByProvince(t *testing.T) {
	store := NewStore(Seed())

	luanda := store.ProfessionalsByProvince("Luanda")
	require.Len(t, luanda, 2)
	for _, p := range luanda {
		assert.Equal(t, "Luanda", p.Location.Province)
	}

	assert.Empty(t, store.ProfessionalsByProvince("Cabinda"))
}

func TestProductFilters(t *testing.T) {
	store := NewStore(Seed())

	assert.Len(t, store.Products("", ""), 2)

	courses := store.Products("", models.ProductCourse)
	require.Len(t, courses, 1)
	assert.Equal(t, "prod1", courses[0].ID)

	assert.Empty(t, store.Products("Educação", models.ProductPhysical))
}
