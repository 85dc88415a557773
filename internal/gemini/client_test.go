package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectaplus/conecta-api/internal/models"
)

func TestBuildPrompt(t *testing.T) {
	candidates := []Candidate{
		{
			ID:        "p1",
			Name:      "António Manuel",
			Specialty: "React, Node.js & Mobile",
			Location:  models.Location{Country: "Angola", Province: "Luanda", City: "Luanda"},
			Rating:    4.9,
		},
	}

	prompt, err := BuildPrompt("preciso de um site", models.Location{Country: "Angola", Province: "Luanda", City: "Talatona"}, candidates)
	require.NoError(t, err)

	assert.Contains(t, prompt, `"preciso de um site"`)
	assert.Contains(t, prompt, "Talatona, Luanda, Angola")
	assert.Contains(t, prompt, `"id":"p1"`)
	assert.Contains(t, prompt, "top 3 professional IDs")
}
