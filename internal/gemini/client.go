package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/conectaplus/conecta-api/internal/models"
)

// Client оборачивает модель Gemini, которая ранжирует специалистов под запрос.
// Сам сервис никогда не ранжирует локально — только через модель.
type Client struct {
	model *genai.GenerativeModel
}

// NewClient создает клиент Gemini с JSON-ответом по фиксированной схеме
func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"recommendedIds": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"reasoning": {Type: genai.TypeString},
		},
		Required: []string{"recommendedIds"},
	}

	return &Client{model: model}, nil
}

// Candidate — специалист в том виде, в котором он передается модели.
// Ничего сверх публичного профиля не отправляется.
type Candidate struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Specialty string          `json:"specialty"`
	Location  models.Location `json:"location"`
	Rating    float64         `json:"rating"`
}

// Recommendation — ответ модели: упорядоченный список ID и пояснение
type Recommendation struct {
	RecommendedIDs []string `json:"recommendedIds"`
	Reasoning      string   `json:"reasoning,omitempty"`
}

// RecommendProfessionals запрашивает у модели топ-3 специалистов под запрос.
// Политика ранжирования передается в промпте: сначала город, затем
// провинция/удаленная работа, затем специализация и рейтинг.
func (c *Client) RecommendProfessionals(ctx context.Context, query string, location models.Location, candidates []Candidate) (*Recommendation, error) {
	prompt, err := BuildPrompt(query, location, candidates)
	if err != nil {
		return nil, err
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("пустой ответ от Gemini")
	}

	part := resp.Candidates[0].Content.Parts[0]
	txt, ok := part.(genai.Text)
	if !ok {
		return nil, fmt.Errorf("неожиданный тип ответа от Gemini")
	}

	var rec Recommendation
	if err := json.Unmarshal([]byte(txt), &rec); err != nil {
		return nil, fmt.Errorf("не удалось разобрать JSON от Gemini: %w", err)
	}

	return &rec, nil
}

// BuildPrompt собирает промпт для ранжирования специалистов
func BuildPrompt(query string, location models.Location, candidates []Candidate) (string, error) {
	payload, err := json.Marshal(candidates)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`
Analyze this search query: "%s"
User Location: %s, %s, %s

Available Professionals Data (Subset): %s

Task: Return a JSON list of the top 3 professional IDs that best match the query, prioritizing location first, then specialty, then rating.
If no one is in the same city, suggest from the same province or remote.
`, query, location.City, location.Province, location.Country, payload)

	return prompt, nil
}
