package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectaplus/conecta-api/internal/catalog"
	"github.com/conectaplus/conecta-api/internal/config"
	"github.com/conectaplus/conecta-api/internal/gemini"
	"github.com/conectaplus/conecta-api/internal/models"
)

type fakeRanker struct {
	rec   *gemini.Recommendation
	err   error
	calls int
}

func (f *fakeRanker) RecommendProfessionals(ctx context.Context, query string, location models.Location, candidates []gemini.Candidate) (*gemini.Recommendation, error) {
	f.calls++
	return f.rec, f.err
}

func testRoster(n int) []models.Professional {
	roster := make([]models.Professional, 0, n)
	for i := 1; i <= n; i++ {
		roster = append(roster, models.Professional{
			ID:        fmt.Sprintf("p%d", i),
			Name:      fmt.Sprintf("Profissional %d", i),
			Specialty: "Especialidade",
			Location:  models.Location{Country: "Angola", Province: "Luanda", City: "Luanda"},
			Rating:    4.5,
		})
	}
	return roster
}

func testService(roster []models.Professional, ranker Ranker) *SearchService {
	store := catalog.NewStore(roster, nil, nil)
	return NewSearchService(&config.Config{}, store, ranker)
}

func ids(professionals []models.Professional) []string {
	result := make([]string, 0, len(professionals))
	for _, p := range professionals {
		result = append(result, p.ID)
	}
	return result
}

func TestShortlistTransportFailure(t *testing.T) {
	s := testService(testRoster(5), &fakeRanker{err: errors.New("transport down")})

	professionals, reasoning := s.shortlist("preciso de um site", models.Location{City: "Luanda"})

	// При сбое транспорта — ровно первые три специалиста каталога
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(professionals))
	assert.Equal(t, "Fallback matching", reasoning)
}

func TestShortlistNilRanker(t *testing.T) {
	s := testService(testRoster(5), nil)

	professionals, reasoning := s.shortlist("qualquer coisa", models.Location{City: "Luanda"})

	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(professionals))
	assert.Equal(t, "Fallback matching", reasoning)
}

func TestShortlistFallbackSmallRoster(t *testing.T) {
	s := testService(testRoster(2), &fakeRanker{err: errors.New("transport down")})

	professionals, _ := s.shortlist("qualquer coisa", models.Location{City: "Luanda"})
	assert.Equal(t, []string{"p1", "p2"}, ids(professionals))
}

func TestShortlistUnknownIDs(t *testing.T) {
	ranker := &fakeRanker{rec: &gemini.Recommendation{
		RecommendedIDs: []string{"ghost1", "ghost2"},
		Reasoning:      "matched by specialty",
	}}
	s := testService(testRoster(5), ranker)

	// Неизвестные ID отбрасываются, показывается весь каталог
	professionals, reasoning := s.shortlist("web", models.Location{City: "Luanda"})
	assert.Len(t, professionals, 5)
	assert.Equal(t, "matched by specialty", reasoning)
}

func TestShortlistPreservesOracleOrder(t *testing.T) {
	ranker := &fakeRanker{rec: &gemini.Recommendation{
		RecommendedIDs: []string{"p4", "p2", "ghost"},
		Reasoning:      "location first",
	}}
	s := testService(testRoster(5), ranker)

	professionals, _ := s.shortlist("design", models.Location{City: "Luanda"})
	assert.Equal(t, []string{"p4", "p2"}, ids(professionals))
}

func TestShortlistTrimsToThree(t *testing.T) {
	ranker := &fakeRanker{rec: &gemini.Recommendation{
		RecommendedIDs: []string{"p1", "p2", "p3", "p4", "p5"},
	}}
	s := testService(testRoster(5), ranker)

	professionals, _ := s.shortlist("todos", models.Location{City: "Luanda"})
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(professionals))
}

func TestShortlistEmptyQuerySkipsOracle(t *testing.T) {
	ranker := &fakeRanker{rec: &gemini.Recommendation{RecommendedIDs: []string{"p1"}}}
	s := testService(testRoster(5), ranker)

	professionals, reasoning := s.shortlist("   ", models.Location{City: "Luanda"})

	// Пустой запрос не уходит к модели: показываем каталог целиком
	require.Equal(t, 0, ranker.calls)
	assert.Len(t, professionals, 5)
	assert.Empty(t, reasoning)
}
