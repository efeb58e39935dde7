package service

import (
	"context"
	"testing"

	"learnsphere_backend/internal/llm"
	"learnsphere_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLearner() *model.Learner {
	return &model.Learner{
		ID:              7,
		Username:        "alice",
		LearningGoals:   "Learn Go",
		ExperienceLevel: "beginner",
	}
}

func TestGenerateLessonLive(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "live lesson text"})
	gen := NewGeneratorService(mock, testConfig())

	content := gen.GenerateLesson(context.Background(), sampleLearner(), "Slices")

	assert.Equal(t, SourceLive, content.Source)
	assert.Equal(t, "live lesson text", content.Text)
}

func TestGenerateLessonFallbackOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	gen := NewGeneratorService(mock, testConfig())

	content := gen.GenerateLesson(context.Background(), sampleLearner(), "Slices")

	assert.Equal(t, SourceFallback, content.Source)
	assert.Contains(t, content.Text, "alice")
	assert.Contains(t, content.Text, "Slices")
	assert.Contains(t, content.Text, "Learn Go")
	assert.Contains(t, content.Text, "beginner")
}

func TestGenerateLessonFallbackWithoutCredential(t *testing.T) {
	gen := NewGeneratorService(nil, testConfig())

	content := gen.GenerateLesson(context.Background(), sampleLearner(), "Slices")

	assert.Equal(t, SourceFallback, content.Source)
	assert.NotEmpty(t, content.Text)
}

func TestGeneratePracticeFallbackMentionsProfile(t *testing.T) {
	gen := NewGeneratorService(nil, testConfig())

	content := gen.GeneratePractice(context.Background(), sampleLearner())

	assert.Equal(t, SourceFallback, content.Source)
	assert.Contains(t, content.Text, "alice")
	assert.Contains(t, content.Text, "Learn Go")
}

func TestApplyConfigSwapsGenerationParams(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "first"},
		llm.MockResponse{Text: "second"},
	)
	cfg := testConfig()
	gen := NewGeneratorService(mock, cfg)

	gen.GenerateLesson(context.Background(), sampleLearner(), "Slices")

	cfg.AI.Model = "gpt-4"
	cfg.AI.MaxTokens = 512
	gen.ApplyConfig(cfg)

	gen.GenerateLesson(context.Background(), sampleLearner(), "Slices")

	require.Equal(t, 2, mock.CallCount())
	assert.Equal(t, "gpt-3.5-turbo", mock.Calls[0].Model)
	assert.Equal(t, "gpt-4", mock.Calls[1].Model)
	assert.Equal(t, 512, mock.Calls[1].MaxTokens)
}
