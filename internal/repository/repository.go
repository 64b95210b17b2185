package repository

import (
	"context"

	"valuehunt-ai/config"
	"valuehunt-ai/internal/dto"
	"valuehunt-ai/pkg/logger"
)

// AIProviderRepository is the uniform capability contract every LLM vendor
// adapter implements. The router only ever holds this type.
type AIProviderRepository interface {
	Identity() dto.AIProvider
	IsAvailable() bool
	AnalyzeStock(ctx context.Context, req dto.StockAnalysisRequest) (*dto.StockAnalysisResponse, error)
	Chat(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error)
}

type Repository struct {
	GeminiAIRepo AIProviderRepository
	ClaudeAIRepo AIProviderRepository
}

func NewRepository(cfg *config.Config, log *logger.Logger) (*Repository, error) {
	geminiAIRepo, err := NewGeminiAIRepository(cfg, log)
	if err != nil {
		return nil, err
	}

	return &Repository{
		GeminiAIRepo: geminiAIRepo,
		ClaudeAIRepo: NewClaudeAIRepository(cfg, log),
	}, nil
}
