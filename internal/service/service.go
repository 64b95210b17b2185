package service

import (
	"context"

	"valuehunt-ai/config"
	"valuehunt-ai/internal/dto"
	"valuehunt-ai/internal/repository"
	"valuehunt-ai/pkg/cache"
	"valuehunt-ai/pkg/logger"
)

type AIService interface {
	AnalyzeStock(ctx context.Context, req dto.StockAnalysisRequest, analysisType dto.AnalysisType) (*dto.StockAnalysisResponse, error)
	Chat(ctx context.Context, req dto.ChatRequest, deepAnalysis bool) (*dto.ChatResponse, error)
	GetServiceStatus() dto.AIServiceStatus
	IsAvailable() bool
	ResetAvailability()
}

type StrategyService interface {
	ExecuteStrategy(ctx context.Context, req dto.StrategyRequest) (*dto.StrategyResponse, error)
}

type Service struct {
	AIService       AIService
	StrategyService StrategyService
}

func NewService(cfg *config.Config, log *logger.Logger, memCache cache.Cache, repo *repository.Repository) *Service {
	aiService := NewAIService(cfg, log, memCache, repo)

	return &Service{
		AIService:       aiService,
		StrategyService: NewStrategyService(log, aiService),
	}
}
