package service

import (
	"context"
	"strings"

	"valuehunt-ai/config"
	"valuehunt-ai/internal/dto"
	"valuehunt-ai/internal/repository"
	"valuehunt-ai/pkg/cache"
	"valuehunt-ai/pkg/logger"
)

const (
	deepValueScoreThreshold = 70

	availabilityCacheKey = "ai:available"
)

// complexChatKeywords marks questions that deserve the high-quality tier.
var complexChatKeywords = []string{
	"분석",
	"비교",
	"추천",
	"전략",
	"포트폴리오",
	"리스크",
	"투자",
	"재무",
	"밸류에이션",
	"펀더멘털",
	"상세",
	"자세히",
}

type aiService struct {
	cfg      *config.Config
	log      *logger.Logger
	memCache cache.Cache

	gemini repository.AIProviderRepository
	claude repository.AIProviderRepository
}

func NewAIService(cfg *config.Config, log *logger.Logger, memCache cache.Cache, repo *repository.Repository) AIService {
	s := &aiService{
		cfg:      cfg,
		log:      log,
		memCache: memCache,
		gemini:   repo.GeminiAIRepo,
		claude:   repo.ClaudeAIRepo,
	}

	log.Info("ai service initialized",
		logger.BoolField("gemini_available", s.gemini.IsAvailable()),
		logger.BoolField("claude_available", s.claude.IsAvailable()),
		logger.StringField("default_provider", cfg.AI.DefaultProvider),
		logger.BoolField("fallback_enabled", cfg.AI.FallbackEnabled),
	)

	return s
}

// AnalyzeStock routes an analysis to the fitting provider. An empty
// analysisType lets the routing policy decide from the request data.
func (s *aiService) AnalyzeStock(ctx context.Context, req dto.StockAnalysisRequest, analysisType dto.AnalysisType) (*dto.StockAnalysisResponse, error) {
	if analysisType == "" {
		analysisType = s.determineAnalysisType(req)
	}

	primary, fallback, err := s.resolveProviders(analysisType == dto.AnalysisTypeDeep)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "analyzing stock",
		logger.StringField("stock_code", req.StockCode),
		logger.StringField("analysis_type", string(analysisType)),
		logger.StringField("provider", string(primary.Identity())),
	)

	resp, err := primary.AnalyzeStock(ctx, req)
	if err == nil {
		return resp, nil
	}

	s.log.ErrorContext(ctx, "provider analysis failed",
		logger.StringField("provider", string(primary.Identity())),
		logger.ErrorField(err),
	)

	if fallback == nil || !fallback.IsAvailable() {
		return nil, err
	}

	s.log.WarnContext(ctx, "retrying with fallback provider",
		logger.StringField("provider", string(fallback.Identity())),
	)

	resp, err = fallback.AnalyzeStock(ctx, req)
	if err != nil {
		s.log.ErrorContext(ctx, "fallback provider also failed",
			logger.StringField("provider", string(fallback.Identity())),
			logger.ErrorField(err),
		)
		return nil, dto.ErrAllAIServicesFailed
	}

	return resp, nil
}

// Chat routes a conversational request. deepAnalysis forces the high-quality
// tier, otherwise the message wording decides.
func (s *aiService) Chat(ctx context.Context, req dto.ChatRequest, deepAnalysis bool) (*dto.ChatResponse, error) {
	needsDeep := deepAnalysis || s.isComplexChatQuery(req.Message)

	primary, fallback, err := s.resolveProviders(needsDeep)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "chat query",
		logger.BoolField("deep", needsDeep),
		logger.StringField("provider", string(primary.Identity())),
	)

	resp, err := primary.Chat(ctx, req)
	if err == nil {
		return resp, nil
	}

	s.log.ErrorContext(ctx, "provider chat failed",
		logger.StringField("provider", string(primary.Identity())),
		logger.ErrorField(err),
	)

	if fallback == nil || !fallback.IsAvailable() {
		return nil, err
	}

	s.log.WarnContext(ctx, "retrying with fallback provider",
		logger.StringField("provider", string(fallback.Identity())),
	)

	resp, err = fallback.Chat(ctx, req)
	if err != nil {
		s.log.ErrorContext(ctx, "fallback provider also failed",
			logger.StringField("provider", string(fallback.Identity())),
			logger.ErrorField(err),
		)
		return nil, dto.ErrAllAIServicesFailed
	}

	return resp, nil
}

// resolveProviders picks primary and fallback for one call. When the primary
// lacks credentials the fallback is promoted and no retry remains.
func (s *aiService) resolveProviders(needsDeep bool) (primary, fallback repository.AIProviderRepository, err error) {
	if s.cfg.AI.DefaultProvider == string(dto.AIProviderClaude) || needsDeep {
		primary, fallback = s.claude, s.gemini
	} else {
		primary, fallback = s.gemini, s.claude
	}

	if !s.cfg.AI.FallbackEnabled {
		fallback = nil
	}

	if !primary.IsAvailable() {
		if fallback != nil && fallback.IsAvailable() {
			s.log.Warn("primary provider not available, using fallback",
				logger.StringField("primary", string(primary.Identity())),
				logger.StringField("fallback", string(fallback.Identity())),
			)
			return fallback, nil, nil
		}
		return nil, nil, dto.ErrNoAIServiceAvailable
	}

	return primary, fallback, nil
}

// determineAnalysisType picks deep analysis for watchlist-grade stocks: a
// high value score, or a metrics block with all four core ratios filled.
func (s *aiService) determineAnalysisType(req dto.StockAnalysisRequest) dto.AnalysisType {
	if req.ValueScore != nil && *req.ValueScore >= deepValueScoreThreshold {
		return dto.AnalysisTypeDeep
	}

	if m := req.Metrics; m != nil &&
		m.PER != nil && m.PBR != nil && m.ROE != nil && m.DebtRatio != nil {
		return dto.AnalysisTypeDeep
	}

	return dto.AnalysisTypeQuick
}

func (s *aiService) isComplexChatQuery(message string) bool {
	lowered := strings.ToLower(message)
	for _, keyword := range complexChatKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

func (s *aiService) GetServiceStatus() dto.AIServiceStatus {
	return dto.AIServiceStatus{
		Gemini: dto.ProviderStatus{
			Available: s.gemini.IsAvailable(),
			Provider:  s.gemini.Identity(),
		},
		Claude: dto.ProviderStatus{
			Available: s.claude.IsAvailable(),
			Provider:  s.claude.Identity(),
		},
		DefaultProvider: dto.AIProvider(s.cfg.AI.DefaultProvider),
		FallbackEnabled: s.cfg.AI.FallbackEnabled,
	}
}

// IsAvailable reports whether at least one provider can serve requests. The
// result is cached until ResetAvailability is called.
func (s *aiService) IsAvailable() bool {
	if cached, ok := s.memCache.Get(availabilityCacheKey); ok {
		if available, ok := cached.(bool); ok {
			return available
		}
	}

	available := s.gemini.IsAvailable() || s.claude.IsAvailable()
	s.memCache.Set(availabilityCacheKey, available, cache.NoExpiration)
	return available
}

func (s *aiService) ResetAvailability() {
	s.memCache.Delete(availabilityCacheKey)
}
