package service

import (
	"context"
	"fmt"

	"valuehunt-ai/internal/dto"
	"valuehunt-ai/internal/repository"
	"valuehunt-ai/pkg/logger"
	"valuehunt-ai/pkg/utils"
)

type strategyConfig struct {
	buildPrompt  func(req dto.StrategyRequest) string
	defaultTitle string
	errorMessage string
}

type strategyService struct {
	log       *logger.Logger
	aiService AIService
	configs   map[dto.StrategyType]strategyConfig
}

func NewStrategyService(log *logger.Logger, aiService AIService) StrategyService {
	return &strategyService{
		log:       log,
		aiService: aiService,
		configs: map[dto.StrategyType]strategyConfig{
			dto.StrategyUndervaluedScreener: {
				buildPrompt:  buildUndervaluedPrompt,
				defaultTitle: "저평가 우량주 TOP 10",
				errorMessage: "failed to execute undervalued screener strategy",
			},
			dto.StrategyFearDrivenQuality: {
				buildPrompt:  buildFearDrivenPrompt,
				defaultTitle: "공포에 팔린 우량주 TOP 5",
				errorMessage: "failed to execute fear-driven quality strategy",
			},
			dto.StrategyDividendAnalyzer: {
				buildPrompt:  buildDividendPrompt,
				defaultTitle: "장기 투자용 배당주 TOP 10",
				errorMessage: "failed to execute dividend analyzer strategy",
			},
			dto.StrategyInsiderTrading: {
				buildPrompt:  buildInsiderTradingPrompt,
				defaultTitle: "내부자 매수 신호 TOP 10",
				errorMessage: "failed to execute insider trading strategy",
			},
			dto.StrategyThemeVsReal: {
				buildPrompt:  buildThemeVsRealPrompt,
				defaultTitle: "진짜 실적주 TOP 10",
				errorMessage: "failed to execute theme vs real strategy",
			},
			dto.StrategySectorRotation: {
				buildPrompt:  buildSectorRotationPrompt,
				defaultTitle: "섹터 로테이션 유망주 TOP 10",
				errorMessage: "failed to execute sector rotation strategy",
			},
			dto.StrategyHiddenGrowth: {
				buildPrompt:  buildHiddenGrowthPrompt,
				defaultTitle: "숨은 성장주 TOP 10",
				errorMessage: "failed to execute hidden growth strategy",
			},
			dto.StrategyPortfolioDesigner: {
				buildPrompt:  buildPortfolioDesignerPrompt,
				defaultTitle: "균형 포트폴리오 TOP 10",
				errorMessage: "failed to execute portfolio designer strategy",
			},
		},
	}
}

// ExecuteStrategy runs one stock selection strategy end to end: build the
// prompt, ask the high-quality chat tier, parse and sanitize the result. A
// malformed model reply degrades to an empty recommendation list instead of
// failing.
func (s *strategyService) ExecuteStrategy(ctx context.Context, req dto.StrategyRequest) (*dto.StrategyResponse, error) {
	cfg, ok := s.configs[req.StrategyType]
	if !ok {
		return nil, dto.ErrStrategyNotImplemented
	}

	s.log.InfoContext(ctx, "executing strategy",
		logger.StringField("strategy_type", string(req.StrategyType)),
	)

	chatResp, err := s.aiService.Chat(ctx, dto.ChatRequest{Message: cfg.buildPrompt(req)}, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.errorMessage, err)
	}

	return s.buildStrategyResponse(ctx, chatResp.Reply, req.StrategyType, cfg.defaultTitle), nil
}

func (s *strategyService) buildStrategyResponse(ctx context.Context, reply string, strategyType dto.StrategyType, defaultTitle string) *dto.StrategyResponse {
	parsed, err := repository.ParseStrategyPayload(reply)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to parse strategy reply",
			logger.StringField("strategy_type", string(strategyType)),
			logger.ErrorField(err),
		)

		return &dto.StrategyResponse{
			StrategyType:    strategyType,
			Title:           defaultTitle,
			Summary:         "AI 응답 처리 중 오류가 발생했습니다.",
			Recommendations: []dto.StockRecommendation{},
			Risks:           []string{"응답 파싱 오류"},
			Methodology:     "AI 분석",
			Disclaimer:      dto.StrategyDisclaimer,
			GeneratedAt:     utils.TimeNowKST(),
		}
	}

	parsed.StrategyType = strategyType
	if parsed.Title == "" {
		parsed.Title = defaultTitle
	}
	if parsed.Methodology == "" {
		parsed.Methodology = "AI 기반 정량적 분석"
	}
	parsed.Recommendations = repository.SanitizeRecommendations(parsed.Recommendations)
	parsed.Disclaimer = dto.StrategyDisclaimer
	parsed.GeneratedAt = utils.TimeNowKST()

	return parsed
}
