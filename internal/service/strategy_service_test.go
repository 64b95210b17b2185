package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"valuehunt-ai/internal/dto"
	"valuehunt-ai/pkg/logger"

	"github.com/stretchr/testify/assert"
)

type mockAIService struct {
	chatFn    func(ctx context.Context, req dto.ChatRequest, deepAnalysis bool) (*dto.ChatResponse, error)
	chatCalls int
	lastDeep  bool
	lastReq   dto.ChatRequest
}

func (m *mockAIService) AnalyzeStock(ctx context.Context, req dto.StockAnalysisRequest, analysisType dto.AnalysisType) (*dto.StockAnalysisResponse, error) {
	return nil, errors.New("not used")
}

func (m *mockAIService) Chat(ctx context.Context, req dto.ChatRequest, deepAnalysis bool) (*dto.ChatResponse, error) {
	m.chatCalls++
	m.lastDeep = deepAnalysis
	m.lastReq = req
	return m.chatFn(ctx, req, deepAnalysis)
}

func (m *mockAIService) GetServiceStatus() dto.AIServiceStatus { return dto.AIServiceStatus{} }
func (m *mockAIService) IsAvailable() bool                     { return true }
func (m *mockAIService) ResetAvailability()                    {}

func newTestStrategyService(t *testing.T, ai AIService) StrategyService {
	t.Helper()

	log, err := logger.New("error", "json")
	assert.NoError(t, err)

	return NewStrategyService(log, ai)
}

func TestStrategyService_ExecuteStrategy(t *testing.T) {
	t.Run("unknown strategy rejected", func(t *testing.T) {
		svc := newTestStrategyService(t, &mockAIService{})

		_, err := svc.ExecuteStrategy(context.Background(), dto.StrategyRequest{StrategyType: "momentum_chaser"})

		assert.ErrorIs(t, err, dto.ErrStrategyNotImplemented)
	})

	t.Run("well formed reply sanitized and completed", func(t *testing.T) {
		reply := "```json\n" + `{
			"title": "T",
			"summary": "배당주 선정 요약",
			"recommendations": [
				{
					"stockCode": "015760",
					"stockName": "한국전력",
					"rationale": "안정적인 배당",
					"metrics": {"PER": null, "dividendYield": 3.5}
				},
				{
					"stockName": "코드 없는 종목"
				}
			],
			"risks": ["배당 삭감 가능성"]
		}` + "\n```"

		ai := &mockAIService{
			chatFn: func(ctx context.Context, req dto.ChatRequest, deep bool) (*dto.ChatResponse, error) {
				return &dto.ChatResponse{Reply: reply}, nil
			},
		}
		svc := newTestStrategyService(t, ai)

		resp, err := svc.ExecuteStrategy(context.Background(), dto.StrategyRequest{
			StrategyType: dto.StrategyDividendAnalyzer,
		})

		assert.NoError(t, err)
		assert.True(t, ai.lastDeep, "strategies always use the high-quality tier")
		assert.Equal(t, dto.StrategyDividendAnalyzer, resp.StrategyType)
		assert.Equal(t, "T", resp.Title)
		assert.Equal(t, "AI 기반 정량적 분석", resp.Methodology)
		assert.Equal(t, dto.StrategyDisclaimer, resp.Disclaimer)
		assert.False(t, resp.GeneratedAt.IsZero())

		assert.Len(t, resp.Recommendations, 1)
		rec := resp.Recommendations[0]
		assert.Equal(t, dto.DefaultMarket, rec.Market)
		assert.Nil(t, rec.Metrics.PER)
		assert.Equal(t, 3.5, *rec.Metrics.DividendYield)
		assert.Equal(t, dto.RiskLevelMedium, rec.RiskLevel)
		assert.Equal(t, dto.DefaultConfidenceScore, rec.ConfidenceScore)
		assert.Equal(t, "N/A", rec.UpsidePotential)
	})

	t.Run("unparseable reply degrades to empty result", func(t *testing.T) {
		ai := &mockAIService{
			chatFn: func(ctx context.Context, req dto.ChatRequest, deep bool) (*dto.ChatResponse, error) {
				return &dto.ChatResponse{Reply: "JSON이 아닌 응답"}, nil
			},
		}
		svc := newTestStrategyService(t, ai)

		resp, err := svc.ExecuteStrategy(context.Background(), dto.StrategyRequest{
			StrategyType: dto.StrategyUndervaluedScreener,
		})

		assert.NoError(t, err)
		assert.Equal(t, "저평가 우량주 TOP 10", resp.Title)
		assert.Equal(t, "AI 응답 처리 중 오류가 발생했습니다.", resp.Summary)
		assert.Empty(t, resp.Recommendations)
		assert.Equal(t, []string{"응답 파싱 오류"}, resp.Risks)
		assert.Equal(t, "AI 분석", resp.Methodology)
		assert.Equal(t, dto.StrategyDisclaimer, resp.Disclaimer)
	})

	t.Run("chat failure propagates", func(t *testing.T) {
		ai := &mockAIService{
			chatFn: func(ctx context.Context, req dto.ChatRequest, deep bool) (*dto.ChatResponse, error) {
				return nil, dto.ErrAllAIServicesFailed
			},
		}
		svc := newTestStrategyService(t, ai)

		_, err := svc.ExecuteStrategy(context.Background(), dto.StrategyRequest{
			StrategyType: dto.StrategySectorRotation,
		})

		assert.ErrorIs(t, err, dto.ErrAllAIServicesFailed)
		assert.ErrorContains(t, err, "failed to execute sector rotation strategy")
	})
}

func TestStrategyPromptDefaults(t *testing.T) {
	t.Run("fear driven defaults to five picks", func(t *testing.T) {
		prompt := buildFearDrivenPrompt(dto.StrategyRequest{StrategyType: dto.StrategyFearDrivenQuality})

		assert.Contains(t, prompt, "우량주 5개를 찾아주세요")
		assert.Contains(t, prompt, "공포에 팔린 우량주 TOP 5")
		assert.Contains(t, prompt, "현재 한국 주식 시장에서")
	})

	t.Run("explicit market and count substituted", func(t *testing.T) {
		prompt := buildUndervaluedPrompt(dto.StrategyRequest{
			StrategyType: dto.StrategyUndervaluedScreener,
			Market:       "KOSDAQ",
			StockCount:   3,
		})

		assert.Contains(t, prompt, "현재 KOSDAQ 주식 시장에서")
		assert.Contains(t, prompt, "저평가 종목 3개를 찾아주세요")
		assert.Contains(t, prompt, "저평가 우량주 TOP 3")
	})

	t.Run("every prompt demands pure json output", func(t *testing.T) {
		builders := map[string]func(dto.StrategyRequest) string{
			"undervalued": buildUndervaluedPrompt,
			"fear_driven": buildFearDrivenPrompt,
			"dividend":    buildDividendPrompt,
			"insider":     buildInsiderTradingPrompt,
			"theme":       buildThemeVsRealPrompt,
			"sector":      buildSectorRotationPrompt,
			"hidden":      buildHiddenGrowthPrompt,
			"portfolio":   buildPortfolioDesignerPrompt,
		}

		for name, build := range builders {
			prompt := build(dto.StrategyRequest{})
			assert.True(t, strings.Contains(prompt, "JSON만 출력하고 다른 텍스트는 포함하지 마세요."), name)
			assert.Contains(t, prompt, `"stockCode"`, name)
		}
	})
}
