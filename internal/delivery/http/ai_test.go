package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"valuehunt-ai/internal/dto"
	"valuehunt-ai/internal/service"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type stubAIService struct {
	analyzeFn func(ctx context.Context, req dto.StockAnalysisRequest, analysisType dto.AnalysisType) (*dto.StockAnalysisResponse, error)
	chatFn    func(ctx context.Context, req dto.ChatRequest, deepAnalysis bool) (*dto.ChatResponse, error)
}

func (s *stubAIService) AnalyzeStock(ctx context.Context, req dto.StockAnalysisRequest, analysisType dto.AnalysisType) (*dto.StockAnalysisResponse, error) {
	return s.analyzeFn(ctx, req, analysisType)
}

func (s *stubAIService) Chat(ctx context.Context, req dto.ChatRequest, deepAnalysis bool) (*dto.ChatResponse, error) {
	return s.chatFn(ctx, req, deepAnalysis)
}

func (s *stubAIService) GetServiceStatus() dto.AIServiceStatus {
	return dto.AIServiceStatus{DefaultProvider: dto.AIProviderClaude, FallbackEnabled: true}
}

func (s *stubAIService) IsAvailable() bool  { return true }
func (s *stubAIService) ResetAvailability() {}

type stubStrategyService struct {
	executeFn func(ctx context.Context, req dto.StrategyRequest) (*dto.StrategyResponse, error)
}

func (s *stubStrategyService) ExecuteStrategy(ctx context.Context, req dto.StrategyRequest) (*dto.StrategyResponse, error) {
	return s.executeFn(ctx, req)
}

func newTestHandler(ai service.AIService, strategy service.StrategyService) (*HttpAPIHandler, *echo.Echo) {
	e := echo.New()
	h := NewHttpAPIHandler(context.Background(), e, goValidator.New(), &service.Service{
		AIService:       ai,
		StrategyService: strategy,
	})
	h.SetupRoutes()
	return h, e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeStockEndpoint(t *testing.T) {
	t.Run("valid request returns analysis", func(t *testing.T) {
		ai := &stubAIService{
			analyzeFn: func(ctx context.Context, req dto.StockAnalysisRequest, analysisType dto.AnalysisType) (*dto.StockAnalysisResponse, error) {
				assert.Equal(t, "005930", req.StockCode)
				assert.Equal(t, dto.AnalysisTypeDeep, analysisType)
				return &dto.StockAnalysisResponse{Summary: "요약"}, nil
			},
		}
		_, e := newTestHandler(ai, &stubStrategyService{})

		rec := doJSON(e, http.MethodPost, "/api/ai/analyze",
			`{"stockCode":"005930","stockName":"삼성전자","analysisType":"deep"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "요약")
	})

	t.Run("missing required fields rejected", func(t *testing.T) {
		_, e := newTestHandler(&stubAIService{}, &stubStrategyService{})

		rec := doJSON(e, http.MethodPost, "/api/ai/analyze", `{"stockCode":"005930"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no provider maps to 503", func(t *testing.T) {
		ai := &stubAIService{
			analyzeFn: func(ctx context.Context, req dto.StockAnalysisRequest, analysisType dto.AnalysisType) (*dto.StockAnalysisResponse, error) {
				return nil, dto.ErrNoAIServiceAvailable
			},
		}
		_, e := newTestHandler(ai, &stubStrategyService{})

		rec := doJSON(e, http.MethodPost, "/api/ai/analyze",
			`{"stockCode":"005930","stockName":"삼성전자"}`)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("exhausted providers map to 502", func(t *testing.T) {
		ai := &stubAIService{
			analyzeFn: func(ctx context.Context, req dto.StockAnalysisRequest, analysisType dto.AnalysisType) (*dto.StockAnalysisResponse, error) {
				return nil, dto.ErrAllAIServicesFailed
			},
		}
		_, e := newTestHandler(ai, &stubStrategyService{})

		rec := doJSON(e, http.MethodPost, "/api/ai/analyze",
			`{"stockCode":"005930","stockName":"삼성전자"}`)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestChatEndpoint(t *testing.T) {
	ai := &stubAIService{
		chatFn: func(ctx context.Context, req dto.ChatRequest, deepAnalysis bool) (*dto.ChatResponse, error) {
			assert.True(t, deepAnalysis)
			assert.Equal(t, "005930", req.Context.StockCode)
			return &dto.ChatResponse{Reply: "답변", RelatedStocks: []string{"005930"}}, nil
		},
	}
	_, e := newTestHandler(ai, &stubStrategyService{})

	rec := doJSON(e, http.MethodPost, "/api/ai/chat",
		`{"message":"삼성전자 분석해줘","deepAnalysis":true,"context":{"stockCode":"005930"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "005930")
}

func TestStrategyEndpoint(t *testing.T) {
	t.Run("unknown strategy maps to 400", func(t *testing.T) {
		strategy := &stubStrategyService{
			executeFn: func(ctx context.Context, req dto.StrategyRequest) (*dto.StrategyResponse, error) {
				return nil, dto.ErrStrategyNotImplemented
			},
		}
		_, e := newTestHandler(&stubAIService{}, strategy)

		rec := doJSON(e, http.MethodPost, "/api/ai/strategy", `{"strategyType":"momentum_chaser"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid market rejected by validation", func(t *testing.T) {
		_, e := newTestHandler(&stubAIService{}, &stubStrategyService{})

		rec := doJSON(e, http.MethodPost, "/api/ai/strategy",
			`{"strategyType":"dividend_analyzer","market":"NASDAQ"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("valid strategy executes", func(t *testing.T) {
		strategy := &stubStrategyService{
			executeFn: func(ctx context.Context, req dto.StrategyRequest) (*dto.StrategyResponse, error) {
				assert.Equal(t, dto.StrategyDividendAnalyzer, req.StrategyType)
				return &dto.StrategyResponse{Title: "장기 투자용 배당주 TOP 10"}, nil
			},
		}
		_, e := newTestHandler(&stubAIService{}, strategy)

		rec := doJSON(e, http.MethodPost, "/api/ai/strategy", `{"strategyType":"dividend_analyzer"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "배당주")
	})
}

func TestStatusEndpoint(t *testing.T) {
	_, e := newTestHandler(&stubAIService{}, &stubStrategyService{})

	rec := doJSON(e, http.MethodGet, "/api/ai/status", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"defaultProvider":"claude"`)
}
