package repository

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"valuehunt-ai/config"
	"valuehunt-ai/internal/dto"
	"valuehunt-ai/pkg/httpclient"
	"valuehunt-ai/pkg/logger"
	"valuehunt-ai/pkg/ratelimit"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const (
	maxAnalysisOutputTokens = 2000
	maxChatOutputTokens     = 1500
)

// geminiAIRepository is the fast/cheap provider adapter backed by the Google
// Gemini API.
type geminiAIRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiAIRepository creates a new instance of geminiAIRepository. An empty
// API key yields an adapter that reports unavailable instead of an error, so
// the router can still use the other provider.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger) (AIProviderRepository, error) {
	secondsPerRequest := time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	tokenLimiter := ratelimit.NewTokenLimiter(cfg.Gemini.MaxTokenPerMinute)

	repo := &geminiAIRepository{
		httpClient:     httpclient.New(cfg.Gemini.BaseURL, cfg.Gemini.Timeout, ""),
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
		tokenLimiter:   tokenLimiter,
	}

	if cfg.Gemini.APIKey != "" {
		genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: cfg.Gemini.APIKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		repo.genAiClient = genAiClient
	}

	return repo, nil
}

func (r *geminiAIRepository) Identity() dto.AIProvider {
	return dto.AIProviderGemini
}

func (r *geminiAIRepository) IsAvailable() bool {
	return r.genAiClient != nil
}

func (r *geminiAIRepository) AnalyzeStock(ctx context.Context, req dto.StockAnalysisRequest) (*dto.StockAnalysisResponse, error) {
	if !r.IsAvailable() {
		return nil, fmt.Errorf("gemini API key not configured")
	}

	prompt := BuildQuickAnalysisPrompt(req)

	geminiResp, err := r.sendRequest(ctx, prompt, maxAnalysisOutputTokens)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to send analysis request to gemini", logger.ErrorField(err), logger.StringField("stock_code", req.StockCode))
		return nil, fmt.Errorf("failed to send analysis request to gemini: %w", err)
	}

	text, err := firstCandidateText(geminiResp)
	if err != nil {
		return nil, err
	}

	return ParseStockAnalysis(text), nil
}

func (r *geminiAIRepository) Chat(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	if !r.IsAvailable() {
		return nil, fmt.Errorf("gemini API key not configured")
	}

	prompt := BuildChatPrompt(req)

	geminiResp, err := r.sendRequest(ctx, prompt, maxChatOutputTokens)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to send chat request to gemini", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to send chat request to gemini: %w", err)
	}

	text, err := firstCandidateText(geminiResp)
	if err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		Reply:         text,
		RelatedStocks: ExtractStockMentions(text),
	}, nil
}

func (r *geminiAIRepository) sendRequest(ctx context.Context, prompt string, maxOutputTokens int) (*dto.GeminiAPIResponse, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}
	geminiTokenResp, err := r.genAiClient.Models.CountTokens(ctx, r.cfg.Gemini.Model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count tokens: %w", err)
	}

	r.logger.Debug("Gemini token count",
		logger.IntField("total_tokens", int(geminiTokenResp.TotalTokens)),
		logger.IntField("remaining", r.tokenLimiter.GetRemaining()),
	)
	if err := r.tokenLimiter.Wait(ctx, int(geminiTokenResp.TotalTokens)); err != nil {
		return nil, fmt.Errorf("failed to wait for token gemini limit: %w", err)
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request gemini limit: %w", err)
	}

	if int(geminiTokenResp.TotalTokens) > r.cfg.Gemini.MaxTokenPerMinute/2 {
		r.logger.Warn("Token has exceeded 50% of the limit", logger.IntField("remaining", r.tokenLimiter.GetRemaining()))
	}

	payload := dto.GeminiAPIRequest{
		Contents:         []dto.Content{{Parts: []dto.Part{{Text: prompt}}}},
		GenerationConfig: &dto.GenerationConfig{MaxOutputTokens: maxOutputTokens},
	}

	geminiAPIResponse := dto.GeminiAPIResponse{}

	apiURL := fmt.Sprintf("/%s:generateContent?key=%s", r.cfg.Gemini.Model, r.cfg.Gemini.APIKey)

	geminiResp, err := r.httpClient.Post(ctx, apiURL, payload, nil, &geminiAPIResponse)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to gemini: %w", err)
	}

	if geminiResp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "failed to get data from gemini", logger.IntField("status_code", geminiResp.StatusCode))
		return nil, fmt.Errorf("failed to get data: %v", string(geminiResp.Body))
	}

	return &geminiAPIResponse, nil
}

func firstCandidateText(resp *dto.GeminiAPIResponse) (string, error) {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("invalid response from Gemini API: no content found")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
