package repository

import (
	"context"
	"fmt"
	"time"

	"valuehunt-ai/config"
	"valuehunt-ai/internal/dto"
	"valuehunt-ai/pkg/logger"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/time/rate"
)

// claudeAIRepository is the high-quality provider adapter backed by the
// Anthropic Messages API.
type claudeAIRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	client         anthropic.Client
	available      bool
	requestLimiter *rate.Limiter
}

// NewClaudeAIRepository creates a new instance of claudeAIRepository. Without
// an API key the adapter reports unavailable and every call fails fast.
func NewClaudeAIRepository(cfg *config.Config, log *logger.Logger) AIProviderRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.Claude.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	repo := &claudeAIRepository{
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
	}

	if cfg.Claude.APIKey != "" {
		repo.client = anthropic.NewClient(
			option.WithAPIKey(cfg.Claude.APIKey),
			option.WithRequestTimeout(cfg.Claude.Timeout),
		)
		repo.available = true
	}

	return repo
}

func (r *claudeAIRepository) Identity() dto.AIProvider {
	return dto.AIProviderClaude
}

func (r *claudeAIRepository) IsAvailable() bool {
	return r.available
}

func (r *claudeAIRepository) AnalyzeStock(ctx context.Context, req dto.StockAnalysisRequest) (*dto.StockAnalysisResponse, error) {
	if !r.available {
		return nil, fmt.Errorf("claude API key not configured")
	}

	prompt := BuildDeepAnalysisPrompt(req)

	text, err := r.sendMessages(ctx, maxAnalysisOutputTokens, []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to send analysis request to claude", logger.ErrorField(err), logger.StringField("stock_code", req.StockCode))
		return nil, fmt.Errorf("failed to send analysis request to claude: %w", err)
	}

	return ParseStockAnalysis(text), nil
}

func (r *claudeAIRepository) Chat(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	if !r.available {
		return nil, fmt.Errorf("claude API key not configured")
	}

	text, err := r.sendMessages(ctx, maxChatOutputTokens, buildClaudeChatMessages(req))
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to send chat request to claude", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to send chat request to claude: %w", err)
	}

	return &dto.ChatResponse{
		Reply:         text,
		RelatedStocks: ExtractStockMentions(text),
	}, nil
}

func (r *claudeAIRepository) sendMessages(ctx context.Context, maxTokens int, messages []anthropic.MessageParam) (string, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request claude limit: %w", err)
	}

	message, err := r.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(r.cfg.Claude.Model),
		MaxTokens: int64(maxTokens),
		Messages:  messages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send request to claude: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}

	return "", fmt.Errorf("invalid response from Claude API: no text content found")
}

func buildClaudeChatMessages(req dto.ChatRequest) []anthropic.MessageParam {
	messages := make([]anthropic.MessageParam, 0, dto.MaxConversationHistory+1)

	if req.Context != nil {
		for _, msg := range req.Context.ConversationHistory {
			block := anthropic.NewTextBlock(msg.Content)
			if msg.Role == dto.ChatRoleAssistant {
				messages = append(messages, anthropic.NewAssistantMessage(block))
			} else {
				messages = append(messages, anthropic.NewUserMessage(block))
			}
		}
	}

	messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(BuildChatUserMessage(req))))

	return messages
}
