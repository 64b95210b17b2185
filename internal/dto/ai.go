package dto

// AIProvider identifies one of the integrated LLM vendors.
type AIProvider string

const (
	AIProviderGemini AIProvider = "gemini"
	AIProviderClaude AIProvider = "claude"
)

// AnalysisType selects the routing tier for a stock analysis request.
type AnalysisType string

const (
	// AnalysisTypeQuick routes to the fast/cheap provider.
	AnalysisTypeQuick AnalysisType = "quick"
	// AnalysisTypeDeep routes to the high-quality provider.
	AnalysisTypeDeep AnalysisType = "deep"
)

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"

	// MaxConversationHistory is the cap on prior turns a caller may send.
	MaxConversationHistory = 6
)

// StockMetrics carries the financial ratios of a stock. A nil field means the
// backend had no value for it; it must stay null all the way to the client.
type StockMetrics struct {
	PER           *float64 `json:"PER"`
	PBR           *float64 `json:"PBR"`
	ROE           *float64 `json:"ROE"`
	ROA           *float64 `json:"ROA"`
	DebtRatio     *float64 `json:"debtRatio"`
	DividendYield *float64 `json:"dividendYield"`
}

type StockAnalysisRequest struct {
	StockCode    string        `json:"stockCode" validate:"required"`
	StockName    string        `json:"stockName" validate:"required"`
	Sector       string        `json:"sector"`
	MarketCap    *float64      `json:"marketCap"`
	CurrentPrice *float64      `json:"currentPrice"`
	Metrics      *StockMetrics `json:"metrics"`
	ValueScore   *float64      `json:"valueScore"`
}

type StockAnalysisResponse struct {
	Summary          string   `json:"summary"`
	Strengths        []string `json:"strengths"`
	Risks            []string `json:"risks"`
	InvestmentThesis string   `json:"investmentThesis,omitempty"`
	TargetPriceRange string   `json:"targetPriceRange,omitempty"`
}

type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type ChatContext struct {
	StockCode           string        `json:"stockCode"`
	ConversationHistory []ChatMessage `json:"conversationHistory" validate:"max=6,dive"`
}

type ChatRequest struct {
	Message string       `json:"message" validate:"required"`
	Context *ChatContext `json:"context"`
}

type ChatResponse struct {
	Reply         string   `json:"reply"`
	RelatedStocks []string `json:"relatedStocks"`
}

type ProviderStatus struct {
	Available bool       `json:"available"`
	Provider  AIProvider `json:"provider"`
}

type AIServiceStatus struct {
	Gemini          ProviderStatus `json:"gemini"`
	Claude          ProviderStatus `json:"claude"`
	DefaultProvider AIProvider     `json:"defaultProvider"`
	FallbackEnabled bool           `json:"fallbackEnabled"`
}
