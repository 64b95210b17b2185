package dto

import "time"

// StrategyType names one of the fixed stock-selection strategies.
type StrategyType string

const (
	StrategyUndervaluedScreener StrategyType = "undervalued_screener"
	StrategyFearDrivenQuality   StrategyType = "fear_driven_quality"
	StrategyDividendAnalyzer    StrategyType = "dividend_analyzer"
	StrategyInsiderTrading      StrategyType = "insider_trading"
	StrategyThemeVsReal         StrategyType = "theme_vs_real"
	StrategySectorRotation      StrategyType = "sector_rotation"
	StrategyHiddenGrowth        StrategyType = "hidden_growth"
	StrategyPortfolioDesigner   StrategyType = "portfolio_designer"
)

const (
	RiskLevelLow    = "low"
	RiskLevelMedium = "medium"
	RiskLevelHigh   = "high"

	DefaultMarket          = "KOSPI"
	DefaultConfidenceScore = 50

	// StrategyDisclaimer is attached to every strategy result, success or not.
	StrategyDisclaimer = "본 분석은 AI 기반 참고 자료이며, 투자 권유가 아닙니다. 투자 판단은 본인 책임입니다."
)

type StrategyRequest struct {
	StrategyType StrategyType `json:"strategyType" validate:"required"`
	Market       string       `json:"market" validate:"omitempty,oneof=KOSPI KOSDAQ US ALL"`
	Sector       string       `json:"sector"`
	StockCount   int          `json:"stockCount" validate:"omitempty,min=1,max=20"`
}

// RecommendationMetrics is the per-stock metric subset a strategy reply may
// fill. Absent or malformed values are null, never zero.
type RecommendationMetrics struct {
	PER           *float64 `json:"PER"`
	PBR           *float64 `json:"PBR"`
	ROE           *float64 `json:"ROE"`
	DebtRatio     *float64 `json:"debtRatio"`
	DividendYield *float64 `json:"dividendYield"`
	RevenueGrowth *float64 `json:"revenueGrowth"`
	ProfitGrowth  *float64 `json:"profitGrowth"`
}

type StockRecommendation struct {
	StockCode       string                `json:"stockCode"`
	StockName       string                `json:"stockName"`
	Market          string                `json:"market"`
	Sector          string                `json:"sector,omitempty"`
	CurrentPrice    *float64              `json:"currentPrice,omitempty"`
	TargetPrice     *float64              `json:"targetPrice,omitempty"`
	UpsidePotential string                `json:"upsidePotential"`
	Rationale       string                `json:"rationale"`
	Metrics         RecommendationMetrics `json:"metrics"`
	RiskLevel       string                `json:"riskLevel"`
	ConfidenceScore int                   `json:"confidenceScore"`
}

type StrategyResponse struct {
	StrategyType    StrategyType          `json:"strategyType"`
	Title           string                `json:"title"`
	Summary         string                `json:"summary"`
	Recommendations []StockRecommendation `json:"recommendations"`
	MarketContext   string                `json:"marketContext,omitempty"`
	Risks           []string              `json:"risks"`
	Methodology     string                `json:"methodology"`
	Disclaimer      string                `json:"disclaimer"`
	GeneratedAt     time.Time             `json:"generatedAt"`
}
