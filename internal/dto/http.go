package dto

type AnalyzeStockHTTPRequest struct {
	StockAnalysisRequest
	// AnalysisType is an optional explicit depth hint; empty lets the policy decide.
	AnalysisType AnalysisType `json:"analysisType" validate:"omitempty,oneof=quick deep"`
}

type ChatHTTPRequest struct {
	Message string       `json:"message" validate:"required"`
	Context *ChatContext `json:"context"`
	// DeepAnalysis forces the high-quality routing tier.
	DeepAnalysis bool `json:"deepAnalysis"`
}
