package repository

import (
	"encoding/json"
	"regexp"
	"strings"

	"valuehunt-ai/internal/dto"
	"valuehunt-ai/pkg/utils"
)

const (
	degradedSummaryLimit = 300

	degradedListItem = "분석 데이터 처리 중"
	degradedThesis   = "상세 분석이 필요합니다."
)

var stockCodePattern = regexp.MustCompile(`\b\d{6}\b`)

// CleanModelJSON strips markdown code fences and any prose around the JSON
// object a model wrapped its answer in.
func CleanModelJSON(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if strings.Contains(cleaned, "```") {
		var kept []string
		for _, line := range strings.Split(cleaned, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "```") {
				continue
			}
			kept = append(kept, line)
		}
		cleaned = strings.TrimSpace(strings.Join(kept, "\n"))
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		cleaned = cleaned[start : end+1]
	}

	return cleaned
}

// ParseStockAnalysis never fails: when the model reply is not the expected
// JSON shape it degrades to a response built from the raw text so the caller
// always has something to show.
func ParseStockAnalysis(raw string) *dto.StockAnalysisResponse {
	var payload map[string]any
	if err := json.Unmarshal([]byte(CleanModelJSON(raw)), &payload); err != nil {
		return degradedAnalysis(raw)
	}

	return &dto.StockAnalysisResponse{
		Summary:          asString(payload["summary"]),
		Strengths:        asStringSlice(payload["strengths"]),
		Risks:            asStringSlice(payload["risks"]),
		InvestmentThesis: asString(payload["investmentThesis"]),
		TargetPriceRange: asString(payload["targetPriceRange"]),
	}
}

func degradedSummary(raw string) string {
	return utils.TruncateRunes(strings.TrimSpace(raw), degradedSummaryLimit) + "..."
}

func degradedAnalysis(raw string) *dto.StockAnalysisResponse {
	return &dto.StockAnalysisResponse{
		Summary:          degradedSummary(raw),
		Strengths:        []string{degradedListItem},
		Risks:            []string{degradedListItem},
		InvestmentThesis: degradedThesis,
	}
}

// ExtractStockMentions returns the distinct 6-digit Korean ticker codes found
// in a reply, in first-seen order.
func ExtractStockMentions(text string) []string {
	matches := stockCodePattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	codes := make([]string, 0, len(matches))
	for _, code := range matches {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}

	return codes
}

// ParseStrategyPayload parses a strategy reply. Unlike stock analysis it can
// fail: the caller owns the degraded fallback because it needs strategy
// specific wording.
func ParseStrategyPayload(raw string) (*dto.StrategyResponse, error) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(CleanModelJSON(raw)), &payload); err != nil {
		return nil, err
	}

	resp := &dto.StrategyResponse{
		Title:           asString(payload["title"]),
		Summary:         asString(payload["summary"]),
		MarketContext:   asString(payload["marketContext"]),
		Risks:           asStringSlice(payload["risks"]),
		Methodology:     asString(payload["methodology"]),
		Recommendations: parseRecommendations(payload["recommendations"]),
	}

	return resp, nil
}

func parseRecommendations(value any) []dto.StockRecommendation {
	items, ok := value.([]any)
	if !ok {
		return nil
	}

	recs := make([]dto.StockRecommendation, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}

		rec := dto.StockRecommendation{
			StockCode:       asString(entry["stockCode"]),
			StockName:       asString(entry["stockName"]),
			Market:          asString(entry["market"]),
			Sector:          asString(entry["sector"]),
			CurrentPrice:    asFloatPtr(entry["currentPrice"]),
			TargetPrice:     asFloatPtr(entry["targetPrice"]),
			UpsidePotential: asString(entry["upsidePotential"]),
			Rationale:       asString(entry["rationale"]),
			RiskLevel:       asString(entry["riskLevel"]),
			ConfidenceScore: asInt(entry["confidenceScore"]),
		}

		if metrics, ok := entry["metrics"].(map[string]any); ok {
			rec.Metrics = dto.RecommendationMetrics{
				PER:           asFloatPtr(metrics["PER"]),
				PBR:           asFloatPtr(metrics["PBR"]),
				ROE:           asFloatPtr(metrics["ROE"]),
				DebtRatio:     asFloatPtr(metrics["debtRatio"]),
				DividendYield: asFloatPtr(metrics["dividendYield"]),
				RevenueGrowth: asFloatPtr(metrics["revenueGrowth"]),
				ProfitGrowth:  asFloatPtr(metrics["profitGrowth"]),
			}
		}

		recs = append(recs, rec)
	}

	return recs
}

// SanitizeRecommendations drops entries without an identity and normalizes
// every remaining field to a safe default.
func SanitizeRecommendations(recs []dto.StockRecommendation) []dto.StockRecommendation {
	sanitized := make([]dto.StockRecommendation, 0, len(recs))
	for _, rec := range recs {
		if rec.StockCode == "" || rec.StockName == "" {
			continue
		}

		if rec.Market == "" {
			rec.Market = dto.DefaultMarket
		}
		if rec.UpsidePotential == "" {
			rec.UpsidePotential = "N/A"
		}
		switch strings.ToLower(rec.RiskLevel) {
		case dto.RiskLevelLow:
			rec.RiskLevel = dto.RiskLevelLow
		case dto.RiskLevelHigh:
			rec.RiskLevel = dto.RiskLevelHigh
		default:
			rec.RiskLevel = dto.RiskLevelMedium
		}
		if rec.ConfidenceScore <= 0 {
			rec.ConfidenceScore = dto.DefaultConfidenceScore
		}

		sanitized = append(sanitized, rec)
	}

	return sanitized
}

func asString(value any) string {
	s, _ := value.(string)
	return strings.TrimSpace(s)
}

func asStringSlice(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}

	return out
}

func asFloatPtr(value any) *float64 {
	f, ok := value.(float64)
	if !ok {
		return nil
	}
	return utils.ToPointer(f)
}

func asInt(value any) int {
	f, ok := value.(float64)
	if !ok {
		return 0
	}
	return int(f)
}
