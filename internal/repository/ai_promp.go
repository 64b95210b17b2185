package repository

import (
	"fmt"
	"strconv"
	"strings"

	"valuehunt-ai/internal/dto"
)

// Prompt builders are pure string construction. Missing optional values are
// rendered as an explicit "N/A" so the template shape never shifts.

const notAvailable = "N/A"

func formatFloat(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatMarketCap(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.0f억원", *v/100000000)
}

func metricsOrEmpty(req dto.StockAnalysisRequest) dto.StockMetrics {
	if req.Metrics == nil {
		return dto.StockMetrics{}
	}
	return *req.Metrics
}

func sectorOrNA(sector string) string {
	if sector == "" {
		return notAvailable
	}
	return sector
}

// BuildQuickAnalysisPrompt renders the compact analysis prompt used on the
// fast routing tier.
func BuildQuickAnalysisPrompt(req dto.StockAnalysisRequest) string {
	metrics := metricsOrEmpty(req)

	return fmt.Sprintf(`당신은 한국 주식 시장 전문 애널리스트입니다. 다음 종목에 대한 간결하고 명확한 투자 분석을 제공해주세요.

종목 정보:
- 종목명: %s (%s)
- 섹터: %s
- 현재가: %s원
- Value Score: %s

재무 지표:
- PER: %s
- PBR: %s
- ROE: %s%%
- 부채비율: %s%%
- 배당수익률: %s%%

다음 형식으로 JSON 응답을 제공해주세요:
{
  "summary": "2-3문장으로 된 종목 요약",
  "strengths": ["강점1", "강점2", "강점3"],
  "risks": ["리스크1", "리스크2", "리스크3"],
  "investmentThesis": "투자 의견 (1-2문장)"
}

JSON만 출력하고 다른 텍스트는 포함하지 마세요.`,
		req.StockName, req.StockCode,
		sectorOrNA(req.Sector),
		formatFloat(req.CurrentPrice),
		formatFloat(req.ValueScore),
		formatFloat(metrics.PER),
		formatFloat(metrics.PBR),
		formatFloat(metrics.ROE),
		formatFloat(metrics.DebtRatio),
		formatFloat(metrics.DividendYield),
	)
}

// BuildDeepAnalysisPrompt renders the richer analysis prompt used on the
// high-quality routing tier, including the value-score guidance thresholds.
func BuildDeepAnalysisPrompt(req dto.StockAnalysisRequest) string {
	metrics := metricsOrEmpty(req)

	return fmt.Sprintf(`당신은 한국 주식 시장의 전문 애널리스트입니다. 깊이 있고 통찰력 있는 투자 분석을 제공해주세요.

종목 정보:
- 종목명: %s (%s)
- 섹터: %s
- 시가총액: %s
- 현재가: %s원
- Value Score: %s

재무 지표:
- PER (주가수익비율): %s
- PBR (주가순자산비율): %s
- ROE (자기자본이익률): %s%%
- ROA (총자산이익률): %s%%
- 부채비율: %s%%
- 배당수익률: %s%%

다음 형식으로 상세한 JSON 분석을 제공해주세요:
{
  "summary": "종목에 대한 종합적인 요약 (3-4문장, 업종 특성과 재무 상태를 포함)",
  "strengths": [
    "구체적인 강점 1 (재무 지표 기반)",
    "구체적인 강점 2 (사업 경쟁력)",
    "구체적인 강점 3 (성장 가능성)",
    "구체적인 강점 4 (배당 또는 밸류에이션)"
  ],
  "risks": [
    "구체적인 리스크 1 (재무적 위험)",
    "구체적인 리스크 2 (사업 리스크)",
    "구체적인 리스크 3 (시장 환경)",
    "구체적인 리스크 4 (밸류에이션 또는 유동성)"
  ],
  "investmentThesis": "투자 의견 및 전략 (3-4문장, Value Score를 고려한 종합 의견)",
  "targetPriceRange": "적정 주가 밴드 (예: '현재가 대비 10-15%% 상승 여력' 또는 '현재 밸류에이션 적정')"
}

분석 시 고려사항:
1. Value Score는 70점 이상이면 우량 저평가주, 50-70점은 관심 종목입니다
2. PER/PBR이 낮을수록 저평가, ROE가 높을수록 수익성이 우수합니다
3. 부채비율이 100%% 이하면 안정적이며, 배당수익률 3%% 이상이면 매력적입니다
4. 업종별 특성을 고려하여 분석해주세요

JSON만 출력하고 다른 텍스트는 포함하지 마세요.`,
		req.StockName, req.StockCode,
		sectorOrNA(req.Sector),
		formatMarketCap(req.MarketCap),
		formatFloat(req.CurrentPrice),
		formatFloat(req.ValueScore),
		formatFloat(metrics.PER),
		formatFloat(metrics.PBR),
		formatFloat(metrics.ROE),
		formatFloat(metrics.ROA),
		formatFloat(metrics.DebtRatio),
		formatFloat(metrics.DividendYield),
	)
}

const chatPersona = `당신은 ValueHunt의 AI 투자 어시스턴트입니다. 한국 주식 시장의 저평가 우량주를 찾고 투자 전략을 세우는 데 도움을 드립니다.`

// BuildChatPrompt renders the whole conversation as one prose prompt,
// role-tagged history included. Used by providers without native chat turns.
func BuildChatPrompt(req dto.ChatRequest) string {
	var sb strings.Builder

	sb.WriteString(chatPersona)
	sb.WriteString("\n\n사용자 질문: ")
	sb.WriteString(req.Message)

	if req.Context != nil {
		if req.Context.StockCode != "" {
			sb.WriteString("\n\n관련 종목: ")
			sb.WriteString(req.Context.StockCode)
		}

		if len(req.Context.ConversationHistory) > 0 {
			sb.WriteString("\n\n이전 대화 내용:\n")
			for _, msg := range req.Context.ConversationHistory {
				role := "AI"
				if msg.Role == dto.ChatRoleUser {
					role = "사용자"
				}
				sb.WriteString(fmt.Sprintf("%s: %s\n", role, msg.Content))
			}
		}
	}

	sb.WriteString("\n\n친절하고 전문적인 어조로 답변해주세요. 구체적인 투자 조언보다는 정보 제공과 교육에 초점을 맞춰주세요.")

	return sb.String()
}

// BuildChatUserMessage renders only the newest user turn with the persona
// preamble. Prior turns travel as native messages on providers that support
// them.
func BuildChatUserMessage(req dto.ChatRequest) string {
	var sb strings.Builder

	sb.WriteString(chatPersona)
	sb.WriteString(`

특징:
- Value Score 기반 종목 추천 시스템 활용
- 재무 지표(PER, PBR, ROE 등)를 통한 정량적 분석
- 업종별 특성을 고려한 정성적 분석
- 리스크 관리 및 포트폴리오 다각화 중시

사용자 질문: `)
	sb.WriteString(req.Message)

	if req.Context != nil && req.Context.StockCode != "" {
		sb.WriteString("\n\n관련 종목: ")
		sb.WriteString(req.Context.StockCode)
	}

	return sb.String()
}
