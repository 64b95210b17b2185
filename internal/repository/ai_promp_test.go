package repository

import (
	"strings"
	"testing"

	"valuehunt-ai/internal/dto"
	"valuehunt-ai/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuickAnalysisPrompt(t *testing.T) {
	t.Run("missing values rendered as N/A", func(t *testing.T) {
		req := dto.StockAnalysisRequest{
			StockCode: "005930",
			StockName: "삼성전자",
		}

		prompt := BuildQuickAnalysisPrompt(req)

		assert.Contains(t, prompt, "삼성전자 (005930)")
		assert.Contains(t, prompt, "- 섹터: N/A")
		assert.Contains(t, prompt, "- 현재가: N/A원")
		assert.Contains(t, prompt, "- PER: N/A")
	})

	t.Run("metrics rendered without trailing zeros", func(t *testing.T) {
		req := dto.StockAnalysisRequest{
			StockCode:    "005930",
			StockName:    "삼성전자",
			Sector:       "반도체",
			CurrentPrice: utils.ToPointer(71000.0),
			ValueScore:   utils.ToPointer(82.5),
			Metrics: &dto.StockMetrics{
				PER: utils.ToPointer(9.8),
				ROE: utils.ToPointer(12.0),
			},
		}

		prompt := BuildQuickAnalysisPrompt(req)

		assert.Contains(t, prompt, "- 섹터: 반도체")
		assert.Contains(t, prompt, "- 현재가: 71000원")
		assert.Contains(t, prompt, "- Value Score: 82.5")
		assert.Contains(t, prompt, "- PER: 9.8")
		assert.Contains(t, prompt, "- ROE: 12%")
		assert.Contains(t, prompt, "- PBR: N/A")
	})

	t.Run("deterministic output", func(t *testing.T) {
		req := dto.StockAnalysisRequest{StockCode: "005930", StockName: "삼성전자"}
		assert.Equal(t, BuildQuickAnalysisPrompt(req), BuildQuickAnalysisPrompt(req))
	})
}

func TestBuildDeepAnalysisPrompt(t *testing.T) {
	req := dto.StockAnalysisRequest{
		StockCode: "005930",
		StockName: "삼성전자",
		MarketCap: utils.ToPointer(500000000000.0),
		Metrics: &dto.StockMetrics{
			ROA: utils.ToPointer(7.2),
		},
	}

	prompt := BuildDeepAnalysisPrompt(req)

	assert.Contains(t, prompt, "- 시가총액: 5000억원")
	assert.Contains(t, prompt, "- ROA (총자산이익률): 7.2%")
	assert.Contains(t, prompt, "targetPriceRange")
	assert.Contains(t, prompt, "Value Score는 70점 이상이면 우량 저평가주")
}

func TestBuildChatPrompt(t *testing.T) {
	t.Run("bare message", func(t *testing.T) {
		prompt := BuildChatPrompt(dto.ChatRequest{Message: "PER이 뭔가요?"})

		assert.Contains(t, prompt, "사용자 질문: PER이 뭔가요?")
		assert.NotContains(t, prompt, "관련 종목")
		assert.NotContains(t, prompt, "이전 대화 내용")
	})

	t.Run("context and role-tagged history", func(t *testing.T) {
		prompt := BuildChatPrompt(dto.ChatRequest{
			Message: "그 종목 더 알려주세요",
			Context: &dto.ChatContext{
				StockCode: "005930",
				ConversationHistory: []dto.ChatMessage{
					{Role: dto.ChatRoleUser, Content: "삼성전자 어때요?"},
					{Role: dto.ChatRoleAssistant, Content: "반도체 대장주입니다."},
				},
			},
		})

		assert.Contains(t, prompt, "관련 종목: 005930")
		assert.Contains(t, prompt, "사용자: 삼성전자 어때요?")
		assert.Contains(t, prompt, "AI: 반도체 대장주입니다.")

		historyIdx := strings.Index(prompt, "이전 대화 내용")
		questionIdx := strings.Index(prompt, "사용자 질문")
		assert.True(t, questionIdx < historyIdx, "question should come before the history block")
	})
}

func TestBuildChatUserMessage(t *testing.T) {
	msg := BuildChatUserMessage(dto.ChatRequest{
		Message: "배당주 추천해주세요",
		Context: &dto.ChatContext{StockCode: "005930"},
	})

	assert.Contains(t, msg, "ValueHunt의 AI 투자 어시스턴트")
	assert.Contains(t, msg, "사용자 질문: 배당주 추천해주세요")
	assert.Contains(t, msg, "관련 종목: 005930")
	// history travels as native turns, never inside this message
	assert.NotContains(t, msg, "이전 대화 내용")
}
