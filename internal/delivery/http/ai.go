package http

import (
	"errors"
	"net/http"

	"valuehunt-ai/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupAI(base *echo.Group) {
	aiGroup := base.Group("/ai")
	aiGroup.POST("/analyze", h.analyzeStock)
	aiGroup.POST("/chat", h.chat)
	aiGroup.POST("/strategy", h.executeStrategy)
	aiGroup.GET("/status", h.serviceStatus)
}

func (h *HttpAPIHandler) analyzeStock(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.AnalyzeStockHTTPRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.service.AIService.AnalyzeStock(ctx, req.StockAnalysisRequest, req.AnalysisType)
	if err != nil {
		return h.aiError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *HttpAPIHandler) chat(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.ChatHTTPRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.service.AIService.Chat(ctx, dto.ChatRequest{
		Message: req.Message,
		Context: req.Context,
	}, req.DeepAnalysis)
	if err != nil {
		return h.aiError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *HttpAPIHandler) executeStrategy(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.StrategyRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.service.StrategyService.ExecuteStrategy(ctx, *req)
	if err != nil {
		if errors.Is(err, dto.ErrStrategyNotImplemented) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return h.aiError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *HttpAPIHandler) serviceStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.AIService.GetServiceStatus())
}

func (h *HttpAPIHandler) aiError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, dto.ErrNoAIServiceAvailable):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	case errors.Is(err, dto.ErrAllAIServicesFailed):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to process AI request"})
	}
}
