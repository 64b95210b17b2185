package dto

import "errors"

var (
	// ErrNoAIServiceAvailable means neither provider has a configured credential.
	ErrNoAIServiceAvailable = errors.New("no AI service available")
	// ErrAllAIServicesFailed means the primary and the fallback call both failed.
	ErrAllAIServicesFailed = errors.New("all AI services failed")
	// ErrStrategyNotImplemented means the requested strategy has no configuration.
	ErrStrategyNotImplemented = errors.New("strategy not implemented")
)
