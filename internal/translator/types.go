// Package translator translates short answers between Hindi and English.
//
// A Gateway calls a primary TranslationService and escalates to a fallback
// service when the primary output is empty or looks corrupted. Gateway calls
// never fail; the worst case returns the input unchanged.
package translator

import (
	"context"
	"time"
)

type ServiceConfig struct {
	Credentials string        `mapstructure:"credentials" json:"credentials"`
	APIKey      string        `mapstructure:"api_key" json:"api_key"`
	Email       string        `mapstructure:"email" json:"email"`
	BaseURL     string        `mapstructure:"base_url" json:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout" json:"timeout"`
}

type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type ServiceResult struct {
	ServiceName    string        `json:"service_name"`
	TranslatedText string        `json:"translated_text"`
	Confidence     float64       `json:"confidence"`
	Latency        time.Duration `json:"latency"`
	Error          string        `json:"error,omitempty"`
}

// TranslationService is a single translation backend. Implementations
// return a non-nil result together with any error so callers can log
// latency and the failure text.
type TranslationService interface {
	Name() string
	Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error)
}

// Source names which backend produced an Outcome.
type Source string

const (
	SourcePrimary  Source = "primary"
	SourceFallback Source = "fallback"
	// SourceNone means the input was returned unchanged.
	SourceNone Source = "none"
)

// Outcome is the full result of one gateway translation.
type Outcome struct {
	Text       string `json:"text"`
	SourceUsed Source `json:"source_used"`
	// Suspicious reports whether the primary output was rejected.
	Suspicious bool `json:"suspicious"`
}
