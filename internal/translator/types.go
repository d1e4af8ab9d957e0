// Package translator adapts third-party translation providers to a single
// contract. The service picks exactly one of them at startup.
package translator

import (
	"context"
	"time"
)

// AutoDetect asks the provider to detect the source language itself.
const AutoDetect = "auto"

type ServiceConfig struct {
	Credentials  string        `mapstructure:"credentials" json:"credentials"`
	ProjectID    string        `mapstructure:"project_id" json:"project_id"`
	MyMemoryMail string        `mapstructure:"mymemory_email" json:"mymemory_email"`
	Timeout      time.Duration `mapstructure:"timeout" json:"timeout"`
}

type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type ServiceResult struct {
	ServiceName    string            `json:"service_name"`
	TranslatedText string            `json:"translated_text"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	Latency        time.Duration     `json:"latency"`
	Error          string            `json:"error,omitempty"`
}

// TranslationService is implemented by every provider adapter.
// Implementations must be safe for concurrent use. IsAvailable is a cheap
// local readiness check run once at startup; it makes no network calls.
type TranslationService interface {
	Name() string
	Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error)
	IsAvailable(ctx context.Context) error
	SupportedLanguages(ctx context.Context) ([]string, error)
}

func isAuto(lang string) bool {
	return lang == "" || lang == AutoDetect
}
