// Package translation implements the translate operation on top of a single
// provider: request validation, target defaulting and error classification.
package translation

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/valpere/translation-service/internal/translator"
)

// DefaultTargetLang is used when neither the request nor the configuration
// names a target language.
const DefaultTargetLang = "es"

// ErrNoText is returned when the request carries no text to translate.
var ErrNoText = errors.New("no text provided")

// ProviderError wraps any failure reported by the translation provider.
// Its message is the provider's message, unchanged.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

type Request struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
}

type Response struct {
	OriginalText   string `json:"originalText"`
	TranslatedText string `json:"translatedText"`
	TargetLanguage string `json:"targetLanguage"`
}

// Kind tags an Outcome.
type Kind int

const (
	Succeeded Kind = iota
	InvalidRequest
	ProviderFailed
)

func (k Kind) String() string {
	switch k {
	case Succeeded:
		return "succeeded"
	case InvalidRequest:
		return "invalid_request"
	case ProviderFailed:
		return "provider_failed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome is the result of one translate call. Response is set only when
// Kind is Succeeded; Err is set otherwise.
type Outcome struct {
	Kind     Kind
	Response *Response
	Err      error
}

type Service struct {
	provider      translator.TranslationService
	cfg           translator.ServiceConfig
	defaultTarget string
	logger        *zap.Logger
}

// NewService returns a Service delegating to provider. An empty
// defaultTarget means DefaultTargetLang.
func NewService(provider translator.TranslationService, cfg translator.ServiceConfig, defaultTarget string, logger *zap.Logger) *Service {
	if defaultTarget == "" {
		defaultTarget = DefaultTargetLang
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		provider:      provider,
		cfg:           cfg,
		defaultTarget: defaultTarget,
		logger:        logger,
	}
}

// ProviderName reports which provider the service delegates to.
func (s *Service) ProviderName() string {
	return s.provider.Name()
}

// Translate validates req and makes a single provider call with an
// automatically detected source language. req.Text is passed through and
// echoed back unmodified.
func (s *Service) Translate(ctx context.Context, req Request) Outcome {
	if req.Text == "" {
		return Outcome{Kind: InvalidRequest, Err: ErrNoText}
	}

	targetLang := req.TargetLang
	if targetLang == "" {
		targetLang = s.defaultTarget
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	res, err := s.provider.Translate(ctx, s.cfg, translator.TranslateRequest{
		Text:       req.Text,
		SourceLang: translator.AutoDetect,
		TargetLang: targetLang,
	})
	if err == nil && res == nil {
		err = errors.New("no translation returned")
	}
	if err != nil {
		s.logger.Warn("Translation provider failed",
			zap.String("provider", s.provider.Name()),
			zap.String("target_lang", targetLang),
			zap.Int("text_len", len(req.Text)),
			zap.Error(err),
		)
		return Outcome{Kind: ProviderFailed, Err: &ProviderError{Provider: s.provider.Name(), Err: err}}
	}

	s.logger.Debug("Translation completed",
		zap.String("provider", res.ServiceName),
		zap.String("target_lang", targetLang),
		zap.Duration("latency", res.Latency),
	)

	return Outcome{
		Kind: Succeeded,
		Response: &Response{
			OriginalText:   req.Text,
			TranslatedText: res.TranslatedText,
			TargetLanguage: targetLang,
		},
	}
}
