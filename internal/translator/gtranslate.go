package translator

import (
	"context"
	"fmt"
	"time"

	"github.com/bregydoc/gtranslate"
)

// GTranslateService is an alternative client for the public Google endpoint.
type GTranslateService struct {
	translate func(text string, params gtranslate.TranslationParams) (string, error)
}

func NewGTranslateService() *GTranslateService {
	return &GTranslateService{translate: gtranslate.TranslateWithParams}
}

func (s *GTranslateService) Name() string {
	return "gtranslate"
}

func (s *GTranslateService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	params := gtranslate.TranslationParams{
		From: req.SourceLang,
		To:   req.TargetLang,
	}
	if isAuto(params.From) {
		params.From = AutoDetect
	}

	translated, err := callBlocking(ctx, func() (string, error) {
		return s.translate(req.Text, params)
	})
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	if translated == "" {
		result.Error = "no translation returned"
		return result, fmt.Errorf("no translation returned")
	}

	result.TranslatedText = translated
	return result, nil
}

func (s *GTranslateService) IsAvailable(ctx context.Context) error {
	return nil
}

func (s *GTranslateService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return googleWebLanguages, nil
}
