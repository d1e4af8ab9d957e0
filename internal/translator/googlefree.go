package translator

import (
	"context"
	"fmt"
	"time"

	googletranslatefree "github.com/bas24/googletranslatefree"
)

// GoogleFreeService uses the public Google Translate web endpoint.
// No credentials are needed.
type GoogleFreeService struct {
	translate func(text, sourceLang, targetLang string) (string, error)
}

func NewGoogleFreeService() *GoogleFreeService {
	return &GoogleFreeService{translate: googletranslatefree.Translate}
}

func (s *GoogleFreeService) Name() string {
	return "googlefree"
}

func (s *GoogleFreeService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	sourceLang := req.SourceLang
	if isAuto(sourceLang) {
		sourceLang = AutoDetect
	}

	translated, err := callBlocking(ctx, func() (string, error) {
		return s.translate(req.Text, sourceLang, req.TargetLang)
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

func (s *GoogleFreeService) IsAvailable(ctx context.Context) error {
	return nil
}

func (s *GoogleFreeService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return googleWebLanguages, nil
}

// googleWebLanguages is the subset of codes the web endpoint accepts that
// is commonly requested by the frontend.
var googleWebLanguages = []string{
	"af", "ar", "bg", "bn", "ca", "cs", "da", "de", "el", "en",
	"es", "et", "fa", "fi", "fr", "he", "hi", "hr", "hu", "id",
	"it", "ja", "ko", "lt", "lv", "ms", "nl", "no", "pl", "pt",
	"ro", "ru", "sk", "sl", "sr", "sv", "sw", "ta", "th", "tl",
	"tr", "uk", "ur", "vi", "zh-CN", "zh-TW",
}
