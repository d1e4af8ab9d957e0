package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const myMemoryURL = "https://api.mymemory.translated.net/get"

// LanguageDetector resolves the source language for providers that cannot
// detect it themselves.
type LanguageDetector interface {
	DetectISO(text string) (string, bool)
}

// MyMemoryService calls the MyMemory REST API. MyMemory requires an explicit
// language pair, so an automatic source is resolved with the detector and
// falls back to English.
type MyMemoryService struct {
	email    string
	baseURL  string
	detector LanguageDetector
	client   *http.Client
}

func NewMyMemoryService(email string, detector LanguageDetector) *MyMemoryService {
	return &MyMemoryService{
		email:    email,
		baseURL:  myMemoryURL,
		detector: detector,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *MyMemoryService) Name() string {
	return "mymemory"
}

func (s *MyMemoryService) sourceLang(req TranslateRequest) string {
	if !isAuto(req.SourceLang) {
		return req.SourceLang
	}
	if s.detector != nil {
		if detected, ok := s.detector.DetectISO(req.Text); ok {
			return detected
		}
	}
	return "en"
}

func (s *MyMemoryService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	return guarded(s.Name(), func() (*ServiceResult, error) {
		return s.translate(ctx, cfg, req)
	})
}

func (s *MyMemoryService) translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	sourceLang := s.sourceLang(req)

	q := url.Values{}
	q.Set("q", req.Text)
	q.Set("langpair", fmt.Sprintf("%s|%s", sourceLang, req.TargetLang))

	email := s.email
	if email == "" {
		email = cfg.MyMemoryMail
	}
	if email != "" {
		q.Set("de", email)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create request: %v", err)
		return result, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		result.Error = fmt.Sprintf("API returned status %d: %s", resp.StatusCode, string(body))
		return result, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var mymemResp struct {
		ResponseData struct {
			TranslatedText string  `json:"translatedText"`
			Match          float64 `json:"match"`
		} `json:"responseData"`
		ResponseStatus  int    `json:"responseStatus"`
		ResponseDetails string `json:"responseDetails"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&mymemResp); err != nil {
		result.Error = fmt.Sprintf("failed to decode response: %v", err)
		return result, fmt.Errorf("failed to decode response: %w", err)
	}

	if mymemResp.ResponseStatus != http.StatusOK {
		result.Error = fmt.Sprintf("API error: %s (%d)", mymemResp.ResponseDetails, mymemResp.ResponseStatus)
		return result, fmt.Errorf("API error: %s", mymemResp.ResponseDetails)
	}

	result.TranslatedText = mymemResp.ResponseData.TranslatedText
	result.Metadata = map[string]string{
		"source_lang": sourceLang,
		"match":       fmt.Sprintf("%.2f", mymemResp.ResponseData.Match),
	}

	return result, nil
}

// IsAvailable checks that the API base URL is usable.
func (s *MyMemoryService) IsAvailable(ctx context.Context) error {
	u, err := url.Parse(s.baseURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("invalid MyMemory URL %q", s.baseURL)
	}
	return nil
}

func (s *MyMemoryService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{
		"en", "es", "fr", "de", "it", "pt", "ru", "ja", "ko", "zh",
		"ar", "nl", "pl", "tr", "sv", "da", "no", "fi", "el", "he",
		"th", "vi", "id", "ms", "cs", "hu", "ro", "uk", "bg", "ca",
	}, nil
}
