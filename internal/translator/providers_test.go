package translator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bregydoc/gtranslate"
)

func TestGoogleFreeService_Translate_AutoSource(t *testing.T) {
	var gotSource, gotTarget string
	svc := &GoogleFreeService{translate: func(text, sourceLang, targetLang string) (string, error) {
		gotSource, gotTarget = sourceLang, targetLang
		return "Hola", nil
	}}

	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{
		Text:       "Hello",
		TargetLang: "es",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "Hola" {
		t.Errorf("expected 'Hola', got %q", result.TranslatedText)
	}
	if gotSource != "auto" {
		t.Errorf("expected source 'auto', got %q", gotSource)
	}
	if gotTarget != "es" {
		t.Errorf("expected target 'es', got %q", gotTarget)
	}
	if result.ServiceName != "googlefree" {
		t.Errorf("expected service name 'googlefree', got %q", result.ServiceName)
	}
}

func TestGoogleFreeService_Translate_Error(t *testing.T) {
	svc := &GoogleFreeService{translate: func(text, sourceLang, targetLang string) (string, error) {
		return "", errors.New("invalid target language")
	}}

	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{
		Text:       "Hello",
		SourceLang: "auto",
		TargetLang: "xx",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if result == nil {
		t.Fatal("expected non-nil result")
	}
	if result.Error != "invalid target language" {
		t.Errorf("unexpected result error %q", result.Error)
	}
}

func TestGoogleFreeService_Translate_Empty(t *testing.T) {
	svc := &GoogleFreeService{translate: func(text, sourceLang, targetLang string) (string, error) {
		return "", nil
	}}

	_, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: "Hello", TargetLang: "es"})
	if err == nil {
		t.Fatal("expected error for empty translation")
	}
}

func TestGoogleFreeService_Translate_ContextDone(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	svc := &GoogleFreeService{translate: func(text, sourceLang, targetLang string) (string, error) {
		<-release
		return "late", nil
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.Translate(ctx, ServiceConfig{}, TranslateRequest{Text: "Hello", TargetLang: "es"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestGoogleFreeService_Translate_Panic(t *testing.T) {
	svc := &GoogleFreeService{translate: func(text, sourceLang, targetLang string) (string, error) {
		panic("boom")
	}}

	_, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: "Hello", TargetLang: "es"})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected panic to surface as error, got %v", err)
	}
}

func TestGoogleFreeService_SupportedLanguages(t *testing.T) {
	svc := NewGoogleFreeService()

	langs, err := svc.SupportedLanguages(context.Background())
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if len(langs) == 0 {
		t.Error("expected non-empty language list")
	}
}

func TestGTranslateService_Translate(t *testing.T) {
	var got gtranslate.TranslationParams
	svc := &GTranslateService{translate: func(text string, params gtranslate.TranslationParams) (string, error) {
		got = params
		return "Bonjour", nil
	}}

	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{
		Text:       "Hello",
		SourceLang: "",
		TargetLang: "fr",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "Bonjour" {
		t.Errorf("expected 'Bonjour', got %q", result.TranslatedText)
	}
	if got.From != "auto" || got.To != "fr" {
		t.Errorf("unexpected params %+v", got)
	}
}

func TestGTranslateService_Name(t *testing.T) {
	svc := NewGTranslateService()

	if svc.Name() != "gtranslate" {
		t.Errorf("expected 'gtranslate', got %q", svc.Name())
	}
}

func TestGoogleService_Translate_InvalidTarget(t *testing.T) {
	svc := NewGoogleService("", "")

	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{
		Text:       "Hello",
		SourceLang: "auto",
		TargetLang: "not a language",
	})
	if err == nil {
		t.Fatal("expected error for invalid target language")
	}
	if result == nil {
		t.Fatal("expected non-nil result")
	}
	if !strings.HasPrefix(result.Error, "invalid target language") {
		t.Errorf("unexpected result error %q", result.Error)
	}
}

func TestGoogleService_Name(t *testing.T) {
	svc := NewGoogleService("", "")

	if svc.Name() != "google" {
		t.Errorf("expected 'google', got %q", svc.Name())
	}
}

func TestGoogleService_IsAvailable(t *testing.T) {
	if err := NewGoogleService("", "").IsAvailable(context.Background()); err != nil {
		t.Errorf("expected default credentials to pass, got %v", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.json")
	if err := NewGoogleService(missing, "").IsAvailable(context.Background()); err == nil {
		t.Error("expected error for missing credentials file")
	}

	creds := filepath.Join(t.TempDir(), "creds.json")
	if err := os.WriteFile(creds, []byte("{}"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := NewGoogleService(creds, "").IsAvailable(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGoogleService_ClientOptions_ProjectID(t *testing.T) {
	if got := len(NewGoogleService("", "").clientOptions(ServiceConfig{})); got != 0 {
		t.Errorf("expected no options, got %d", got)
	}
	if got := len(NewGoogleService("", "my-project").clientOptions(ServiceConfig{})); got != 1 {
		t.Errorf("expected quota project option from constructor, got %d options", got)
	}
	if got := len(NewGoogleService("", "").clientOptions(ServiceConfig{ProjectID: "other"})); got != 1 {
		t.Errorf("expected quota project option from config, got %d options", got)
	}
}

func TestGuarded_Panic(t *testing.T) {
	res, err := guarded("google", func() (*ServiceResult, error) {
		panic("nil client")
	})
	if err == nil || !strings.Contains(err.Error(), "nil client") {
		t.Fatalf("expected panic to surface as error, got %v", err)
	}
	if res == nil || res.ServiceName != "google" || res.Error == "" {
		t.Errorf("expected failed result, got %+v", res)
	}
}

func TestGuarded_PassThrough(t *testing.T) {
	want := &ServiceResult{ServiceName: "google", TranslatedText: "Hola"}
	res, err := guarded("google", func() (*ServiceResult, error) {
		return want, nil
	})
	if err != nil || res != want {
		t.Errorf("expected result to pass through, got %+v, %v", res, err)
	}
}
