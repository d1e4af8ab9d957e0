package cmd

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/valpere/translation-service/internal/config"
)

func TestBuildService(t *testing.T) {
	for _, name := range []string{"googlefree", "gtranslate", "google"} {
		svc, err := buildService(context.Background(), config.TranslateConfig{Provider: name})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if svc.Name() != name {
			t.Errorf("expected service %q, got %q", name, svc.Name())
		}
	}
}

func TestBuildService_Unknown(t *testing.T) {
	if _, err := buildService(context.Background(), config.TranslateConfig{Provider: "babelfish"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestBuildService_Unavailable(t *testing.T) {
	_, err := buildService(context.Background(), config.TranslateConfig{
		Provider:    "google",
		Credentials: filepath.Join(t.TempDir(), "missing.json"),
	})
	if err == nil {
		t.Fatal("expected error for missing credentials file")
	}
	if !strings.Contains(err.Error(), "not available") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestServiceConfig(t *testing.T) {
	got := serviceConfig(config.TranslateConfig{Credentials: "creds.json", ProjectID: "proj", MyMemoryEmail: "a@b.c"})

	if got.Credentials != "creds.json" || got.ProjectID != "proj" || got.MyMemoryMail != "a@b.c" {
		t.Errorf("unexpected service config %+v", got)
	}
}
