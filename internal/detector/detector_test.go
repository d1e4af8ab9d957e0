package detector

import (
	"testing"
)

func TestDetector_DetectISO(t *testing.T) {
	d := Shared()

	tests := []struct {
		name     string
		text     string
		wantCode string
		wantOK   bool
	}{
		{name: "empty text", text: "", wantOK: false},
		{name: "english text", text: "Hello, this is a test in English.", wantCode: "en", wantOK: true},
		{name: "ukrainian text", text: "Привіт, це тест українською мовою.", wantCode: "uk", wantOK: true},
		{name: "german text", text: "Hallo, das ist ein Test auf Deutsch.", wantCode: "de", wantOK: true},
		{name: "spanish text", text: "Hola, esto es una prueba en español.", wantCode: "es", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := d.DetectISO(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("DetectISO(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if tt.wantOK && code != tt.wantCode {
				t.Errorf("DetectISO(%q) = %q, want %q", tt.text, code, tt.wantCode)
			}
		})
	}
}

func TestShared_ReturnsSameInstance(t *testing.T) {
	if Shared() != Shared() {
		t.Error("expected Shared to return a single detector")
	}
}
