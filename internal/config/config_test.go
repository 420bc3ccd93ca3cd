package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("NATS_SUBJECT", "")
	t.Setenv("OCR_TIMEOUT_SECONDS", "")
	t.Setenv("DEGRADED_METADATA_FALLBACK", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")

	cfg := Load()
	if cfg.NATSSubject != "documents.analyze" {
		t.Fatalf("expected default subject documents.analyze, got %q", cfg.NATSSubject)
	}
	if cfg.OCRTimeoutSeconds != 60 {
		t.Fatalf("expected default ocr timeout 60, got %d", cfg.OCRTimeoutSeconds)
	}
	if !cfg.DegradedMetadataFallback {
		t.Fatalf("expected degraded metadata fallback enabled by default")
	}
	if cfg.MaxUploadBytes != 20<<20 {
		t.Fatalf("expected default max upload 20MiB, got %d", cfg.MaxUploadBytes)
	}
}

func TestLoadParsesEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("OCR_LANGUAGE", "deu")
	t.Setenv("EXTRACT_TIMEOUT_SECONDS", "30")
	t.Setenv("DEGRADED_METADATA_FALLBACK", "false")
	t.Setenv("UPLOAD_RATE_PER_SEC", "2")

	cfg := Load()
	if cfg.OCRLanguage != "deu" {
		t.Fatalf("expected ocr language deu, got %q", cfg.OCRLanguage)
	}
	if cfg.ExtractTimeoutSeconds != 30 {
		t.Fatalf("expected extract timeout 30, got %d", cfg.ExtractTimeoutSeconds)
	}
	if cfg.DegradedMetadataFallback {
		t.Fatalf("expected degraded metadata fallback disabled")
	}
	if cfg.UploadRatePerSec != 2 {
		t.Fatalf("expected upload rate 2, got %d", cfg.UploadRatePerSec)
	}
}

func TestLoadAppliesFileOverlayUnderEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "ocr_language: fra\napi_port: \"9999\"\nupload_rate_burst: 3\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("API_PORT", "8088")
	t.Setenv("OCR_LANGUAGE", "")
	t.Setenv("UPLOAD_RATE_BURST", "")

	cfg := Load()
	if cfg.APIPort != "8088" {
		t.Fatalf("expected env to win over file, got %q", cfg.APIPort)
	}
	if cfg.OCRLanguage != "fra" {
		t.Fatalf("expected file overlay language fra, got %q", cfg.OCRLanguage)
	}
	if cfg.UploadRateBurst != 3 {
		t.Fatalf("expected file overlay burst 3, got %d", cfg.UploadRateBurst)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("OCR_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("DEGRADED_METADATA_FALLBACK", "definitely")

	cfg := Load()
	if cfg.OCRTimeoutSeconds != 60 {
		t.Fatalf("expected fallback ocr timeout 60, got %d", cfg.OCRTimeoutSeconds)
	}
	if !cfg.DegradedMetadataFallback {
		t.Fatalf("expected fallback degraded metadata true")
	}
}
