package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("DATABASE_URL", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("unexpected port: %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("unexpected env: %q", cfg.Env)
	}
	if cfg.OpenAIModel != "gpt-4.1" {
		t.Fatalf("unexpected model: %q", cfg.OpenAIModel)
	}
	if !reflect.DeepEqual(cfg.CORSAllowOrigin, []string{"http://localhost:5173"}) {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSAllowOrigin)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "PROD")
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://app.example.com , https://admin.example.com ,")
	t.Setenv("ADMIN_EMAILS", "a@example.com,b@example.com")
	t.Setenv("DATABASE_URL", "postgres://localhost/letters")

	cfg := Load()
	if cfg.Env != "production" {
		t.Fatalf("unexpected env: %q", cfg.Env)
	}
	if cfg.Port != "9090" {
		t.Fatalf("unexpected port: %q", cfg.Port)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %q", cfg.OpenAIModel)
	}
	if !reflect.DeepEqual(cfg.CORSAllowOrigin, []string{"https://app.example.com", "https://admin.example.com"}) {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSAllowOrigin)
	}
	if !reflect.DeepEqual(cfg.AdminEmails, []string{"a@example.com", "b@example.com"}) {
		t.Fatalf("unexpected admin emails: %v", cfg.AdminEmails)
	}
	if cfg.DatabaseURL != "postgres://localhost/letters" {
		t.Fatalf("unexpected database url: %q", cfg.DatabaseURL)
	}
}

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"prod":       "production",
		"PRODUCTION": "production",
		"staging":    "staging",
		"local":      "local",
		"dev":        "dev",
		"whatever":   "dev",
		"":           "dev",
	}
	for raw, want := range cases {
		if got := normalizeEnv(raw); got != want {
			t.Fatalf("normalizeEnv(%q) = %q, want %q", raw, got, want)
		}
	}
}
