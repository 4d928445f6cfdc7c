package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/campus")
	t.Setenv("JWT_SECRET", "s3cret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("JWT_TTL_HOURS", "")
	t.Setenv("RESET_CODE_TTL_MINUTES", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("TWILIO_ACCOUNT_SID", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")
	t.Setenv("TWILIO_PHONE_NUMBER", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Errorf("JWTTTL = %s, want 24h", cfg.JWTTTL)
	}
	if cfg.ResetCodeTTL != 5*time.Minute {
		t.Errorf("ResetCodeTTL = %s, want 5m", cfg.ResetCodeTTL)
	}
	if cfg.JWTIssuer != "campus-auth" {
		t.Errorf("JWTIssuer = %q", cfg.JWTIssuer)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.SMSConfigured() {
		t.Error("SMSConfigured() = true with no Twilio env")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_TTL_HOURS", "1")
	t.Setenv("RESET_CODE_TTL_MINUTES", "10")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "tok")
	t.Setenv("TWILIO_PHONE_NUMBER", "+15550001111")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.HTTPAddress() != ":9090" {
		t.Errorf("HTTPAddress = %q", cfg.HTTPAddress())
	}
	if cfg.JWTTTL != time.Hour {
		t.Errorf("JWTTTL = %s", cfg.JWTTTL)
	}
	if cfg.ResetCodeTTL != 10*time.Minute {
		t.Errorf("ResetCodeTTL = %s", cfg.ResetCodeTTL)
	}
	if !cfg.SMSConfigured() {
		t.Error("SMSConfigured() = false with full Twilio env")
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoad_RequiredVars(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "s")
	if _, err := Load(); err == nil {
		t.Error("Load succeeded without DATABASE_URL")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/campus")
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Error("Load succeeded without JWT_SECRET")
	}
}
