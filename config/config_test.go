package config

import (
	"testing"
)

func TestNewConfig_Defaults(t *testing.T) {
	// A fresh checkout must run with no env file and no variables set.
	cfg := NewConfig()
	if cfg == nil {
		t.Fatal("NewConfig returned nil")
	}

	if cfg.Address == "" {
		t.Error("Address must have a default")
	}
	if cfg.MongoDB_ConnectionURI == "" {
		t.Error("MongoDB_ConnectionURI must have a default")
	}
	if cfg.MongoDB_DBName == "" {
		t.Error("MongoDB_DBName must have a default")
	}
	if cfg.OrgCode == "" {
		t.Error("OrgCode must have a default")
	}
	if cfg.TokenTTLMinutes <= 0 {
		t.Errorf("TokenTTLMinutes = %d, want positive default", cfg.TokenTTLMinutes)
	}
	if cfg.RefreshTTLHours <= 0 {
		t.Errorf("RefreshTTLHours = %d, want positive default", cfg.RefreshTTLHours)
	}
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ORG_CODE", "HOPE")
	t.Setenv("ADDRESS", ":9090")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("TOKEN_TTL_MINUTES", "15")

	cfg := NewConfig()
	if cfg == nil {
		t.Fatal("NewConfig returned nil")
	}

	if cfg.OrgCode != "HOPE" {
		t.Errorf("OrgCode = %q, want HOPE", cfg.OrgCode)
	}
	if cfg.Address != ":9090" {
		t.Errorf("Address = %q, want :9090", cfg.Address)
	}
	if cfg.RateLimit_Enabled {
		t.Error("RateLimit_Enabled must honor the env override")
	}
	if cfg.TokenTTLMinutes != 15 {
		t.Errorf("TokenTTLMinutes = %d, want 15", cfg.TokenTTLMinutes)
	}
}

func TestNewConfig_SMTPDisabledByDefault(t *testing.T) {
	cfg := NewConfig()
	if cfg == nil {
		t.Fatal("NewConfig returned nil")
	}
	if cfg.SMTP_Host != "" {
		t.Skip("SMTP_HOST set in the environment")
	}
	// Empty host means the mailer stays off; the port default is still
	// parsed so setting just SMTP_HOST works.
	if cfg.SMTP_Port != 587 {
		t.Errorf("SMTP_Port = %d, want 587", cfg.SMTP_Port)
	}
}
