package config

import (
	"testing"

	"github.com/slighter12/go-lib/database/postgres"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"jwt": map[string]any{
			"accessTokenExpireMinutes": 30,
			"secret":                   "",
		},
		"auth": map[string]any{
			"bcryptCost": 12,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "JWT_SECRET", want: "jwt.secret"},
		{envKey: "JWT_ACCESSTOKENEXPIREMINUTES", want: "jwt.accessTokenExpireMinutes"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.JWT = JWTConfig{
			Secret:                   "test-secret",
			Algorithm:                "HS256",
			AccessTokenExpireMinutes: 30,
		}
		cfg.Postgres = &postgres.DBConn{}

		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		if err := base().validate(); err != nil {
			t.Fatalf("validate() = %v, want nil", err)
		}
	})

	t.Run("missing secret", func(t *testing.T) {
		cfg := base()
		cfg.JWT.Secret = "  "
		if err := cfg.validate(); err == nil {
			t.Fatal("validate() = nil, want error for empty secret")
		}
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		cfg := base()
		cfg.JWT.Algorithm = "none"
		if err := cfg.validate(); err == nil {
			t.Fatal("validate() = nil, want error for unknown algorithm")
		}
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		cfg := base()
		cfg.JWT.AccessTokenExpireMinutes = 0
		if err := cfg.validate(); err == nil {
			t.Fatal("validate() = nil, want error for zero ttl")
		}
	})
}
