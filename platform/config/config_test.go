package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("CORS_ORIGINS", "http://localhost:4200")
	t.Setenv("CORS_ALLOW_ALL", "false")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "false")
	t.Setenv("RATE_LIMIT_RPS", "20")
	t.Setenv("RATE_LIMIT_BURST", "40")
	t.Setenv("PHONE_ALLOWED_COUNTRIES", "")
	t.Setenv("PHONE_ALLOWED_OPTIONS", "default")
	t.Setenv("JWT_ACCESS_SECRET", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.GetPhoneAllowedCountries()) != 0 {
		t.Fatalf("expected no country restriction, got %v", cfg.GetPhoneAllowedCountries())
	}
	if got := cfg.GetPhoneAllowedOptions(); len(got) != 1 || got[0] != "default" {
		t.Fatalf("expected [default], got %v", got)
	}
	if cfg.GetJWTAccessSecret() != "" {
		t.Fatal("expected no JWT secret by default")
	}
}

func TestLoadPhoneSettings(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("CORS_ALLOW_ALL", "false")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "false")
	t.Setenv("RATE_LIMIT_RPS", "5")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("PHONE_ALLOWED_COUNTRIES", " GB, US ,,")
	t.Setenv("PHONE_ASSUMED_COUNTRY", "US")
	t.Setenv("PHONE_ALLOWED_OPTIONS", "mobile,emergency")
	t.Setenv("PHONE_TEMPLATES_FILE", "/etc/phonefmt/table.yaml")
	t.Setenv("PHONE_NON_BREAKING_SPACE", "TRUE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.GetPhoneAllowedCountries(); len(got) != 2 || got[0] != "GB" || got[1] != "US" {
		t.Fatalf("expected [GB US], got %v", got)
	}
	if cfg.GetPhoneAssumedCountry() != "US" {
		t.Fatalf("expected US, got %q", cfg.GetPhoneAssumedCountry())
	}
	if !cfg.GetPhoneNonBreakingSpace() {
		t.Fatal("expected non-breaking space to be enabled")
	}
	if cfg.GetRateLimitRPS() != 5 || cfg.GetRateLimitBurst() != 10 {
		t.Fatalf("unexpected rate limit %v/%d", cfg.GetRateLimitRPS(), cfg.GetRateLimitBurst())
	}
	if cfg.GetPhoneTemplatesFile() != "/etc/phonefmt/table.yaml" {
		t.Fatalf("unexpected templates file %q", cfg.GetPhoneTemplatesFile())
	}
}

func TestLoadRejectsWildcardWithCredentials(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("CORS_ORIGINS", "*")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")
	t.Setenv("RATE_LIMIT_RPS", "20")
	t.Setenv("RATE_LIMIT_BURST", "40")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for wildcard origins with credentials")
	}
}

func TestLoadRequiresSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ALLOW_ALL", "false")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "false")
	t.Setenv("RATE_LIMIT_RPS", "20")
	t.Setenv("RATE_LIMIT_BURST", "40")
	t.Setenv("JWT_ACCESS_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without JWT_ACCESS_SECRET in production")
	}
}

func TestLoadRejectsBadRateLimit(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("CORS_ALLOW_ALL", "false")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "false")
	t.Setenv("RATE_LIMIT_RPS", "fast")
	t.Setenv("RATE_LIMIT_BURST", "40")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparsable rate")
	}
}
