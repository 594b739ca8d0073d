package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "SIGNUP_API_URL", "SIGNUP_TIMEOUT", "STORE_DRIVER", "STORE_PATH"} {
		t.Setenv(key, "")
	}

	cfg := fromEnv()

	if cfg.Port != "4000" {
		t.Errorf("expected default port 4000, got %s", cfg.Port)
	}
	if cfg.SignupAPIURL != "http://localhost:4000" {
		t.Errorf("unexpected signup URL %s", cfg.SignupAPIURL)
	}
	if cfg.SignupTimeout != 10*time.Second {
		t.Errorf("expected 10s signup timeout, got %s", cfg.SignupTimeout)
	}
	if cfg.Store.Driver != StoreDriverSQLite {
		t.Errorf("expected sqlite store driver, got %s", cfg.Store.Driver)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SIGNUP_TIMEOUT", "3s")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "cache:6379")

	cfg := fromEnv()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.SignupTimeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %s", cfg.SignupTimeout)
	}
	if cfg.Store.Driver != StoreDriverRedis || cfg.Store.RedisAddr != "cache:6379" {
		t.Errorf("unexpected store config: %+v", cfg.Store)
	}
}

func TestFromEnv_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("SIGNUP_TIMEOUT", "soon")

	cfg := fromEnv()

	if cfg.SignupTimeout != 10*time.Second {
		t.Errorf("expected fallback to 10s, got %s", cfg.SignupTimeout)
	}
}
