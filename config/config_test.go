package config

import (
	"testing"
)

// Test that LoadConfig returns a non-nil config and that ConnectDB honors APPENV=test
func TestLoadConfigAndConnectDB_TestEnv(t *testing.T) {
	// Ensure APPENV=test so ConnectDB uses in-memory sqlite
	t.Setenv("APPENV", "test")

	cfg := LoadConfig()
	if cfg == nil {
		t.Fatalf("expected non-nil config")
	}

	db, err := ConnectDB()
	if err != nil {
		t.Fatalf("ConnectDB failed in test env: %v", err)
	}
	if db == nil {
		t.Fatalf("expected non-nil DB connection")
	}
}

func TestLoadFromEnv_RedisValues(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("REDIS_PASS", "secret")
	t.Setenv("REDIS_DB", "3")

	cfg := loadFromEnv()
	if cfg.RedisAddr != "redis.internal:6380" {
		t.Fatalf("unexpected redis addr: %q", cfg.RedisAddr)
	}
	if cfg.RedisPass != "secret" {
		t.Fatalf("unexpected redis password: %q", cfg.RedisPass)
	}
	if cfg.RedisDB != 3 {
		t.Fatalf("unexpected redis db: %d", cfg.RedisDB)
	}
}

func TestLoadFromEnv_RedisAddrDefault(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")

	cfg := loadFromEnv()
	if cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("expected default redis addr, got %q", cfg.RedisAddr)
	}
}

func TestGetRedisClient_DefaultsNil(t *testing.T) {
	SetRedisClientForTesting(nil)
	if GetRedisClient() != nil {
		t.Fatalf("expected nil redis client before ConnectRedis")
	}
}
