package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sample = `
environment: test
server:
  port: 8080
  read_timeout: 10s
  write_timeout: 10s
  shutdown_timeout: 5s
logging:
  level: debug
analysis:
  cache_ttl:
    projection: 30s
  rate_limit:
    capacity: 10
    refill_per_sec: 5
`

func writeSample(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	c, err := Load(writeSample(t, sample))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Environment != "test" || c.Server.Port != 8080 {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.Analysis.CacheTTL.Projection != 30*time.Second {
		t.Fatalf("unexpected ttl %v", c.Analysis.CacheTTL.Projection)
	}
	// defaults filled by Validate
	if c.Logging.Format != "console" || c.Logging.Output != "stdout" {
		t.Fatalf("logging defaults not applied: %+v", c.Logging)
	}
}

func TestLoadRejectsMissingEnvironment(t *testing.T) {
	if _, err := Load(writeSample(t, "server:\n  port: 8080\n")); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	c, err := LoadWithEnv(writeSample(t, sample))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Server.Port != 9090 {
		t.Fatalf("PORT override not applied: %d", c.Server.Port)
	}
	if !c.Analysis.Cache.Redis.Enabled || c.Analysis.Cache.Redis.Addr != "localhost:6379" {
		t.Fatalf("REDIS_ADDR override not applied: %+v", c.Analysis.Cache.Redis)
	}
}
