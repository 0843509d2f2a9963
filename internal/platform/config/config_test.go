package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.LayoutBreakpoint != 768 {
		t.Fatalf("expected breakpoint 768, got %d", cfg.LayoutBreakpoint)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SIMULATED_LATENCY", "50ms")
	t.Setenv("LAYOUT_BREAKPOINT", "640")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")

	cfg := Load()
	if cfg.SimulatedLatency != 50*time.Millisecond {
		t.Fatalf("expected 50ms latency, got %s", cfg.SimulatedLatency)
	}
	if cfg.LayoutBreakpoint != 640 {
		t.Fatalf("expected breakpoint 640, got %d", cfg.LayoutBreakpoint)
	}
	if cfg.MetricsEnabled {
		t.Fatal("expected metrics disabled")
	}
	if cfg.RateLimitPerMinute != 120 {
		t.Fatalf("expected fallback rate limit, got %d", cfg.RateLimitPerMinute)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"log format":   func(c *Config) { c.LogFormat = "xml" },
		"breakpoint":   func(c *Config) { c.LayoutBreakpoint = 0 },
		"ttl":          func(c *Config) { c.SessionTTL = 0 },
		"load timeout": func(c *Config) { c.LoadTimeout = c.SimulatedLatency },
		"body":         func(c *Config) { c.MaxBodyBytes = 10 },
		"rate limit":   func(c *Config) { c.RateLimitPerMinute = 0 },
	}
	for name, mutate := range cases {
		cfg := Load()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
