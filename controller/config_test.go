package controller

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AnimationWindow != 600*time.Millisecond {
		t.Fatalf("unexpected default window %v", cfg.AnimationWindow)
	}
	if cfg.PageSize != 50 {
		t.Fatalf("unexpected default page size %d", cfg.PageSize)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LIFECYCLE_ANIMATION_WINDOW", "250ms")
	t.Setenv("LIFECYCLE_PAGE_SIZE", "100")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AnimationWindow != 250*time.Millisecond {
		t.Fatalf("env override ignored: %v", cfg.AnimationWindow)
	}
	if cfg.PageSize != 100 {
		t.Fatalf("env override ignored: %d", cfg.PageSize)
	}
}
