package config_test

import (
	"testing"
	"time"

	"github.com/goprotex/Disaster-Response/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
	if cfg.HTTP.Port != 8080 {
		t.Errorf("HTTP.Port = %d, want 8080", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeout != 30*time.Second {
		t.Errorf("HTTP.ReadTimeout = %v, want 30s", cfg.HTTP.ReadTimeout)
	}
	if cfg.Storage.Bucket != "photos" {
		t.Errorf("Storage.Bucket = %q, want photos", cfg.Storage.Bucket)
	}
	if cfg.Security.JWTTTL != 24*time.Hour {
		t.Errorf("Security.JWTTTL = %v, want 24h", cfg.Security.JWTTTL)
	}
	if cfg.Intake.MaxPhotoSizeMB != 5.0 {
		t.Errorf("Intake.MaxPhotoSizeMB = %v, want 5.0", cfg.Intake.MaxPhotoSizeMB)
	}
	if cfg.Intake.MaxEdgePx != 1920 {
		t.Errorf("Intake.MaxEdgePx = %d, want 1920", cfg.Intake.MaxEdgePx)
	}
	if cfg.Map.SnapshotTTL != 30*time.Second {
		t.Errorf("Map.SnapshotTTL = %v, want 30s", cfg.Map.SnapshotTTL)
	}
	if cfg.Map.SnapshotLimit != 500 {
		t.Errorf("Map.SnapshotLimit = %d, want 500", cfg.Map.SnapshotLimit)
	}
}
