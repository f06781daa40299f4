package engine

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Rows != 48 || cfg.Cols != 64 {
		t.Fatalf("default grid = %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.FreezeTicks != 20 {
		t.Fatalf("default freeze = %d ticks", cfg.FreezeTicks)
	}
	if cfg.Speed != 1.0 || cfg.MaxSwipes != 1 {
		t.Fatalf("default tuning = speed %v, swipes %d", cfg.Speed, cfg.MaxSwipes)
	}
}

func TestConfigFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"rows":         "10",
		"cols":         "20",
		"seed":         "42",
		"freeze_ticks": "5",
		"speed":        "0.5",
		"max_swipes":   "2",
	})
	if cfg.Rows != 10 || cfg.Cols != 20 || cfg.Seed != 42 {
		t.Fatalf("FromMap = %+v", cfg)
	}
	if cfg.FreezeTicks != 5 || cfg.Speed != 0.5 || cfg.MaxSwipes != 2 {
		t.Fatalf("FromMap tuning = %+v", cfg)
	}

	cfg = FromMap(map[string]string{"rows": "junk", "nonsense": "1"})
	if cfg != DefaultConfig() {
		t.Fatalf("bad values must keep defaults, got %+v", cfg)
	}
}

func TestConfigNormalized(t *testing.T) {
	cfg := Config{Rows: 4, Cols: 4, FreezeTicks: -3, Speed: -1, MaxSwipes: 0}.normalized()
	if cfg.FreezeTicks != 0 || cfg.Speed != 1 || cfg.MaxSwipes != 1 {
		t.Fatalf("normalized = %+v", cfg)
	}
}

func TestConfigOptionsMap(t *testing.T) {
	m := Config{Speed: 0.5, MaxSwipes: 3}.optionsMap()
	if m["speed"] != "0.5" || m["max_swipes"] != "3" {
		t.Fatalf("optionsMap = %v", m)
	}
}
