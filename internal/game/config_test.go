package game

import (
	"errors"
	"testing"
	"time"

	"github.com/samdwyer/gridsnake/internal/entity"
	"github.com/samdwyer/gridsnake/internal/gamedata"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := DefaultConfig()
	if err != nil {
		t.Fatalf("DefaultConfig() error = %v", err)
	}

	if cfg.Width != 25 || cfg.Height != 25 {
		t.Errorf("board = %dx%d, want 25x25", cfg.Width, cfg.Height)
	}
	if cfg.StartX != 10 || cfg.StartY != 10 || cfg.StartDirection != entity.Up {
		t.Errorf("start = (%d, %d) %v, want (10, 10) up", cfg.StartX, cfg.StartY, cfg.StartDirection)
	}
	if cfg.TickInterval != 300*time.Millisecond {
		t.Errorf("TickInterval = %v, want 300ms", cfg.TickInterval)
	}
	if cfg.FoodMinDistSq != 10 {
		t.Errorf("FoodMinDistSq = %d, want 10", cfg.FoodMinDistSq)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestFromSettingsRejectsBadDirection(t *testing.T) {
	s := gamedata.Settings{Width: 10, Height: 10, Start: gamedata.StartDef{Direction: "diagonal"}}

	_, err := FromSettings(s)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("FromSettings() error = %v, want ErrInvalidConfig", err)
	}
}

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	base := testConfig()

	cfg, err := base.ApplyEnv(mapLookup(map[string]string{
		EnvSeed:   "42",
		EnvWidth:  "30",
		EnvHeight: "",
		EnvTickMs: "150",
	}))
	if err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.Width != 30 {
		t.Errorf("Width = %d, want 30", cfg.Width)
	}
	if cfg.Height != base.Height {
		t.Errorf("Height = %d, want unchanged %d", cfg.Height, base.Height)
	}
	if cfg.TickInterval != 150*time.Millisecond {
		t.Errorf("TickInterval = %v, want 150ms", cfg.TickInterval)
	}
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	for _, key := range []string{EnvSeed, EnvWidth, EnvHeight, EnvTickMs} {
		_, err := testConfig().ApplyEnv(mapLookup(map[string]string{key: "abc"}))
		if err == nil {
			t.Errorf("ApplyEnv(%s=abc) should fail", key)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }, false},
		{"zero frame", func(c *Config) { c.FrameInterval = 0 }, false},
		{"bad direction", func(c *Config) { c.StartDirection = entity.Direction(5) }, false},
		{"head off board", func(c *Config) { c.StartX = 25 }, false},
		{"tail off board", func(c *Config) { c.StartY = 23 }, false},
		{"tail on last row", func(c *Config) { c.StartY = 22 }, true},
		{"corner facing left", func(c *Config) { c.StartX, c.StartY, c.StartDirection = 0, 0, entity.Left }, true},
	}

	for _, tt := range tests {
		cfg := testConfig()
		tt.mutate(&cfg)
		err := cfg.Validate()
		if tt.ok && err != nil {
			t.Errorf("%s: Validate() error = %v, want nil", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: Validate() error = %v, want ErrInvalidConfig", tt.name, err)
		}
	}
}
