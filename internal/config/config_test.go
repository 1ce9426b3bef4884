package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	base, err := Base()
	if err != nil {
		t.Fatalf("Base failed: %v", err)
	}
	if !reflect.DeepEqual(base, DefaultConfig()) {
		t.Errorf("embedded defaults drifted from DefaultConfig:\n got %+v\nwant %+v", base, DefaultConfig())
	}
	if err := base.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestApplyVariant(t *testing.T) {
	tests := []struct {
		id       string
		boundary BoundaryMode
		gravity  bool
		contact  HazardContact
		enemy    bool
	}{
		{"classic", BoundaryEdge, false, HazardContactRelocate, true},
		{"gravity", BoundaryWrap, true, HazardContactNone, true},
		{"wrap", BoundaryWrap, false, HazardContactRelocate, true},
		{"lethal", BoundaryWrap, true, HazardContactLethal, true},
		{"gunner", BoundaryEdge, false, HazardContactRelocate, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := ApplyVariant(&cfg, tt.id); err != nil {
				t.Fatalf("ApplyVariant failed: %v", err)
			}
			if cfg.Variant != tt.id {
				t.Errorf("expected variant %q, got %q", tt.id, cfg.Variant)
			}
			if cfg.Arena.Boundary != tt.boundary {
				t.Errorf("expected boundary %q, got %q", tt.boundary, cfg.Arena.Boundary)
			}
			if cfg.Gravity.Enabled != tt.gravity {
				t.Errorf("expected gravity %v, got %v", tt.gravity, cfg.Gravity.Enabled)
			}
			if got := cfg.ResolvedHazardContact(); got != tt.contact {
				t.Errorf("expected hazard contact %q, got %q", tt.contact, got)
			}
			if cfg.Projectiles.EnemyFires != tt.enemy {
				t.Errorf("expected enemy_fires %v, got %v", tt.enemy, cfg.Projectiles.EnemyFires)
			}
		})
	}

	cfg := DefaultConfig()
	if err := ApplyVariant(&cfg, "nope"); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestResolvedHazardContactDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Hazard.Enabled = false
	cfg.Hazard.Contact = HazardContactLethal
	if got := cfg.ResolvedHazardContact(); got != HazardContactNone {
		t.Errorf("disabled hazard should resolve to none, got %q", got)
	}
}

func TestResetDelayTicks(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ResetDelayTicks(); got != 180 {
		t.Errorf("expected 180 ticks, got %d", got)
	}
	cfg.Round.ResetDelay = 0
	if got := cfg.ResetDelayTicks(); got != 1 {
		t.Errorf("expected at least one tick, got %d", got)
	}
}

func TestLoadYAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("arena:\n  width: 800\nround:\n  max_rounds: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, "gravity")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Arena.Width != 800 {
		t.Errorf("expected width 800, got %g", cfg.Arena.Width)
	}
	if cfg.Arena.Height != 768 {
		t.Errorf("unset height should keep default, got %g", cfg.Arena.Height)
	}
	if cfg.Round.MaxRounds != 5 {
		t.Errorf("expected max_rounds 5, got %d", cfg.Round.MaxRounds)
	}
	if !cfg.Gravity.Enabled || cfg.Arena.Boundary != BoundaryWrap {
		t.Error("variant flags should survive an overlay that does not set them")
	}
}

func TestLoadTOMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte("[physics]\ntick_rate = 30\n\n[ai]\nenabled = false\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, "classic")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Physics.TickRate != 30 {
		t.Errorf("expected tick_rate 30, got %d", cfg.Physics.TickRate)
	}
	if cfg.AI.Enabled {
		t.Error("expected AI disabled")
	}
	if cfg.Ships.Radius != 14 {
		t.Errorf("unset ship radius should keep default, got %g", cfg.Ships.Radius)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("ships:\n  mass: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path, "classic")
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), ""); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	_ = ApplyVariant(&cfg, "lethal")

	for _, format := range []Format{FormatYAML, FormatTOML} {
		data, err := Encode(cfg, format)
		if err != nil {
			t.Fatalf("%s encode failed: %v", format, err)
		}
		var back SpacewarConfig
		if err := Decode(data, format, &back); err != nil {
			t.Fatalf("%s decode failed: %v", format, err)
		}
		if !reflect.DeepEqual(back, cfg) {
			t.Errorf("%s round trip mismatch", format)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("expected initial level 0.7, got %g", cfg.Difficulty.InitialLevel)
	}
	if cfg.AI.MaxTurn <= DefaultConfig().AI.MaxTurn {
		t.Error("hard preset should widen AI turns")
	}

	cfg = DefaultConfig()
	ApplyPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("empty preset should not change the config")
	}
}
