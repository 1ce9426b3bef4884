package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-spacewar/internal/config"
	"github.com/vovakirdan/tui-spacewar/internal/games/spacewar/core"
	"github.com/vovakirdan/tui-spacewar/internal/games/spacewar/detect"
)

// seqSource replays a fixed sequence of values.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	if len(s.vals) == 0 {
		return 0.5
	}
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// scriptedDetector adds one-off contacts on top of circle detection.
type scriptedDetector struct {
	extra []core.Contact
}

func (d *scriptedDetector) Detect(s *core.Store) []core.Contact {
	out := append(detect.Circles{}.Detect(s), d.extra...)
	d.extra = nil
	return out
}

func hazardID(t *testing.T, w *core.World) core.ID {
	t.Helper()
	id := core.NoID
	w.Store().Each(func(e *core.Entity) {
		if e.Kind() == core.KindHazard {
			id = e.ID
		}
	})
	if id.IsZero() {
		t.Fatal("no hazard in arena")
	}
	return id
}

func testConfig(t *testing.T, variant string) config.SpacewarConfig {
	t.Helper()
	cfg := config.DefaultConfig()
	if err := config.ApplyVariant(&cfg, variant); err != nil {
		t.Fatalf("ApplyVariant(%q): %v", variant, err)
	}
	cfg.AI.Enabled = false
	return cfg
}

func newWorld(cfg config.SpacewarConfig, src core.Source, opts ...core.Option) *core.World {
	if src == nil {
		src = &seqSource{}
	}
	opts = append([]core.Option{core.WithDetector(detect.Circles{})}, opts...)
	return core.New(cfg, src, opts...)
}

func mustShip(t *testing.T, w *core.World, role core.Role) *core.Entity {
	t.Helper()
	ship, ok := w.Ship(role)
	if !ok {
		t.Fatalf("no %s ship", role)
	}
	return ship
}
