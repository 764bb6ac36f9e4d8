package game

import (
	"testing"

	"github.com/decker502/starfall/pkg/config"
)

// TestNewContextSeeded 测试相同种子产生相同的随机序列
func TestNewContextSeeded(t *testing.T) {
	cfg := config.Default()
	cfg.Game.Seed = 42
	bounds := FixedBounds{MinX: -3, MaxX: 3, MinY: -5, MaxY: 5}

	a := NewContext(cfg, bounds, nil)
	b := NewContext(cfg, bounds, nil)

	for i := 0; i < 10; i++ {
		if x, y := a.Rand.Float64(), b.Rand.Float64(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}

	if a.Logger == nil {
		t.Error("nil logger should be replaced with a no-op logger")
	}
	if a.Buffer == nil || a.EM == nil || a.Game == nil {
		t.Error("context should own a store, buffer and game state")
	}
	if a.Field() != Bounds(bounds) {
		t.Errorf("Field() = %+v, want %+v", a.Field(), bounds)
	}
}
