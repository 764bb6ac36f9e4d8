package systems

import (
	"sort"
	"testing"

	"github.com/decker502/starfall/pkg/components"
	"github.com/decker502/starfall/pkg/ecs"
	"github.com/decker502/starfall/pkg/entities"
	"github.com/decker502/starfall/pkg/game"
)

func newBackgroundContext(t *testing.T) (*game.Context, *components.BackgroundComponent) {
	t.Helper()
	ctx := newTestContext(t)
	id, err := entities.NewBackgroundSpawner(ctx.Buffer, ctx.Config.Background)
	if err != nil {
		t.Fatalf("NewBackgroundSpawner() error = %v", err)
	}
	ctx.Buffer.Playback()
	spawner, _ := ecs.GetComponent[*components.BackgroundComponent](ctx.EM, id)
	return ctx, spawner
}

func tileYs(ctx *game.Context) []float64 {
	view := ecs.Query2[*components.BackgroundTileComponent, *components.PositionComponent](ctx.EM)
	ys := make([]float64, 0, view.Len())
	for i := range view.Entities {
		ys = append(ys, view.B[i].Y)
	}
	sort.Float64s(ys)
	return ys
}

// TestBackgroundZeroDeltaIdempotent 零时长的更新不创建也不删除背景块
func TestBackgroundZeroDeltaIdempotent(t *testing.T) {
	ctx, _ := newBackgroundContext(t)
	system := NewBackgroundSystem()

	runPass(t, ctx, system, 0)
	if n := countWith[*components.BackgroundTileComponent](ctx); n != 0 {
		t.Fatalf("zero delta should not create tiles, got %d", n)
	}

	runPass(t, ctx, system, 0.5)
	before := tileYs(ctx)
	count := ctx.EM.EntityCount()
	for i := 0; i < 3; i++ {
		runPass(t, ctx, system, 0)
	}
	if ctx.EM.EntityCount() != count {
		t.Errorf("zero delta changed the entity count: %d -> %d", count, ctx.EM.EntityCount())
	}
	if after := tileYs(ctx); len(after) != len(before) || after[0] != before[0] {
		t.Errorf("zero delta moved tiles: %v -> %v", before, after)
	}
}

func TestBackgroundFirstTileAtStart(t *testing.T) {
	ctx, spawner := newBackgroundContext(t)
	runPass(t, ctx, NewBackgroundSystem(), 0.5)

	ys := tileYs(ctx)
	if len(ys) != 1 || ys[0] != spawner.StartY {
		t.Errorf("Expected one tile at %v, got %v", spawner.StartY, ys)
	}
}

// TestBackgroundRecycling 越过补充线时在顶部补块，越过底线时删除
func TestBackgroundRecycling(t *testing.T) {
	ctx, spawner := newBackgroundContext(t)
	system := NewBackgroundSystem()
	runPass(t, ctx, system, 0.5) // 首块在 StartY=0

	runPass(t, ctx, system, 0.5)
	ys := tileYs(ctx)
	if len(ys) != 2 || ys[0] != -0.5 || ys[1] != spawner.TopCorner {
		t.Fatalf("Expected tiles at [-0.5 %v], got %v", spawner.TopCorner, ys)
	}

	// 再走 14.5 个单位：首块到达 -15 被删除
	for i := 0; i < 29; i++ {
		runPass(t, ctx, system, 0.5)
	}
	ys = tileYs(ctx)
	for _, y := range ys {
		if y <= spawner.BottomCorner {
			t.Errorf("tile at %v should have been destroyed", y)
		}
	}
	if len(ys) > spawner.MaxBackgroundsCount {
		t.Errorf("tile count %d exceeds max %d", len(ys), spawner.MaxBackgroundsCount)
	}
}

// TestBackgroundRefillsBelowSpawnLine 首块已在补充线以下时，下一帧就在顶部补块
func TestBackgroundRefillsBelowSpawnLine(t *testing.T) {
	ctx, spawner := newBackgroundContext(t)
	spawner.StartY = -5
	system := NewBackgroundSystem()

	for i := 0; i < 9; i++ {
		runPass(t, ctx, system, 0.5)
	}

	ys := tileYs(ctx)
	if len(ys) != 2 {
		t.Fatalf("Expected 2 tiles, got %v", ys)
	}
	if ys[0] != -9 {
		t.Errorf("Expected first tile at -9, got %v", ys[0])
	}
	// 补块在第 2 帧生成于 TopCorner，之后又走了 7 帧
	if want := spawner.TopCorner - 3.5; ys[1] != want {
		t.Errorf("Expected refilled tile at %v, got %v", want, ys[1])
	}
}

// TestBackgroundRefillsFreedSlot 越过补充线时已满，腾出名额后补块
func TestBackgroundRefillsFreedSlot(t *testing.T) {
	ctx, spawner := newBackgroundContext(t)
	spawner.MaxBackgroundsCount = 1
	spawner.StartY = -14
	system := NewBackgroundSystem()

	runPass(t, ctx, system, 0.5) // 首块 -14
	runPass(t, ctx, system, 0.5) // -14.5，已满不补
	if ys := tileYs(ctx); len(ys) != 1 || ys[0] != -14.5 {
		t.Fatalf("Expected one tile at -14.5, got %v", ys)
	}

	runPass(t, ctx, system, 0.5) // 到达 -15 删除，名额空出
	if ys := tileYs(ctx); len(ys) != 1 || ys[0] != spawner.TopCorner {
		t.Errorf("Expected one refilled tile at %v, got %v", spawner.TopCorner, ys)
	}
}

func TestBackgroundRespectsMaxCount(t *testing.T) {
	ctx, spawner := newBackgroundContext(t)
	spawner.MaxBackgroundsCount = 1
	system := NewBackgroundSystem()

	runPass(t, ctx, system, 0.5)
	runPass(t, ctx, system, 0.5)

	if n := countWith[*components.BackgroundTileComponent](ctx); n != 1 {
		t.Errorf("Expected 1 tile with max=1, got %d", n)
	}
}

func TestBackgroundWithoutSpawnerIsNoop(t *testing.T) {
	ctx := newTestContext(t)
	runPass(t, ctx, NewBackgroundSystem(), 1)
	if ctx.EM.EntityCount() != 0 {
		t.Error("no spawner means no tiles")
	}
}

func TestBackgroundGate(t *testing.T) {
	system := NewBackgroundSystem()
	ctx := newTestContext(t)

	gs := ctx.Game
	gs.GoMenu()
	if !system.ShouldRun(gs) {
		t.Error("background should scroll in the menu")
	}
	gs.StartGame()
	gs.SetPaused(true)
	if system.ShouldRun(gs) {
		t.Error("background should stop while paused")
	}
}
