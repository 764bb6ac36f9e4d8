package scenes

import (
	"testing"

	"go.uber.org/zap"

	"github.com/decker502/starfall/pkg/components"
	"github.com/decker502/starfall/pkg/config"
	"github.com/decker502/starfall/pkg/ecs"
	"github.com/decker502/starfall/pkg/game"
	"github.com/decker502/starfall/pkg/input"
)

const testDelta = 1.0 / 64

var testField = game.FixedBounds{MinX: -3, MaxX: 3, MinY: -5, MaxY: 5}

func newTestScene(t *testing.T) (*PlayScene, *input.ScriptedProvider) {
	t.Helper()
	cfg := config.Default()
	cfg.Game.Seed = 5
	ctx := game.NewContext(cfg, testField, zap.NewNop())
	provider := input.NewScriptedProvider()
	scene, err := NewPlayScene(ctx, provider, provider, 480, 800)
	if err != nil {
		t.Fatalf("NewPlayScene() error = %v", err)
	}
	return scene, provider
}

func countEnemies(ctx *game.Context) int {
	return len(ecs.GetEntitiesWith1[*components.EnemyComponent](ctx.EM))
}

func playerHealth(t *testing.T, ctx *game.Context) *components.HealthComponent {
	t.Helper()
	ids := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.HealthComponent](ctx.EM)
	if len(ids) != 1 {
		t.Fatalf("Expected exactly one player, got %d", len(ids))
	}
	health, _ := ecs.GetComponent[*components.HealthComponent](ctx.EM, ids[0])
	return health
}

func TestMenuHoldsSimulation(t *testing.T) {
	scene, _ := newTestScene(t)
	for i := 0; i < 10; i++ {
		scene.Update(testDelta)
	}

	if scene.Context().Game.Mode != game.ModeMenu {
		t.Fatalf("Expected menu mode, got %v", scene.Context().Game.Mode)
	}
	if n := countEnemies(scene.Context()); n != 0 {
		t.Errorf("no enemies should spawn in the menu, got %d", n)
	}
}

func TestStartSpawnsFirstWave(t *testing.T) {
	scene, provider := newTestScene(t)
	provider.PushCommands(input.Commands{Start: true})

	scene.Update(testDelta)

	ctx := scene.Context()
	if ctx.Game.Mode != game.ModePlay {
		t.Fatalf("Expected play mode, got %v", ctx.Game.Mode)
	}
	if n := countEnemies(ctx); n != 5 {
		t.Errorf("Expected first wave of 5, got %d", n)
	}
}

func TestPauseFreezesEnemies(t *testing.T) {
	scene, provider := newTestScene(t)
	provider.PushCommands(input.Commands{Start: true}, input.Commands{TogglePause: true})
	scene.Update(testDelta)
	scene.Update(testDelta)

	ctx := scene.Context()
	if !ctx.Game.IsPaused() {
		t.Fatalf("Expected paused, got %v", ctx.Game.Mode)
	}

	before := positions(ctx)
	for i := 0; i < 5; i++ {
		scene.Update(testDelta)
	}
	after := positions(ctx)
	for id, pos := range before {
		if after[id] != pos {
			t.Errorf("enemy %d moved while paused: %v -> %v", id, pos, after[id])
		}
	}
}

func positions(ctx *game.Context) map[ecs.EntityID]components.PositionComponent {
	out := make(map[ecs.EntityID]components.PositionComponent)
	view := ecs.Query2[*components.EnemyComponent, *components.PositionComponent](ctx.EM)
	for i, id := range view.Entities {
		out[id] = *view.B[i]
	}
	return out
}

func TestDeathAndRetry(t *testing.T) {
	scene, provider := newTestScene(t)
	provider.PushCommands(input.Commands{Start: true})
	scene.Update(testDelta)

	ctx := scene.Context()
	ctx.Game.AddPoints(7)
	playerHealth(t, ctx).Health = 0
	scene.Update(testDelta)
	if ctx.Game.Mode != game.ModeDead {
		t.Fatalf("Expected dead mode, got %v", ctx.Game.Mode)
	}

	provider.PushCommands(input.Commands{Retry: true})
	scene.Update(testDelta)

	if ctx.Game.Mode != game.ModePlay {
		t.Fatalf("Expected play mode after retry, got %v", ctx.Game.Mode)
	}
	if h := playerHealth(t, ctx); h.Health != h.MaxHealth {
		t.Errorf("player health should be restored, got %d/%d", h.Health, h.MaxHealth)
	}
	if ctx.Game.Points != 0 {
		t.Errorf("points should reset, got %d", ctx.Game.Points)
	}
	if n := countEnemies(ctx); n != 5 {
		t.Errorf("Expected a fresh first wave of 5, got %d", n)
	}
	if ctx.Game.CurrentWave != 1 {
		t.Errorf("Expected wave 1 after retry, got %d", ctx.Game.CurrentWave)
	}
}

func TestMenuFromPauseClearsField(t *testing.T) {
	scene, provider := newTestScene(t)
	provider.PushCommands(
		input.Commands{Start: true},
		input.Commands{TogglePause: true},
		input.Commands{Menu: true},
	)
	for i := 0; i < 3; i++ {
		scene.Update(testDelta)
	}

	ctx := scene.Context()
	if ctx.Game.Mode != game.ModeMenu {
		t.Fatalf("Expected menu mode, got %v", ctx.Game.Mode)
	}
	if n := countEnemies(ctx); n != 0 {
		t.Errorf("Expected field cleared, got %d enemies", n)
	}
}

// TestRetryIgnoredWhilePlaying 重试只在死亡后有效
func TestRetryIgnoredWhilePlaying(t *testing.T) {
	scene, provider := newTestScene(t)
	provider.PushCommands(input.Commands{Start: true}, input.Commands{Retry: true})
	scene.Update(testDelta)
	wave := scene.Context().Game.CurrentWave
	scene.Update(testDelta)

	if scene.Context().Game.CurrentWave != wave {
		t.Errorf("retry during play should be ignored, wave %d -> %d", wave, scene.Context().Game.CurrentWave)
	}
}

func TestDrawListLayers(t *testing.T) {
	scene, provider := newTestScene(t)
	provider.PushCommands(input.Commands{Start: true})
	scene.Update(testDelta)

	rects := buildDrawList(scene.Context().EM, scene.viewport)
	if len(rects) == 0 {
		t.Fatal("Expected rectangles to draw")
	}

	// 玩家最后绘制（最上层），满血为绿色
	last := rects[len(rects)-1]
	if last.Color != playerLevelColors[3] {
		t.Errorf("Expected the player drawn last in full-health colour, got %+v", last.Color)
	}

	enemies := 0
	for _, r := range rects {
		if r.Color == enemyColor {
			enemies++
		}
	}
	if enemies != 5 {
		t.Errorf("Expected 5 enemy rectangles, got %d", enemies)
	}
}

func TestStatusText(t *testing.T) {
	scene, _ := newTestScene(t)
	gs := scene.Context().Game

	tests := []struct {
		name string
		set  func()
		want string
	}{
		{"menu", func() {}, "STARFALL\nEnter: start"},
		{"play", func() { gs.StartGame(); gs.AddPoints(2) }, "wave 0  points 2  hp 3"},
		{"paused", func() { gs.SetPaused(true) }, "PAUSED  wave 0  points 2\nEsc: resume  M: menu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.set()
			if got := scene.statusText(); got != tt.want {
				t.Errorf("statusText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewPlaySceneRejectsEmptyScreen(t *testing.T) {
	ctx := game.NewContext(config.Default(), testField, zap.NewNop())
	if _, err := NewPlayScene(ctx, input.NewScriptedProvider(), nil, 0, 0); err == nil {
		t.Error("Expected error for a zero-size screen")
	}
}
