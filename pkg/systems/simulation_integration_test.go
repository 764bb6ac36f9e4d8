package systems

import (
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/decker502/starfall/pkg/components"
	"github.com/decker502/starfall/pkg/config"
	"github.com/decker502/starfall/pkg/ecs"
	"github.com/decker502/starfall/pkg/entities"
	"github.com/decker502/starfall/pkg/game"
	"github.com/decker502/starfall/pkg/input"
)

type simSnapshot struct {
	Wave     int
	Points   int
	Mode     game.Mode
	Entities int
	PlayerX  float64
}

// runSimulation 从开局跑 ticks 帧，返回最终状态摘要
func runSimulation(t *testing.T, seed int64, breach config.BreachPenalty, ticks int) simSnapshot {
	t.Helper()
	cfg := config.Default()
	cfg.Game.Seed = seed
	cfg.Rules.BreachPenalty = breach
	ctx := game.NewContext(cfg, testField, zap.NewNop())

	player, err := entities.SpawnWorld(ctx)
	if err != nil {
		t.Fatalf("SpawnWorld() error = %v", err)
	}
	ctx.Game.StartGame()

	runner := NewDefaultRunner(ctx, input.NewScriptedProvider(input.Sweep(ticks, 90, 4)...))
	dt := 1.0 / float64(cfg.Game.TicksPerSecond)
	for i := 0; i < ticks; i++ {
		if err := runner.Tick(dt); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if ctx.Buffer.Len() != 0 {
			t.Fatalf("tick %d left %d unplayed records", i, ctx.Buffer.Len())
		}
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](ctx.EM, player)
	return simSnapshot{
		Wave:     ctx.Game.CurrentWave,
		Points:   ctx.Game.Points,
		Mode:     ctx.Game.Mode,
		Entities: ctx.EM.EntityCount(),
		PlayerX:  pos.X,
	}
}

func TestSimulationRuns(t *testing.T) {
	got := runSimulation(t, 7, config.BreachNone, 600)

	if got.Wave < 1 {
		t.Errorf("Expected at least one wave, got %d", got.Wave)
	}
	if got.Mode == game.ModeMenu {
		t.Error("simulation should not fall back to the menu")
	}
	if got.PlayerX < testField.MinX || got.PlayerX > testField.MaxX {
		t.Errorf("player x=%v left the field", got.PlayerX)
	}
}

// TestSimulationDeterministic 同一种子、同一输入脚本，结果完全相同
func TestSimulationDeterministic(t *testing.T) {
	first := runSimulation(t, 2024, config.BreachKill, 600)
	second := runSimulation(t, 2024, config.BreachKill, 600)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed diverged:\nfirst  %+v\nsecond %+v", first, second)
	}
}

// TestSimulationInvariants 每个 tick 后：没有生命值 <=0 的敌人，爆炸计时未超时
func TestSimulationInvariants(t *testing.T) {
	cfg := config.Default()
	cfg.Game.Seed = 11
	cfg.Rules.BreachPenalty = config.BreachNone
	ctx := game.NewContext(cfg, testField, zap.NewNop())
	if _, err := entities.SpawnWorld(ctx); err != nil {
		t.Fatalf("SpawnWorld() error = %v", err)
	}
	ctx.Game.StartGame()
	runner := NewDefaultRunner(ctx, input.NewScriptedProvider(input.Sweep(400, 90, 4)...))

	for i := 0; i < 400; i++ {
		if err := runner.Tick(1.0 / 60); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}

		enemies := ecs.Query2[*components.EnemyComponent, *components.HealthComponent](ctx.EM)
		for j, id := range enemies.Entities {
			if enemies.B[j].Health <= 0 {
				t.Fatalf("tick %d: enemy %d alive with health %d", i, id, enemies.B[j].Health)
			}
		}
		explosions := ecs.Query1[*components.ExplosionComponent](ctx.EM)
		for j, id := range explosions.Entities {
			if e := explosions.A[j]; e.DestroyTimeDynamic >= e.DestroyTime {
				t.Fatalf("tick %d: expired explosion %d still alive", i, id)
			}
		}
		if n := countWith[*components.BackgroundTileComponent](ctx); n > cfg.Background.MaxTiles {
			t.Fatalf("tick %d: %d background tiles exceed max %d", i, n, cfg.Background.MaxTiles)
		}
	}
}
