package game

import (
	"testing"

	"github.com/decker502/starfall/pkg/components"
	"github.com/decker502/starfall/pkg/config"
	"github.com/decker502/starfall/pkg/ecs"
)

// TestNewGameStateFromConfig 测试按配置构造游戏状态
func TestNewGameStateFromConfig(t *testing.T) {
	cfg := config.Default()
	gs := NewGameState(cfg)

	if gs.Mode != ModeMenu {
		t.Errorf("Expected initial mode menu, got %v", gs.Mode)
	}
	if gs.DefaultEnemies != 5 || gs.MaxEnemies != 10 {
		t.Errorf("Expected 5/10 enemies, got %d/%d", gs.DefaultEnemies, gs.MaxEnemies)
	}
	if !gs.Enemy.Shooting.Bullet.IsEnemyBullet {
		t.Error("Enemy bullet prototype should be marked as enemy bullet")
	}
	if gs.Enemy.ShootingPeriod != 2 {
		t.Errorf("Expected shooting period 2, got %v", gs.Enemy.ShootingPeriod)
	}
}

// TestSetPaused 测试暂停切换规则
// 菜单和死亡模式下暂停键无效
func TestSetPaused(t *testing.T) {
	tests := []struct {
		name   string
		start  Mode
		paused bool
		want   Mode
	}{
		{"play to paused", ModePlay, true, ModePaused},
		{"paused to play", ModePaused, false, ModePlay},
		{"play stays play", ModePlay, false, ModePlay},
		{"menu ignored", ModeMenu, true, ModeMenu},
		{"dead ignored", ModeDead, true, ModeDead},
		{"dead unpause ignored", ModeDead, false, ModeDead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState(config.Default())
			gs.Mode = tt.start
			gs.SetPaused(tt.paused)
			if gs.Mode != tt.want {
				t.Errorf("Expected mode %v, got %v", tt.want, gs.Mode)
			}
		})
	}
}

// TestTogglePause 测试暂停键来回切换
func TestTogglePause(t *testing.T) {
	gs := NewGameState(config.Default())
	gs.StartGame()

	gs.TogglePause()
	if !gs.IsPaused() {
		t.Fatal("Expected paused after first toggle")
	}
	gs.TogglePause()
	if !gs.IsPlaying() {
		t.Error("Expected playing after second toggle")
	}
}

// TestModeTransitionsResetCounters 测试开始/重试/返回菜单都会清零计数
func TestModeTransitionsResetCounters(t *testing.T) {
	transitions := []struct {
		name   string
		action func(*GameState)
		want   Mode
	}{
		{"start", (*GameState).StartGame, ModePlay},
		{"retry", (*GameState).Retry, ModePlay},
		{"menu", (*GameState).GoMenu, ModeMenu},
	}

	for _, tt := range transitions {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState(config.Default())
			gs.CurrentWave = 4
			gs.SpawnedEnemies = 9
			gs.Points = 12
			gs.Mode = ModeDead

			tt.action(gs)

			if gs.Mode != tt.want {
				t.Errorf("Expected mode %v, got %v", tt.want, gs.Mode)
			}
			if gs.CurrentWave != 0 || gs.SpawnedEnemies != 0 || gs.Points != 0 {
				t.Errorf("Expected counters reset, got wave=%d spawned=%d points=%d",
					gs.CurrentWave, gs.SpawnedEnemies, gs.Points)
			}
		})
	}
}

// TestDieOnlyFromPlay 测试死亡只在游戏进行中生效
func TestDieOnlyFromPlay(t *testing.T) {
	gs := NewGameState(config.Default())
	if gs.Die() {
		t.Error("Die should be ignored in menu")
	}
	gs.StartGame()
	if !gs.Die() || gs.Mode != ModeDead {
		t.Errorf("Expected dead mode, got %v", gs.Mode)
	}
	if gs.Die() {
		t.Error("Die should report false when already dead")
	}
}

// TestResetPlayer 测试 UI 重试时恢复玩家生命值
func TestResetPlayer(t *testing.T) {
	ctx := NewContext(config.Default(), FixedBounds{MinX: -3, MaxX: 3, MinY: -5, MaxY: 5}, nil)
	player := ctx.EM.CreateEntity()
	ctx.EM.AddComponent(player, &components.PlayerComponent{})
	ctx.EM.AddComponent(player, &components.HealthComponent{Health: 0, MaxHealth: 3})

	// 非玩家实体不受影响
	enemy := ctx.EM.CreateEntity()
	ctx.EM.AddComponent(enemy, &components.HealthComponent{Health: 0, MaxHealth: 1})

	ctx.Game.CurrentWave = 3
	ctx.Game.SpawnedEnemies = 7

	ResetPlayer(ctx)

	health, _ := ecs.GetComponent[*components.HealthComponent](ctx.EM, player)
	if health.Health != 3 {
		t.Errorf("Expected player health 3, got %d", health.Health)
	}
	enemyHealth, _ := ecs.GetComponent[*components.HealthComponent](ctx.EM, enemy)
	if enemyHealth.Health != 0 {
		t.Errorf("Enemy health should be untouched, got %d", enemyHealth.Health)
	}
	if ctx.Game.CurrentWave != 0 || ctx.Game.SpawnedEnemies != 0 {
		t.Errorf("Expected spawn counters reset, got wave=%d spawned=%d", ctx.Game.CurrentWave, ctx.Game.SpawnedEnemies)
	}
}

func TestModeString(t *testing.T) {
	names := map[Mode]string{
		ModeMenu:   "menu",
		ModePlay:   "play",
		ModeDead:   "dead",
		ModePaused: "paused",
		Mode(42):   "unknown",
	}
	for mode, want := range names {
		if got := mode.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(mode), got, want)
		}
	}
}
