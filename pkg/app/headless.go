package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/decker502/starfall/pkg/game"
	"github.com/decker502/starfall/pkg/input"
)

// Summary 无头运行结束时的状态摘要
type Summary struct {
	Ticks    int
	Wave     int
	Points   int
	Mode     game.Mode
	Entities int
	Failures int // 被中止的 tick 数
}

// String 单行摘要
func (s Summary) String() string {
	return fmt.Sprintf("ticks=%d wave=%d points=%d mode=%s entities=%d failures=%d",
		s.Ticks, s.Wave, s.Points, s.Mode, s.Entities, s.Failures)
}

// RunHeadless 不打开窗口，用脚本输入推进 ticks 个固定步长
// 开局自动开始游戏；玩家死亡后自动重试
func RunHeadless(cfg Config, ticks int) (Summary, error) {
	script := input.NewScriptedProvider(input.Sweep(ticks, 90, 4)...)
	if cfg.Provider == nil {
		cfg.Provider = script
	}
	autoplay := &autoPlayer{}
	if cfg.Commands == nil {
		cfg.Commands = autoplay
	}
	if cfg.Bounds == nil && cfg.Simulation != nil {
		cfg.Bounds = game.NewCameraBounds(cfg.Simulation.Camera)
	}

	a, err := NewApp(cfg)
	if err != nil {
		return Summary{}, err
	}
	autoplay.gs = a.scene.Context().Game

	for i := 0; i < ticks; i++ {
		a.Step()
	}

	ctx := a.scene.Context()
	summary := Summary{
		Ticks:    ticks,
		Wave:     ctx.Game.CurrentWave,
		Points:   ctx.Game.Points,
		Mode:     ctx.Game.Mode,
		Entities: ctx.EM.EntityCount(),
		Failures: a.scene.Failures(),
	}
	a.logger.Info("[App] 无头运行结束",
		zap.Int("ticks", summary.Ticks),
		zap.Int("wave", summary.Wave),
		zap.Int("points", summary.Points),
		zap.Stringer("mode", summary.Mode))
	return summary, nil
}

// autoPlayer 菜单里自动开始，死亡后自动重试
type autoPlayer struct {
	gs *game.GameState
}

func (p *autoPlayer) Commands() input.Commands {
	if p.gs == nil {
		return input.Commands{}
	}
	switch p.gs.Mode {
	case game.ModeMenu:
		return input.Commands{Start: true}
	case game.ModeDead:
		return input.Commands{Retry: true}
	default:
		return input.Commands{}
	}
}
