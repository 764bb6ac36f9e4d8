// Package scenes 把模拟核心接到 ebiten 窗口上
//
// PlayScene 每帧：处理界面指令 → 推进一个模拟 tick → 绘制调试画面。
package scenes

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/decker502/starfall/pkg/entities"
	"github.com/decker502/starfall/pkg/game"
	"github.com/decker502/starfall/pkg/input"
	"github.com/decker502/starfall/pkg/systems"
	"github.com/decker502/starfall/pkg/utils"
)

// PlayScene 唯一的游戏场景：菜单、游戏、暂停、死亡都在这里切换模式
type PlayScene struct {
	ctx      *game.Context
	runner   *systems.Runner
	commands input.CommandSource
	viewport *utils.Viewport

	lastMode game.Mode
	failures int // 被中止的 tick 数
}

// NewPlayScene 创建场景并生成玩家和背景
func NewPlayScene(ctx *game.Context, provider input.Provider, commands input.CommandSource, screenWidth, screenHeight int) (*PlayScene, error) {
	viewport, err := utils.NewViewport(ctx.Field(), screenWidth, screenHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to create viewport: %w", err)
	}
	if _, err := entities.SpawnWorld(ctx); err != nil {
		return nil, err
	}

	return &PlayScene{
		ctx:      ctx,
		runner:   systems.NewDefaultRunner(ctx, provider),
		commands: commands,
		viewport: viewport,
		lastMode: ctx.Game.Mode,
	}, nil
}

// Name 场景名称（SceneManager 日志用）
func (s *PlayScene) Name() string { return "PlayScene" }

// Context 返回模拟上下文
func (s *PlayScene) Context() *game.Context { return s.ctx }

// Failures 返回被中止的 tick 数
func (s *PlayScene) Failures() int { return s.failures }

// Update 处理界面指令并推进一个 tick
func (s *PlayScene) Update(deltaTime float64) {
	if s.commands != nil {
		s.handleCommands(s.commands.Commands())
	}

	if s.runner.Tick(deltaTime) != nil {
		// Runner 已经记录了错误日志，下一帧照常推进
		s.failures++
	}

	if mode := s.ctx.Game.Mode; mode != s.lastMode {
		s.ctx.Logger.Info("[PlayScene] 模式切换",
			zap.Stringer("from", s.lastMode),
			zap.Stringer("to", mode),
			zap.Int("wave", s.ctx.Game.CurrentWave),
			zap.Int("points", s.ctx.Game.Points))
		s.lastMode = mode
	}
}

// handleCommands 在两次 tick 之间执行界面指令
func (s *PlayScene) handleCommands(cmd input.Commands) {
	gs := s.ctx.Game
	switch {
	case cmd.Start && gs.Mode == game.ModeMenu:
		s.resetRound()
		gs.StartGame()
	case cmd.Retry && gs.Mode == game.ModeDead:
		s.resetRound()
		gs.Retry()
	case cmd.Menu && (gs.Mode == game.ModeDead || gs.Mode == game.ModePaused):
		s.resetRound()
		gs.GoMenu()
	case cmd.TogglePause:
		gs.TogglePause()
	}
}

// resetRound 清掉上一局的敌人、子弹和爆炸，恢复玩家
func (s *PlayScene) resetRound() {
	cleared := entities.ClearCombat(s.ctx)
	game.ResetPlayer(s.ctx)
	s.ctx.Logger.Debug("[PlayScene] 重置战场", zap.Int("cleared", cleared))
}
