package systems

import (
	"github.com/decker502/starfall/pkg/components"
	"github.com/decker502/starfall/pkg/ecs"
	"github.com/decker502/starfall/pkg/game"
	"github.com/decker502/starfall/pkg/input"
)

// PlayerInputSystem 把输入快照整体写入所有 InputComponent
type PlayerInputSystem struct {
	source input.Provider
}

// NewPlayerInputSystem 创建输入系统
func NewPlayerInputSystem(source input.Provider) *PlayerInputSystem {
	return &PlayerInputSystem{source: source}
}

func (s *PlayerInputSystem) Name() string { return "PlayerInputSystem" }

func (s *PlayerInputSystem) Phase() Phase { return PhaseInput }

// Update 轮询一次输入并覆盖写入
// 每个 tick 只轮询一次，即使场上没有玩家，按键脉冲也会被消费掉
func (s *PlayerInputSystem) Update(ctx *game.Context, deltaTime float64) error {
	snapshot := s.source.Poll()
	if snapshot.AxisX > 1 {
		snapshot.AxisX = 1
	} else if snapshot.AxisX < -1 {
		snapshot.AxisX = -1
	}

	view := ecs.Query1[*components.InputComponent](ctx.EM)
	for i := range view.Entities {
		*view.A[i] = snapshot
	}
	return nil
}
