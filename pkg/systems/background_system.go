package systems

import (
	"go.uber.org/zap"

	"github.com/decker502/starfall/pkg/components"
	"github.com/decker502/starfall/pkg/ecs"
	"github.com/decker502/starfall/pkg/entities"
	"github.com/decker502/starfall/pkg/game"
)

// BackgroundSystem 背景滚动与循环
//
// 每块背景按 ScrollSpeed 向下移动，低于 BottomCorner 删除；
// 最上方的背景块已低于 SpawnCorner 且背景块总数（含待创建）小于上限时，在 TopCorner 补一块；
// 场上没有背景块时在 StartY 创建一块。deltaTime <= 0 时不做任何事。
type BackgroundSystem struct{}

// NewBackgroundSystem 创建背景系统
func NewBackgroundSystem() *BackgroundSystem {
	return &BackgroundSystem{}
}

func (s *BackgroundSystem) Name() string { return "BackgroundSystem" }

func (s *BackgroundSystem) Phase() Phase { return PhaseLifetime }

// ShouldRun 菜单和死亡界面背景继续滚动，只有暂停时停止
func (s *BackgroundSystem) ShouldRun(gs *game.GameState) bool {
	return !gs.IsPaused()
}

func (s *BackgroundSystem) Update(ctx *game.Context, deltaTime float64) error {
	if deltaTime <= 0 {
		return nil
	}

	spawners := ecs.Query1[*components.BackgroundComponent](ctx.EM)
	if spawners.Len() == 0 {
		return nil
	}
	if spawners.Len() > 1 {
		ctx.Logger.Warn("[BackgroundSystem] 存在多个背景配置实体，只使用第一个",
			zap.Int("count", spawners.Len()))
	}
	spawner := spawners.A[0]

	tiles := ecs.Query2[*components.BackgroundTileComponent, *components.PositionComponent](ctx.EM)
	if tiles.Len() == 0 {
		s.spawn(ctx, spawner, spawner.StartY)
		return nil
	}

	count := tiles.Len()
	topY := spawner.BottomCorner
	for i, id := range tiles.Entities {
		pos := tiles.B[i]
		pos.Y -= spawner.ScrollSpeed * deltaTime

		if pos.Y <= spawner.BottomCorner {
			ctx.Buffer.DestroyEntity(id)
			count--
			continue
		}
		if pos.Y > topY {
			topY = pos.Y
		}
	}

	// 新块出现在 TopCorner，之后最上方的块不再低于补充线，每帧最多补一块
	if topY < spawner.SpawnCorner && count < spawner.MaxBackgroundsCount {
		s.spawn(ctx, spawner, spawner.TopCorner)
	}
	return nil
}

func (s *BackgroundSystem) spawn(ctx *game.Context, spawner *components.BackgroundComponent, y float64) {
	if _, err := entities.NewBackgroundTile(ctx.Buffer, spawner, y); err != nil {
		ctx.Logger.Warn("[BackgroundSystem] 无法生成背景块", zap.Error(err))
	}
}
