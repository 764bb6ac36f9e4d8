package systems

import (
	"go.uber.org/zap"

	"github.com/decker502/starfall/pkg/components"
	"github.com/decker502/starfall/pkg/ecs"
	"github.com/decker502/starfall/pkg/entities"
	"github.com/decker502/starfall/pkg/game"
)

// PlayerShootingSystem 玩家按下射击时在自身位置生成友方子弹，无冷却
type PlayerShootingSystem struct{}

// NewPlayerShootingSystem 创建玩家射击系统
func NewPlayerShootingSystem() *PlayerShootingSystem {
	return &PlayerShootingSystem{}
}

func (s *PlayerShootingSystem) Name() string { return "PlayerShootingSystem" }

func (s *PlayerShootingSystem) Phase() Phase { return PhaseShooting }

func (s *PlayerShootingSystem) Update(ctx *game.Context, deltaTime float64) error {
	view := ecs.Query3[*components.InputComponent, *components.ShootingComponent, *components.PositionComponent](ctx.EM)

	for i, id := range view.Entities {
		input, shooting, pos := view.A[i], view.B[i], view.C[i]
		if !input.Fire {
			continue
		}
		if _, err := entities.NewBullet(ctx.Buffer, shooting.Bullet, *pos, false); err != nil {
			ctx.Logger.Warn("[PlayerShootingSystem] 无法生成子弹", entityField(id), zap.Error(err))
		}
	}
	return nil
}

// EnemyShootingSystem 敌人按周期开火
//
// 射击计时累加到周期后，在敌人下方 BulletOffsetY 处生成敌方子弹并归零。
// 开启 laneLeaderFiring 时，只有车道内最靠下的敌人能开火，位于场地上方的敌人不开火；
// 被拦下的敌人继续累计，轮到它时立即开火。
type EnemyShootingSystem struct{}

// NewEnemyShootingSystem 创建敌人射击系统
func NewEnemyShootingSystem() *EnemyShootingSystem {
	return &EnemyShootingSystem{}
}

func (s *EnemyShootingSystem) Name() string { return "EnemyShootingSystem" }

func (s *EnemyShootingSystem) Phase() Phase { return PhaseShooting }

func (s *EnemyShootingSystem) Update(ctx *game.Context, deltaTime float64) error {
	view := ecs.Query3[*components.EnemyComponent, *components.ShootingComponent, *components.PositionComponent](ctx.EM)
	if view.Len() == 0 {
		return nil
	}

	field := ctx.Field()
	offset := ctx.Config.Enemy.BulletOffsetY

	var leaders map[int]ecs.EntityID
	if ctx.Config.Rules.LaneLeaderFiring {
		leaders = laneLeaders(ctx.EM)
	}

	for i, id := range view.Entities {
		enemy, shooting, pos := view.A[i], view.B[i], view.C[i]
		if enemy.ShootingPeriod <= 0 {
			continue
		}

		enemy.ShootingPeriodDynamic += deltaTime
		if enemy.ShootingPeriodDynamic < enemy.ShootingPeriod {
			continue
		}

		if leaders != nil {
			if pos.Y > field.MaxY || leaders[pos.Cell().Lane()] != id {
				continue
			}
		}

		spawn := components.PositionComponent{X: pos.X, Y: pos.Y - offset, Z: pos.Z}
		if _, err := entities.NewBullet(ctx.Buffer, shooting.Bullet, spawn, true); err != nil {
			ctx.Logger.Warn("[EnemyShootingSystem] 无法生成子弹", entityField(id), zap.Error(err))
			continue
		}
		enemy.ShootingPeriodDynamic = 0
	}
	return nil
}

// laneLeaders 返回每条车道最靠下的敌人
// 不带射击装备的敌人也占据车道；Y 相同时取 ID 较小者
func laneLeaders(em *ecs.EntityManager) map[int]ecs.EntityID {
	view := ecs.Query2[*components.EnemyComponent, *components.PositionComponent](em)
	leaders := make(map[int]ecs.EntityID, view.Len())
	lowest := make(map[int]float64, view.Len())
	for i, id := range view.Entities {
		pos := view.B[i]
		lane := pos.Cell().Lane()
		if y, ok := lowest[lane]; ok && pos.Y >= y {
			continue
		}
		lowest[lane] = pos.Y
		leaders[lane] = id
	}
	return leaders
}
