package systems

import (
	"github.com/decker502/starfall/pkg/components"
	"github.com/decker502/starfall/pkg/ecs"
	"github.com/decker502/starfall/pkg/game"
)

// serpentineFactor 蛇形下沉系数：dy = -SerpentineDegree × dt × dt × serpentineFactor
const serpentineFactor = 0.005

// EnemyMovementSystem 敌人移动状态机
//
// 两类敌人：
//   - 摆动型（IsNonStop）：始终水平移动，计时到期换向，同时按蛇形角度缓慢下沉；
//     碰到边界时计时直接置满，下一帧换向
//   - 停靠型：水平移动到边界后进入垂直阶段下降，计时到期换向并回到水平阶段
//
// 计时到期时先换向再移动，换向后计时归零。每个敌人每帧最多换向一次。
type EnemyMovementSystem struct{}

// NewEnemyMovementSystem 创建敌人移动系统
func NewEnemyMovementSystem() *EnemyMovementSystem {
	return &EnemyMovementSystem{}
}

func (s *EnemyMovementSystem) Name() string { return "EnemyMovementSystem" }

func (s *EnemyMovementSystem) Phase() Phase { return PhaseMovement }

func (s *EnemyMovementSystem) Update(ctx *game.Context, deltaTime float64) error {
	field := ctx.Field()
	view := ecs.Query2[*components.EnemyComponent, *components.PositionComponent](ctx.EM)

	for i, id := range view.Entities {
		enemy, pos := view.A[i], view.B[i]

		// 已经掉出场地下方，先删除，不再移动
		if pos.Y < field.MinY {
			ctx.Buffer.DestroyEntity(id)
			continue
		}

		movement, err := ecs.MustGetComponent[*components.MovementComponent](ctx.EM, id)
		if err != nil {
			skipEntity(ctx, s.Name(), id, err)
			continue
		}

		if enemy.IsNonStop {
			weave(enemy, pos, movement.MoveSpeed, deltaTime, field)
		} else {
			park(enemy, pos, movement.MoveSpeed, deltaTime, field)
		}
	}
	return nil
}

// weave 摆动型敌人的一帧
func weave(enemy *components.EnemyComponent, pos *components.PositionComponent, speed, dt float64, field game.Bounds) {
	enemy.LineChangingTimeDynamic += dt
	if enemy.LineChangingTimeDynamic >= enemy.LineChangingTime {
		enemy.Direction = enemy.Direction.Opposite()
		enemy.LineChangingTimeDynamic = 0
	}

	pos.X += enemy.Direction.Sign() * speed * dt
	pos.Y -= enemy.SerpentineDegree * dt * dt * serpentineFactor

	if !field.ContainsX(pos.X) {
		pos.X = field.ClampX(pos.X)
		enemy.LineChangingTimeDynamic = enemy.LineChangingTime
	}
}

// park 停靠型敌人的一帧
func park(enemy *components.EnemyComponent, pos *components.PositionComponent, speed, dt float64, field game.Bounds) {
	switch enemy.Phase {
	case components.PhaseHorizontal:
		pos.X += enemy.Direction.Sign() * speed * dt
		if !field.ContainsX(pos.X) {
			pos.X = field.ClampX(pos.X)
			enemy.Phase = components.PhaseVertical
			enemy.LineChangingTimeDynamic = 0
		}

	case components.PhaseVertical:
		pos.Y -= speed * dt
		enemy.LineChangingTimeDynamic += dt
		if enemy.LineChangingTimeDynamic >= enemy.LineChangingTime {
			enemy.Direction = enemy.Direction.Opposite()
			enemy.LineChangingTimeDynamic = 0
			enemy.Phase = components.PhaseHorizontal
		}
	}
}
