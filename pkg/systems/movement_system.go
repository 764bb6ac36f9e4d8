package systems

import (
	"github.com/decker502/starfall/pkg/components"
	"github.com/decker502/starfall/pkg/ecs"
	"github.com/decker502/starfall/pkg/game"
)

// PlayerMovementSystem 按输入水平移动玩家
// 越过左边界从右边界出现，反之亦然
type PlayerMovementSystem struct{}

// NewPlayerMovementSystem 创建玩家移动系统
func NewPlayerMovementSystem() *PlayerMovementSystem {
	return &PlayerMovementSystem{}
}

func (s *PlayerMovementSystem) Name() string { return "PlayerMovementSystem" }

func (s *PlayerMovementSystem) Phase() Phase { return PhaseMovement }

func (s *PlayerMovementSystem) Update(ctx *game.Context, deltaTime float64) error {
	field := ctx.Field()
	view := ecs.Query3[*components.InputComponent, *components.MovementComponent, *components.PositionComponent](ctx.EM)

	for i := range view.Entities {
		input, movement, pos := view.A[i], view.B[i], view.C[i]
		switch {
		case pos.X < field.MinX:
			pos.X = field.MaxX
		case pos.X > field.MaxX:
			pos.X = field.MinX
		default:
			pos.X += input.AxisX * movement.MoveSpeed * deltaTime
		}
	}
	return nil
}

// BulletMovementSystem 子弹直线飞行
// 玩家子弹向上，敌方子弹向下；越界销毁由碰撞系统处理
type BulletMovementSystem struct{}

// NewBulletMovementSystem 创建子弹移动系统
func NewBulletMovementSystem() *BulletMovementSystem {
	return &BulletMovementSystem{}
}

func (s *BulletMovementSystem) Name() string { return "BulletMovementSystem" }

func (s *BulletMovementSystem) Phase() Phase { return PhaseMovement }

func (s *BulletMovementSystem) Update(ctx *game.Context, deltaTime float64) error {
	view := ecs.Query2[*components.BulletComponent, *components.PositionComponent](ctx.EM)
	for i := range view.Entities {
		bullet, pos := view.A[i], view.B[i]
		direction := 1.0
		if bullet.IsEnemyBullet {
			direction = -1.0
		}
		pos.Y += direction * bullet.MovementSpeed * deltaTime
	}
	return nil
}
