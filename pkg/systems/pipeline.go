package systems

import (
	"github.com/decker502/starfall/pkg/game"
	"github.com/decker502/starfall/pkg/input"
)

// NewDefaultRunner 按标准顺序注册全部模拟系统
//
//	输入 → 玩家/敌人/子弹移动 → 射击 → 碰撞 → 生命值/爆炸/背景/波次
func NewDefaultRunner(ctx *game.Context, source input.Provider) *Runner {
	r := NewRunner(ctx)
	r.Register(NewPlayerInputSystem(source))
	r.Register(NewPlayerMovementSystem())
	r.Register(NewEnemyMovementSystem())
	r.Register(NewBulletMovementSystem())
	r.Register(NewPlayerShootingSystem())
	r.Register(NewEnemyShootingSystem())
	r.Register(NewCollisionSystem())
	r.Register(NewHealthSystem())
	r.Register(NewExplosionSystem())
	r.Register(NewBackgroundSystem())
	r.Register(NewWaveSpawnSystem())
	return r
}
