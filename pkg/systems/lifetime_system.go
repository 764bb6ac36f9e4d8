package systems

import (
	"github.com/decker502/starfall/pkg/components"
	"github.com/decker502/starfall/pkg/ecs"
	"github.com/decker502/starfall/pkg/game"
)

// ExplosionSystem 管理爆炸效果的生命周期
type ExplosionSystem struct{}

// NewExplosionSystem 创建爆炸生命周期系统
func NewExplosionSystem() *ExplosionSystem {
	return &ExplosionSystem{}
}

func (s *ExplosionSystem) Name() string { return "ExplosionSystem" }

func (s *ExplosionSystem) Phase() Phase { return PhaseLifetime }

// Update 累加显示时长，到期的爆炸标记删除
func (s *ExplosionSystem) Update(ctx *game.Context, deltaTime float64) error {
	view := ecs.Query1[*components.ExplosionComponent](ctx.EM)

	for i, id := range view.Entities {
		explosion := view.A[i]
		explosion.DestroyTimeDynamic += deltaTime

		if explosion.DestroyTimeDynamic >= explosion.DestroyTime {
			ctx.Buffer.DestroyEntity(id)
		}
	}
	return nil
}
