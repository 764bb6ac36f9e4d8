package systems

import (
	"go.uber.org/zap"

	"github.com/decker502/starfall/pkg/components"
	"github.com/decker502/starfall/pkg/ecs"
	"github.com/decker502/starfall/pkg/game"
)

// HealthSystem 生命值收尾
//   - 生命值不超过上限
//   - 非玩家实体生命值耗尽时删除
//   - 玩家生命值耗尽时进入死亡模式
type HealthSystem struct{}

// NewHealthSystem 创建生命值系统
func NewHealthSystem() *HealthSystem {
	return &HealthSystem{}
}

func (s *HealthSystem) Name() string { return "HealthSystem" }

func (s *HealthSystem) Phase() Phase { return PhaseLifetime }

func (s *HealthSystem) Update(ctx *game.Context, deltaTime float64) error {
	view := ecs.Query1[*components.HealthComponent](ctx.EM)

	for i, id := range view.Entities {
		health := view.A[i]
		if health.Health > health.MaxHealth {
			health.Health = health.MaxHealth
		}
		if !health.IsDead() {
			continue
		}

		if !ecs.HasComponent[*components.PlayerComponent](ctx.EM, id) {
			ctx.Buffer.DestroyEntity(id)
			continue
		}
		if ctx.Game.Die() {
			ctx.Logger.Info("[HealthSystem] 玩家死亡",
				entityField(id),
				zap.Int("wave", ctx.Game.CurrentWave),
				zap.Int("points", ctx.Game.Points))
		}
	}
	return nil
}
