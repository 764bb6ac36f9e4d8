package systems

import (
	"go.uber.org/zap"

	"github.com/decker502/starfall/pkg/components"
	"github.com/decker502/starfall/pkg/ecs"
	"github.com/decker502/starfall/pkg/entities"
	"github.com/decker502/starfall/pkg/game"
)

// WaveSpawnSystem 波次生成系统
//
// 职责：
//   - 场上没有敌人时生成下一波
//   - 系统被重置（GameState.SpawnedEnemies 清零）而场上仍有敌人时，清掉残留敌人并重新开波，
//     不会重复生成
//
// 每波敌人数 = min(DefaultEnemies + CurrentWave, MaxEnemies)，
// 速度 = EnemiesMoveSpeed + CurrentWave/2。
// 第 i 个敌人的换行周期、是否摆动、蛇形角度由 enemyTiers 档位决定，
// 所有随机量都取自 ctx.Rand，相同种子生成相同的波次。
type WaveSpawnSystem struct{}

// NewWaveSpawnSystem 创建波次生成系统
func NewWaveSpawnSystem() *WaveSpawnSystem {
	return &WaveSpawnSystem{}
}

func (s *WaveSpawnSystem) Name() string { return "WaveSpawnSystem" }

func (s *WaveSpawnSystem) Phase() Phase { return PhaseLifetime }

func (s *WaveSpawnSystem) Update(ctx *game.Context, deltaTime float64) error {
	live := ecs.GetEntitiesWith1[*components.EnemyComponent](ctx.EM)
	recorded := ctx.Game.SpawnedEnemies

	switch {
	case len(live) > 0 && recorded > 0:
		// 本波进行中
		return nil
	case len(live) > 0 && recorded == 0:
		ctx.Logger.Info("[WaveSpawnSystem] 计数已重置，清理残留敌人",
			zap.Int("stragglers", len(live)))
		destroyAll(ctx.Buffer, live)
	}

	s.SpawnWave(ctx, live)
	return nil
}

// SpawnWave 生成一波敌人并推进波次
// live 为当前场上的敌人，第 0 波时全部删除
func (s *WaveSpawnSystem) SpawnWave(ctx *game.Context, live []ecs.EntityID) int {
	gs := ctx.Game
	if gs.CurrentWave == 0 {
		destroyAll(ctx.Buffer, live)
	}

	required := min(gs.DefaultEnemies+gs.CurrentWave, gs.MaxEnemies)
	speed := gs.EnemiesMoveSpeed + float64(gs.CurrentWave)/2
	field := ctx.Field()
	spawnY := field.MaxY + ctx.Config.Game.SpawnOffsetY

	spawned := 0
	for i := 0; i < required; i++ {
		spec := rollEnemy(ctx, i, speed, field, spawnY)
		if _, err := entities.NewEnemy(ctx.Buffer, gs.Enemy, spec); err != nil {
			ctx.Logger.Warn("[WaveSpawnSystem] 无法生成敌人", zap.Int("index", i), zap.Error(err))
			continue
		}
		spawned++
	}

	gs.SpawnedEnemies = required
	gs.CurrentWave++

	ctx.Logger.Info("[WaveSpawnSystem] 生成波次",
		zap.Int("wave", gs.CurrentWave),
		zap.Int("enemies", spawned),
		zap.Float64("speed", speed))
	return spawned
}

// rollEnemy 为第 index 个敌人随机生成参数
// 抽取顺序固定：换行周期、蛇形角度（仅摆动型）、方向、X
func rollEnemy(ctx *game.Context, index int, speed float64, field game.Bounds, spawnY float64) entities.EnemySpec {
	tier := ctx.Config.Game.TierFor(index)
	rng := ctx.Rand

	spec := entities.EnemySpec{
		Y:                spawnY,
		MoveSpeed:        speed,
		LineChangingTime: uniform(rng.Float64(), tier.LineChangingMin, tier.LineChangingMax),
		IsNonStop:        tier.IsNonStop,
	}
	if tier.IsNonStop {
		spec.SerpentineDegree = uniform(rng.Float64(), tier.SerpentineMin, tier.SerpentineMax)
	}
	spec.Direction = components.DirectionLeft
	if rng.Intn(2) == 1 {
		spec.Direction = components.DirectionRight
	}
	spec.X = uniform(rng.Float64(), field.MinX, field.MaxX)
	return spec
}

// uniform 把 [0,1) 的随机数映射到 [lo,hi)
func uniform(r, lo, hi float64) float64 {
	return lo + r*(hi-lo)
}

func destroyAll(cb *ecs.CommandBuffer, ids []ecs.EntityID) {
	for _, id := range ids {
		cb.DestroyEntity(id)
	}
}
