package entities

import (
	"errors"
	"fmt"

	"github.com/decker502/starfall/pkg/components"
	"github.com/decker502/starfall/pkg/config"
	"github.com/decker502/starfall/pkg/ecs"
	"github.com/decker502/starfall/pkg/game"
)

// ErrNilBuffer 工厂必须通过命令缓冲创建实体
var ErrNilBuffer = errors.New("command buffer cannot be nil")

// NewPlayer 创建玩家实体
//
// 玩家持有输入、移动、生命值和射击装备；子弹原型为友方子弹。
// 实体在命令缓冲回放后才出现在存储里。
func NewPlayer(cb *ecs.CommandBuffer, cfg *config.SimulationConfig) (ecs.EntityID, error) {
	if cb == nil {
		return 0, ErrNilBuffer
	}
	if cfg.Player.Health <= 0 {
		return 0, fmt.Errorf("player health must be > 0, got %d", cfg.Player.Health)
	}

	id := cb.CreateEntity()
	cb.AddComponent(id, &components.PositionComponent{X: cfg.Player.StartX, Y: cfg.Player.StartY})
	cb.AddComponent(id, &components.MovementComponent{MoveSpeed: cfg.Player.MoveSpeed})
	cb.AddComponent(id, &components.InputComponent{})
	cb.AddComponent(id, &components.PlayerComponent{})
	cb.AddComponent(id, &components.HealthComponent{Health: cfg.Player.Health, MaxHealth: cfg.Player.Health})
	cb.AddComponent(id, &components.ShootingComponent{
		Bullet: components.BulletPrototype{MovementSpeed: cfg.Player.BulletSpeed},
	})
	return id, nil
}

// EnemySpec 波次为单个敌人决定的生成参数
type EnemySpec struct {
	X, Y             float64
	MoveSpeed        float64
	Direction        components.EnemyDirection
	LineChangingTime float64
	IsNonStop        bool
	SerpentineDegree float64
}

// NewEnemy 按原型和生成参数创建敌人实体
// 射击计时从 0 开始，生成后第一个射击周期结束才会开火
func NewEnemy(cb *ecs.CommandBuffer, proto game.EnemyPrototype, spec EnemySpec) (ecs.EntityID, error) {
	if cb == nil {
		return 0, ErrNilBuffer
	}
	if proto.Health <= 0 {
		return 0, fmt.Errorf("enemy health must be > 0, got %d", proto.Health)
	}
	if spec.LineChangingTime <= 0 {
		return 0, fmt.Errorf("enemy line changing time must be > 0, got %v", spec.LineChangingTime)
	}

	id := cb.CreateEntity()
	cb.AddComponent(id, &components.PositionComponent{X: spec.X, Y: spec.Y})
	cb.AddComponent(id, &components.MovementComponent{MoveSpeed: spec.MoveSpeed})
	cb.AddComponent(id, &components.HealthComponent{Health: proto.Health, MaxHealth: proto.Health})
	cb.AddComponent(id, &components.EnemyComponent{
		Direction:        spec.Direction,
		Phase:            components.PhaseHorizontal,
		LineChangingTime: spec.LineChangingTime,
		IsNonStop:        spec.IsNonStop,
		SerpentineDegree: spec.SerpentineDegree,
		ShootingPeriod:   proto.ShootingPeriod,
	})
	shooting := proto.Shooting
	cb.AddComponent(id, &shooting)
	return id, nil
}

// NewBullet 在指定位置创建子弹
// enemy 决定阵营，覆盖原型上的标记
func NewBullet(cb *ecs.CommandBuffer, proto components.BulletPrototype, pos components.PositionComponent, enemy bool) (ecs.EntityID, error) {
	if cb == nil {
		return 0, ErrNilBuffer
	}
	if proto.MovementSpeed <= 0 {
		return 0, fmt.Errorf("bullet speed must be > 0, got %v", proto.MovementSpeed)
	}

	id := cb.CreateEntity()
	cb.AddComponent(id, &pos)
	cb.AddComponent(id, &components.BulletComponent{
		MovementSpeed: proto.MovementSpeed,
		IsEnemyBullet: enemy,
	})
	return id, nil
}

// NewExplosion 在指定位置创建爆炸效果
func NewExplosion(cb *ecs.CommandBuffer, proto components.ExplosionPrototype, pos components.PositionComponent) (ecs.EntityID, error) {
	if cb == nil {
		return 0, ErrNilBuffer
	}
	if proto.DestroyTime <= 0 {
		return 0, fmt.Errorf("explosion destroy time must be > 0, got %v", proto.DestroyTime)
	}

	id := cb.CreateEntity()
	cb.AddComponent(id, &pos)
	cb.AddComponent(id, &components.ExplosionComponent{DestroyTime: proto.DestroyTime})
	return id, nil
}

// NewBackgroundSpawner 创建背景滚动配置实体
func NewBackgroundSpawner(cb *ecs.CommandBuffer, bg config.BackgroundConfig) (ecs.EntityID, error) {
	if cb == nil {
		return 0, ErrNilBuffer
	}

	id := cb.CreateEntity()
	cb.AddComponent(id, &components.BackgroundComponent{
		MaxBackgroundsCount: bg.MaxTiles,
		BottomCorner:        bg.BottomCorner,
		SpawnCorner:         bg.SpawnCorner,
		TopCorner:           bg.TopCorner,
		StartY:              bg.StartY,
		ScrollSpeed:         bg.ScrollSpeed,
		Tile: components.BackgroundTileComponent{
			Width:  bg.TileWidth,
			Height: bg.TileHeight,
		},
	})
	return id, nil
}

// NewBackgroundTile 在 y 处创建一块背景
func NewBackgroundTile(cb *ecs.CommandBuffer, spawner *components.BackgroundComponent, y float64) (ecs.EntityID, error) {
	if cb == nil {
		return 0, ErrNilBuffer
	}

	id := cb.CreateEntity()
	cb.AddComponent(id, &components.PositionComponent{Y: y})
	tile := spawner.Tile
	cb.AddComponent(id, &tile)
	return id, nil
}
