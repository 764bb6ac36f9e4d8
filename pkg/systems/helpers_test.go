package systems

import (
	"testing"

	"go.uber.org/zap"

	"github.com/decker502/starfall/pkg/components"
	"github.com/decker502/starfall/pkg/config"
	"github.com/decker502/starfall/pkg/ecs"
	"github.com/decker502/starfall/pkg/game"
)

// testField 测试用场地：x ∈ [-3, 3]，y ∈ [-5, 5]
var testField = game.FixedBounds{MinX: -3, MaxX: 3, MinY: -5, MaxY: 5}

// newTestContext 创建处于游戏模式、固定种子的上下文
func newTestContext(t *testing.T) *game.Context {
	t.Helper()
	cfg := config.Default()
	cfg.Game.Seed = 42
	ctx := game.NewContext(cfg, testField, zap.NewNop())
	ctx.Game.StartGame()
	return ctx
}

// runPass 执行一次系统并回放命令缓冲（与 Runner 的行为一致）
func runPass(t *testing.T, ctx *game.Context, s System, deltaTime float64) {
	t.Helper()
	if err := s.Update(ctx, deltaTime); err != nil {
		t.Fatalf("%s.Update() error = %v", s.Name(), err)
	}
	ctx.Buffer.Playback()
}

func addPlayer(ctx *game.Context, x, y float64, health int) ecs.EntityID {
	id := ctx.EM.CreateEntity()
	ctx.EM.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	ctx.EM.AddComponent(id, &components.MovementComponent{MoveSpeed: 6})
	ctx.EM.AddComponent(id, &components.InputComponent{})
	ctx.EM.AddComponent(id, &components.PlayerComponent{})
	ctx.EM.AddComponent(id, &components.HealthComponent{Health: health, MaxHealth: 3})
	ctx.EM.AddComponent(id, &components.ShootingComponent{
		Bullet: components.BulletPrototype{MovementSpeed: 10},
	})
	return id
}

// addEnemy 创建敌人；mutate 可以调整默认状态
func addEnemy(ctx *game.Context, x, y float64, mutate func(*components.EnemyComponent)) ecs.EntityID {
	enemy := &components.EnemyComponent{
		Direction:        components.DirectionRight,
		LineChangingTime: 0.25,
		ShootingPeriod:   2,
	}
	if mutate != nil {
		mutate(enemy)
	}
	id := ctx.EM.CreateEntity()
	ctx.EM.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	ctx.EM.AddComponent(id, &components.MovementComponent{MoveSpeed: 3})
	ctx.EM.AddComponent(id, &components.HealthComponent{Health: 1, MaxHealth: 1})
	ctx.EM.AddComponent(id, enemy)
	ctx.EM.AddComponent(id, &components.ShootingComponent{
		Bullet:    components.BulletPrototype{MovementSpeed: 5, IsEnemyBullet: true},
		Explosion: components.ExplosionPrototype{DestroyTime: 0.5},
	})
	return id
}

func addBullet(ctx *game.Context, x, y float64, enemy bool) ecs.EntityID {
	id := ctx.EM.CreateEntity()
	ctx.EM.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	ctx.EM.AddComponent(id, &components.BulletComponent{MovementSpeed: 5, IsEnemyBullet: enemy})
	return id
}

func countWith[T any](ctx *game.Context) int {
	return len(ecs.GetEntitiesWith1[T](ctx.EM))
}

func mustHealth(t *testing.T, ctx *game.Context, id ecs.EntityID) int {
	t.Helper()
	health, err := ecs.MustGetComponent[*components.HealthComponent](ctx.EM, id)
	if err != nil {
		t.Fatalf("health lookup failed: %v", err)
	}
	return health.Health
}

// scriptedSource 按脚本返回输入，脚本用完后返回零值
type scriptedSource struct {
	frames []components.InputComponent
	polls  int
}

func (s *scriptedSource) Poll() components.InputComponent {
	s.polls++
	if len(s.frames) == 0 {
		return components.InputComponent{}
	}
	next := s.frames[0]
	s.frames = s.frames[1:]
	return next
}
