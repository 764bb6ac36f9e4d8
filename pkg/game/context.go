package game

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/decker502/starfall/pkg/components"
	"github.com/decker502/starfall/pkg/config"
	"github.com/decker502/starfall/pkg/ecs"
)

// Context 模拟上下文
//
// 每个系统的 Update 都显式接收它，替代全局单例：
//   - EM: 实体存储，遍历期间只读共享
//   - Buffer: 本轮的结构性修改都录制到这里，由 Runner 在系统结束后回放
//   - Game: 波次、得分、模式
//   - Rand: 带种子的随机源，保证波次生成可复现
type Context struct {
	EM     *ecs.EntityManager
	Buffer *ecs.CommandBuffer
	Game   *GameState
	Bounds BoundsProvider
	Rand   *rand.Rand
	Config *config.SimulationConfig
	Logger *zap.Logger
}

// NewContext 创建模拟上下文
// cfg.Game.Seed 为 0 时按当前时间取种；logger 为 nil 时使用 zap.NewNop()
func NewContext(cfg *config.SimulationConfig, bounds BoundsProvider, logger *zap.Logger) *Context {
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	em := ecs.NewEntityManager()
	return &Context{
		EM:     em,
		Buffer: ecs.NewCommandBuffer(em),
		Game:   NewGameState(cfg),
		Bounds: bounds,
		Rand:   rand.New(rand.NewSource(seed)),
		Config: cfg,
		Logger: logger,
	}
}

// Field 返回当前场地边界
func (c *Context) Field() Bounds {
	return c.Bounds.Bounds()
}

// ResetPlayer 重试/返回菜单时恢复玩家状态
// 玩家生命值恢复到上限，生成计数清零。只能在两次 tick 之间调用。
func ResetPlayer(ctx *Context) {
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.HealthComponent](ctx.EM) {
		health, _ := ecs.GetComponent[*components.HealthComponent](ctx.EM, id)
		health.Health = health.MaxHealth
	}
	ctx.Game.ResetCounters()
	ctx.Logger.Debug("[GameState] player reset", zap.Int("wave", ctx.Game.CurrentWave))
}
