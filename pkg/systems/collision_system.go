package systems

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/decker502/starfall/pkg/components"
	"github.com/decker502/starfall/pkg/config"
	"github.com/decker502/starfall/pkg/ecs"
	"github.com/decker502/starfall/pkg/entities"
	"github.com/decker502/starfall/pkg/game"
)

type bulletView = ecs.View2[*components.BulletComponent, *components.PositionComponent]
type enemyView = ecs.View2[*components.EnemyComponent, *components.PositionComponent]
type holderView = ecs.View2[*components.HealthComponent, *components.PositionComponent]

// CollisionSystem 子弹碰撞、伤害结算和敌人越界
//
// 相交判定：坐标截断取整后落在同一网格单元（见 PositionComponent.Cell）。
// 敌人和其他生命值持有者按单元建立索引，每颗子弹只检查自己所在单元。
//
// 结算规则（按子弹 ID 顺序）：
//  1. 子弹越过上/下边界：删除
//  2. 敌方子弹：命中单元内 ID 最小的非敌人生命值持有者，扣 1 点，子弹删除
//  3. 玩家子弹：命中单元内 ID 最小的存活敌人，扣 1 点；归零时删除敌人、
//     在子弹位置生成爆炸并加分；子弹删除
//  4. 距下边界 BreachMargin 以内的敌人：删除并爆炸，按 breachPenalty 惩罚玩家
//
// 每个实体每帧最多扣一次血（damageLedger），多余的子弹照样被消耗。
// 子弹数达到 ParallelThreshold 且 CollisionWorkers > 1 时，候选查找分发到多个 goroutine，
// 结算仍按子弹顺序串行进行，结果与串行扫描一致。
type CollisionSystem struct{}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Name() string { return "CollisionSystem" }

func (s *CollisionSystem) Phase() Phase { return PhaseCollision }

// cellGrid 按网格单元索引的候选目标，值为视图下标（升序）
type cellGrid struct {
	enemies map[components.Cell][]int
	targets map[components.Cell][]int
}

// bulletCandidates 单颗子弹的查找结果
type bulletCandidates struct {
	outOfBounds bool
	targets     []int // 敌方子弹为 holders 下标，玩家子弹为 enemies 下标
}

func (s *CollisionSystem) Update(ctx *game.Context, deltaTime float64) error {
	field := ctx.Field()
	rules := ctx.Config.Rules

	bullets := ecs.Query2[*components.BulletComponent, *components.PositionComponent](ctx.EM)
	enemies := ecs.Query2[*components.EnemyComponent, *components.PositionComponent](ctx.EM)
	holders := ecs.Query2[*components.HealthComponent, *components.PositionComponent](ctx.EM)

	grid := buildGrid(ctx.EM, enemies, holders)
	candidates, err := lookupCandidates(bullets, grid, field, rules)
	if err != nil {
		return err
	}

	ledger := newDamageLedger()

	for i, bulletID := range bullets.Entities {
		c := candidates[i]
		if c.outOfBounds {
			ctx.Buffer.DestroyEntity(bulletID)
			continue
		}

		if bullets.A[i].IsEnemyBullet {
			s.resolveEnemyBullet(ctx, ledger, bulletID, c.targets, holders)
		} else {
			s.resolvePlayerBullet(ctx, ledger, bulletID, *bullets.B[i], c.targets, enemies)
		}
	}

	s.resolveBreaches(ctx, ledger, enemies, field.MinY+rules.BreachMargin, rules.BreachPenalty)

	ledger.flush(ctx.Buffer)
	return nil
}

// resolveEnemyBullet 敌方子弹只伤害非敌人
func (s *CollisionSystem) resolveEnemyBullet(ctx *game.Context, ledger *damageLedger, bulletID ecs.EntityID, targets []int, holders holderView) {
	for _, t := range targets {
		targetID := holders.Entities[t]
		if ctx.Buffer.IsDestroyPending(targetID) {
			continue
		}
		ledger.damage(targetID, holders.A[t])
		ctx.Buffer.DestroyEntity(bulletID)
		return
	}
}

// resolvePlayerBullet 玩家子弹只伤害敌人
func (s *CollisionSystem) resolvePlayerBullet(ctx *game.Context, ledger *damageLedger, bulletID ecs.EntityID, bulletPos components.PositionComponent, targets []int, enemies enemyView) {
	for _, e := range targets {
		enemyID := enemies.Entities[e]
		if ctx.Buffer.IsDestroyPending(enemyID) {
			continue
		}
		health, err := ecs.MustGetComponent[*components.HealthComponent](ctx.EM, enemyID)
		if err != nil {
			skipEntity(ctx, s.Name(), enemyID, err)
			continue
		}

		ctx.Buffer.DestroyEntity(bulletID)
		if !ledger.damage(enemyID, health) {
			return
		}
		if ledger.current(enemyID, health) <= 0 {
			s.killEnemy(ctx, enemyID, bulletPos)
			ctx.Game.AddPoints(1)
		}
		return
	}
}

// resolveBreaches 处理逼近下边界的敌人
func (s *CollisionSystem) resolveBreaches(ctx *game.Context, ledger *damageLedger, enemies enemyView, threshold float64, penalty config.BreachPenalty) {
	breaches := 0
	for i, enemyID := range enemies.Entities {
		if ctx.Buffer.IsDestroyPending(enemyID) {
			continue
		}
		pos := enemies.B[i]
		if pos.Y > threshold {
			continue
		}
		s.killEnemy(ctx, enemyID, *pos)
		breaches++
	}
	if breaches == 0 || penalty == config.BreachNone {
		return
	}

	players := ecs.Query2[*components.PlayerComponent, *components.HealthComponent](ctx.EM)
	for i, playerID := range players.Entities {
		switch penalty {
		case config.BreachKill:
			ledger.kill(playerID, players.B[i])
		case config.BreachDamage:
			ledger.damage(playerID, players.B[i])
		}
	}
	ctx.Logger.Debug("[CollisionSystem] 敌人越过防线",
		zap.Int("count", breaches),
		zap.String("penalty", string(penalty)))
}

// killEnemy 删除敌人并在 at 处生成爆炸
// 爆炸原型取敌人自己的射击装备，没有时用波次原型
func (s *CollisionSystem) killEnemy(ctx *game.Context, enemyID ecs.EntityID, at components.PositionComponent) {
	ctx.Buffer.DestroyEntity(enemyID)

	proto := ctx.Game.Enemy.Shooting.Explosion
	if shooting, ok := ecs.GetComponent[*components.ShootingComponent](ctx.EM, enemyID); ok {
		proto = shooting.Explosion
	}
	if _, err := entities.NewExplosion(ctx.Buffer, proto, at); err != nil {
		ctx.Logger.Warn("[CollisionSystem] 无法生成爆炸", entityField(enemyID), zap.Error(err))
	}
}

// buildGrid 建立单元索引
// holders 中的敌人不进入 targets，敌方子弹不会误伤敌人
func buildGrid(em *ecs.EntityManager, enemies enemyView, holders holderView) cellGrid {
	grid := cellGrid{
		enemies: make(map[components.Cell][]int, enemies.Len()),
		targets: make(map[components.Cell][]int),
	}
	for i := range enemies.Entities {
		cell := enemies.B[i].Cell()
		grid.enemies[cell] = append(grid.enemies[cell], i)
	}
	for i, id := range holders.Entities {
		if ecs.HasComponent[*components.EnemyComponent](em, id) {
			continue
		}
		cell := holders.B[i].Cell()
		grid.targets[cell] = append(grid.targets[cell], i)
	}
	return grid
}

// lookupCandidates 为每颗子弹查找候选目标
// 只读访问 grid 和视图，可以安全并发
func lookupCandidates(bullets bulletView, grid cellGrid, field game.Bounds, rules config.RulesConfig) ([]bulletCandidates, error) {
	n := bullets.Len()
	candidates := make([]bulletCandidates, n)

	lookup := func(i int) {
		pos := bullets.B[i]
		if pos.Y > field.MaxY || pos.Y < field.MinY {
			candidates[i].outOfBounds = true
			return
		}
		if bullets.A[i].IsEnemyBullet {
			candidates[i].targets = grid.targets[pos.Cell()]
		} else {
			candidates[i].targets = grid.enemies[pos.Cell()]
		}
	}

	workers := rules.CollisionWorkers
	if workers <= 1 || n < rules.ParallelThreshold {
		for i := 0; i < n; i++ {
			lookup(i)
		}
		return candidates, nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				lookup(i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return candidates, nil
}

// damageLedger 本帧的生命值写入记录
// 每个实体最多扣一次血；帧末统一通过命令缓冲写回，每个实体一条记录
type damageLedger struct {
	order  []ecs.EntityID
	writes map[ecs.EntityID]*healthWrite
}

type healthWrite struct {
	health  int
	max     int
	damaged bool
}

func newDamageLedger() *damageLedger {
	return &damageLedger{writes: make(map[ecs.EntityID]*healthWrite)}
}

func (l *damageLedger) entry(id ecs.EntityID, stored *components.HealthComponent) *healthWrite {
	if w, ok := l.writes[id]; ok {
		return w
	}
	w := &healthWrite{health: stored.Health, max: stored.MaxHealth}
	l.writes[id] = w
	l.order = append(l.order, id)
	return w
}

// current 返回本帧权威的生命值
func (l *damageLedger) current(id ecs.EntityID, stored *components.HealthComponent) int {
	if w, ok := l.writes[id]; ok {
		return w.health
	}
	return stored.Health
}

// damage 扣 1 点；本帧已扣过时返回 false
func (l *damageLedger) damage(id ecs.EntityID, stored *components.HealthComponent) bool {
	w := l.entry(id, stored)
	if w.damaged {
		return false
	}
	w.damaged = true
	w.health--
	return true
}

// kill 生命值清零
func (l *damageLedger) kill(id ecs.EntityID, stored *components.HealthComponent) {
	w := l.entry(id, stored)
	if w.health > 0 {
		w.health = 0
	}
}

// flush 把记录写入命令缓冲，已判定删除的实体跳过
func (l *damageLedger) flush(cb *ecs.CommandBuffer) {
	for _, id := range l.order {
		if cb.IsDestroyPending(id) {
			continue
		}
		w := l.writes[id]
		cb.AddComponent(id, &components.HealthComponent{Health: w.health, MaxHealth: w.max})
	}
}
