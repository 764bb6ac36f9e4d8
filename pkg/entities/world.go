package entities

import (
	"fmt"

	"github.com/decker502/starfall/pkg/components"
	"github.com/decker502/starfall/pkg/ecs"
	"github.com/decker502/starfall/pkg/game"
)

// SpawnWorld 创建一局游戏的初始实体（玩家和背景配置）并立即回放
// 敌人由波次系统生成，不在这里创建
func SpawnWorld(ctx *game.Context) (ecs.EntityID, error) {
	player, err := NewPlayer(ctx.Buffer, ctx.Config)
	if err != nil {
		ctx.Buffer.Reset()
		return 0, fmt.Errorf("failed to spawn player: %w", err)
	}
	if _, err := NewBackgroundSpawner(ctx.Buffer, ctx.Config.Background); err != nil {
		ctx.Buffer.Reset()
		return 0, fmt.Errorf("failed to spawn background: %w", err)
	}
	ctx.Buffer.Playback()
	return player, nil
}

// ClearCombat 删除所有子弹、爆炸和敌人（重试或返回菜单时调用）
// 只能在两次 tick 之间调用
func ClearCombat(ctx *game.Context) int {
	cleared := 0
	for _, id := range combatEntities(ctx.EM) {
		ctx.Buffer.DestroyEntity(id)
		cleared++
	}
	ctx.Buffer.Playback()
	return cleared
}

func combatEntities(em *ecs.EntityManager) []ecs.EntityID {
	ids := ecs.GetEntitiesWith1[*components.BulletComponent](em)
	ids = append(ids, ecs.GetEntitiesWith1[*components.ExplosionComponent](em)...)
	ids = append(ids, ecs.GetEntitiesWith1[*components.EnemyComponent](em)...)
	return ids
}
