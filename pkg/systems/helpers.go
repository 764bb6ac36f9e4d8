package systems

import (
	"errors"

	"go.uber.org/zap"

	"github.com/decker502/starfall/pkg/ecs"
	"github.com/decker502/starfall/pkg/game"
)

func entityField(id ecs.EntityID) zap.Field {
	return zap.Uint64("entity", uint64(id))
}

// skipEntity 记录单个实体的查询失败并跳过它
// 组件缺失是配置或逻辑缺陷，记 Warn；实体已被删除（过期引用）是正常情况，记 Debug
func skipEntity(ctx *game.Context, system string, id ecs.EntityID, err error) {
	if errors.Is(err, ecs.ErrEntityNotFound) {
		ctx.Logger.Debug("["+system+"] 实体已删除，跳过", entityField(id))
		return
	}
	ctx.Logger.Warn("["+system+"] 缺少组件，跳过实体", entityField(id), zap.Error(err))
}
