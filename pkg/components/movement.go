package components

// MovementComponent 存储实体的移动速度
// 玩家和敌人共用；创建后不再修改（敌人速度由波次在生成时确定）
type MovementComponent struct {
	MoveSpeed float64 // 移动速度（单位/秒）
}
