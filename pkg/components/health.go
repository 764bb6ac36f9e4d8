package components

// HealthComponent 存储实体的生命值信息
// 玩家初始 3 点；敌人 1 点（一击必杀）
type HealthComponent struct {
	Health    int // 当前生命值
	MaxHealth int // 生成时的最大生命值
}

// IsDead 生命值是否耗尽
func (h *HealthComponent) IsDead() bool {
	return h.Health <= 0
}

// Level 返回外观档位（3/2/1），供材质选择使用
// 超过 3 点按 3 档显示，耗尽按 1 档显示
func (h *HealthComponent) Level() int {
	switch {
	case h.Health >= 3:
		return 3
	case h.Health == 2:
		return 2
	default:
		return 1
	}
}
