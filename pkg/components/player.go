package components

// PlayerComponent 玩家标记组件
// 碰撞系统用它区分玩家和其他持有生命值的实体
type PlayerComponent struct{}
