package components

// EnemyDirection 敌人水平移动方向
type EnemyDirection int

const (
	// DirectionLeft 向左移动
	DirectionLeft EnemyDirection = iota
	// DirectionRight 向右移动
	DirectionRight
)

// Opposite 返回相反方向
func (d EnemyDirection) Opposite() EnemyDirection {
	if d == DirectionLeft {
		return DirectionRight
	}
	return DirectionLeft
}

// Sign 返回方向对应的X轴符号（左 -1，右 +1）
func (d EnemyDirection) Sign() float64 {
	if d == DirectionLeft {
		return -1
	}
	return 1
}

// String 返回方向名称（用于日志）
func (d EnemyDirection) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// EnemyPhase 敌人移动阶段
type EnemyPhase int

const (
	// PhaseHorizontal 水平移动（可能带蛇形下沉）
	PhaseHorizontal EnemyPhase = iota
	// PhaseVertical 垂直下降（换行中）
	PhaseVertical
)

// String 返回阶段名称（用于日志）
func (p EnemyPhase) String() string {
	if p == PhaseVertical {
		return "vertical"
	}
	return "horizontal"
}

// EnemyComponent 敌人状态
//
// 移动状态机和射击冷却都保存在这里：
//   - LineChangingTime / LineChangingTimeDynamic: 换行周期及其计时
//   - IsNonStop: 不停靠车道，持续左右摆动
//   - SerpentineDegree: 蛇形角度，决定摆动时的下沉量
//   - ShootingPeriod / ShootingPeriodDynamic: 射击周期及其计时
type EnemyComponent struct {
	Direction               EnemyDirection
	Phase                   EnemyPhase
	LineChangingTime        float64 // 换行周期（秒）
	LineChangingTimeDynamic float64 // 当前换行计时（秒）
	IsNonStop               bool
	SerpentineDegree        float64 // 蛇形角度（度）
	ShootingPeriod          float64 // 射击周期（秒）
	ShootingPeriodDynamic   float64 // 当前射击计时（秒）
}
