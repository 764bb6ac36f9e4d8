package components

// ExplosionComponent 爆炸效果的生命周期
type ExplosionComponent struct {
	DestroyTime        float64 // 总显示时长（秒）
	DestroyTimeDynamic float64 // 已显示时长（秒）
}
