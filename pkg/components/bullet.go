package components

// BulletComponent 子弹组件
// IsEnemyBullet 同时决定飞行方向（敌方向下）和敌我判定
type BulletComponent struct {
	MovementSpeed float64
	IsEnemyBullet bool
}
