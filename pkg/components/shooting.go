package components

// BulletPrototype 子弹原型
// 射击时按原型实例化子弹实体
type BulletPrototype struct {
	MovementSpeed float64 // 子弹速度（单位/秒）
	IsEnemyBullet bool    // 原型阵营；射击系统会按射手阵营覆盖
}

// ExplosionPrototype 爆炸原型
type ExplosionPrototype struct {
	DestroyTime float64 // 爆炸显示时长（秒）
}

// ShootingComponent 射击装备
// 引用实体开火时使用的子弹原型和（击杀时的）爆炸原型，生成后不再修改
type ShootingComponent struct {
	Bullet    BulletPrototype
	Explosion ExplosionPrototype
}
