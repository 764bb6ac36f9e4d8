package game

import (
	"github.com/decker502/starfall/pkg/components"
	"github.com/decker502/starfall/pkg/config"
)

// Mode 游戏模式
// 由 UI 层切换；模拟核心只在 ModePlay 下推进玩法系统
type Mode int

const (
	// ModeMenu 主菜单
	ModeMenu Mode = iota
	// ModePlay 游戏进行中
	ModePlay
	// ModeDead 玩家死亡，等待重试或返回菜单
	ModeDead
	// ModePaused 暂停
	ModePaused
)

// String 返回模式名称（用于日志）
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlay:
		return "play"
	case ModeDead:
		return "dead"
	case ModePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// EnemyPrototype 波次生成敌人时使用的原型
// 移动相关属性（方向、换行周期、蛇形角度）在生成时按档位随机决定，不在原型里
type EnemyPrototype struct {
	Health         int
	ShootingPeriod float64
	Shooting       components.ShootingComponent
}

// GameState 存储一局游戏的全局状态
//
// 通过 Context 显式传给每个系统，不是包级单例。
// 同一时刻只有 UI 层（场景）和系统在同一个 goroutine 里修改它。
type GameState struct {
	Enemy EnemyPrototype

	DefaultEnemies   int     // 第 0 波敌人数量
	MaxEnemies       int     // 单波敌人数量上限
	EnemiesMoveSpeed float64 // 敌人基础速度

	CurrentWave    int // 已生成的波次数，开局为 0
	SpawnedEnemies int // 最近一波生成的敌人数量，0 表示尚未生成或已被重置
	Points         int // 击杀得分

	Mode Mode
}

// NewGameState 根据配置创建游戏状态，初始处于菜单模式
func NewGameState(cfg *config.SimulationConfig) *GameState {
	return &GameState{
		Enemy: EnemyPrototype{
			Health:         cfg.Game.EnemyHealth,
			ShootingPeriod: cfg.Enemy.ShootingPeriod,
			Shooting: components.ShootingComponent{
				Bullet: components.BulletPrototype{
					MovementSpeed: cfg.Enemy.BulletSpeed,
					IsEnemyBullet: true,
				},
				Explosion: components.ExplosionPrototype{
					DestroyTime: cfg.Enemy.ExplosionTime,
				},
			},
		},
		DefaultEnemies:   cfg.Game.DefaultEnemies,
		MaxEnemies:       cfg.Game.MaxEnemies,
		EnemiesMoveSpeed: cfg.Game.EnemiesMoveSpeed,
		Mode:             ModeMenu,
	}
}

// IsPlaying 玩法系统是否应该推进
func (gs *GameState) IsPlaying() bool {
	return gs.Mode == ModePlay
}

// IsPaused 是否处于暂停
func (gs *GameState) IsPaused() bool {
	return gs.Mode == ModePaused
}

// SetPaused 切换暂停状态
// 菜单和死亡模式下忽略（暂停键只在游戏中有效）
func (gs *GameState) SetPaused(paused bool) {
	if gs.Mode == ModeMenu || gs.Mode == ModeDead {
		return
	}
	if paused {
		gs.Mode = ModePaused
	} else {
		gs.Mode = ModePlay
	}
}

// TogglePause 在暂停和游戏之间切换
func (gs *GameState) TogglePause() {
	gs.SetPaused(!gs.IsPaused())
}

// StartGame 从菜单开始新的一局
func (gs *GameState) StartGame() {
	gs.ResetCounters()
	gs.Mode = ModePlay
}

// Retry 死亡后重新开始
// 玩家生命值的恢复由 ResetPlayer 负责（需要访问实体）
func (gs *GameState) Retry() {
	gs.ResetCounters()
	gs.Mode = ModePlay
}

// GoMenu 返回菜单
func (gs *GameState) GoMenu() {
	gs.ResetCounters()
	gs.Mode = ModeMenu
}

// Die 玩家死亡，只在游戏进行中生效
func (gs *GameState) Die() bool {
	if gs.Mode != ModePlay {
		return false
	}
	gs.Mode = ModeDead
	return true
}

// ResetCounters 清零波次、生成计数和得分
func (gs *GameState) ResetCounters() {
	gs.CurrentWave = 0
	gs.SpawnedEnemies = 0
	gs.Points = 0
}

// AddPoints 增加得分
func (gs *GameState) AddPoints(amount int) {
	gs.Points += amount
}
