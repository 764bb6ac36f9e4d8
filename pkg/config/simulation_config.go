package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format 配置文件格式
type Format string

const (
	// FormatYAML YAML 格式（默认，与项目其他配置文件保持一致）
	FormatYAML Format = "yaml"
	// FormatTOML TOML 格式
	FormatTOML Format = "toml"
)

// DefaultConfigPath 嵌入的默认配置路径
const DefaultConfigPath = "data/simulation.yaml"

// BreachPenalty 敌人越过下边界时对玩家的惩罚策略
type BreachPenalty string

const (
	// BreachKill 玩家生命值直接清零
	BreachKill BreachPenalty = "kill"
	// BreachDamage 玩家扣 1 点生命值
	BreachDamage BreachPenalty = "damage"
	// BreachNone 不惩罚，只销毁敌人
	BreachNone BreachPenalty = "none"
)

// SimulationConfig 模拟核心的全部可调参数
type SimulationConfig struct {
	Game       GameConfig       `yaml:"game" toml:"game"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy" toml:"enemy"`
	Camera     CameraConfig     `yaml:"camera" toml:"camera"`
	Background BackgroundConfig `yaml:"background" toml:"background"`
	Rules      RulesConfig      `yaml:"rules" toml:"rules"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
}

// GameConfig 波次与敌人生成参数
type GameConfig struct {
	DefaultEnemies   int               `yaml:"defaultEnemies" toml:"default_enemies"`      // 第 0 波敌人数量
	MaxEnemies       int               `yaml:"maxEnemies" toml:"max_enemies"`              // 单波敌人数量上限
	EnemiesMoveSpeed float64           `yaml:"enemiesMoveSpeed" toml:"enemies_move_speed"` // 敌人基础速度，每波 +0.5
	EnemyHealth      int               `yaml:"enemyHealth" toml:"enemy_health"`            // 敌人生命值
	SpawnOffsetY     float64           `yaml:"spawnOffsetY" toml:"spawn_offset_y"`         // 生成位置相对上边界的偏移
	Seed             int64             `yaml:"seed" toml:"seed"`                           // 随机种子，0 表示按时间取种
	TicksPerSecond   int               `yaml:"ticksPerSecond" toml:"ticks_per_second"`     // 固定步长的帧率
	EnemyTiers       []EnemyTierConfig `yaml:"enemyTiers" toml:"enemy_tiers"`              // 按生成序号划分的敌人属性档位
}

// EnemyTierConfig 敌人属性档位
// 生成序号 >= FromIndex 的敌人使用该档位（取最后一个满足条件的档位）
type EnemyTierConfig struct {
	FromIndex       int     `yaml:"fromIndex" toml:"from_index"`
	LineChangingMin float64 `yaml:"lineChangingMin" toml:"line_changing_min"`
	LineChangingMax float64 `yaml:"lineChangingMax" toml:"line_changing_max"`
	IsNonStop       bool    `yaml:"isNonStop" toml:"is_non_stop"`
	SerpentineMin   float64 `yaml:"serpentineMin" toml:"serpentine_min"`
	SerpentineMax   float64 `yaml:"serpentineMax" toml:"serpentine_max"`
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	MoveSpeed   float64 `yaml:"moveSpeed" toml:"move_speed"`
	Health      int     `yaml:"health" toml:"health"`
	BulletSpeed float64 `yaml:"bulletSpeed" toml:"bullet_speed"`
	StartX      float64 `yaml:"startX" toml:"start_x"`
	StartY      float64 `yaml:"startY" toml:"start_y"`
}

// EnemyConfig 敌人射击与爆炸参数
type EnemyConfig struct {
	ShootingPeriod float64 `yaml:"shootingPeriod" toml:"shooting_period"`
	BulletSpeed    float64 `yaml:"bulletSpeed" toml:"bullet_speed"`
	BulletOffsetY  float64 `yaml:"bulletOffsetY" toml:"bullet_offset_y"` // 子弹生成位置在敌人下方的距离
	ExplosionTime  float64 `yaml:"explosionTime" toml:"explosion_time"`
}

// CameraConfig 正交摄像机参数，用于推导场地边界
type CameraConfig struct {
	OrthographicSize float64 `yaml:"orthographicSize" toml:"orthographic_size"` // 半高
	Aspect           float64 `yaml:"aspect" toml:"aspect"`                      // 宽高比
	CenterX          float64 `yaml:"centerX" toml:"center_x"`
	CenterY          float64 `yaml:"centerY" toml:"center_y"`
}

// BackgroundConfig 背景滚动参数
type BackgroundConfig struct {
	MaxTiles     int     `yaml:"maxTiles" toml:"max_tiles"`
	BottomCorner float64 `yaml:"bottomCorner" toml:"bottom_corner"`
	SpawnCorner  float64 `yaml:"spawnCorner" toml:"spawn_corner"`
	TopCorner    float64 `yaml:"topCorner" toml:"top_corner"`
	StartY       float64 `yaml:"startY" toml:"start_y"`
	ScrollSpeed  float64 `yaml:"scrollSpeed" toml:"scroll_speed"`
	TileWidth    float64 `yaml:"tileWidth" toml:"tile_width"`
	TileHeight   float64 `yaml:"tileHeight" toml:"tile_height"`
}

// RulesConfig 有争议的规则开关
type RulesConfig struct {
	LaneLeaderFiring  bool          `yaml:"laneLeaderFiring" toml:"lane_leader_firing"`  // 只有车道最前方的敌人可以开火
	BreachPenalty     BreachPenalty `yaml:"breachPenalty" toml:"breach_penalty"`         // 敌人越界惩罚
	BreachMargin      float64       `yaml:"breachMargin" toml:"breach_margin"`           // 距下边界多近算越界
	CollisionWorkers  int           `yaml:"collisionWorkers" toml:"collision_workers"`   // 碰撞候选查找的并发数，<=1 表示串行
	ParallelThreshold int           `yaml:"parallelThreshold" toml:"parallel_threshold"` // 子弹数达到该值才启用并发
}

// LoggingConfig 日志参数
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // "json" 或 "console"
}

// Default 返回内置默认配置
func Default() *SimulationConfig {
	return &SimulationConfig{
		Game: GameConfig{
			DefaultEnemies:   5,
			MaxEnemies:       10,
			EnemiesMoveSpeed: 3,
			EnemyHealth:      1,
			SpawnOffsetY:     0,
			TicksPerSecond:   60,
			EnemyTiers:       DefaultEnemyTiers(),
		},
		Player: PlayerConfig{
			MoveSpeed:   6,
			Health:      3,
			BulletSpeed: 10,
			StartX:      0,
			StartY:      -4,
		},
		Enemy: EnemyConfig{
			ShootingPeriod: 2,
			BulletSpeed:    5,
			BulletOffsetY:  1,
			ExplosionTime:  0.5,
		},
		Camera: CameraConfig{
			OrthographicSize: 5,
			Aspect:           0.5625, // 9:16 竖屏
		},
		Background: BackgroundConfig{
			MaxTiles:     3,
			BottomCorner: -15,
			SpawnCorner:  0,
			TopCorner:    10,
			StartY:       0,
			ScrollSpeed:  1,
			TileWidth:    6,
			TileHeight:   10,
		},
		Rules: RulesConfig{
			LaneLeaderFiring:  false,
			BreachPenalty:     BreachKill,
			BreachMargin:      1,
			CollisionWorkers:  1,
			ParallelThreshold: 64,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultEnemyTiers 默认敌人档位
//   - 0-1 号：慢速换行，不摆动
//   - 2-3 号：快速换行，不摆动
//   - 4 号及以后：快速换行，蛇形摆动
func DefaultEnemyTiers() []EnemyTierConfig {
	return []EnemyTierConfig{
		{FromIndex: 0, LineChangingMin: 0.5, LineChangingMax: 0.7},
		{FromIndex: 2, LineChangingMin: 0.3, LineChangingMax: 0.4},
		{FromIndex: 4, LineChangingMin: 0.3, LineChangingMax: 0.4, IsNonStop: true, SerpentineMin: 10, SerpentineMax: 22},
	}
}

// TierFor 返回生成序号 index 对应的档位
// 档位按 FromIndex 升序排列，取最后一个 FromIndex <= index 的档位
func (c *GameConfig) TierFor(index int) EnemyTierConfig {
	tier := c.EnemyTiers[0]
	for _, t := range c.EnemyTiers {
		if t.FromIndex <= index {
			tier = t
		}
	}
	return tier
}

// FormatFromPath 根据文件扩展名推断配置格式
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}

// Load 从文件加载模拟配置
// 未出现在文件中的字段保留默认值
func Load(path string) (*SimulationConfig, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read simulation config %s: %w", path, err)
	}

	cfg, err := LoadFromBytes(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromBytes 解析指定格式的配置内容
func LoadFromBytes(data []byte, format Format) (*SimulationConfig, error) {
	cfg := Default()
	// 文件里给出 enemyTiers 时整体替换默认档位
	cfg.Game.EnemyTiers = nil

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse simulation YAML: %w", err)
		}
	case FormatTOML:
		meta, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse simulation TOML: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown TOML keys: %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}

	if len(cfg.Game.EnemyTiers) == 0 {
		cfg.Game.EnemyTiers = DefaultEnemyTiers()
	}

	if err := validateSimulation(cfg); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	return cfg, nil
}

// validateSimulation 验证配置的有效性
func validateSimulation(cfg *SimulationConfig) error {
	g := cfg.Game
	if g.DefaultEnemies < 1 {
		return fmt.Errorf("game.defaultEnemies must be >= 1, got %d", g.DefaultEnemies)
	}
	if g.MaxEnemies < g.DefaultEnemies {
		return fmt.Errorf("game.maxEnemies (%d) must be >= game.defaultEnemies (%d)", g.MaxEnemies, g.DefaultEnemies)
	}
	if g.EnemiesMoveSpeed <= 0 {
		return fmt.Errorf("game.enemiesMoveSpeed must be positive, got %v", g.EnemiesMoveSpeed)
	}
	if g.EnemyHealth < 1 {
		return fmt.Errorf("game.enemyHealth must be >= 1, got %d", g.EnemyHealth)
	}
	if g.TicksPerSecond < 1 {
		return fmt.Errorf("game.ticksPerSecond must be >= 1, got %d", g.TicksPerSecond)
	}

	for i, tier := range g.EnemyTiers {
		if i == 0 && tier.FromIndex != 0 {
			return fmt.Errorf("game.enemyTiers[0].fromIndex must be 0, got %d", tier.FromIndex)
		}
		if i > 0 && tier.FromIndex <= g.EnemyTiers[i-1].FromIndex {
			return fmt.Errorf("game.enemyTiers must be sorted by fromIndex (index %d)", i)
		}
		if tier.LineChangingMin <= 0 || tier.LineChangingMax < tier.LineChangingMin {
			return fmt.Errorf("game.enemyTiers[%d]: invalid line changing range [%v, %v]", i, tier.LineChangingMin, tier.LineChangingMax)
		}
		if tier.IsNonStop && tier.SerpentineMax < tier.SerpentineMin {
			return fmt.Errorf("game.enemyTiers[%d]: invalid serpentine range [%v, %v]", i, tier.SerpentineMin, tier.SerpentineMax)
		}
	}

	if cfg.Player.Health < 1 {
		return fmt.Errorf("player.health must be >= 1, got %d", cfg.Player.Health)
	}
	if cfg.Player.MoveSpeed <= 0 || cfg.Player.BulletSpeed <= 0 {
		return fmt.Errorf("player speeds must be positive")
	}
	if cfg.Enemy.ShootingPeriod <= 0 || cfg.Enemy.BulletSpeed <= 0 {
		return fmt.Errorf("enemy.shootingPeriod and enemy.bulletSpeed must be positive")
	}
	if cfg.Enemy.ExplosionTime <= 0 {
		return fmt.Errorf("enemy.explosionTime must be positive, got %v", cfg.Enemy.ExplosionTime)
	}
	if cfg.Camera.OrthographicSize <= 0 || cfg.Camera.Aspect <= 0 {
		return fmt.Errorf("camera.orthographicSize and camera.aspect must be positive")
	}

	bg := cfg.Background
	if bg.MaxTiles < 1 {
		return fmt.Errorf("background.maxTiles must be >= 1, got %d", bg.MaxTiles)
	}
	if !(bg.BottomCorner < bg.SpawnCorner && bg.SpawnCorner < bg.TopCorner) {
		return fmt.Errorf("background corners must satisfy bottom < spawn < top, got %v < %v < %v",
			bg.BottomCorner, bg.SpawnCorner, bg.TopCorner)
	}
	if bg.ScrollSpeed <= 0 {
		return fmt.Errorf("background.scrollSpeed must be positive, got %v", bg.ScrollSpeed)
	}

	switch cfg.Rules.BreachPenalty {
	case BreachKill, BreachDamage, BreachNone:
	default:
		return fmt.Errorf("rules.breachPenalty must be one of kill|damage|none, got %q", cfg.Rules.BreachPenalty)
	}
	if cfg.Rules.BreachMargin < 0 {
		return fmt.Errorf("rules.breachMargin must be >= 0, got %v", cfg.Rules.BreachMargin)
	}

	return nil
}
