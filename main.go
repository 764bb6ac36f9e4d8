package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/decker502/starfall/pkg/app"
	"github.com/decker502/starfall/pkg/config"
	"github.com/decker502/starfall/pkg/embedded"
)

// 环境变量（可写在 .env 中），命令行参数优先
const (
	envConfig   = "STARFALL_CONFIG"
	envLogLevel = "STARFALL_LOG_LEVEL"
	envSeed     = "STARFALL_SEED"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "starfall: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env 不存在时使用默认值
	_ = godotenv.Load()

	configPath := flag.String("config", os.Getenv(envConfig), "模拟配置文件路径（.yaml/.toml），为空使用内置默认配置")
	logLevel := flag.String("log-level", os.Getenv(envLogLevel), "日志级别（debug/info/warn/error），覆盖配置文件")
	seedFlag := flag.String("seed", os.Getenv(envSeed), "随机种子，覆盖配置文件；0 表示按时间取种")
	headless := flag.Int("headless", 0, "不打开窗口，运行指定 tick 数后输出摘要")
	flag.Parse()

	embedded.Init(dataFS)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *seedFlag != "" {
		seed, err := strconv.ParseInt(*seedFlag, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q: %w", *seedFlag, err)
		}
		cfg.Game.Seed = seed
	}

	logger, err := app.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("[Main] 配置加载完成",
		zap.String("config", configSource(*configPath)),
		zap.Int64("seed", cfg.Game.Seed),
		zap.String("breachPenalty", string(cfg.Rules.BreachPenalty)),
		zap.Bool("laneLeaderFiring", cfg.Rules.LaneLeaderFiring))

	if *headless > 0 {
		summary, err := app.RunHeadless(app.Config{Simulation: cfg, Logger: logger}, *headless)
		if err != nil {
			return err
		}
		fmt.Println(summary)
		return nil
	}

	gameApp, err := app.NewApp(app.Config{Simulation: cfg, Logger: logger})
	if err != nil {
		return fmt.Errorf("游戏初始化失败: %w", err)
	}

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("Starfall")
	ebiten.SetTPS(cfg.Game.TicksPerSecond)

	if err := ebiten.RunGame(gameApp); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

func loadConfig(path string) (*config.SimulationConfig, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}

func configSource(path string) string {
	if path == "" {
		return config.DefaultConfigPath + " (embedded)"
	}
	return path
}
