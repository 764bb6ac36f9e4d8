// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/decker502/starfall/pkg/config"
	"github.com/decker502/starfall/pkg/game"
	"github.com/decker502/starfall/pkg/input"
	"github.com/decker502/starfall/pkg/scenes"
)

// 逻辑屏幕尺寸（竖屏）
const (
	ScreenWidth  = 480
	ScreenHeight = 800
)

// ErrNoConfig 未提供模拟配置
var ErrNoConfig = errors.New("simulation config is required")

// Config 定义应用启动配置
type Config struct {
	// Simulation 模拟参数（必填）
	Simulation *config.SimulationConfig
	// Logger 为 nil 时不输出日志
	Logger *zap.Logger
	// Provider 玩法输入，为 nil 时使用键盘
	Provider input.Provider
	// Commands 界面指令，为 nil 时使用键盘
	Commands input.CommandSource
	// Bounds 场地边界，为 nil 时由摄像机参数推导
	Bounds game.BoundsProvider
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	scene        *scenes.PlayScene
	logger       *zap.Logger
	deltaTime    float64

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	if cfg.Simulation == nil {
		return nil, ErrNoConfig
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bounds := cfg.Bounds
	if bounds == nil {
		bounds = game.NewCameraBounds(cfg.Simulation.Camera)
	}

	keyboard := input.NewKeyboardProvider(ScreenWidth)
	provider := cfg.Provider
	if provider == nil {
		provider = keyboard
	}
	commands := cfg.Commands
	if commands == nil {
		commands = keyboard
	}

	ctx := game.NewContext(cfg.Simulation, bounds, logger)
	scene, err := scenes.NewPlayScene(ctx, provider, commands, ScreenWidth, ScreenHeight)
	if err != nil {
		return nil, fmt.Errorf("场景初始化失败: %w", err)
	}

	sceneManager := game.NewSceneManager(logger)
	sceneManager.SwitchTo(scene)

	field := ctx.Field()
	logger.Info("[App] 初始化完成",
		zap.Float64("minX", field.MinX),
		zap.Float64("maxX", field.MaxX),
		zap.Float64("minY", field.MinY),
		zap.Float64("maxY", field.MaxY),
		zap.Int("ticksPerSecond", cfg.Simulation.Game.TicksPerSecond))

	return &App{
		sceneManager: sceneManager,
		scene:        scene,
		logger:       logger,
		deltaTime:    1.0 / float64(cfg.Simulation.Game.TicksPerSecond),
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次，固定步长
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.logger.Debug("[App] 退出全屏，3 帧后恢复窗口大小")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.Step()
	return nil
}

// Step 推进一个固定步长（不读取窗口事件，无头运行也使用）
func (a *App) Step() {
	a.sceneManager.Update(a.deltaTime)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右两边填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Scene 返回游戏场景
func (a *App) Scene() *scenes.PlayScene {
	return a.scene
}

// DeltaTime 返回固定步长（秒）
func (a *App) DeltaTime() float64 {
	return a.deltaTime
}
