package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/starfall/pkg/components"
)

// KeyboardProvider 从 ebiten 读取键盘和触摸输入
//
// 键位：←/→ 或 A/D 移动，空格射击；Enter 开始，Esc/P 暂停，R 重试，M 返回菜单。
// 触摸：按住屏幕左/右半边移动，新的触摸点射击。
type KeyboardProvider struct {
	// ScreenWidth 逻辑屏幕宽度，用于判断触摸在左半边还是右半边
	ScreenWidth int
}

// NewKeyboardProvider 创建键盘输入
func NewKeyboardProvider(screenWidth int) *KeyboardProvider {
	return &KeyboardProvider{ScreenWidth: screenWidth}
}

// Poll 读取本帧的玩法输入
func (p *KeyboardProvider) Poll() components.InputComponent {
	var snapshot components.InputComponent

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		snapshot.AxisX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		snapshot.AxisX++
	}
	snapshot.Fire = inpututil.IsKeyJustPressed(ebiten.KeySpace)

	// 没有键盘输入时检查触摸（移动设备）
	if snapshot.AxisX == 0 {
		snapshot.AxisX = p.touchAxis()
	}
	if !snapshot.Fire {
		snapshot.Fire = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	}
	return snapshot
}

func (p *KeyboardProvider) touchAxis() float64 {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) == 0 || p.ScreenWidth <= 0 {
		return 0
	}
	x, _ := ebiten.TouchPosition(touchIDs[0])
	return AxisFromPointer(x, p.ScreenWidth)
}

// Commands 读取本帧的界面指令
func (p *KeyboardProvider) Commands() Commands {
	return Commands{
		Start:       inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP),
		Retry:       inpututil.IsKeyJustPressed(ebiten.KeyR),
		Menu:        inpututil.IsKeyJustPressed(ebiten.KeyM),
	}
}

// AxisFromPointer 把指针横坐标换算成移动方向
// 左半边 -1，右半边 +1，正中间 0
func AxisFromPointer(x, screenWidth int) float64 {
	half := screenWidth / 2
	switch {
	case x < half:
		return -1
	case x > half:
		return 1
	default:
		return 0
	}
}
