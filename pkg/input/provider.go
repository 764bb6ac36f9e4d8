// Package input 把平台输入转换成模拟核心使用的输入快照
//
// 模拟核心只认识 Provider：每个 tick 调用一次 Poll。
// 桌面端使用 KeyboardProvider（键盘 + 触摸），测试和无窗口运行使用 ScriptedProvider。
package input

import (
	"github.com/decker502/starfall/pkg/components"
)

// Provider 每个 tick 提供一次输入快照
// Fire 在每次按键只出现在一个快照里
type Provider interface {
	Poll() components.InputComponent
}

// Commands 本帧的界面指令（与玩法输入分开，由场景处理）
type Commands struct {
	Start       bool // 开始游戏
	TogglePause bool // 暂停/继续
	Retry       bool // 死亡后重试
	Menu        bool // 返回菜单
}

// Any 是否有任何指令
func (c Commands) Any() bool {
	return c.Start || c.TogglePause || c.Retry || c.Menu
}

// CommandSource 提供界面指令
type CommandSource interface {
	Commands() Commands
}
