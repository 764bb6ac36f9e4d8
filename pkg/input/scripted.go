package input

import (
	"sync"

	"github.com/decker502/starfall/pkg/components"
)

// ScriptedProvider 按脚本回放输入，用于测试和无窗口运行
// 脚本用完后返回零值快照；Loop 为 true 时从头循环
type ScriptedProvider struct {
	mu       sync.Mutex
	frames   []components.InputComponent
	commands []Commands
	next     int
	nextCmd  int
	Loop     bool
}

// NewScriptedProvider 创建脚本输入
func NewScriptedProvider(frames ...components.InputComponent) *ScriptedProvider {
	return &ScriptedProvider{frames: frames}
}

// Push 追加输入帧
func (p *ScriptedProvider) Push(frames ...components.InputComponent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frames = append(p.frames, frames...)
}

// PushCommands 追加界面指令帧
func (p *ScriptedProvider) PushCommands(cmds ...Commands) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.commands = append(p.commands, cmds...)
}

// Remaining 返回尚未回放的输入帧数
func (p *ScriptedProvider) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.frames) - p.next
}

// Poll 返回下一帧输入
func (p *ScriptedProvider) Poll() components.InputComponent {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.next >= len(p.frames) {
		if !p.Loop || len(p.frames) == 0 {
			return components.InputComponent{}
		}
		p.next = 0
	}
	frame := p.frames[p.next]
	p.next++
	return frame
}

// Commands 返回下一帧界面指令；指令不循环
func (p *ScriptedProvider) Commands() Commands {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.nextCmd >= len(p.commands) {
		return Commands{}
	}
	cmd := p.commands[p.nextCmd]
	p.nextCmd++
	return cmd
}

// Sweep 生成左右往返、每 fireEvery 帧射击一次的脚本
// 每 period 帧换一次方向；fireEvery <= 0 表示不射击
func Sweep(frames, period, fireEvery int) []components.InputComponent {
	if period <= 0 {
		period = 1
	}
	script := make([]components.InputComponent, frames)
	for i := range script {
		axis := 1.0
		if (i/period)%2 == 1 {
			axis = -1
		}
		script[i] = components.InputComponent{
			AxisX: axis,
			Fire:  fireEvery > 0 && i%fireEvery == 0,
		}
	}
	return script
}
