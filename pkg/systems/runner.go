package systems

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/decker502/starfall/pkg/game"
)

// Phase 决定一个 tick 内系统的执行顺序
type Phase int

const (
	PhaseInput     Phase = iota // 0: 读取输入
	PhaseMovement               // 1: 玩家、敌人、子弹移动
	PhaseShooting               // 2: 生成子弹
	PhaseCollision              // 3: 碰撞与伤害
	PhaseLifetime               // 4: 生命值、爆炸、背景、波次
)

// String 返回阶段名称（用于日志）
func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseMovement:
		return "movement"
	case PhaseShooting:
		return "shooting"
	case PhaseCollision:
		return "collision"
	case PhaseLifetime:
		return "lifetime"
	default:
		return "unknown"
	}
}

// System 每个模拟系统实现的接口
// Update 期间的结构性修改必须录制到 ctx.Buffer，不能直接修改 ctx.EM
type System interface {
	Name() string
	Phase() Phase
	Update(ctx *game.Context, deltaTime float64) error
}

// Gated 可选接口：系统自行决定在当前模式下是否运行
// 未实现时只在 ModePlay 下运行
type Gated interface {
	ShouldRun(gs *game.GameState) bool
}

// ErrPassPanicked 系统在 Update 中 panic
var ErrPassPanicked = errors.New("system panicked")

// Runner 按阶段顺序执行系统，每个系统结束后回放命令缓冲
//
// 某个系统返回错误或 panic 时，丢弃它录制的修改并中止本 tick 剩余的系统；
// 下一个 tick 正常执行。
type Runner struct {
	ctx     *game.Context
	systems []System
	sorted  bool
	ticks   uint64
}

// NewRunner 创建绑定到模拟上下文的调度器
func NewRunner(ctx *game.Context) *Runner {
	return &Runner{
		ctx:     ctx,
		systems: make([]System, 0, 16),
	}
}

// Register 注册系统；同一阶段内按注册顺序执行
func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// Systems 返回排序后的系统列表
func (r *Runner) Systems() []System {
	r.ensureSorted()
	return r.systems
}

// Ticks 返回已执行的 tick 数（包括被中止的 tick）
func (r *Runner) Ticks() uint64 {
	return r.ticks
}

// Tick 执行一个模拟步
func (r *Runner) Tick(deltaTime float64) error {
	r.ensureSorted()
	r.ticks++

	for _, s := range r.systems {
		if !shouldRun(s, r.ctx.Game) {
			continue
		}

		if err := r.runPass(s, deltaTime); err != nil {
			discarded := r.ctx.Buffer.Len()
			r.ctx.Buffer.Reset()
			r.ctx.Logger.Error("[Runner] tick 中止",
				zap.String("system", s.Name()),
				zap.Stringer("phase", s.Phase()),
				zap.Uint64("tick", r.ticks),
				zap.Int("discarded", discarded),
				zap.Error(err))
			return fmt.Errorf("tick %d: %s: %w", r.ticks, s.Name(), err)
		}

		result := r.ctx.Buffer.Playback()
		if result.Stale > 0 {
			r.ctx.Logger.Debug("[Runner] 丢弃过期引用",
				zap.String("system", s.Name()),
				zap.Int("stale", result.Stale))
		}
	}
	return nil
}

func (r *Runner) runPass(s System, deltaTime float64) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrPassPanicked, rec)
		}
	}()
	return s.Update(r.ctx, deltaTime)
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}

func shouldRun(s System, gs *game.GameState) bool {
	if g, ok := s.(Gated); ok {
		return g.ShouldRun(gs)
	}
	return gs.IsPlaying()
}
