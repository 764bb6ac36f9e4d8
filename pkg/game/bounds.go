package game

import (
	"sync"

	"github.com/decker502/starfall/pkg/config"
)

// Bounds 场地矩形（世界坐标，Y 向上）
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Width 场地宽度
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height 场地高度
func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// ContainsX x 是否在水平范围内（含边界）
func (b Bounds) ContainsX(x float64) bool {
	return x >= b.MinX && x <= b.MaxX
}

// ClampX 把 x 限制在水平范围内
func (b Bounds) ClampX(x float64) float64 {
	if x < b.MinX {
		return b.MinX
	}
	if x > b.MaxX {
		return b.MaxX
	}
	return x
}

// BoundsProvider 提供当前场地边界
type BoundsProvider interface {
	Bounds() Bounds
}

// FixedBounds 固定边界，测试和无头运行使用
type FixedBounds Bounds

// Bounds 实现 BoundsProvider
func (f FixedBounds) Bounds() Bounds {
	return Bounds(f)
}

// CameraBounds 由正交摄像机参数推导场地边界
//
// 半高 = OrthographicSize，半宽 = OrthographicSize × Aspect，以摄像机中心为原点。
// 首次调用时计算，之后进程生命周期内返回缓存值。
type CameraBounds struct {
	camera config.CameraConfig

	once   sync.Once
	bounds Bounds
}

// NewCameraBounds 创建摄像机边界提供者
func NewCameraBounds(camera config.CameraConfig) *CameraBounds {
	return &CameraBounds{camera: camera}
}

// Bounds 实现 BoundsProvider
func (c *CameraBounds) Bounds() Bounds {
	c.once.Do(func() {
		halfHeight := c.camera.OrthographicSize
		halfWidth := halfHeight * c.camera.Aspect
		c.bounds = Bounds{
			MinX: c.camera.CenterX - halfWidth,
			MaxX: c.camera.CenterX + halfWidth,
			MinY: c.camera.CenterY - halfHeight,
			MaxY: c.camera.CenterY + halfHeight,
		}
	})
	return c.bounds
}
