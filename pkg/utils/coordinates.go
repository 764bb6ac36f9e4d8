// Package utils 提供场景绘制用的工具函数
//
// coordinates.go 处理世界坐标与屏幕坐标的转换。
//
// # 坐标系统
//
//   - 世界坐标：模拟使用的单位，原点在摄像机中心，Y 轴向上
//   - 屏幕坐标：像素，原点在窗口左上角，Y 轴向下
//
// 转换公式：
//
//	screenX = (worldX - MinX) * scale + offsetX
//	screenY = (MaxY - worldY) * scale + offsetY
//
// scale 取宽、高两个方向中较小的缩放比，场地居中，两侧留黑边。
package utils

import (
	"errors"

	"github.com/decker502/starfall/pkg/game"
)

// ErrEmptyViewport 屏幕尺寸或场地尺寸为 0
var ErrEmptyViewport = errors.New("viewport has no area")

// Viewport 把场地映射到屏幕
type Viewport struct {
	field   game.Bounds
	scale   float64
	offsetX float64
	offsetY float64
}

// NewViewport 创建视口
func NewViewport(field game.Bounds, screenWidth, screenHeight int) (*Viewport, error) {
	if screenWidth <= 0 || screenHeight <= 0 || field.Width() <= 0 || field.Height() <= 0 {
		return nil, ErrEmptyViewport
	}

	scaleX := float64(screenWidth) / field.Width()
	scaleY := float64(screenHeight) / field.Height()
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	return &Viewport{
		field:   field,
		scale:   scale,
		offsetX: (float64(screenWidth) - field.Width()*scale) / 2,
		offsetY: (float64(screenHeight) - field.Height()*scale) / 2,
	}, nil
}

// Scale 每个世界单位对应的像素数
func (v *Viewport) Scale() float64 {
	return v.scale
}

// WorldToScreen 世界坐标 → 屏幕坐标
func (v *Viewport) WorldToScreen(worldX, worldY float64) (screenX, screenY float64) {
	screenX = (worldX-v.field.MinX)*v.scale + v.offsetX
	screenY = (v.field.MaxY-worldY)*v.scale + v.offsetY
	return screenX, screenY
}

// ScreenToWorld 屏幕坐标 → 世界坐标
func (v *Viewport) ScreenToWorld(screenX, screenY float64) (worldX, worldY float64) {
	worldX = (screenX-v.offsetX)/v.scale + v.field.MinX
	worldY = v.field.MaxY - (screenY-v.offsetY)/v.scale
	return worldX, worldY
}

// CenteredRect 以世界坐标 (x, y) 为中心、宽高为 w×h 的矩形，返回屏幕上的左上角和尺寸
func (v *Viewport) CenteredRect(x, y, w, h float64) (left, top, width, height float64) {
	cx, cy := v.WorldToScreen(x, y)
	width = w * v.scale
	height = h * v.scale
	return cx - width/2, cy - height/2, width, height
}
