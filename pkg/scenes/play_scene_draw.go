package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/starfall/pkg/components"
	"github.com/decker502/starfall/pkg/ecs"
	"github.com/decker502/starfall/pkg/game"
	"github.com/decker502/starfall/pkg/utils"
)

// 调试绘制的尺寸（世界单位）
const (
	shipSize      = 0.8
	bulletWidth   = 0.15
	bulletHeight  = 0.4
	explosionSize = 1.0
)

var (
	backgroundColor = color.RGBA{R: 10, G: 12, B: 30, A: 255}
	tileColor       = color.RGBA{R: 24, G: 28, B: 60, A: 255}
	enemyColor      = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	friendlyColor   = color.RGBA{R: 250, G: 240, B: 120, A: 255}
	hostileColor    = color.RGBA{R: 255, G: 120, B: 40, A: 255}
	// 玩家按生命值档位换色：3 绿、2 黄、1 红
	playerLevelColors = map[int]color.RGBA{
		3: {R: 80, G: 220, B: 120, A: 255},
		2: {R: 230, G: 200, B: 60, A: 255},
		1: {R: 230, G: 80, B: 60, A: 255},
	}
)

// drawRect 一个待绘制的矩形（屏幕坐标）
type drawRect struct {
	X, Y, W, H float64
	Color      color.RGBA
}

// Draw 绘制调试画面：背景块、敌人、子弹、爆炸、玩家和状态栏
func (s *PlayScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	for _, r := range buildDrawList(s.ctx.EM, s.viewport) {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), r.Color, false)
	}
	ebitenutil.DebugPrintAt(screen, s.statusText(), 8, 8)
}

// buildDrawList 按绘制顺序收集矩形（先画的在下层）
func buildDrawList(em *ecs.EntityManager, v *utils.Viewport) []drawRect {
	var rects []drawRect
	add := func(x, y, w, h float64, c color.RGBA) {
		left, top, width, height := v.CenteredRect(x, y, w, h)
		rects = append(rects, drawRect{X: left, Y: top, W: width, H: height, Color: c})
	}

	tiles := ecs.Query2[*components.BackgroundTileComponent, *components.PositionComponent](em)
	for i := range tiles.Entities {
		add(tiles.B[i].X, tiles.B[i].Y, tiles.A[i].Width, tiles.A[i].Height, tileColor)
	}

	enemies := ecs.Query2[*components.EnemyComponent, *components.PositionComponent](em)
	for i := range enemies.Entities {
		add(enemies.B[i].X, enemies.B[i].Y, shipSize, shipSize, enemyColor)
	}

	bullets := ecs.Query2[*components.BulletComponent, *components.PositionComponent](em)
	for i := range bullets.Entities {
		c := friendlyColor
		if bullets.A[i].IsEnemyBullet {
			c = hostileColor
		}
		add(bullets.B[i].X, bullets.B[i].Y, bulletWidth, bulletHeight, c)
	}

	explosions := ecs.Query2[*components.ExplosionComponent, *components.PositionComponent](em)
	for i := range explosions.Entities {
		e := explosions.A[i]
		// 随时间缩小并变淡
		remaining := 1.0
		if e.DestroyTime > 0 {
			remaining = 1 - e.DestroyTimeDynamic/e.DestroyTime
		}
		size := explosionSize * (0.4 + 0.6*remaining)
		c := color.RGBA{R: 255, G: 200, B: 80, A: uint8(80 + 175*remaining)}
		add(explosions.B[i].X, explosions.B[i].Y, size, size, c)
	}

	players := ecs.Query3[*components.PlayerComponent, *components.HealthComponent, *components.PositionComponent](em)
	for i := range players.Entities {
		add(players.C[i].X, players.C[i].Y, shipSize, shipSize, playerLevelColors[players.B[i].Level()])
	}
	return rects
}

func (s *PlayScene) statusText() string {
	gs := s.ctx.Game
	switch gs.Mode {
	case game.ModeMenu:
		return "STARFALL\nEnter: start"
	case game.ModePaused:
		return fmt.Sprintf("PAUSED  wave %d  points %d\nEsc: resume  M: menu", gs.CurrentWave, gs.Points)
	case game.ModeDead:
		return fmt.Sprintf("GAME OVER  wave %d  points %d\nR: retry  M: menu", gs.CurrentWave, gs.Points)
	default:
		return fmt.Sprintf("wave %d  points %d  hp %d", gs.CurrentWave, gs.Points, s.playerHealth())
	}
}

func (s *PlayScene) playerHealth() int {
	view := ecs.Query2[*components.PlayerComponent, *components.HealthComponent](s.ctx.EM)
	if view.Len() == 0 {
		return 0
	}
	return view.B[0].Health
}
