package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/yes-no-rings/internal/config"
	"github.com/iburimskiy/yes-no-rings/internal/game"
	"github.com/iburimskiy/yes-no-rings/internal/physics"
)

var (
	timerBg  = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	yesBg    = color.RGBA{R: 30, G: 60, B: 30, A: 255}
	noBg     = color.RGBA{R: 60, G: 30, B: 30, A: 255}
	white    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ballFill = color.RGBA{A: 255}
)

// basicfont glyphs are 13px tall; labels are scaled from there
const baseFontSize = 13.0

func (a *app) drawRings(screen *ebiten.Image) {
	for _, r := range a.game.Rings() {
		pts := r.Points()
		c := r.DisplayColor()
		for i := 0; i+1 < len(pts); i++ {
			x1, y1 := a.view.ToScreen(pts[i])
			x2, y2 := a.view.ToScreen(pts[i+1])
			vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), config.RingStrokeWidth, c, true)
		}
	}
}

func (a *app) drawBall(screen *ebiten.Image, b *game.Ball) {
	radius := b.Radius * a.view.PPM

	// Trail: translucent discs fading in toward the newest position.
	// A finished ball is drawn without one.
	var trail []cp.Vector
	if !b.Complete {
		trail = b.Trail()
	}
	for i, p := range trail {
		alpha := uint8(255 * float64(i) / config.TrailLength * 0.1)
		tc := b.Palette.Trail
		x, y := a.view.ToScreen(p)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), color.NRGBA{R: tc.R, G: tc.G, B: tc.B, A: alpha}, true)
	}

	x, y := a.view.ToScreen(b.Position())
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), ballFill, true)
	edge := math.Max(1, radius*config.BallEdgeStrokeFrac)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(radius), float32(edge), b.Palette.Edge, true)

	drawCenteredText(screen, b.Label, x, y, radius*2, b.Palette.Text)
}

func (a *app) drawExplosions(screen *ebiten.Image) {
	for _, e := range a.game.Explosions() {
		for _, p := range e.Particles {
			x, y := a.view.ToScreen(p.Pos)
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(p.Radius), e.Color, false)
		}
	}
}

func (a *app) drawTimer(screen *ebiten.Image) {
	label := game.FormatTimer(a.game.TimeLeft())
	cx, cy := a.view.Width/2, a.view.Height/1.2
	w, h := textSize(label, 30)
	drawBox(screen, cx-w/2-8, cy-h/2-8, w+16, h+16, timerBg)
	drawCenteredText(screen, label, cx, cy, 30, white)
}

func (a *app) drawScores(screen *ebiten.Image) {
	y := a.view.Height / 3.35

	yes := fmt.Sprintf("Yes:%d", a.game.Score(physics.Yes))
	w, h := textSize(yes, 32)
	left := a.view.Width/2 - 90
	drawBox(screen, left-8, y-h/2-4, w+16, h+8, yesBg)
	drawCenteredText(screen, yes, left+w/2, y, 32, game.PaletteOf(physics.Yes).Text)

	no := fmt.Sprintf("No:%d", a.game.Score(physics.No))
	w, h = textSize(no, 32)
	right := a.view.Width/2 + 90
	drawBox(screen, right-w-8, y-h/2-4, w+16, h+8, noBg)
	drawCenteredText(screen, no, right-w/2, y, 32, game.PaletteOf(physics.No).Text)
}

func (a *app) drawStatus(screen *ebiten.Image) {
	status := fmt.Sprintf("fps: %.0f | touches yes %d no %d", ebiten.ActualFPS(),
		a.game.Ball(physics.Yes).Touches, a.game.Ball(physics.No).Touches)
	if a.game.Paused() {
		status += " | Paused - press 0 to resume"
	}
	ebitenutil.DebugPrintAt(screen, status, 4, 4)
}

func drawBox(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

// textSize is the pixel size of s drawn at the given font size.
func textSize(s string, size float64) (float64, float64) {
	b := text.BoundString(basicfont.Face7x13, s)
	scale := size / baseFontSize
	return float64(b.Dx()) * scale, float64(b.Dy()) * scale
}

func drawCenteredText(screen *ebiten.Image, s string, cx, cy, size float64, c color.Color) {
	b := text.BoundString(basicfont.Face7x13, s)
	scale := size / baseFontSize

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Min.X)-float64(b.Dx())/2, -float64(b.Min.Y)-float64(b.Dy())/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c)
	text.DrawWithOptions(screen, s, basicfont.Face7x13, op)
}
