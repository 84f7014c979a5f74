// internal/ui/one_shot_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// OneShot: одноразовая способность волны для индикатора.
type OneShot struct {
	Label string
	Used  bool
}

var (
	oneShotReady = color.RGBA{R: 0, G: 160, B: 255, A: 255}
	oneShotUsed  = color.RGBA{R: 60, G: 60, B: 60, A: 255}
)

// OneShotIndicator показывает, какие разовые способности ещё доступны в этой волне.
type OneShotIndicator struct {
	X, Y    float32
	Width   float32
	Height  float32
	Spacing float32
}

func NewOneShotIndicator(x, y, width, height float32) *OneShotIndicator {
	return &OneShotIndicator{X: x, Y: y, Width: width, Height: height, Spacing: 6}
}

func (i *OneShotIndicator) Draw(screen *ebiten.Image, shots []OneShot) {
	if len(shots) == 0 {
		return
	}
	cell := (i.Width - i.Spacing*float32(len(shots)-1)) / float32(len(shots))
	x := i.X
	for _, s := range shots {
		fill := oneShotReady
		if s.Used {
			fill = oneShotUsed
		}
		vector.DrawFilledRect(screen, x, i.Y, cell, i.Height, fill, false)
		vector.StrokeRect(screen, x, i.Y, cell, i.Height, borderWidth, whiteColor, false)
		DrawCentered(screen, s.Label, int(x+cell/2), int(i.Y+i.Height/2), whiteColor)
		x += cell + i.Spacing
	}
}
