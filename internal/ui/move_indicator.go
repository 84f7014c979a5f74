// internal/ui/move_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	moveActiveColor   = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	moveInactiveColor = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	strikeColor       = color.RGBA{R: 255, G: 71, B: 87, A: 255}
)

// MoveIndicator показывает, ждёт ли друг перемещения.
type MoveIndicator struct {
	X, Y float32
}

func NewMoveIndicator(x, y float32) *MoveIndicator {
	return &MoveIndicator{X: x, Y: y}
}

func (i *MoveIndicator) Draw(screen *ebiten.Image, moving bool) {
	label := "MOVE"
	clr := moveInactiveColor
	if moving {
		clr = moveActiveColor
	}

	bounds := text.BoundString(DefaultFace, label)
	x := i.X - float32(bounds.Dx())/2
	y := i.Y + float32(bounds.Dy())/2
	text.Draw(screen, label, DefaultFace, int(x), int(y), clr)

	// Если режим неактивен, зачёркиваем надпись
	if !moving {
		vector.StrokeLine(screen, x, y, x+float32(bounds.Dx()), y-float32(bounds.Dy()), 1, strikeColor, true)
	}
}
