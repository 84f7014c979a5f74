// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace: растровый шрифт для всего интерфейса.
var DefaultFace font.Face = basicfont.Face7x13

var (
	panelColor  = color.RGBA{R: 25, G: 35, B: 45, A: 230}
	borderColor = color.RGBA{R: 0, G: 255, B: 65, A: 255}
	mutedColor  = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	whiteColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Button представляет собой кликабельную прямоугольную кнопку.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
	Disabled   bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  whiteColor,
		BgColor:    color.RGBA{R: 40, G: 60, B: 50, A: 255},
		HoverColor: color.RGBA{R: 60, G: 100, B: 70, A: 255},
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked: клик в (x, y) по активной кнопке.
func (b *Button) IsClicked(x, y int) bool {
	return !b.Disabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку; hovered подсвечивает фон.
func (b *Button) Draw(screen *ebiten.Image, hovered bool) {
	bg := b.BgColor
	if hovered && !b.Disabled {
		bg = b.HoverColor
	}
	fg := b.TextColor
	if b.Disabled {
		fg = mutedColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 1, borderColor, true)

	DrawCentered(screen, b.Text, b.Rect.Min.X+b.Rect.Dx()/2, b.Rect.Min.Y+b.Rect.Dy()/2, fg)
}

var whiteSrc *ebiten.Image

// whitePixel is the 1x1 source image for DrawTriangles fills.
func whitePixel() *ebiten.Image {
	if whiteSrc == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(whiteColor)
		whiteSrc = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSrc
}

// DrawCentered пишет строку с центром в (cx, cy).
func DrawCentered(screen *ebiten.Image, s string, cx, cy int, clr color.Color) {
	bounds := text.BoundString(DefaultFace, s)
	x := cx - bounds.Dx()/2
	y := cy + bounds.Dy()/2 - bounds.Max.Y
	text.Draw(screen, s, DefaultFace, x, y, clr)
}
