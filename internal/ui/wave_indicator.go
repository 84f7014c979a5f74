// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	BossColor        color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

func NewWaveIndicator(x, y int, clr color.RGBA) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            clr,
		BossColor:        color.RGBA{R: 255, G: 71, B: 87, A: 255},
		OutlineColor:     color.RGBA{A: 255},
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw пишет номер волны; волны с боссом выделяются цветом.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave int, boss bool) {
	if wave <= 0 {
		return
	}
	label := "Wave " + toRoman(wave)

	textColor := i.Color
	if boss {
		textColor = i.BossColor
	}

	bounds := text.BoundString(DefaultFace, label)
	x := i.X - bounds.Dx()/2
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, DefaultFace, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, DefaultFace, x, i.Y, textColor)
}
