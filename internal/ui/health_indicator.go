// internal/ui/health_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthCols          = 10
	HealthCircleRadius  = 5.0
	HealthCircleSpacing = 3.0
)

var (
	healthHighColor = color.RGBA{R: 0, G: 160, B: 255, A: 255}
	healthLowColor  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	healthEmpty     = color.RGBA{A: 255}
)

// HealthIndicator отображает социальную энергию сеткой кружков.
type HealthIndicator struct {
	X, Y float32
}

func NewHealthIndicator(x, y float32) *HealthIndicator {
	return &HealthIndicator{X: x, Y: y}
}

// filledCells: сколько ячеек закрашено при данном здоровье. Неполная единица
// всё равно рисуется целой ячейкой.
func filledCells(health float64) int {
	return int(math.Ceil(max(0, health)))
}

// Draw рисует индикатор. Пока энергии больше половины, лишняя часть синяя.
func (i *HealthIndicator) Draw(screen *ebiten.Image, health float64, maxHealth int) {
	filled := filledCells(health)
	half := maxHealth / 2
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)

	for j := 0; j < maxHealth; j++ {
		x := i.X + float32(j%HealthCols)*step + HealthCircleRadius
		y := i.Y + float32(j/HealthCols)*step + HealthCircleRadius

		clr := healthEmpty
		if j < filled {
			clr = healthLowColor
			if filled > half && j < filled-half {
				clr = healthHighColor
			}
		}
		vector.DrawFilledCircle(screen, x, y, HealthCircleRadius, clr, true)
		vector.StrokeCircle(screen, x, y, HealthCircleRadius, 1, whiteColor, true)
	}

	label := fmt.Sprintf("Social energy %g/%d", health, maxHealth)
	text.Draw(screen, label, DefaultFace, int(i.X), int(i.Y)-4, whiteColor)
}
