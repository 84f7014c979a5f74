// internal/ui/progress_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	progressBarWidth  = 118
	progressBarHeight = 12
	milestoneWidth    = 16
	milestoneHeight   = 8
	milestoneGap      = 9
	milestones        = 5
	borderWidth       = 1
)

var progressFill = color.RGBA{R: 0, G: 255, B: 65, A: 200}

// ProgressIndicator показывает прогресс кода в процентах и пять этапов под полосой.
type ProgressIndicator struct {
	X, Y float32
}

func NewProgressIndicator(x, y float32) *ProgressIndicator {
	return &ProgressIndicator{X: x, Y: y}
}

// milestonesReached переводит процент в число закрашенных ячеек.
func milestonesReached(percent int) int {
	return min(milestones, max(0, percent*milestones/100))
}

func (i *ProgressIndicator) Draw(screen *ebiten.Image, percent int) {
	vector.StrokeRect(screen, i.X, i.Y, progressBarWidth, progressBarHeight, borderWidth, whiteColor, true)

	ratio := float32(min(max(percent, 0), 100)) / 100
	if fill := (progressBarWidth - borderWidth*2) * ratio; fill > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fill, progressBarHeight-borderWidth*2, progressFill, true)
	}

	reached := milestonesReached(percent)
	rectY := i.Y + progressBarHeight + 4
	for j := 0; j < milestones; j++ {
		rectX := i.X + float32(j)*(milestoneWidth+milestoneGap)
		vector.StrokeRect(screen, rectX, rectY, milestoneWidth, milestoneHeight, borderWidth, whiteColor, true)
		if j < reached {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, milestoneWidth-borderWidth*2, milestoneHeight-borderWidth*2, progressFill, true)
		}
	}

	text.Draw(screen, fmt.Sprintf("Code %d%%", percent), DefaultFace, int(i.X+progressBarWidth+8), int(i.Y+progressBarHeight), whiteColor)
}
