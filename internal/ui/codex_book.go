// internal/ui/codex_book.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-social-defense/internal/app"
)

var (
	counterColor = color.RGBA{R: 0, G: 255, B: 65, A: 255}
	resistColor  = color.RGBA{R: 255, G: 71, B: 87, A: 255}
)

// CodexBook отображает окно со справкой по друзьям: против кого сильны и слабы.
type CodexBook struct {
	IsVisible bool
	X, Y      float32
	Width     float32
	Height    float32
	entries   []app.CodexEntry
}

func NewCodexBook(x, y, width, height float32) *CodexBook {
	return &CodexBook{X: x, Y: y, Width: width, Height: height}
}

// Toggle переключает видимость. Записи обновляются при каждом открытии,
// чтобы подхватить перезагруженный контент.
func (cb *CodexBook) Toggle(entries []app.CodexEntry) {
	cb.IsVisible = !cb.IsVisible
	if cb.IsVisible {
		cb.entries = entries
	}
}

func (cb *CodexBook) Draw(screen *ebiten.Image, currency int) {
	if !cb.IsVisible {
		return
	}

	vector.DrawFilledRect(screen, cb.X, cb.Y, cb.Width, cb.Height, panelColor, false)
	vector.StrokeRect(screen, cb.X, cb.Y, cb.Width, cb.Height, 2, borderColor, false)
	DrawCentered(screen, "Friend Codex", int(cb.X+cb.Width/2), int(cb.Y+16), whiteColor)

	lineHeight := DefaultFace.Metrics().Height.Ceil()
	x := int(cb.X) + 12
	y := int(cb.Y) + 40
	for _, e := range cb.entries {
		if y+lineHeight*2 > int(cb.Y+cb.Height) {
			break
		}
		nameColor := whiteColor
		if e.Cost > currency {
			nameColor = mutedColor
		}
		text.Draw(screen, fmt.Sprintf("%-8s $%-4d", e.Name, e.Cost), DefaultFace, x, y, nameColor)

		col := x + 110
		if len(e.Counters) > 0 {
			s := "+ " + strings.Join(e.Counters, ", ")
			text.Draw(screen, s, DefaultFace, col, y, counterColor)
			col += text.BoundString(DefaultFace, s).Dx() + 12
		}
		if len(e.ResistedBy) > 0 {
			text.Draw(screen, "- "+strings.Join(e.ResistedBy, ", "), DefaultFace, col, y, resistColor)
		}
		y += lineHeight
		text.Draw(screen, e.Description, DefaultFace, x+12, y, mutedColor)
		y += lineHeight + 4
	}
}
