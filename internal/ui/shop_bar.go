package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"go-social-defense/internal/app"
)

var selectedColor = color.RGBA{R: 180, G: 140, B: 20, A: 255}

// ShopBar: ряд кнопок друзей под полем.
type ShopBar struct {
	buttons  []*Button
	ids      []string
	Selected string
}

// NewShopBar раскладывает по кнопке на каждую запись справочника, начиная с (x, y).
func NewShopBar(x, y, width, height int, entries []app.CodexEntry) *ShopBar {
	sb := &ShopBar{}
	if len(entries) == 0 {
		return sb
	}
	w := width / len(entries)
	for i, e := range entries {
		rect := image.Rect(x+i*w, y, x+(i+1)*w-2, y+height)
		sb.buttons = append(sb.buttons, NewButton(rect, e.Name))
		sb.ids = append(sb.ids, e.ID)
	}
	return sb
}

// Contains: находится ли (x, y) над панелью.
func (sb *ShopBar) Contains(x, y int) bool {
	for _, b := range sb.buttons {
		if b.Contains(x, y) {
			return true
		}
	}
	return false
}

// Click переключает выбор под (x, y).
func (sb *ShopBar) Click(x, y int) {
	for i, b := range sb.buttons {
		if !b.IsClicked(x, y) {
			continue
		}
		if sb.Selected == sb.ids[i] {
			sb.Selected = ""
		} else {
			sb.Selected = sb.ids[i]
		}
		return
	}
}

// SelectIndex выбирает n-й тип друга (цифровые клавиши).
func (sb *ShopBar) SelectIndex(n int) {
	if n >= 0 && n < len(sb.ids) {
		sb.Selected = sb.ids[n]
	}
}

func (sb *ShopBar) Draw(screen *ebiten.Image, costs map[string]int, currency int) {
	cx, cy := ebiten.CursorPosition()
	for i, b := range sb.buttons {
		b.Disabled = costs[sb.ids[i]] > currency
		b.BgColor = color.RGBA{R: 40, G: 60, B: 50, A: 255}
		if sb.ids[i] == sb.Selected {
			b.BgColor = selectedColor
		}
		b.Draw(screen, b.Contains(cx, cy))
	}
}
