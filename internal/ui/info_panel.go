// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-social-defense/internal/app"
	"go-social-defense/internal/config"
	"go-social-defense/internal/types"
)

const (
	panelHeight    = 120
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 16
	columnSpacing  = 220
	upgradeWidth   = 170
	upgradeHeight  = 28
)

// InfoPanel выезжает снизу и показывает выбранного друга с кнопками улучшений.
type InfoPanel struct {
	IsVisible    bool
	TargetFriend types.EntityID
	bottom       float64
	currentY     float64
	targetY      float64
	buttons      []*Button
	upgradeIDs   []string
}

// NewInfoPanel создаёт скрытую панель с нижним краем на bottom.
func NewInfoPanel(bottom int) *InfoPanel {
	return &InfoPanel{
		bottom:   float64(bottom),
		currentY: float64(bottom),
		targetY:  float64(bottom),
	}
}

func (p *InfoPanel) SetTarget(id types.EntityID) {
	p.TargetFriend = id
	p.IsVisible = true
	p.targetY = p.bottom - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = p.bottom
}

// Update двигает панель к целевой позиции.
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY >= p.bottom {
		p.IsVisible = false
		p.TargetFriend = 0
	}
}

// Contains: находится ли (x, y) над видимой панелью.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && float64(y) >= p.currentY && float64(y) < p.bottom
}

// Click возвращает улучшение, чья кнопка под (x, y).
func (p *InfoPanel) Click(x, y int) (string, bool) {
	if !p.IsVisible {
		return "", false
	}
	for i, b := range p.buttons {
		if b.IsClicked(x, y) {
			return p.upgradeIDs[i], true
		}
	}
	return "", false
}

func (p *InfoPanel) Draw(screen *ebiten.Image, snap *app.Snapshot, codex []app.CodexEntry) {
	if !p.IsVisible && p.currentY >= p.bottom {
		return
	}

	rect := image.Rect(panelMargin, int(p.currentY)+panelMargin, config.ScreenWidth-panelMargin, int(p.currentY)+panelHeight-panelMargin)
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	vector.DrawFilledRect(screen, x, y, float32(rect.Dx()), float32(rect.Dy()), panelColor, true)
	vector.StrokeRect(screen, x, y, float32(rect.Dx()), float32(rect.Dy()), 2, borderColor, true)

	var friend *app.FriendView
	for i := range snap.Friends {
		if snap.Friends[i].ID == p.TargetFriend {
			friend = &snap.Friends[i]
		}
	}
	if friend == nil {
		p.buttons = nil
		return
	}
	var entry *app.CodexEntry
	for i := range codex {
		if codex[i].ID == friend.TypeID {
			entry = &codex[i]
		}
	}

	p.drawFriendInfo(screen, friend, entry, rect.Min.X+15, rect.Min.Y+lineHeight+4)
	p.layoutUpgrades(rect, friend, entry, snap.Currency)

	cx, cy := ebiten.CursorPosition()
	for _, b := range p.buttons {
		b.Draw(screen, b.Contains(cx, cy))
	}
}

func (p *InfoPanel) drawFriendInfo(screen *ebiten.Image, f *app.FriendView, entry *app.CodexEntry, x, y int) {
	text.Draw(screen, f.Name, DefaultFace, x, y, config.TextLightColor)
	y += lineHeight

	text.Draw(screen, fmt.Sprintf("Damage: %g", f.Damage), DefaultFace, x, y, whiteColor)
	text.Draw(screen, fmt.Sprintf("Range: %g", f.Range), DefaultFace, x+columnSpacing/2, y, whiteColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Fire rate: %gms", f.FireRate), DefaultFace, x, y, whiteColor)
	if f.MaxLevel > 0 {
		text.Draw(screen, fmt.Sprintf("Experience: %d/%d", f.Level, f.MaxLevel), DefaultFace, x+columnSpacing/2, y, whiteColor)
	}
	y += lineHeight

	if entry != nil {
		if len(entry.Counters) > 0 {
			text.Draw(screen, "Strong: "+strings.Join(entry.Counters, ", "), DefaultFace, x, y, counterColor)
			y += lineHeight
		}
		if len(entry.ResistedBy) > 0 {
			text.Draw(screen, "Weak: "+strings.Join(entry.ResistedBy, ", "), DefaultFace, x, y, resistColor)
			y += lineHeight
		}
	}
	if len(f.Upgrades) > 0 {
		text.Draw(screen, "Upgrades: "+strings.Join(f.Upgrades, ", "), DefaultFace, x, y, config.UpgradeColor)
	}
}

// layoutUpgrades пересобирает кнопки улучшений в правой колонке.
func (p *InfoPanel) layoutUpgrades(rect image.Rectangle, f *app.FriendView, entry *app.CodexEntry, currency int) {
	p.buttons = p.buttons[:0]
	p.upgradeIDs = p.upgradeIDs[:0]
	if entry == nil {
		return
	}

	x := rect.Max.X - upgradeWidth - 15
	y := rect.Min.Y + 10
	for _, up := range entry.Upgrades {
		owned := false
		for _, id := range f.Upgrades {
			owned = owned || id == up.ID
		}
		b := NewButton(image.Rect(x, y, x+upgradeWidth, y+upgradeHeight-4), fmt.Sprintf("%s $%d", up.Name, up.Cost))
		b.Disabled = owned || len(f.Upgrades) >= config.MaxUpgrades || up.Cost > currency
		if owned {
			b.BgColor = selectedColor
		}
		p.buttons = append(p.buttons, b)
		p.upgradeIDs = append(p.upgradeIDs, up.ID)
		y += upgradeHeight
	}
}
