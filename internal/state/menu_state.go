// internal/state/menu_state.go
package state

import (
	"errors"
	"fmt"
	"image"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-social-defense/internal/config"
	"go-social-defense/internal/storage"
	"go-social-defense/internal/ui"
)

const (
	mapButtonWidth  = 360
	mapButtonHeight = 48
	mapButtonGap    = 12
)

// MenuState: выбор карты и продолжение сохранённой игры.
type MenuState struct {
	sm         *StateMachine
	mapButtons []*ui.Button
	continueBt *ui.Button
	message    string
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

// Enter раскладывает кнопки карт; закрытые карты недоступны.
func (m *MenuState) Enter() {
	g := m.sm.Ctx.Game
	unlocked := g.UnlockedMaps()

	m.mapButtons = m.mapButtons[:0]
	x := (config.ScreenWidth - mapButtonWidth) / 2
	y := 140
	for i, def := range g.Maps() {
		label := fmt.Sprintf("%d. %s", i+1, def.Name)
		if !slices.Contains(unlocked, i) {
			label += " (locked)"
		}
		b := ui.NewButton(image.Rect(x, y, x+mapButtonWidth, y+mapButtonHeight), label)
		b.Disabled = !slices.Contains(unlocked, i)
		m.mapButtons = append(m.mapButtons, b)
		y += mapButtonHeight + mapButtonGap
	}

	m.continueBt = nil
	if m.sm.Ctx.Store != nil {
		m.continueBt = ui.NewButton(image.Rect(x, y+10, x+mapButtonWidth, y+10+mapButtonHeight), "Continue ("+m.sm.Ctx.Slot+")")
	}
}

func (m *MenuState) Update(deltaTime float64) {
	for i := range m.mapButtons {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			m.selectMap(i)
			return
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.continueGame()
		return
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	for i, b := range m.mapButtons {
		if b.IsClicked(x, y) {
			m.selectMap(i)
			return
		}
	}
	if m.continueBt != nil && m.continueBt.IsClicked(x, y) {
		m.continueGame()
	}
}

func (m *MenuState) selectMap(index int) {
	if err := m.sm.Ctx.Game.SelectMap(index); err != nil {
		m.message = err.Error()
		return
	}
	m.sm.SetState(NewGameState(m.sm))
}

func (m *MenuState) continueGame() {
	ctx := m.sm.Ctx
	if ctx.Store == nil {
		return
	}
	data, err := ctx.Store.Load(ctx.Slot)
	if errors.Is(err, storage.ErrSlotNotFound) {
		m.message = "No saved game in " + ctx.Slot
		return
	}
	if err == nil {
		err = ctx.Game.Restore(data)
	}
	if err != nil {
		ctx.Logger.Error().Err(err).Str("slot", ctx.Slot).Msg("Failed to continue")
		m.message = err.Error()
		return
	}
	m.sm.SetState(NewGameState(m.sm))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, "SOCIAL DEFENSE", config.ScreenWidth/2, 60, config.TextLightColor)
	ui.DrawCentered(screen, "Choose a map", config.ScreenWidth/2, 100, config.TextLightColor)

	cx, cy := ebiten.CursorPosition()
	for _, b := range m.mapButtons {
		b.Draw(screen, b.Contains(cx, cy))
	}
	if m.continueBt != nil {
		m.continueBt.Draw(screen, m.continueBt.Contains(cx, cy))
	}
	if m.message != "" {
		ui.DrawCentered(screen, m.message, config.ScreenWidth/2, config.ScreenHeight-40, config.InvalidColor)
	}
}

func (m *MenuState) Exit() {
	m.message = ""
}
