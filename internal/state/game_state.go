// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-social-defense/internal/app"
	"go-social-defense/internal/config"
	"go-social-defense/internal/types"
	"go-social-defense/internal/ui"
	"go-social-defense/pkg/geom"
	"go-social-defense/pkg/render"
)

const shopHeight = 24

var (
	idleColor    = color.RGBA{R: 0, G: 255, B: 65, A: 255}
	activeColor  = color.RGBA{R: 255, G: 71, B: 87, A: 255}
	pendingColor = color.RGBA{R: 255, G: 215, B: 0, A: 255}
)

// GameState: основное игровое состояние: ввод, HUD и поле.
type GameState struct {
	sm          *StateMachine
	renderer    *render.FieldRenderer
	indicator   *ui.StateIndicator
	speedButton *ui.SpeedButton
	pauseButton *ui.PauseButton
	waveLabel   *ui.WaveIndicator
	health      *ui.HealthIndicator
	progress    *ui.ProgressIndicator
	oneShots    *ui.OneShotIndicator
	move        *ui.MoveIndicator
	shop        *ui.ShopBar
	infoPanel   *ui.InfoPanel
	codexBook   *ui.CodexBook
	codex       []app.CodexEntry
	costs       map[string]int
	selected    types.EntityID
}

func NewGameState(sm *StateMachine) *GameState {
	colors := render.FieldColors{
		Background:  config.BackgroundColor,
		Grid:        config.GridColor,
		Path:        config.PathColor,
		PathEdge:    config.PathEdgeColor,
		Target:      config.TargetColor,
		HealthBack:  config.HealthBackColor,
		Health:      config.HealthColor,
		Slow:        config.SlowColor,
		Stun:        config.StunColor,
		Grapple:     config.GrappleColor,
		Upgrade:     config.UpgradeColor,
		Banana:      config.BananaColor,
		Train:       config.TrainColor,
		TrainEdge:   config.TrainEdgeColor,
		Bubble:      config.BubbleColor,
		Text:        config.TextLightColor,
		FriendEdge:  config.FriendStroke,
		Invalid:     config.InvalidColor,
		StrokeWidth: config.StrokeWidth,
	}

	return &GameState{
		sm:          sm,
		renderer:    render.NewFieldRenderer(config.ScreenWidth, config.ScreenHeight, colors, ui.DefaultFace),
		indicator:   ui.NewStateIndicator(config.SpeedButtonX-80, config.SpeedButtonY, 12),
		speedButton: ui.NewSpeedButton(config.SpeedButtonX, config.SpeedButtonY, config.SpeedButtonSize*0.6, []color.RGBA{idleColor, pendingColor}),
		pauseButton: ui.NewPauseButton(config.SpeedButtonX-40, config.SpeedButtonY, 10, idleColor, pendingColor),
		waveLabel:   ui.NewWaveIndicator(config.ScreenWidth/2, 16, config.TextLightColor),
		health:      ui.NewHealthIndicator(10, 16),
		progress:    ui.NewProgressIndicator(180, 6),
		oneShots:    ui.NewOneShotIndicator(480, 6, 120, 14),
		move:        ui.NewMoveIndicator(620, 34),
		infoPanel:   ui.NewInfoPanel(config.ScreenHeight - shopHeight),
		codexBook:   ui.NewCodexBook(60, 60, config.ScreenWidth-120, config.ScreenHeight-140),
	}
}

// Enter перечитывает справочник: контент мог смениться при выборе карты.
// Выбор в магазине переживает паузу.
func (g *GameState) Enter() {
	selected := ""
	if g.shop != nil {
		selected = g.shop.Selected
	}

	game := g.sm.Ctx.Game
	g.codex = game.Codex()
	g.costs = make(map[string]int, len(g.codex))
	for _, e := range g.codex {
		g.costs[e.ID] = e.Cost
	}
	g.shop = ui.NewShopBar(0, config.ScreenHeight-shopHeight, config.ScreenWidth, shopHeight, g.codex)
	if _, ok := g.costs[selected]; ok {
		g.shop.Selected = selected
	}
}

func (g *GameState) Update(deltaTime float64) {
	game := g.sm.Ctx.Game
	g.infoPanel.Update()
	g.pauseButton.SetPaused(false)

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}

	game.Update(deltaTime)
	snap := game.Snapshot()

	if snap.GameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			game.Reset()
			g.sm.SetState(NewMenuState(g.sm))
		}
		return
	}

	g.handleKeys()
	g.speedButton.SetSpeed(snap.Speed)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !g.handleUIClick(x, y) {
			g.handleFieldClick(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		game.CancelReposition()
		g.shop.Selected = ""
		g.selected = 0
		g.infoPanel.Hide()
	}
}

func (g *GameState) handleKeys() {
	game := g.sm.Ctx.Game
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.startWave()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		game.ToggleSpeed()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.codexBook.Toggle(g.codex)
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		g.save()
	case inpututil.IsKeyJustPressed(ebiten.KeyF8):
		g.load()
	}
	for i := 0; i < 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			g.shop.SelectIndex(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit0) {
		g.shop.SelectIndex(9)
	}
}

// handleUIClick возвращает true, если клик пришёлся на HUD.
func (g *GameState) handleUIClick(x, y int) bool {
	game := g.sm.Ctx.Game
	switch {
	case g.speedButton.IsClicked(x, y):
		game.ToggleSpeed()
	case g.pauseButton.IsClicked(x, y):
		g.pause()
	case g.indicator.IsClicked(x, y):
		g.startWave()
	case g.infoPanel.Contains(x, y):
		if id, ok := g.infoPanel.Click(x, y); ok {
			_ = game.ApplyUpgrade(g.infoPanel.TargetFriend, id)
		}
	case g.shop.Contains(x, y):
		g.shop.Click(x, y)
	case g.codexBook.IsVisible:
		g.codexBook.Toggle(nil)
	default:
		return y < config.HUDHeight
	}
	return true
}

// handleFieldClick передаёт клик симуляции; ошибки уже показаны как уведомление.
func (g *GameState) handleFieldClick(x, y int) {
	game := g.sm.Ctx.Game
	id, err := game.HandleClick(geom.Point{X: float64(x), Y: float64(y)}, g.shop.Selected)
	if err != nil {
		return
	}
	if id == 0 {
		g.selected = 0
		g.infoPanel.Hide()
		return
	}
	g.selected = id
	g.infoPanel.SetTarget(id)
}

func (g *GameState) startWave() {
	g.indicator.HandleClick()
	_ = g.sm.Ctx.Game.StartWave()
}

func (g *GameState) pause() {
	g.sm.Ctx.Game.TogglePause()
	g.pauseButton.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) save() {
	ctx := g.sm.Ctx
	if ctx.Store == nil {
		return
	}
	if err := ctx.Store.Save(ctx.Slot, ctx.Game.SaveData()); err != nil {
		ctx.Logger.Error().Err(err).Str("slot", ctx.Slot).Msg("Save failed")
	}
}

func (g *GameState) load() {
	ctx := g.sm.Ctx
	if ctx.Store == nil {
		return
	}
	data, err := ctx.Store.Load(ctx.Slot)
	if err == nil {
		err = ctx.Game.Restore(data)
	}
	if err != nil {
		ctx.Logger.Error().Err(err).Str("slot", ctx.Slot).Msg("Load failed")
		return
	}
	g.selected = 0
	g.infoPanel.Hide()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	game := g.sm.Ctx.Game
	snap := game.Snapshot()

	var selected app.FriendView
	hasSelected := false
	for _, f := range snap.Friends {
		if f.ID == g.selected {
			selected, hasSelected = f, true
		}
	}
	g.renderer.Draw(screen, &snap, selected, hasSelected)
	g.drawPlacement(screen, &snap)
	g.drawHUD(screen, &snap)

	g.infoPanel.Draw(screen, &snap, g.codex)
	g.shop.Draw(screen, g.costs, snap.Currency)
	g.codexBook.Draw(screen, snap.Currency)

	if snap.Notice != "" {
		ui.DrawCentered(screen, snap.Notice, config.ScreenWidth/2, config.HUDHeight+16, config.InvalidColor)
	}
	if snap.GameOver {
		g.drawGameOver(screen, &snap)
	}
}

func (g *GameState) drawPlacement(screen *ebiten.Image, snap *app.Snapshot) {
	if g.shop.Selected == "" || snap.GameOver {
		return
	}
	x, y := ebiten.CursorPosition()
	if y < config.HUDHeight || y >= config.ScreenHeight-shopHeight {
		return
	}
	p := geom.Point{X: float64(x), Y: float64(y)}
	rangeRadius := 100.0
	for _, e := range g.codex {
		if e.ID == g.shop.Selected {
			rangeRadius = e.Range
		}
	}
	valid := g.sm.Ctx.Game.CanPlaceAt(p) && g.costs[g.shop.Selected] <= snap.Currency
	g.renderer.DrawPlacement(screen, p, rangeRadius, config.FriendStroke, valid)
}

func (g *GameState) drawHUD(screen *ebiten.Image, snap *app.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.HUDHeight, color.RGBA{A: 180}, false)

	g.health.Draw(screen, snap.Health, int(config.StartHealth))
	g.progress.Draw(screen, snap.CodingProgress)
	text.Draw(screen, fmt.Sprintf("$%d  Score %d", snap.Currency, snap.Score), ui.DefaultFace, 180, 36, config.TextLightColor)

	preview := g.sm.Ctx.Game.WavePreview()
	g.waveLabel.Draw(screen, snap.Wave, preview.Boss)
	if snap.WaveActive {
		text.Draw(screen, fmt.Sprintf("%d/%d", snap.Spawned, snap.WaveTotal), ui.DefaultFace, config.ScreenWidth/2+50, 16, config.TextLightColor)
	} else if !snap.WavePending {
		ui.DrawCentered(screen, fmt.Sprintf("%s: %s (Space)", preview.Name, preview.Description), config.ScreenWidth/2, config.HUDHeight+32, config.TextLightColor)
	}

	g.oneShots.Draw(screen, []ui.OneShot{
		{Label: "PHOTO", Used: snap.PhotoUsed},
		{Label: "MOVE", Used: snap.MoveUsed},
		{Label: "TRAIN", Used: snap.TrainUsed},
	})
	g.move.Draw(screen, g.isMoving(snap))

	stateColor := idleColor
	switch {
	case snap.WavePending:
		stateColor = pendingColor
	case snap.WaveActive:
		stateColor = activeColor
	}
	g.indicator.Draw(screen, stateColor)
	g.pauseButton.Draw(screen)
	g.speedButton.Draw(screen)
}

func (g *GameState) isMoving(snap *app.Snapshot) bool {
	for _, f := range snap.Friends {
		if f.Moving {
			return true
		}
	}
	return false
}

func (g *GameState) drawGameOver(screen *ebiten.Image, snap *app.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{A: 160}, false)
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	ui.DrawCentered(screen, "SOCIAL BATTERY DEPLETED", cx, cy-30, config.InvalidColor)
	ui.DrawCentered(screen, fmt.Sprintf("Wave %d  Score %d  Defeated %d", snap.Wave, snap.Score, snap.Defeated), cx, cy, config.TextLightColor)
	ui.DrawCentered(screen, "Press R to choose a map", cx, cy+30, config.TextLightColor)
}

func (g *GameState) Exit() {}
