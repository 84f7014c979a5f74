// pkg/render/field_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-social-defense/internal/app"
	"go-social-defense/pkg/geom"
)

const (
	gridStep      = 40
	pathWidth     = 30
	enemyRadius   = 12
	bossRadius    = 18
	friendRadius  = 15
	healthBarW    = 25
	healthBarH    = 4
	bubblePadding = 4
)

// FieldRenderer рисует игровое поле по снимку состояния. Фон с путями
// рендерится заранее и перерисовывается только при смене карты.
type FieldRenderer struct {
	width, height int
	colors        FieldColors
	fontFace      font.Face
	fillImg       *ebiten.Image
	fillVs        []ebiten.Vertex
	fillIs        []uint16
	mapImage      *ebiten.Image
	mapIndex      int
	mapName       string
}

func NewFieldRenderer(width, height int, colors FieldColors, face font.Face) *FieldRenderer {
	fillImg := ebiten.NewImage(3, 3)
	fillImg.Fill(color.White)

	return &FieldRenderer{
		width:    width,
		height:   height,
		colors:   colors,
		fontFace: face,
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 64),
		fillIs:   make([]uint16, 0, 64),
		mapIndex: -1,
	}
}

// RenderMapImage предрендерит сетку, пути и точку назначения.
func (r *FieldRenderer) RenderMapImage(snap *app.Snapshot) {
	if r.mapImage == nil {
		r.mapImage = ebiten.NewImage(r.width, r.height)
	}
	img := r.mapImage
	img.Fill(r.colors.Background)

	for x := 0; x <= r.width; x += gridStep {
		vector.StrokeLine(img, float32(x), 0, float32(x), float32(r.height), 1, r.colors.Grid, false)
	}
	for y := 0; y <= r.height; y += gridStep {
		vector.StrokeLine(img, 0, float32(y), float32(r.width), float32(y), 1, r.colors.Grid, false)
	}

	for _, path := range snap.Paths {
		r.strokePath(img, path, pathWidth+4, r.colors.PathEdge)
	}
	for _, path := range snap.Paths {
		r.strokePath(img, path, pathWidth, r.colors.Path)
	}
	if n := len(snap.Paths); n > 0 && len(snap.Paths[0]) > 0 {
		end := snap.Paths[0][len(snap.Paths[0])-1]
		vector.DrawFilledCircle(img, float32(end.X), float32(end.Y), 20, r.colors.Target, true)
		drawCentered(img, r.fontFace, "YOU", int(end.X), int(end.Y), r.colors.Background)
	}

	r.mapIndex = snap.MapIndex
	r.mapName = snap.MapName
}

func (r *FieldRenderer) strokePath(target *ebiten.Image, path []geom.Point, width float32, clr color.RGBA) {
	if len(path) < 2 {
		return
	}
	var p vector.Path
	p.MoveTo(float32(path[0].X), float32(path[0].Y))
	for _, pt := range path[1:] {
		p.LineTo(float32(pt.X), float32(pt.Y))
	}

	r.fillVs, r.fillIs = p.AppendVerticesAndIndicesForStroke(r.fillVs[:0], r.fillIs[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	for i := range r.fillVs {
		r.fillVs[i].SrcX, r.fillVs[i].SrcY = 1, 1
		r.fillVs[i].ColorR = float32(clr.R) / 255
		r.fillVs[i].ColorG = float32(clr.G) / 255
		r.fillVs[i].ColorB = float32(clr.B) / 255
		r.fillVs[i].ColorA = float32(clr.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// Draw рисует фон, сущности и всплывающий текст.
func (r *FieldRenderer) Draw(screen *ebiten.Image, snap *app.Snapshot, selected app.FriendView, hasSelected bool) {
	if r.mapImage == nil || r.mapIndex != snap.MapIndex || r.mapName != snap.MapName {
		r.RenderMapImage(snap)
	}
	screen.DrawImage(r.mapImage, nil)

	if hasSelected {
		vector.StrokeCircle(screen, float32(selected.Position.X), float32(selected.Position.Y), float32(selected.Range), 1, r.colors.FriendEdge, true)
	}
	for _, f := range snap.Friends {
		r.drawFriend(screen, f)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), 3, p.Color, true)
	}
	for _, t := range snap.Trains {
		r.drawTrain(screen, t)
	}
	for _, b := range snap.Bananas {
		vector.DrawFilledCircle(screen, float32(b.Position.X), float32(b.Position.Y), 3, Fade(r.colors.Banana, b.Fade), true)
	}
	for _, b := range snap.Bubbles {
		r.drawBubble(screen, b)
	}
}

// DrawPlacement рисует призрак друга под курсором.
func (r *FieldRenderer) DrawPlacement(screen *ebiten.Image, p geom.Point, rangeRadius float64, clr color.RGBA, valid bool) {
	if !valid {
		clr = r.colors.Invalid
	}
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), friendRadius, Fade(clr, 0.6), true)
	vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(rangeRadius), 1, Fade(clr, 0.8), true)
}

func (r *FieldRenderer) drawFriend(screen *ebiten.Image, f app.FriendView) {
	x, y := float32(f.Position.X), float32(f.Position.Y)
	vector.DrawFilledCircle(screen, x, y, friendRadius, f.Color, true)
	edge := r.colors.FriendEdge
	if f.Moving {
		edge = r.colors.Target
	}
	vector.StrokeCircle(screen, x, y, friendRadius, r.colors.StrokeWidth, edge, true)
	drawCentered(screen, r.fontFace, initial(f.Name), int(x), int(y), r.colors.Text)

	for i := range f.Upgrades {
		vector.DrawFilledCircle(screen, x-6+float32(i)*12, y-friendRadius-4, 3, r.colors.Upgrade, true)
	}
	if f.MaxLevel > 0 {
		frac := float32(f.Level) / float32(f.MaxLevel)
		vector.DrawFilledRect(screen, x-healthBarW/2, y+friendRadius+3, healthBarW*frac, 2, r.colors.Upgrade, false)
	}
}

func (r *FieldRenderer) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	x, y := float32(e.Position.X), float32(e.Position.Y)
	radius := float32(enemyRadius)
	if e.Boss {
		radius = bossRadius
	}

	vector.DrawFilledCircle(screen, x, y, radius, e.Color, true)
	switch {
	case e.Stunned:
		vector.StrokeCircle(screen, x, y, radius+2, 2, r.colors.Stun, true)
	case e.Grappled:
		vector.StrokeCircle(screen, x, y, radius+2, 2, r.colors.Grapple, true)
	case e.Slowed:
		vector.StrokeCircle(screen, x, y, radius+2, 2, r.colors.Slow, true)
	}
	if e.Converted {
		return
	}

	top := y - radius - 8
	vector.DrawFilledRect(screen, x-healthBarW/2, top, healthBarW, healthBarH, r.colors.HealthBack, false)
	vector.DrawFilledRect(screen, x-healthBarW/2, top, HealthBarWidth(e.HealthFraction), healthBarH, r.colors.Health, false)
}

func (r *FieldRenderer) drawTrain(screen *ebiten.Image, t app.TrainView) {
	x, y := float32(t.Position.X), float32(t.Position.Y)
	body := Fade(r.colors.Train, t.Fade)
	vector.DrawFilledRect(screen, x-20, y-10, 40, 20, body, true)
	vector.StrokeRect(screen, x-20, y-10, 40, 20, 2, Fade(r.colors.TrainEdge, t.Fade), true)
	for _, wx := range []float32{-12, 0, 12} {
		vector.DrawFilledCircle(screen, x+wx, y+10, 3, Fade(r.colors.Background, t.Fade), true)
	}
}

func (r *FieldRenderer) drawBubble(screen *ebiten.Image, b app.BubbleView) {
	bounds := text.BoundString(r.fontFace, b.Message)
	w := float32(bounds.Dx() + bubblePadding*2)
	h := float32(bounds.Dy() + bubblePadding*2)
	x := float32(b.Position.X) - w/2
	y := float32(b.Position.Y) - h/2

	vector.DrawFilledRect(screen, x, y, w, h, Fade(r.colors.Bubble, b.Alpha), false)
	drawCentered(screen, r.fontFace, b.Message, int(b.Position.X), int(b.Position.Y), Fade(r.colors.Text, b.Alpha))
}

func initial(name string) string {
	for _, r := range name {
		return string(r)
	}
	return "?"
}

func drawCentered(dst *ebiten.Image, face font.Face, s string, cx, cy int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(dst, s, face, cx-bounds.Dx()/2, cy+bounds.Dy()/2-bounds.Max.Y, clr)
}

// HealthBarWidth: ширина заполненной части полосы для доли здоровья.
func HealthBarWidth(fraction float64) float32 {
	return float32(math.Round(min(1, max(0, fraction)) * healthBarW))
}
