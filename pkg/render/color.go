// pkg/render/color.go
package render

import "image/color"

// FieldColors: все цвета для отрисовки поля.
type FieldColors struct {
	Background  color.RGBA
	Grid        color.RGBA
	Path        color.RGBA
	PathEdge    color.RGBA
	Target      color.RGBA
	HealthBack  color.RGBA
	Health      color.RGBA
	Slow        color.RGBA
	Stun        color.RGBA
	Grapple     color.RGBA
	Upgrade     color.RGBA
	Banana      color.RGBA
	Train       color.RGBA
	TrainEdge   color.RGBA
	Bubble      color.RGBA
	Text        color.RGBA
	FriendEdge  color.RGBA
	Invalid     color.RGBA
	StrokeWidth float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Fade scales the color's alpha by f in [0, 1]. Channels stay premultiplied.
func Fade(c color.RGBA, f float64) color.RGBA {
	f = min(1, max(0, f))
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
