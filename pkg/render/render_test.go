package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{R: 200, G: 100, B: 50, A: 255})
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 255}, got)
}

func TestFade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 0, A: 200}
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 0, A: 100}, Fade(c, 0.5))
	assert.Equal(t, c, Fade(c, 3))
	assert.Equal(t, color.RGBA{}, Fade(c, -1))
}

func TestHealthBarWidth(t *testing.T) {
	assert.Equal(t, float32(25), HealthBarWidth(1))
	assert.Equal(t, float32(13), HealthBarWidth(0.5))
	assert.Equal(t, float32(0), HealthBarWidth(-0.2))
	assert.Equal(t, float32(25), HealthBarWidth(1.5))
}

func TestInitial(t *testing.T) {
	assert.Equal(t, "P", initial("Pō"))
	assert.Equal(t, "?", initial(""))
}
