package ui

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-social-defense/internal/app"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range cases {
		assert.Equal(t, want, toRoman(n), n)
	}
}

func TestFilledCells(t *testing.T) {
	assert.Equal(t, 20, filledCells(20))
	assert.Equal(t, 13, filledCells(12.5))
	assert.Equal(t, 0, filledCells(0))
	assert.Equal(t, 0, filledCells(-3))
}

func TestMilestonesReached(t *testing.T) {
	assert.Equal(t, 0, milestonesReached(0))
	assert.Equal(t, 1, milestonesReached(20))
	assert.Equal(t, 2, milestonesReached(52))
	assert.Equal(t, 5, milestonesReached(100))
	assert.Equal(t, 5, milestonesReached(250))
}

func TestButton(t *testing.T) {
	b := NewButton(image.Rect(10, 10, 50, 30), "Go")
	assert.True(t, b.IsClicked(10, 10))
	assert.False(t, b.IsClicked(50, 30))
	b.Disabled = true
	assert.False(t, b.IsClicked(20, 20))
	assert.True(t, b.Contains(20, 20))
}

func TestShopBar(t *testing.T) {
	sb := NewShopBar(0, 570, 200, 24, []app.CodexEntry{
		{ID: "dario", Name: "Dario", Cost: 50},
		{ID: "tony", Name: "Tony", Cost: 120},
	})
	assert.True(t, sb.Contains(10, 580))
	assert.False(t, sb.Contains(10, 500))

	sb.Click(150, 580)
	assert.Equal(t, "tony", sb.Selected)
	sb.Click(150, 580)
	assert.Empty(t, sb.Selected)

	sb.SelectIndex(0)
	assert.Equal(t, "dario", sb.Selected)
	sb.SelectIndex(7)
	assert.Equal(t, "dario", sb.Selected)
}

func TestInfoPanelSlides(t *testing.T) {
	p := NewInfoPanel(570)
	assert.False(t, p.Contains(100, 560))

	p.SetTarget(3)
	for range 20 {
		p.Update()
	}
	assert.True(t, p.Contains(100, 560))
	assert.False(t, p.Contains(100, 400))

	p.Hide()
	for range 20 {
		p.Update()
	}
	assert.False(t, p.IsVisible)
	assert.Zero(t, p.TargetFriend)
}

func TestCodexBookToggle(t *testing.T) {
	cb := NewCodexBook(0, 0, 100, 100)
	cb.Toggle([]app.CodexEntry{{ID: "dario"}})
	assert.True(t, cb.IsVisible)
	assert.Len(t, cb.entries, 1)
	cb.Toggle(nil)
	assert.False(t, cb.IsVisible)
}

func TestStateIndicator_ClickArea(t *testing.T) {
	i := NewStateIndicator(100, 20, 12)

	assert.True(t, i.IsClicked(100, 20))
	assert.True(t, i.IsClicked(110, 20))
	assert.False(t, i.IsClicked(113, 20))
	assert.True(t, i.LastClickTime.IsZero())

	before := time.Now()
	i.HandleClick()
	assert.False(t, i.LastClickTime.Before(before))
}
