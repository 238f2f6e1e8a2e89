package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const sliderLabelHeight = 16.0

// Slider is a horizontal value picker with its label and value printed above the bar
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64
}

// NewSlider creates a slider, value is clamped to [min, max]
func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	s := &Slider{Label: label, Min: min, Max: max, X: x, Y: y, W: w, H: 10}
	s.Set(value)
	return s
}

// GetHeight implements UIWidget
func (s *Slider) GetHeight() float64 { return sliderLabelHeight + s.H }

// SetY implements UIWidget
func (s *Slider) SetY(y float64) { s.Y = y }

// Set moves the slider to v, clamped to [Min, Max]
func (s *Slider) Set(v float64) {
	s.Value = min(max(v, s.Min), s.Max)
}

// Update checks for mouse interaction
func (s *Slider) Update() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	barY := s.Y + sliderLabelHeight
	if float64(mx) >= s.X && float64(mx) <= s.X+s.W &&
		float64(my) >= barY && float64(my) <= barY+s.H {
		// Calculate value based on horizontal position
		p := (float64(mx) - s.X) / s.W
		s.Set(s.Min + p*(s.Max-s.Min))
	}
}

// Draw renders the label line and the bar
func (s *Slider) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %.2f", s.Label, s.Value), int(s.X), int(s.Y))

	barY := float32(s.Y + sliderLabelHeight)
	vector.FillRect(screen, float32(s.X), barY, float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)

	ratio := 0.0
	if s.Max > s.Min {
		ratio = (s.Value - s.Min) / (s.Max - s.Min)
	}
	vector.FillRect(screen, float32(s.X), barY, float32(s.W*ratio), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
}
