package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// UIWidget is an interface for all UI widgets
type UIWidget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
	SetY(y float64)
}

// UIPanel stacks widgets vertically under a title bar.
type UIPanel struct {
	X, Y          float64 // Panel position
	Width, Height float64 // Panel dimensions
	Title         string
	Widgets       []UIWidget
	Hidden        bool

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA
}

// NewUIPanel creates a new UI panel. Its height grows with every widget added.
func NewUIPanel(x, y, width float64, title string) *UIPanel {
	return &UIPanel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      titleHeight,
		Title:       title,
		Widgets:     make([]UIWidget, 0),
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 200},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

const (
	titleHeight   = 25.0
	widgetSpacing = 6.0
)

// AddCheckbox adds a checkbox widget to the panel
func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	checkbox := NewCheckbox(p.X+10, p.Y+p.Height, label, value)
	p.add(checkbox)
	return checkbox
}

// AddButton adds a button spanning the panel width
func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	button := NewButton(p.X+10, p.Y+p.Height, p.Width-20, 20, label, onClick)
	p.add(button)
	return button
}

// AddSlider adds a slider spanning the panel width
func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	slider := NewSlider(p.X+10, p.Y+p.Height, p.Width-20, label, min, max, value)
	p.add(slider)
	return slider
}

func (p *UIPanel) add(w UIWidget) {
	p.Widgets = append(p.Widgets, w)
	p.Height += w.GetHeight() + widgetSpacing
}

// Contains reports whether the point (x, y) lies on the visible panel,
// so that clicks on widgets are not also handled by the world below.
func (p *UIPanel) Contains(x, y float64) bool {
	if p.Hidden {
		return false
	}
	return x >= p.X && x <= p.X+p.Width && y >= p.Y && y <= p.Y+p.Height
}

// Update handles input for all widgets
func (p *UIPanel) Update() {
	if p.Hidden {
		return
	}
	for _, widget := range p.Widgets {
		widget.Update()
	}
}

// Draw renders the panel and all widgets
func (p *UIPanel) Draw(screen *ebiten.Image) {
	if p.Hidden {
		return
	}
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)

	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)

	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	y := p.Y + titleHeight
	for _, widget := range p.Widgets {
		widget.SetY(y)
		widget.Draw(screen)
		y += widget.GetHeight() + widgetSpacing
	}
}
