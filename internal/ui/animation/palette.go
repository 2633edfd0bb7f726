package animation

import (
	"image/color"

	"roundtimer/internal/core/model"
)

// Palette maps phases to display colors.
type Palette struct {
	Background map[model.Phase]color.NRGBA
	Text       color.NRGBA
	Highlight  color.NRGBA
}

// DefaultPalette returns the colors used by the desktop window.
func DefaultPalette() Palette {
	return Palette{
		Background: map[model.Phase]color.NRGBA{
			model.PhaseIdle:    {R: 43, G: 47, B: 51, A: 255},
			model.PhasePrepare: {R: 196, G: 150, B: 40, A: 255},
			model.PhaseWork:    {R: 178, G: 52, B: 44, A: 255},
			model.PhaseRest:    {R: 44, G: 120, B: 82, A: 255},
		},
		Text:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Highlight: color.NRGBA{R: 232, G: 190, B: 66, A: 255},
	}
}

// PhaseColor returns the background for phase, falling back to idle.
func (palette Palette) PhaseColor(phase model.Phase) color.NRGBA {
	if value, ok := palette.Background[phase]; ok {
		return value
	}
	return palette.Background[model.PhaseIdle]
}
