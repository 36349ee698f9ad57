//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"nematic-mc/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type statsProvider interface {
	Temperature() float64
	Energy() float64
	Acceptance() float64
	Sweeps() int
}

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders run statistics and the adjustable temperature in a panel to
// the right of the simulation view.
type HUD struct {
	sim   core.Sim
	width int

	panel      *ebiten.Image
	lastHeight int

	controls    []core.ParameterControl
	floatSetter core.FloatParameterSetter
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update handles HUD key bindings. Up/Down nudge the first float control
// (the temperature) by its step, clamped to its bounds.
func (h *HUD) Update() {
	if h == nil || h.floatSetter == nil || len(h.controls) == 0 {
		return
	}
	stats, ok := h.sim.(statsProvider)
	if !ok {
		return
	}
	ctrl := h.controls[0]
	value := stats.Temperature()
	changed := false
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		value += ctrl.Step
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		value -= ctrl.Step
		changed = true
	}
	if !changed {
		return
	}
	if ctrl.HasMin && value < ctrl.Min {
		value = ctrl.Min
	}
	if ctrl.HasMax && value > ctrl.Max {
		value = ctrl.Max
	}
	h.floatSetter.SetFloatParameter(ctrl.Key, value)
}

// Draw paints the HUD panel anchored at offsetX on the screen.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	size := h.sim.Size()
	height := size.H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	for i, line := range h.buildLines() {
		ebitenutil.DebugPrintAt(h.panel, line, 8, 8+14*i)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) buildLines() []string {
	lines := []string{h.sim.Name()}
	if stats, ok := h.sim.(statsProvider); ok {
		lines = append(lines,
			fmt.Sprintf("Ts      %.3f", stats.Temperature()),
			fmt.Sprintf("energy  %.2f", stats.Energy()),
			fmt.Sprintf("accept  %.3f", stats.Acceptance()),
			fmt.Sprintf("sweeps  %d", stats.Sweeps()),
		)
	}
	if provider, ok := h.sim.(parameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			lines = append(lines, "", group.Name)
			for _, p := range group.Params {
				lines = append(lines, fmt.Sprintf("  %s = %s", p.Key, p.Value))
			}
		}
	}
	lines = append(lines, "",
		"up/down: temperature",
		"space: pause  n: step",
		"r: reset  s: reseed")
	return lines
}
