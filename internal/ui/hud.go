//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"tileworld/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type summaryProvider interface {
	Summary() []string
}

var keyHelp = []string{
	"R/Enter regenerate  S new seed",
	"N next seed  L layer  C copy",
	"1 rivers 2 clouds 3 relief 4 regions",
}

var (
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
)

// HUD renders the parameter panel to the right of the world view. Edits
// change the generator's configuration and take effect on the next
// regeneration.
type HUD struct {
	gen        core.Generator
	width      int
	panel      *ebiten.Image
	lastHeight int

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	title        string
	summary      []string
	pending      bool

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for gen. A zero width disables the panel.
func NewHUD(gen core.Generator, width int) *HUD {
	h := &HUD{gen: gen, width: max(width, 0), title: titleFor(gen)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := gen.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
		}
		h.layoutControls()
	}
	h.intSetter, _ = gen.(core.IntParameterSetter)
	h.floatSetter, _ = gen.(core.FloatParameterSetter)
	return h
}

func titleFor(gen core.Generator) string {
	if gen == nil || gen.Name() == "" {
		return "World"
	}
	name := gen.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " world"
}

// Update refreshes the cached values from the generator and handles clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width == 0 {
		return
	}
	h.panelOffsetX = panelOffsetX
	if sp, ok := h.gen.(summaryProvider); ok {
		h.summary = sp.Summary()
	}
	if provider, ok := h.gen.(parameterProvider); ok {
		h.refreshControlValues(provider.Parameters())
	}
	h.handleInput()
}

// Regenerated clears the pending-edit marker.
func (h *HUD) Regenerated() {
	if h != nil {
		h.pending = false
	}
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.gen.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	h.drawControls()
	h.drawFooter()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues(snap core.ParameterSnapshot) {
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			continue
		}
		state.current = v
		state.hasValue = true
		state.value = h.format(state.control, v)
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		switch {
		case !state.hasValue:
		case pointInRect(px, my, state.minusRect):
			h.apply(state, -1)
			return
		case pointInRect(px, my, state.plusRect):
			h.apply(state, 1)
			return
		}
	}
}

// step returns the value one click away in direction, clamped to the
// control's bounds, and whether it differs from the current value.
func (h *HUD) step(state *hudControlState, direction int) (float64, bool) {
	ctrl := state.control
	size := ctrl.Step
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return 0, false
		}
		size = math.Max(math.Round(size), 1)
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return 0, false
		}
		if size <= 0 {
			size = 0.05
		}
	default:
		return 0, false
	}
	target := state.current + float64(direction)*size
	if ctrl.HasMin {
		target = math.Max(target, ctrl.Min)
	}
	if ctrl.HasMax {
		target = math.Min(target, ctrl.Max)
	}
	return target, math.Abs(target-state.current) > 1e-9
}

func (h *HUD) apply(state *hudControlState, direction int) {
	target, ok := h.step(state, direction)
	if !ok {
		return
	}
	var applied bool
	if state.control.Type == core.ParamTypeInt {
		applied = h.intSetter.SetIntParameter(state.control.Key, int(math.Round(target)))
	} else {
		applied = h.floatSetter.SetFloatParameter(state.control.Key, target)
	}
	if applied {
		state.current = target
		state.value = h.format(state.control, target)
		h.pending = true
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, panelPadding+headerBaseline+infoSpacing, dimColor)
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		baseline := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, baseline, textColor)

		valueColor := textColor
		if !state.hasValue {
			valueColor = dimColor
		}
		valueX := state.minusRect.Min.X - buttonGap - text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, valueX, baseline, valueColor)

		_, canDec := h.step(state, -1)
		_, canInc := h.step(state, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && canDec)
		h.drawButton(state.plusRect, "+", state.hasValue && canInc)
	}
}

func (h *HUD) drawFooter() {
	face := basicfont.Face7x13
	y := controlsTop + len(h.controls)*lineHeight + infoSpacing/2
	if h.pending {
		text.Draw(h.panel, "edited: Enter to regenerate", face, panelPadding, y, titleColor)
		y += textLine
	}
	for _, line := range h.summary {
		text.Draw(h.panel, line, face, panelPadding, y, textColor)
		y += textLine
	}
	y += textLine / 2
	for _, line := range keyHelp {
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += textLine
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := plus.Sub(image.Pt(buttonGap+buttonSize, 0))
		h.controls[i].top = top
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

func (h *HUD) format(ctrl core.ParameterControl, value float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(value)))
	}
	precision := 1
	switch step := ctrl.Step; {
	case step <= 0:
		precision = 2
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	current  float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	textLine       = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
