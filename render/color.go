package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/alpha-strike/constants"
)

// Palette anchors used directly by renderers
const (
	BackgroundHex = constants.ColorBackground
	TextHex       = constants.ColorText
)

var (
	hexMu    sync.RWMutex
	hexCache = make(map[string]colorful.Color)

	background = mustHex(constants.ColorBackground)
	fallback   = mustHex(constants.ColorText)
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parse resolves a palette hex string, unparseable values fall back to text white
func parse(s string) colorful.Color {
	hexMu.RLock()
	c, ok := hexCache[s]
	hexMu.RUnlock()
	if ok {
		return c
	}

	c, err := colorful.Hex(s)
	if err != nil {
		c = fallback
	}
	hexMu.Lock()
	hexCache[s] = c
	hexMu.Unlock()
	return c
}

// toTcell converts a clamped colorful color to a terminal RGB color
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Hex converts a palette hex string to a terminal color
func Hex(s string) tcell.Color {
	return toTcell(parse(s))
}

// Fade blends s toward the background as life goes from 1 to 0
func Fade(s string, life float64) tcell.Color {
	if life >= 1 {
		return Hex(s)
	}
	if life <= 0 {
		return toTcell(background)
	}
	return toTcell(background.BlendLab(parse(s), life))
}

// Mix blends a toward b by t in Lab space
func Mix(a, b string, t float64) tcell.Color {
	switch {
	case t <= 0:
		return Hex(a)
	case t >= 1:
		return Hex(b)
	}
	return toTcell(parse(a).BlendLab(parse(b), t))
}

// Dim darkens s to the given HSL lightness factor
func Dim(s string, factor float64) tcell.Color {
	h, sat, l := parse(s).Hsl()
	return toTcell(colorful.Hsl(h, sat, l*factor))
}

// ComboBarColor walks the combo bar from hot red to cool cyan as the timer runs out
func ComboBarColor(remaining float64) tcell.Color {
	return Mix(constants.ColorDanger, constants.ColorPlayer, remaining)
}
