package colormap

import (
	"fmt"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var namedHex = map[string]string{
	"butter1":     "#fce94f",
	"butter2":     "#edd400",
	"butter3":     "#c4a000",
	"chameleon1":  "#8ae234",
	"chameleon2":  "#73d216",
	"chameleon3":  "#4e9a06",
	"orange1":     "#fcaf3e",
	"orange2":     "#f57900",
	"orange3":     "#ce5c00",
	"skyblue1":    "#729fcf",
	"skyblue2":    "#3465a4",
	"skyblue3":    "#204a87",
	"plum1":       "#ad7fa8",
	"plum2":       "#75507b",
	"plum3":       "#5c3566",
	"chocolate1":  "#e9b96e",
	"chocolate2":  "#c17d11",
	"chocolate3":  "#8f5902",
	"scarletred1": "#ef2929",
	"scarletred2": "#cc0000",
	"scarletred3": "#a40000",
	"aluminium1":  "#eeeeec",
	"aluminium2":  "#d3d7cf",
	"aluminium3":  "#babdb6",
	"aluminium4":  "#888a85",
	"aluminium5":  "#555753",
	"aluminium6":  "#2e3436",
	"black":       "#000000",
	"white":       "#ffffff",
	"red":         "#ff0000",
	"green":       "#00ff00",
	"blue":        "#0000ff",
}

// Named returns the colour registered under name (case-insensitive).
func Named(name string) (colorful.Color, error) {
	hex, ok := namedHex[strings.ToLower(name)]
	if !ok {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}

	return colorful.Hex(hex)
}

// Names returns the sorted list of colour names accepted by Named.
func Names() []string {
	out := make([]string, 0, len(namedHex))
	for name := range namedHex {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// EvenAnchors places colors at evenly spaced positions from 0 to 1. A
// single colour yields a constant map.
func EvenAnchors(colors ...colorful.Color) []Anchor {
	switch len(colors) {
	case 0:
		return nil
	case 1:
		return []Anchor{{Pos: 0, Color: colors[0]}, {Pos: 1, Color: colors[0]}}
	}

	out := make([]Anchor, len(colors))
	last := float64(len(colors) - 1)
	for i, c := range colors {
		out[i] = Anchor{Pos: float64(i) / last, Color: c}
	}
	out[len(out)-1].Pos = 1

	return out
}

var presets = map[string][]string{
	"rgb":     {"red", "green", "blue"},
	"gray":    {"black", "white"},
	"tango":   {"skyblue2", "chameleon2", "butter1", "orange2", "scarletred2"},
	"viridis": {"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"},
}

// Preset returns the anchors of a built-in colormap: "rgb" (the default
// map), "gray", "tango" or "viridis".
func Preset(name string) ([]Anchor, error) {
	entries, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	colors := make([]colorful.Color, len(entries))
	for i, s := range entries {
		var (
			c   colorful.Color
			err error
		)
		if strings.HasPrefix(s, "#") {
			c, err = colorful.Hex(s)
		} else {
			c, err = Named(s)
		}
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}

	return EvenAnchors(colors...), nil
}

// PresetNames returns the sorted list of preset names.
func PresetNames() []string {
	out := make([]string, 0, len(presets))
	for name := range presets {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
