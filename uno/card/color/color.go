package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color is the color of a card or the active color of a match. The zero value is Wild,
// meaning no color has been bound yet.
type Color int

const (
	Wild Color = iota
	Red
	Yellow
	Green
	Blue
)

// Priority is the fixed tie-break order used when two colors are equally represented.
var Priority = []Color{Red, Blue, Green, Yellow}

// All lists the four playable colors in deck order.
var All = []Color{Red, Yellow, Green, Blue}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var palette = map[Color]colorStruct{
	Red: {
		name:          "red",
		colorFunction: color.New(color.FgHiRed).SprintfFunc(),
	},
	Yellow: {
		name:          "yellow",
		colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
	},
	Green: {
		name:          "green",
		colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
	},
	Blue: {
		name:          "blue",
		colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
	},
	Wild: {
		name:          "wild",
		colorFunction: color.New(color.FgHiWhite).SprintfFunc(),
	},
}

var Stdout io.Writer = color.Output

// SetEnabled switches terminal escape sequences on or off for every color.
func SetEnabled(enabled bool) {
	color.NoColor = !enabled
}

func (c Color) Name() string {
	if p, ok := palette[c]; ok {
		return p.name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

func (c Color) Valid() bool {
	_, ok := palette[c]
	return ok
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

// Paintf formats and colors the text. Wild rotates through the four colors rune by rune.
func (c Color) Paintf(format string, args ...interface{}) string {
	if c != Wild {
		p, ok := palette[c]
		if !ok {
			return fmt.Sprintf(format, args...)
		}
		return p.colorFunction(format, args...)
	}
	text := fmt.Sprintf(format, args...)
	var b strings.Builder
	i := 0
	for _, r := range text {
		b.WriteString(palette[All[i%len(All)]].colorFunction("%c", r))
		i++
	}
	return b.String()
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid color %d", int(c))
	}
	return []byte(c.Name()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	name := string(text)
	if name == Wild.Name() {
		*c = Wild
		return nil
	}
	parsed, err := ByName(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ByName resolves a playable color from its full name or first letter, ignoring case.
func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Wild, fmt.Errorf("invalid color '%s'", name)
	}
	for _, c := range All {
		full := palette[c].name
		if name == full || name == full[:1] {
			return c, nil
		}
	}
	return Wild, fmt.Errorf("invalid color '%s'", name)
}
