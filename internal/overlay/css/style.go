package css

import (
	"strconv"
	"strings"
)

// Color is straight RGBA.
type Color [4]uint8

var (
	Transparent = Color{0, 0, 0, 0}
	White       = Color{255, 255, 255, 255}
	Black       = Color{0, 0, 0, 255}
)

// Style holds resolved values for drawing.
// LeftPct/TopPct are 0-100 percentage positions; -1 means Left/Top are pixels.
type Style struct {
	Hidden     bool
	Background Color
	Color      Color
	Border     Color
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	LeftPct    int32
	TopPct     int32
	Padding    int32
	FontSize   int32
}

// DefaultStyle is visible white text on nothing.
func DefaultStyle() Style {
	return Style{
		Background: Transparent,
		Color:      White,
		Border:     Black,
		LeftPct:    -1,
		TopPct:     -1,
		Padding:    4,
		FontSize:   20,
	}
}

// Resolve turns merged declarations into a Style. Unknown properties and bad values are ignored.
func Resolve(props map[string]string) Style {
	out := DefaultStyle()
	out.Hidden = strings.TrimSpace(props["display"]) == "none" ||
		strings.TrimSpace(props["visibility"]) == "hidden"
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background", "background-color":
			if c, ok := ParseColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseColor(v); ok {
				out.Color = c
			}
		case "border", "border-color":
			if c, ok := ParseColor(lastField(v)); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		}
	}
	return out
}

func lastField(v string) string {
	f := strings.Fields(v)
	if len(f) == 0 {
		return v
	}
	return f[len(f)-1]
}

// ParseColor accepts #RGB, #RRGGBB, #RRGGBBAA, rgb(r,g,b), rgba(r,g,b,a) with a in [0,1],
// and the keywords white, black and transparent.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "white":
		return White, true
	case "black":
		return Black, true
	case "transparent":
		return Transparent, true
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if strings.HasPrefix(s, "rgb") {
		return parseFunc(s)
	}
	return Black, false
}

func parseHex(hex string) (Color, bool) {
	for i := 0; i < len(hex); i++ {
		if _, ok := hexDigit(hex[i]); !ok {
			return Black, false
		}
	}
	d := func(i int) uint8 { v, _ := hexDigit(hex[i]); return v }
	switch len(hex) {
	case 3:
		return Color{d(0) * 17, d(1) * 17, d(2) * 17, 255}, true
	case 6:
		return Color{d(0)<<4 + d(1), d(2)<<4 + d(3), d(4)<<4 + d(5), 255}, true
	case 8:
		return Color{d(0)<<4 + d(1), d(2)<<4 + d(3), d(4)<<4 + d(5), d(6)<<4 + d(7)}, true
	}
	return Black, false
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func parseFunc(s string) (Color, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Black, false
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Black, false
	}
	var c Color
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return Black, false
		}
		c[i] = uint8(n)
	}
	c[3] = 255
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return Black, false
		}
		c[3] = uint8(a*255 + 0.5)
	}
	return c, true
}

// ParsePx parses a number with an optional "px" suffix.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" with N in 0-100.
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}
