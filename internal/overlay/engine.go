package overlay

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"eightball/internal/overlay/css"

	rl "github.com/gen2brain/raylib-go/raylib"
)

//go:embed overlay.css
var defaultCSS string

// Engine holds the stylesheet and nodes and draws them with raylib, in node order.
// Resolved styles are cached until the sheet or node list changes.
type Engine struct {
	sheet      *css.Stylesheet
	nodes      []*Node
	styles     []css.Style
	cacheValid bool
}

// New returns an engine using the built-in stylesheet.
func New() *Engine {
	e := &Engine{}
	sheet, err := css.ParseString(defaultCSS)
	if err == nil {
		e.sheet = sheet
	}
	return e
}

// LoadCSS replaces the stylesheet with the file at path.
func (e *Engine) LoadCSS(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("overlay: %w", err)
	}
	defer f.Close()
	sheet, err := css.Parse(f)
	if err != nil {
		return fmt.Errorf("overlay: %s: %w", path, err)
	}
	e.sheet = sheet
	e.cacheValid = false
	return nil
}

// AddNode appends a node.
func (e *Engine) AddNode(n *Node) {
	e.nodes = append(e.nodes, n)
	e.cacheValid = false
}

// Draw draws every visible node. Percentage positions centre the text box on that point of the screen.
func (e *Engine) Draw() {
	if !e.cacheValid {
		e.styles = make([]css.Style, len(e.nodes))
		for i, n := range e.nodes {
			e.styles[i] = css.Resolve(e.sheet.Props(n.Class, n.ID))
		}
		e.cacheValid = true
	}
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	for i, n := range e.nodes {
		st := e.styles[i]
		if n.Hidden || st.Hidden {
			continue
		}
		w, h := st.Width, st.Height
		if n.Text != "" {
			if tw := rl.MeasureText(n.Text, st.FontSize) + 2*st.Padding; tw > w {
				w = tw
			}
			if th := textHeight(n.Text, st.FontSize) + 2*st.Padding; th > h {
				h = th
			}
		}
		x, y := st.Left, st.Top
		if st.LeftPct >= 0 {
			x = screenW*st.LeftPct/100 - w/2
		}
		if st.TopPct >= 0 {
			y = screenH*st.TopPct/100 - h/2
		}
		n.Bounds = rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))

		if st.Background[3] > 0 {
			rl.DrawRectangle(x, y, w, h, color(st.Background))
		}
		if st.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, color(st.Border))
		}
		if n.Text != "" {
			rl.DrawText(n.Text, x+st.Padding, y+st.Padding, st.FontSize, color(st.Color))
		}
	}
}

// lineSpacing is raylib's default gap between lines of multi-line text.
const lineSpacing = 2

func textHeight(text string, fontSize int32) int32 {
	lines := int32(strings.Count(text, "\n") + 1)
	return lines*fontSize + (lines-1)*lineSpacing
}

func color(c css.Color) rl.Color {
	return rl.NewColor(c[0], c[1], c[2], c[3])
}
