package overlay

import (
	"testing"

	"eightball/internal/overlay/css"
)

func TestBuiltinStylesheet(t *testing.T) {
	e := New()
	if e.sheet == nil || len(e.sheet.Rules) == 0 {
		t.Fatal("Expected built-in stylesheet parsed")
	}
	st := css.Resolve(e.sheet.Props("", "loading"))
	if st.LeftPct != 50 || st.TopPct != 50 {
		t.Errorf("Expected loading indicator centred, got %+v", st)
	}
}

func TestLoadedHidesIndicatorOnly(t *testing.T) {
	h := NewHUD()
	if h.Loading.Hidden || h.Hint.Hidden {
		t.Fatal("Expected both nodes visible before load")
	}
	h.Loaded()
	if !h.Loading.Hidden {
		t.Errorf("Expected loading indicator hidden after load")
	}
	if h.Hint.Hidden {
		t.Errorf("Expected hint to stay visible")
	}
}

func TestLoadCSSMissing(t *testing.T) {
	e := New()
	before := e.sheet
	if err := e.LoadCSS("does/not/exist.css"); err == nil {
		t.Errorf("Expected error for a missing stylesheet")
	}
	if e.sheet != before {
		t.Errorf("Expected stylesheet unchanged after a failed load")
	}
}

func TestDebugNodeStyledAndToggled(t *testing.T) {
	h := NewHUD()
	if !h.Debug.Hidden {
		t.Fatal("Expected debug block hidden until it has text")
	}
	st := css.Resolve(h.Engine.sheet.Props(h.Debug.Class, h.Debug.ID))
	if st.Color != (css.Color{0, 255, 0, 255}) || st.Left != 12 || st.Top != 12 {
		t.Errorf("Expected the .debug rule applied, got %+v", st)
	}
	h.SetDebug("FPS: 60\nstate: idle")
	if h.Debug.Hidden || h.Debug.Text != "FPS: 60\nstate: idle" {
		t.Errorf("Expected debug text shown, got %+v", h.Debug)
	}
	h.SetDebug("")
	if !h.Debug.Hidden {
		t.Errorf("Expected empty debug text to hide the block")
	}
}

func TestTextHeightCountsLines(t *testing.T) {
	if got := textHeight("one", 16); got != 16 {
		t.Errorf("Expected 16, got %d", got)
	}
	if got := textHeight("a\nb\nc", 16); got != 3*16+2*lineSpacing {
		t.Errorf("Expected three lines, got %d", got)
	}
}
