package overlay

// HUD is the toy's fixed overlay: a loading indicator shown until the model is in, a usage hint
// and an optional debug block.
type HUD struct {
	Engine  *Engine
	Loading *Node
	Hint    *Node
	Debug   *Node
}

// NewHUD builds the overlay nodes on a fresh engine.
func NewHUD() *HUD {
	h := &HUD{
		Engine:  New(),
		Loading: NewNode("", "loading", "Loading..."),
		Hint:    NewNode("hint", "", "Double-click or tap the ball to ask. Drag to look around."),
		Debug:   &Node{Class: "debug", Hidden: true},
	}
	h.Engine.AddNode(h.Loading)
	h.Engine.AddNode(h.Hint)
	h.Engine.AddNode(h.Debug)
	return h
}

// SetDebug replaces the debug block; empty text hides it.
func (h *HUD) SetDebug(text string) {
	h.Debug.Text = text
	h.Debug.Hidden = text == ""
}

// Loaded hides the loading indicator. On a failed load it is never called and the indicator stays.
func (h *HUD) Loaded() {
	h.Loading.Hidden = true
}

// Draw draws the overlay.
func (h *HUD) Draw() {
	h.Engine.Draw()
}
