package overlay

import rl "github.com/gen2brain/raylib-go/raylib"

// Node is one 2D element drawn over the scene. Class and ID select CSS rules.
type Node struct {
	Class  string
	ID     string
	Text   string
	Hidden bool // set by code; display:none in CSS hides it too
	Bounds rl.Rectangle
}

// NewNode creates a text node.
func NewNode(class, id, text string) *Node {
	return &Node{Class: class, ID: id, Text: text}
}
