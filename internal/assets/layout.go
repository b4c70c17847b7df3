package assets

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
)

// Node names looked up in the model.
var (
	DieNames   = []string{"Die", "die"}
	GlassNames = []string{"Glass"}
)

// MeshRef ties one raylib mesh slot to the glTF node and mesh it came from.
type MeshRef struct {
	Index     int // raylib mesh index
	NodeIndex int
	Node      string
	Mesh      string
	Primitive int
}

// Layout is the part of a glTF document raylib flattens away: which node each mesh belongs to,
// and the animation names. Mesh order follows raylib's loader: nodes in document order, then
// triangle primitives in order.
type Layout struct {
	Meshes []MeshRef
	Clips  []string

	nodes    []*gltf.Node
	parent   []int
	byNode   map[int][]int
	nameToID map[string]int
}

// Part is a resolved named piece of the model.
type Part struct {
	Name   string
	Meshes []int      // raylib mesh indices
	Pivot  mgl32.Vec3 // world translation of the node
	Whole  bool       // no sub-mesh found; the entire model is the part
}

// Inspect opens a .glb or .gltf file and builds its layout.
func Inspect(path string) (*Layout, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", path, err)
	}
	return FromDocument(doc), nil
}

// FromDocument builds the layout of an already decoded document.
func FromDocument(doc *gltf.Document) *Layout {
	l := &Layout{
		nodes:    doc.Nodes,
		parent:   make([]int, len(doc.Nodes)),
		byNode:   make(map[int][]int),
		nameToID: make(map[string]int),
	}
	for i := range l.parent {
		l.parent[i] = -1
	}
	for i, n := range doc.Nodes {
		if n == nil {
			continue
		}
		for _, c := range n.Children {
			if c >= 0 && c < len(l.parent) {
				l.parent[c] = i
			}
		}
		if _, ok := l.nameToID[n.Name]; !ok && n.Name != "" {
			l.nameToID[n.Name] = i
		}
	}

	for i, n := range doc.Nodes {
		if n == nil || n.Mesh == nil || *n.Mesh < 0 || *n.Mesh >= len(doc.Meshes) {
			continue
		}
		m := doc.Meshes[*n.Mesh]
		for p, prim := range m.Primitives {
			if prim == nil || prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			ref := MeshRef{Index: len(l.Meshes), NodeIndex: i, Node: n.Name, Mesh: m.Name, Primitive: p}
			l.Meshes = append(l.Meshes, ref)
			l.byNode[i] = append(l.byNode[i], ref.Index)
		}
	}

	for i, a := range doc.Animations {
		name := a.Name
		if name == "" {
			name = fmt.Sprintf("clip%d", i)
		}
		l.Clips = append(l.Clips, name)
	}
	return l
}

// Find returns the raylib mesh indices under the first node called name, including descendants.
// A node without its own name matches through its mesh name.
func (l *Layout) Find(name string) []int {
	id, ok := l.nameToID[name]
	if !ok {
		for _, ref := range l.Meshes {
			if ref.Mesh == name {
				id, ok = ref.NodeIndex, true
				break
			}
		}
	}
	if !ok {
		return nil
	}
	var out []int
	l.walk(id, make(map[int]bool), func(n int) {
		out = append(out, l.byNode[n]...)
	})
	return out
}

// walk visits id and its descendants once each, so cyclic children lists terminate.
func (l *Layout) walk(id int, seen map[int]bool, fn func(int)) {
	if seen[id] || l.nodes[id] == nil {
		return
	}
	seen[id] = true
	fn(id)
	for _, c := range l.nodes[id].Children {
		if c >= 0 && c < len(l.nodes) {
			l.walk(c, seen, fn)
		}
	}
}

// WorldTranslation accumulates node translations up to the root. Parent rotation and scale are ignored.
func (l *Layout) WorldTranslation(id int) mgl32.Vec3 {
	var t mgl32.Vec3
	// A parent chain longer than the node count has looped.
	for n, steps := id, 0; n >= 0 && steps < len(l.nodes); n, steps = l.parent[n], steps+1 {
		tr := l.nodes[n].Translation
		t = t.Add(mgl32.Vec3{float32(tr[0]), float32(tr[1]), float32(tr[2])})
	}
	return t
}

// Die resolves the spin target: the first of DieNames found, else the first mesh, else the
// whole model.
func (l *Layout) Die() Part {
	for _, name := range DieNames {
		if meshes := l.Find(name); len(meshes) > 0 {
			return Part{Name: name, Meshes: meshes, Pivot: l.pivot(meshes)}
		}
	}
	if len(l.Meshes) > 0 {
		return Part{Name: l.Meshes[0].Node, Meshes: []int{0}, Pivot: l.pivot([]int{0})}
	}
	return Part{Whole: true}
}

// Glass returns the glass meshes, if the model has any.
func (l *Layout) Glass() (Part, bool) {
	for _, name := range GlassNames {
		if meshes := l.Find(name); len(meshes) > 0 {
			return Part{Name: name, Meshes: meshes, Pivot: l.pivot(meshes)}, true
		}
	}
	return Part{}, false
}

func (l *Layout) pivot(meshes []int) mgl32.Vec3 {
	return l.WorldTranslation(l.Meshes[meshes[0]].NodeIndex)
}

// Describe is a one-line summary for the log.
func (l *Layout) Describe() string {
	names := make([]string, 0, len(l.Meshes))
	for _, m := range l.Meshes {
		names = append(names, m.Node)
	}
	return fmt.Sprintf("%d meshes [%s], %d clips [%s]",
		len(l.Meshes), strings.Join(names, " "), len(l.Clips), strings.Join(l.Clips, " "))
}
