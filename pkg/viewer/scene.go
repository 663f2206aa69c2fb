package viewer

import (
	"image/color"
	"sort"
	"sync"

	"github.com/philipparndt/arruler/internal/measurement"
	"github.com/philipparndt/arruler/pkg/geometry"
)

// NodeKind distinguishes scene nodes
type NodeKind int

const (
	MarkerNode NodeKind = iota
	LabelNode
)

// Node is an artifact placed in the scene
type Node struct {
	Handle   measurement.Handle
	Kind     NodeKind
	Position geometry.Vector3
	Color    color.RGBA

	Radius float64 // MarkerNode
	Text   string  // LabelNode
	Scale  float64 // LabelNode
}

// Scene is a flat scene graph that implements measurement.SceneRenderer.
// It is safe to place nodes from the UI goroutine while a frame is drawn elsewhere.
type Scene struct {
	mu    sync.RWMutex
	next  measurement.Handle
	nodes map[measurement.Handle]Node
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{nodes: make(map[measurement.Handle]Node)}
}

// PlaceMarker adds a sphere marker and returns its handle
func (s *Scene) PlaceMarker(position geometry.Vector3, style measurement.MarkerStyle) measurement.Handle {
	return s.add(Node{
		Kind:     MarkerNode,
		Position: position,
		Color:    style.Color,
		Radius:   style.Radius,
	})
}

// PlaceLabel adds a text label and returns its handle
func (s *Scene) PlaceLabel(text string, position geometry.Vector3, style measurement.LabelStyle) measurement.Handle {
	return s.add(Node{
		Kind:     LabelNode,
		Position: position,
		Color:    style.Color,
		Text:     text,
		Scale:    style.Scale,
	})
}

// Remove deletes a node. Unknown handles are ignored.
func (s *Scene) Remove(handle measurement.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.nodes, handle)
}

// Nodes returns a snapshot of all nodes in placement order
func (s *Scene) Nodes() []Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := make([]Node, 0, len(s.nodes))
	for _, node := range s.nodes {
		nodes = append(nodes, node)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].Handle < nodes[j].Handle
	})
	return nodes
}

// Len returns the number of nodes in the scene
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

func (s *Scene) add(node Node) measurement.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	node.Handle = s.next
	s.nodes[node.Handle] = node
	return node.Handle
}
