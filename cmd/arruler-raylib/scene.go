package main

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/arruler/internal/measurement"
	"github.com/philipparndt/arruler/pkg/geometry"
)

// labelFontPx is the on-screen text height for a label one world unit away
const labelFontPx = 13.0

type rlNode struct {
	label    bool
	position rl.Vector3
	radius   float32
	text     string
	scale    float32
	color    rl.Color
}

// gpuScene is a measurement.SceneRenderer drawing with raylib primitives
type gpuScene struct {
	next  measurement.Handle
	nodes map[measurement.Handle]rlNode
}

func newGPUScene() *gpuScene {
	return &gpuScene{nodes: make(map[measurement.Handle]rlNode)}
}

func toRL(v geometry.Vector3) rl.Vector3 {
	x, y, z := v.Float32()
	return rl.Vector3{X: x, Y: y, Z: z}
}

func (s *gpuScene) PlaceMarker(position geometry.Vector3, style measurement.MarkerStyle) measurement.Handle {
	s.next++
	s.nodes[s.next] = rlNode{
		position: toRL(position),
		radius:   float32(style.Radius),
		color:    rl.Color(style.Color),
	}
	return s.next
}

func (s *gpuScene) PlaceLabel(text string, position geometry.Vector3, style measurement.LabelStyle) measurement.Handle {
	s.next++
	s.nodes[s.next] = rlNode{
		label:    true,
		position: toRL(position),
		text:     text,
		scale:    float32(style.Scale),
		color:    rl.Color(style.Color),
	}
	return s.next
}

func (s *gpuScene) Remove(handle measurement.Handle) {
	delete(s.nodes, handle)
}

// draw3D draws the markers; call between BeginMode3D and EndMode3D
func (s *gpuScene) draw3D(minRadius float32) {
	for _, node := range s.nodes {
		if node.label {
			continue
		}
		rl.DrawSphere(node.position, float32(math.Max(float64(node.radius), float64(minRadius))), node.color)
	}
}

// drawLabels draws the labels in screen space, sized by their distance to the camera
func (s *gpuScene) drawLabels(camera rl.Camera3D) {
	font := rl.GetFontDefault()
	focal := float64(rl.GetScreenHeight()) / 2 / math.Tan(float64(camera.Fovy)*math.Pi/360)

	for _, node := range s.nodes {
		if !node.label {
			continue
		}
		depth := rl.Vector3Distance(camera.Position, node.position)
		if depth <= 0 {
			continue
		}
		size := float32(math.Max(10, labelFontPx*float64(node.scale)*focal/float64(depth)))
		drawLabel(font, node.text, rl.GetWorldToScreen(node.position, camera), size, node.color)
	}
}

// drawLabel draws text on a dark plate with its lower left corner at anchor
func drawLabel(font rl.Font, text string, anchor rl.Vector2, fontSize float32, color rl.Color) {
	padding := fontSize * 0.25
	textSize := rl.MeasureTextEx(font, text, fontSize, 1)

	rect := rl.Rectangle{
		X:      anchor.X - padding,
		Y:      anchor.Y - textSize.Y - padding,
		Width:  textSize.X + 2*padding,
		Height: textSize.Y + 2*padding,
	}
	rl.DrawRectangleRec(rect, rl.NewColor(20, 20, 20, 200))
	rl.DrawRectangleLinesEx(rect, 2, color)
	rl.DrawTextEx(font, text, rl.Vector2{X: anchor.X, Y: anchor.Y - textSize.Y}, fontSize, 1, color)
}
