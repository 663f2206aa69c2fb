package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/philipparndt/arruler/pkg/geometry"
	"github.com/philipparndt/arruler/pkg/stl"
)

var (
	backgroundColor   = color.RGBA{15, 18, 25, 255}
	featurePointColor = color.RGBA{255, 220, 0, 255}
)

// minMarkerPx keeps distant markers visible
const minMarkerPx = 3.0

// Frame composes one rendered image of the tracked world and the scene nodes
type Frame struct {
	Camera            *Camera
	World             *stl.Model
	FeaturePoints     []geometry.Vector3
	Scene             *Scene
	ShowFeaturePoints bool
}

// Render draws the frame into a new image of the given size
func (f Frame) Render(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)
	if f.Camera == nil {
		return img
	}

	size := img.Bounds().Size()
	zbuffer := make([]float64, size.X*size.Y)
	for i := range zbuffer {
		zbuffer[i] = math.MaxFloat64
	}

	w, h := float64(size.X), float64(size.Y)
	if f.World != nil {
		f.drawWorld(img, zbuffer, w, h)
	}
	if f.ShowFeaturePoints {
		f.drawFeaturePoints(img, w, h)
	}
	if f.Scene != nil {
		f.drawNodes(img, zbuffer, w, h)
	}
	return img
}

func (f Frame) drawWorld(img *image.RGBA, zbuffer []float64, w, h float64) {
	for _, tri := range f.World.Triangles {
		x1, y1, z1 := f.Camera.Project(tri.V1, w, h)
		x2, y2, z2 := f.Camera.Project(tri.V2, w, h)
		x3, y3, z3 := f.Camera.Project(tri.V3, w, h)
		if z1 < nearPlane || z2 < nearPlane || z3 < nearPlane {
			continue
		}

		// Flat shading by the angle between the facet and the view direction
		toCamera := f.Camera.Position.Sub(tri.Center()).Normalize()
		lambert := math.Abs(tri.CalculateNormal().Dot(toCamera))
		shade := uint8(60 + 150*lambert)

		fillTriangle(img, zbuffer, x1, y1, z1, x2, y2, z2, x3, y3, z3, color.RGBA{shade, shade, shade, 255})
	}
}

func (f Frame) drawFeaturePoints(img *image.RGBA, w, h float64) {
	for _, p := range f.FeaturePoints {
		x, y, z := f.Camera.Project(p, w, h)
		if z < nearPlane {
			continue
		}
		px, py := int(x), int(y)
		drawLine(img, px-1, py, px+1, py, featurePointColor)
		drawLine(img, px, py-1, px, py+1, featurePointColor)
	}
}

func (f Frame) drawNodes(img *image.RGBA, zbuffer []float64, w, h float64) {
	focal := f.Camera.Focal(h)
	nodes := f.Scene.Nodes()

	for _, node := range nodes {
		if node.Kind != MarkerNode {
			continue
		}
		x, y, z := f.Camera.Project(node.Position, w, h)
		if z < nearPlane {
			continue
		}
		radius := math.Max(minMarkerPx, node.Radius*focal/z)
		// Pull the disc forward so it is not buried in the surface it sits on
		fillDisc(img, zbuffer, x, y, radius, z-node.Radius, node.Color)
	}

	// Labels are drawn last so they float over the scene
	for _, node := range nodes {
		if node.Kind != LabelNode {
			continue
		}
		x, y, z := f.Camera.Project(node.Position, w, h)
		if z < nearPlane {
			continue
		}
		drawLabel(img, node.Text, x, y, labelUnits*node.Scale*focal/z, node.Color)
	}
}
