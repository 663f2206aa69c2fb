package viewer

import (
	"math"

	"github.com/philipparndt/arruler/pkg/geometry"
)

const (
	// nearPlane is the closest camera-space depth that is still drawn
	nearPlane = 0.01
	// minDistance keeps the orbit camera from passing through its target
	minDistance = 0.05
)

// Camera is a perspective camera orbiting a target point
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Vertical field of view in radians
	Distance  float64
	RotationX float64 // Elevation above the target
	RotationY float64 // Heading around the target
}

// NewCamera creates a camera looking down at a bounding box from a slight elevation
func NewCamera(bbox geometry.BoundingBox) *Camera {
	distance := math.Max(bbox.MaxDimension()*1.5, 0.5)

	c := &Camera{
		Target:    bbox.Center(),
		Up:        geometry.NewVector3(0, 1, 0),
		FOV:       math.Pi / 3, // 60 degrees, close to a phone camera
		Distance:  distance,
		RotationX: math.Pi / 6,
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp elevation to avoid flipping over the poles
	maxAngle := math.Pi/2 - 0.1
	c.RotationX = math.Max(-maxAngle, math.Min(maxAngle, c.RotationX))

	c.UpdatePosition()
}

// Zoom changes the camera distance by a relative amount
func (c *Camera) Zoom(delta float64) {
	c.Distance = math.Max(minDistance, c.Distance*(1.0+delta))
	c.UpdatePosition()
}

// basis returns the camera's forward, right and up vectors
func (c *Camera) basis() (forward, right, up geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// Focal returns the number of pixels covered by one world unit at depth 1
func (c *Camera) Focal(height float64) float64 {
	return (height / 2) / math.Tan(c.FOV/2)
}

// Project projects a 3D point to screen coordinates and returns its camera-space depth.
// Points behind the near plane report a depth below nearPlane and should be culled.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward, right, up := c.basis()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	depth := math.Max(z, nearPlane)
	focal := c.Focal(height)

	screenX := x/depth*focal + width/2
	screenY := -y/depth*focal + height/2

	return screenX, screenY, z
}

// Unproject converts screen coordinates into a world-space ray from the camera
func (c *Camera) Unproject(screenX, screenY, width, height float64) geometry.Ray {
	forward, right, up := c.basis()
	focal := c.Focal(height)

	dx := (screenX - width/2) / focal
	dy := -(screenY - height/2) / focal

	direction := forward.Add(right.Mul(dx)).Add(up.Mul(dy))
	return geometry.NewRay(c.Position, direction)
}
