package geometry

// Ray is a half line starting at Origin. Direction is expected to be normalized.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray and normalizes its direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Project returns the ray parameter of the point closest to p, clamped to the origin
func (r Ray) Project(p Vector3) float64 {
	t := p.Sub(r.Origin).Dot(r.Direction)
	if t < 0 {
		return 0
	}
	return t
}

// DistanceToPoint returns the shortest distance between the ray and a point
func (r Ray) DistanceToPoint(p Vector3) float64 {
	return p.Distance(r.At(r.Project(p)))
}
