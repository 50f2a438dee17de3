package gamemath

import "math"

// Vec3 is a point or direction in world space. Y is up; the ground plane is X/Z.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Zero = Vec3{}
	Up   = Vec3{Y: 1}
)

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Distance returns the full 3D distance between two points.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// GroundDistance ignores height and measures on the X/Z plane.
func (v Vec3) GroundDistance(o Vec3) float64 {
	dx, dz := v.X-o.X, v.Z-o.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// Normalize returns the unit vector, or Zero for a zero-length input.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Zero
	}
	return v.Scale(1 / l)
}

// Flat drops the height component.
func (v Vec3) Flat() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

func (v Vec3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
