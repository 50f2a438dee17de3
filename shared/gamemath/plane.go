package gamemath

import "math"

// planeEpsilon below which a ray is treated as parallel to the plane.
const planeEpsilon = 1e-9

// PlaneIntersection intersects the ray (origin, dir) with the plane through
// point with the given normal. ok is false when the ray is parallel to the
// plane or the result is not finite.
func PlaneIntersection(origin, dir, point, normal Vec3) (hit Vec3, ok bool) {
	d := dir.Dot(normal)
	if math.Abs(d) < planeEpsilon {
		return Vec3{}, false
	}
	t := (point.Dot(normal) - origin.Dot(normal)) / d
	hit = origin.Add(dir.Scale(t))
	if !hit.IsFinite() {
		return Vec3{}, false
	}
	return hit, true
}

// GroundPoint intersects a ray with the y=0 ground plane.
func GroundPoint(origin, dir Vec3) (Vec3, bool) {
	return PlaneIntersection(origin, dir, Zero, Up)
}
