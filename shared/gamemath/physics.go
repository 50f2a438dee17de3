package gamemath

import "math"

// ApplyFriction moves a signed speed toward zero by friction, stopping
// rather than reversing.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClampLength scales v so that its length lies in [min, max]. A zero-length v
// has no direction, so fallback is used (normalized) at the minimum length.
// If fallback is also zero the result is Up scaled to min.
func ClampLength(v Vec3, min, max float64, fallback Vec3) Vec3 {
	if max < min {
		max = min
	}
	l := v.Length()
	if l == 0 || !v.IsFinite() {
		dir := fallback.Normalize()
		if dir == Zero {
			dir = Up
		}
		return dir.Scale(min)
	}
	switch {
	case l > max:
		return v.Scale(max / l)
	case l < min:
		return v.Scale(min / l)
	}
	return v
}

// SteerToward returns a velocity of the given speed pointing from (x, z) to
// (targetX, targetZ) on the ground plane.
func SteerToward(x, z, targetX, targetZ, speed float64) (velX, velZ float64) {
	dirX := targetX - x
	dirZ := targetZ - z
	dist := math.Sqrt(dirX*dirX + dirZ*dirZ)
	if dist > 0 {
		velX = (dirX / dist) * speed
		velZ = (dirZ / dist) * speed
	}
	return velX, velZ
}
