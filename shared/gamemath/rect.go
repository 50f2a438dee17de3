package gamemath

// Rect is an axis-aligned rectangle on the ground plane (X, Z).
type Rect struct {
	MinX, MinZ, MaxX, MaxZ float64
}

func RectFromSize(x, z, w, d float64) Rect {
	return Rect{MinX: x, MinZ: z, MaxX: x + w, MaxZ: z + d}
}

func (r Rect) Width() float64 { return r.MaxX - r.MinX }
func (r Rect) Depth() float64 { return r.MaxZ - r.MinZ }

func (r Rect) Center() Vec3 {
	return Vec3{X: (r.MinX + r.MaxX) / 2, Z: (r.MinZ + r.MaxZ) / 2}
}

// Contains reports whether p lies inside r on the ground plane, edges included.
func (r Rect) Contains(p Vec3) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Z >= r.MinZ && p.Z <= r.MaxZ
}

// Inset shrinks r by pad on every side. When the padding is larger than half
// the rectangle the affected axis collapses to its centre.
func (r Rect) Inset(pad float64) Rect {
	out := Rect{MinX: r.MinX + pad, MinZ: r.MinZ + pad, MaxX: r.MaxX - pad, MaxZ: r.MaxZ - pad}
	if out.MinX > out.MaxX {
		c := (r.MinX + r.MaxX) / 2
		out.MinX, out.MaxX = c, c
	}
	if out.MinZ > out.MaxZ {
		c := (r.MinZ + r.MaxZ) / 2
		out.MinZ, out.MaxZ = c, c
	}
	return out
}

// Expand grows r by margin on every side.
func (r Rect) Expand(margin float64) Rect {
	return Rect{MinX: r.MinX - margin, MinZ: r.MinZ - margin, MaxX: r.MaxX + margin, MaxZ: r.MaxZ + margin}
}

// ClampPoint moves p onto r, keeping its height.
func (r Rect) ClampPoint(p Vec3) Vec3 {
	return Vec3{X: Clamp(p.X, r.MinX, r.MaxX), Y: p.Y, Z: Clamp(p.Z, r.MinZ, r.MaxZ)}
}

// Overlaps reports whether two rectangles intersect with positive area.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX < o.MaxX && o.MinX < r.MaxX && r.MinZ < o.MaxZ && o.MinZ < r.MaxZ
}
