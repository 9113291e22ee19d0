package physics

import "github.com/jakecoffman/cp"

// Viewport maps world metres to window pixels with y pointing down.
type Viewport struct {
	Width, Height float64
	PPM           float64
}

func (v Viewport) ToScreen(p cp.Vector) (float64, float64) {
	return p.X * v.PPM, v.Height - p.Y*v.PPM
}

func (v Viewport) ToWorld(x, y float64) cp.Vector {
	return cp.Vector{X: x / v.PPM, Y: (v.Height - y) / v.PPM}
}

func (v Viewport) Center() cp.Vector {
	return v.ToWorld(v.Width/2, v.Height/2)
}

// PointInPolygon reports whether p lies inside the closed polygon formed by
// poly (ray casting, last vertex joined to the first).
func PointInPolygon(p cp.Vector, poly []cp.Vector) bool {
	inside := false
	j := len(poly) - 1
	for i := range poly {
		vi, vj := poly[i], poly[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
