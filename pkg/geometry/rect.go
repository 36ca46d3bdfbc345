// Package geometry provides integer rectangle math for the sensor and
// preview coordinate spaces, including the discrete-zoom crop search used
// by the result mapper.
package geometry

// Rect is an axis-aligned rectangle in pixel coordinates.
// The coordinate space (sensor or preview) is determined by the caller;
// the two spaces are never mixed without explicit conversion.
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.Left + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Top + r.Height }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// ClampTo returns r shrunk and shifted as needed to fit entirely inside
// bound. A request larger than bound collapses to bound's size; a request
// outside bound slides back in. The result always satisfies
// bound.Left <= Left && Right() <= bound.Right() (same for the vertical
// axis) as long as bound is non-empty.
func (r Rect) ClampTo(bound Rect) Rect {
	if r.Width > bound.Width {
		r.Width = bound.Width
	}
	if r.Height > bound.Height {
		r.Height = bound.Height
	}
	if r.Left < bound.Left {
		r.Left = bound.Left
	}
	if r.Top < bound.Top {
		r.Top = bound.Top
	}
	if r.Right() > bound.Right() {
		r.Left = bound.Right() - r.Width
	}
	if r.Bottom() > bound.Bottom() {
		r.Top = bound.Bottom() - r.Height
	}
	return r
}
