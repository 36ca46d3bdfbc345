package geometry

import "math"

// CenteredCrop returns the window a discrete zoom step produces: the ratio
// applied symmetrically to width and height, centered in full, rounded to
// integers, then clamped to stay inside full. Ratios below 1.0 are treated
// as 1.0 (no widening beyond the full window).
func CenteredCrop(full Rect, ratio float64) Rect {
	if ratio < 1.0 {
		ratio = 1.0
	}
	w := int(math.Round(float64(full.Width) / ratio))
	h := int(math.Round(float64(full.Height) / ratio))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	crop := Rect{
		Left:   full.Left + (full.Width-w)/2,
		Top:    full.Top + (full.Height-h)/2,
		Width:  w,
		Height: h,
	}
	return crop.ClampTo(full)
}

// NearestZoomCrop finds the crop window the legacy zoom mechanism can
// actually realize that is closest to the requested rectangle.
//
// The legacy mechanism cannot target arbitrary rectangles, only discrete
// center-cropped ratios, so "closest" means the supported ratio nearest to
// the zoom implied by the requested rectangle. Equidistant ties go to the
// smaller ratio (less zoom, larger field of view) as the conservative
// choice. An empty ratio list degrades to a single 1.0 step: the full
// active array, no crop.
//
// Returns the chosen window in sensor coordinates and the same ratio
// applied to the preview stream size.
func NearestZoomCrop(ratios []float64, active Rect, preview Size, requested Rect) (sensor, previewCrop Rect) {
	if len(ratios) == 0 {
		ratios = []float64{1.0}
	}

	req := requested.ClampTo(active)
	if req.Empty() {
		req = active
	}
	want := impliedZoom(active, req)

	best := ratios[0]
	for _, r := range ratios[1:] {
		d, bd := math.Abs(r-want), math.Abs(best-want)
		if d < bd || (d == bd && r < best) {
			best = r
		}
	}

	sensor = CenteredCrop(active, best)
	previewCrop = CenteredCrop(Rect{Width: preview.Width, Height: preview.Height}, best)
	return sensor, previewCrop
}

// impliedZoom is the largest narrowing factor whose centered window still
// contains the requested rectangle on both axes.
func impliedZoom(active, req Rect) float64 {
	zx := float64(active.Width) / float64(req.Width)
	zy := float64(active.Height) / float64(req.Height)
	if zy < zx {
		return zy
	}
	return zx
}
