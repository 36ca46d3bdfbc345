package geometry

import "testing"

func TestNearestZoomCrop(t *testing.T) {
	active := Rect{Left: 0, Top: 0, Width: 4000, Height: 3000}
	preview := Size{Width: 1280, Height: 960}
	ratios := []float64{1.0, 1.5, 2.0}

	tests := []struct {
		name        string
		ratios      []float64
		requested   Rect
		wantSensor  Rect
		wantPreview Rect
	}{
		{
			name:        "full array selects no zoom",
			ratios:      ratios,
			requested:   active,
			wantSensor:  active,
			wantPreview: Rect{Width: 1280, Height: 960},
		},
		{
			name:        "centered half request selects 2x",
			ratios:      ratios,
			requested:   Rect{Left: 1000, Top: 750, Width: 2000, Height: 1500},
			wantSensor:  Rect{Left: 1000, Top: 750, Width: 2000, Height: 1500},
			wantPreview: Rect{Left: 320, Top: 240, Width: 640, Height: 480},
		},
		{
			name:        "between steps picks nearest",
			ratios:      ratios,
			requested:   Rect{Left: 700, Top: 525, Width: 2600, Height: 1950},
			wantSensor:  Rect{Left: 666, Top: 500, Width: 2667, Height: 2000},
			wantPreview: Rect{Left: 213, Top: 160, Width: 853, Height: 640},
		},
		{
			name:        "no zoom steps degrades to full array",
			ratios:      nil,
			requested:   Rect{Left: 1000, Top: 750, Width: 2000, Height: 1500},
			wantSensor:  active,
			wantPreview: Rect{Width: 1280, Height: 960},
		},
		{
			name:        "oversized request is clamped before search",
			ratios:      ratios,
			requested:   Rect{Left: -500, Top: -500, Width: 9000, Height: 9000},
			wantSensor:  active,
			wantPreview: Rect{Width: 1280, Height: 960},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sensor, prev := NearestZoomCrop(tt.ratios, active, preview, tt.requested)
			if sensor != tt.wantSensor {
				t.Errorf("sensor = %+v, want %+v", sensor, tt.wantSensor)
			}
			if prev != tt.wantPreview {
				t.Errorf("preview = %+v, want %+v", prev, tt.wantPreview)
			}
		})
	}
}

func TestNearestZoomCrop_TieBreaksTowardLessZoom(t *testing.T) {
	active := Rect{Width: 3000, Height: 3000}
	preview := Size{Width: 640, Height: 480}

	// Implied zoom of the request is exactly 1.5, equidistant from the two
	// supported steps. The larger field of view must win.
	requested := Rect{Left: 500, Top: 500, Width: 2000, Height: 2000}
	sensor, _ := NearestZoomCrop([]float64{1.0, 2.0}, active, preview, requested)

	if sensor != active {
		t.Errorf("sensor = %+v, want full array %+v (less zoom on tie)", sensor, active)
	}
}

func TestCenteredCrop(t *testing.T) {
	full := Rect{Left: 0, Top: 0, Width: 4000, Height: 3000}

	tests := []struct {
		name  string
		ratio float64
		want  Rect
	}{
		{"unity ratio keeps full window", 1.0, full},
		{"2x halves both axes centered", 2.0, Rect{Left: 1000, Top: 750, Width: 2000, Height: 1500}},
		{"sub-unity ratio treated as unity", 0.5, full},
		{"rounding stays inside the window", 3.0, Rect{Left: 1333, Top: 1000, Width: 1333, Height: 1000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CenteredCrop(full, tt.ratio); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_ClampTo(t *testing.T) {
	bound := Rect{Left: 0, Top: 0, Width: 100, Height: 100}

	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"inside is unchanged", Rect{Left: 10, Top: 10, Width: 50, Height: 50}, Rect{Left: 10, Top: 10, Width: 50, Height: 50}},
		{"oversized shrinks to bound", Rect{Left: 0, Top: 0, Width: 200, Height: 300}, bound},
		{"negative origin slides in", Rect{Left: -20, Top: -20, Width: 50, Height: 50}, Rect{Left: 0, Top: 0, Width: 50, Height: 50}},
		{"overhanging edge slides back", Rect{Left: 80, Top: 80, Width: 50, Height: 50}, Rect{Left: 50, Top: 50, Width: 50, Height: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.ClampTo(bound); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
