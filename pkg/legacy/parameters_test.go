package legacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParameters_TypedGetters(t *testing.T) {
	p := NewParameters()
	p.Set(KeyFlashMode, FlashModeTorch)
	p.Set(KeyAntibanding, Antibanding50Hz)
	p.Set(KeyFocalLength, "3.53")
	p.Set(KeyAutoWhiteBalanceLock, "true")
	p.Set(KeyZoom, "2")
	p.Set(KeyZoomRatios, "100,150,200")

	assert.Equal(t, FlashModeTorch, p.FlashMode())
	assert.Equal(t, Antibanding50Hz, p.Antibanding())
	assert.InDelta(t, 3.53, p.FocalLength(), 1e-9)
	assert.True(t, p.AutoWhiteBalanceLock())
	assert.Equal(t, 2, p.ZoomIndex())
	assert.Equal(t, []float64{1.0, 1.5, 2.0}, p.ZoomRatios())
}

func TestParameters_DefaultsOnEmptyBag(t *testing.T) {
	var p Parameters

	assert.Equal(t, FlashModeOff, p.FlashMode())
	assert.Empty(t, p.Antibanding())
	assert.Zero(t, p.FocalLength())
	assert.False(t, p.AutoWhiteBalanceLock())
	assert.Zero(t, p.ZoomIndex())
	assert.Nil(t, p.ZoomRatios())
}

func TestParameters_MalformedValues(t *testing.T) {
	p := NewParameters()
	p.Set(KeyFocalLength, "wide")
	p.Set(KeyZoom, "-3")
	p.Set(KeyZoomRatios, "100,oops,200,-50")

	assert.Zero(t, p.FocalLength())
	assert.Zero(t, p.ZoomIndex())
	assert.Equal(t, []float64{1.0, 2.0}, p.ZoomRatios())
}
