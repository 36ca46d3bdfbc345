// Package legacy models the string-keyed camera parameter bag being phased
// out. The bag carries free-form key/value settings with a handful of typed
// accessors; the result mapper reads it as a snapshot and never mutates it.
package legacy

import (
	"strconv"
	"strings"
)

// Parameter keys as they appear on the legacy wire.
const (
	KeyFlashMode            = "flash-mode"
	KeyAntibanding          = "antibanding"
	KeyFocalLength          = "focal-length"
	KeyAutoWhiteBalanceLock = "auto-whitebalance-lock"
	KeyZoom                 = "zoom"
	KeyZoomRatios           = "zoom-ratios"
)

// Flash mode values the legacy layer can report.
const (
	FlashModeOff    = "off"
	FlashModeAuto   = "auto"
	FlashModeOn     = "on"
	FlashModeRedEye = "red-eye"
	FlashModeTorch  = "torch"
)

// Antibanding values the legacy layer can report.
const (
	AntibandingAuto = "auto"
	Antibanding50Hz = "50hz"
	Antibanding60Hz = "60hz"
	AntibandingOff  = "off"
)

// Parameters is the legacy setting bag. The zero value is an empty bag;
// typed getters return documented defaults for missing or malformed
// entries and never fail.
//
// The bag is mutable through Set, but only by its owner. Readers treat it
// as a snapshot; synchronization is the owner's responsibility.
type Parameters struct {
	values map[string]string
}

// NewParameters returns an empty parameter bag.
func NewParameters() *Parameters {
	return &Parameters{values: make(map[string]string)}
}

// Set stores a raw string value under key.
func (p *Parameters) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	p.values[key] = value
}

// Get returns the raw string value for key, or "" if unset.
func (p *Parameters) Get(key string) string {
	return p.values[key]
}

// FlashMode returns the current flash mode string, defaulting to off.
func (p *Parameters) FlashMode() string {
	if v := p.Get(KeyFlashMode); v != "" {
		return v
	}
	return FlashModeOff
}

// Antibanding returns the current antibanding mode string, or "" if the
// device never populated it.
func (p *Parameters) Antibanding() string {
	return p.Get(KeyAntibanding)
}

// FocalLength returns the lens focal length in millimeters, or 0 if unset
// or malformed.
func (p *Parameters) FocalLength() float64 {
	v, err := strconv.ParseFloat(p.Get(KeyFocalLength), 64)
	if err != nil {
		return 0
	}
	return v
}

// AutoWhiteBalanceLock reports whether auto-white-balance is locked.
func (p *Parameters) AutoWhiteBalanceLock() bool {
	return p.Get(KeyAutoWhiteBalanceLock) == "true"
}

// ZoomIndex returns the current zoom step index, or 0 if unset.
func (p *Parameters) ZoomIndex() int {
	v, err := strconv.Atoi(p.Get(KeyZoom))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ZoomRatios returns the supported zoom steps as narrowing factors relative
// to the full active array. The legacy layer stores them percent-encoded
// ("100,150,200"); malformed entries are skipped. A device without zoom
// support yields nil.
func (p *Parameters) ZoomRatios() []float64 {
	raw := p.Get(KeyZoomRatios)
	if raw == "" {
		return nil
	}
	var ratios []float64
	for _, field := range strings.Split(raw, ",") {
		pct, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || pct <= 0 {
			continue
		}
		ratios = append(ratios, float64(pct)/100.0)
	}
	return ratios
}
