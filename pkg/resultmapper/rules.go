package resultmapper

import (
	"github.com/camshim/go-camshim/internal/log"
	"github.com/camshim/go-camshim/pkg/geometry"
	"github.com/camshim/go-camshim/pkg/legacy"
	"github.com/camshim/go-camshim/pkg/metadata"
)

// flashPair is the coupled (flash mode, ae mode) outcome a single legacy
// flash-mode string selects.
type flashPair struct {
	flash metadata.FlashMode
	ae    metadata.AEMode
}

// flashTable is the full state space of the legacy flash setting. A torch
// keeps plain AE on; every other recognized value leaves the flash off and
// encodes the firing policy in the ae mode instead (a single flash fire
// with AE on is indistinguishable from always-flash on these devices).
var flashTable = map[string]flashPair{
	legacy.FlashModeOff:    {metadata.FlashModeOff, metadata.AEModeOn},
	legacy.FlashModeAuto:   {metadata.FlashModeOff, metadata.AEModeOnAutoFlash},
	legacy.FlashModeOn:     {metadata.FlashModeOff, metadata.AEModeOnAlwaysFlash},
	legacy.FlashModeRedEye: {metadata.FlashModeOff, metadata.AEModeOnAutoFlashRedeye},
	legacy.FlashModeTorch:  {metadata.FlashModeTorch, metadata.AEModeOn},
}

var antibandingTable = map[string]metadata.AntibandingMode{
	legacy.AntibandingOff:  metadata.AntibandingModeOff,
	legacy.Antibanding50Hz: metadata.AntibandingMode50Hz,
	legacy.Antibanding60Hz: metadata.AntibandingMode60Hz,
	legacy.AntibandingAuto: metadata.AntibandingModeAuto,
}

// antibandingModeOrDefault converts the legacy antibanding string,
// defaulting to off for unrecognized or absent input. The result is always
// defined; this never fails the pass.
func antibandingModeOrDefault(legacyMode string) metadata.AntibandingMode {
	if mode, ok := antibandingTable[legacyMode]; ok {
		return mode
	}
	return metadata.AntibandingModeOff
}

// mapAe writes the exposure domain: antibanding, the coupled
// (flash mode, ae mode) pair, and the static converged ae state when
// compatibility reporting is enabled.
func (m *Mapper) mapAe(acc map[metadata.Key]any, req Request, _ int64) {
	acc[metadata.KeyControlAEAntibandingMode] = antibandingModeOrDefault(req.Params.Antibanding())

	pair, ok := flashTable[req.Params.FlashMode()]
	if !ok {
		log.Warn("ignoring unknown flash mode", "flash_mode", req.Params.FlashMode())
		pair = flashPair{metadata.FlashModeOff, metadata.AEModeOn}
	}
	acc[metadata.KeyFlashMode] = pair.flash
	acc[metadata.KeyControlAEMode] = pair.ae

	if m.Compat.ReportAeConverged {
		acc[metadata.KeyControlAEState] = metadata.AEStateConverged
	}
}

// mapAwb writes the white-balance domain. The lock comes straight from the
// legacy bag; state and mode are compatibility placeholders.
func (m *Mapper) mapAwb(acc map[metadata.Key]any, req Request, _ int64) {
	acc[metadata.KeyControlAWBLock] = req.Params.AutoWhiteBalanceLock()

	if m.Compat.ReportAwbConverged {
		acc[metadata.KeyControlAWBState] = metadata.AWBStateConverged
		acc[metadata.KeyControlAWBMode] = req.Capture.AwbMode
	}
}

// mapAf echoes the requested autofocus mode when enabled.
func (m *Mapper) mapAf(acc map[metadata.Key]any, req Request, _ int64) {
	if m.Compat.EchoAfMode {
		acc[metadata.KeyControlAFMode] = req.Capture.AfMode
	}
}

// mapLens copies the legacy focal length verbatim.
func (m *Mapper) mapLens(acc map[metadata.Key]any, req Request, _ int64) {
	acc[metadata.KeyLensFocalLength] = req.Params.FocalLength()
}

// mapScaler reconciles the requested crop with the discrete zoom steps the
// legacy device supports. Crop coordinates are relative to the active
// array origin; a request without a crop defaults to the full array.
func (m *Mapper) mapScaler(acc map[metadata.Key]any, req Request, _ int64) {
	active := geometry.Rect{
		Width:  req.Characteristics.ActiveArray.Width,
		Height: req.Characteristics.ActiveArray.Height,
	}

	requested := active
	if req.Capture.CropRegion != nil {
		requested = *req.Capture.CropRegion
	}

	sensor, preview := geometry.NearestZoomCrop(
		req.Params.ZoomRatios(), active, req.PreviewSize, requested)

	// The preview-space window is bookkeeping only, never a result key.
	log.Debug("reconciled crop", "sensor", sensor, "preview", preview)

	acc[metadata.KeyScalerCropRegion] = sensor
}

// mapSensor stamps the caller-supplied capture timestamp verbatim.
func (m *Mapper) mapSensor(acc map[metadata.Key]any, _ Request, timestampNs int64) {
	acc[metadata.KeySensorTimestamp] = timestampNs
}
