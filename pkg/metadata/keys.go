// Package metadata defines the structured capture-result vocabulary: the
// addressable result keys, their typed value domains, and the immutable
// snapshot handed to capture-result readers.
package metadata

// Key identifies one independently-addressable capture-result field.
type Key string

// Result keys written by the mapper. Each key is owned by exactly one
// mapping rule; a key is present in a snapshot only when its rule
// determined a defined value.
const (
	KeyControlAEAntibandingMode Key = "control.aeAntibandingMode"
	KeyControlAEMode            Key = "control.aeMode"
	KeyControlAEState           Key = "control.aeState"
	KeyControlAFMode            Key = "control.afMode"
	KeyControlAWBLock           Key = "control.awbLock"
	KeyControlAWBMode           Key = "control.awbMode"
	KeyControlAWBState          Key = "control.awbState"
	KeyFlashMode                Key = "flash.mode"
	KeyLensFocalLength          Key = "lens.focalLength"
	KeyScalerCropRegion         Key = "scaler.cropRegion"
	KeySensorTimestamp          Key = "sensor.timestamp"
)
