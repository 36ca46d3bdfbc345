package resultmapper

import (
	"github.com/camshim/go-camshim/pkg/geometry"
	"github.com/camshim/go-camshim/pkg/legacy"
	"github.com/camshim/go-camshim/pkg/metadata"
)

// Characteristics holds the static per-device facts the mapper reads.
// Immutable for the process lifetime; the active array is assumed to have
// positive dimensions (validating it is the provider's contract, not ours).
type Characteristics struct {
	// ActiveArray is the full sensor region addressable in pixel
	// coordinates.
	ActiveArray geometry.Rect
}

// CaptureRequest is the last client-submitted intent the mapper reads.
type CaptureRequest struct {
	// CropRegion is the requested crop window relative to the active
	// array origin, or nil when the client did not request one.
	CropRegion *geometry.Rect

	// AwbMode is the requested auto-white-balance mode.
	AwbMode metadata.AWBMode

	// AfMode is the requested autofocus mode.
	AfMode metadata.AFMode
}

// Request bundles the four inputs of one translation pass. All fields are
// read-only during the pass; the mapper neither locks nor copies them, so
// the caller must not mutate them concurrently.
type Request struct {
	Characteristics Characteristics
	Capture         CaptureRequest
	PreviewSize     geometry.Size
	Params          *legacy.Parameters
}
