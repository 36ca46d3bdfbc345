// capshim - run one legacy-to-structured translation pass and dump the
// resulting capture snapshot.
//
// Useful for eyeballing what a given legacy parameter bag turns into:
//
//	go run ./cmd/capshim -flash torch -zoom-ratios 100,150,200 -crop 1000,750,2000,1500
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/camshim/go-camshim/internal/config"
	"github.com/camshim/go-camshim/internal/log"
	"github.com/camshim/go-camshim/pkg/geometry"
	"github.com/camshim/go-camshim/pkg/legacy"
	"github.com/camshim/go-camshim/pkg/resultmapper"
)

func main() {
	flash := flag.String("flash", legacy.FlashModeOff, "legacy flash mode (off|auto|on|red-eye|torch)")
	antibanding := flag.String("antibanding", legacy.AntibandingAuto, "legacy antibanding mode")
	focal := flag.String("focal", "3.53", "lens focal length in mm")
	awbLock := flag.Bool("awb-lock", false, "auto-white-balance lock")
	zoomRatios := flag.String("zoom-ratios", "100,150,200", "supported zoom ratios, percent-encoded")
	crop := flag.String("crop", "", "requested crop as left,top,width,height (empty = full array)")
	sensorW := flag.Int("sensor-width", 4000, "active array width in pixels")
	sensorH := flag.Int("sensor-height", 3000, "active array height in pixels")
	previewW := flag.Int("preview-width", 1280, "preview stream width")
	previewH := flag.Int("preview-height", 960, "preview stream height")
	flag.Parse()

	log.Init(config.LogLevel("info"))

	params := legacy.NewParameters()
	params.Set(legacy.KeyFlashMode, *flash)
	params.Set(legacy.KeyAntibanding, *antibanding)
	params.Set(legacy.KeyFocalLength, *focal)
	params.Set(legacy.KeyAutoWhiteBalanceLock, strconv.FormatBool(*awbLock))
	params.Set(legacy.KeyZoomRatios, *zoomRatios)

	req := resultmapper.Request{
		Characteristics: resultmapper.Characteristics{
			ActiveArray: geometry.Rect{Width: *sensorW, Height: *sensorH},
		},
		PreviewSize: geometry.Size{Width: *previewW, Height: *previewH},
		Params:      params,
	}

	if *crop != "" {
		rect, err := parseRect(*crop)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -crop: %v\n", err)
			os.Exit(1)
		}
		req.Capture.CropRegion = &rect
	}

	mapper := resultmapper.New()
	mapper.Compat.ReportAeConverged = !config.Disabled(config.EnvNoAEConverged)
	mapper.Compat.ReportAwbConverged = !config.Disabled(config.EnvNoAWBConverged)
	mapper.Compat.EchoAfMode = !config.Disabled(config.EnvNoAFModeEcho)

	snap := mapper.Translate(req, time.Now().UnixNano())

	fmt.Printf("capture snapshot (%d keys)\n", snap.Len())
	fmt.Println("==========================")
	for _, key := range snap.Keys() {
		v, _ := snap.Get(key)
		fmt.Printf("%-28s %v\n", key, v)
	}

	fmt.Println()
	spew.Dump(snap.Values())
}

// parseRect parses "left,top,width,height".
func parseRect(s string) (geometry.Rect, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return geometry.Rect{}, fmt.Errorf("want 4 comma-separated integers, got %q", s)
	}
	vals := make([]int, 4)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return geometry.Rect{}, err
		}
		vals[i] = v
	}
	return geometry.Rect{Left: vals[0], Top: vals[1], Width: vals[2], Height: vals[3]}, nil
}
