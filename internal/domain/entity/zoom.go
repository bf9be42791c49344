package entity

import "math"

// Zoom constants for per-tab page zoom.
const (
	ZoomDefault = 1.0
	ZoomMin     = 0.25 // 25%
	ZoomMax     = 3.0  // 300%
	ZoomStep    = 0.1  // 10% increments
)

// ZoomDirection selects a zoom transition.
type ZoomDirection string

const (
	ZoomIn    ZoomDirection = "in"
	ZoomOut   ZoomDirection = "out"
	ZoomReset ZoomDirection = "reset"
)

// ParseZoomDirection maps user input to a direction.
func ParseZoomDirection(s string) (ZoomDirection, bool) {
	switch ZoomDirection(s) {
	case ZoomIn, ZoomOut, ZoomReset:
		return ZoomDirection(s), true
	}
	return "", false
}

// ApplyZoom returns the zoom factor after moving current in the given direction.
// Unknown directions leave the factor unchanged.
func ApplyZoom(current float64, dir ZoomDirection) float64 {
	switch dir {
	case ZoomIn:
		return ClampZoom(roundZoom(current + ZoomStep))
	case ZoomOut:
		return ClampZoom(roundZoom(current - ZoomStep))
	case ZoomReset:
		return ZoomDefault
	}
	return ClampZoom(current)
}

// ClampZoom constrains a zoom factor to [ZoomMin, ZoomMax].
func ClampZoom(factor float64) float64 {
	if factor < ZoomMin {
		return ZoomMin
	}
	if factor > ZoomMax {
		return ZoomMax
	}
	return factor
}

// roundZoom drops float noise so repeated steps land on 1.1, 1.2, ...
func roundZoom(f float64) float64 {
	return math.Round(f*100) / 100
}
