package okada

import "strings"

// Flag records the numerical status of one (observation point, patch) pair.
// Flags combine as a bit set; any non-OK pair contributed nothing to the
// point totals.
type Flag uint8

const (
	FlagOK             Flag = 0
	FlagAboveSurface   Flag = 1 << (iota - 1) // observation point has z > 0
	FlagNegativeDepth                         // patch top edge lies above the free surface
	FlagOnEdge                                // observation point on a patch edge
	FlagAtCorner                              // observation point on a patch corner
	FlagIllConditioned                        // closed-form terms not finite at this point
)

var flagNames = []struct {
	f    Flag
	name string
}{
	{FlagAboveSurface, "ABOVE_SURFACE"},
	{FlagNegativeDepth, "NEGATIVE_DEPTH"},
	{FlagOnEdge, "SINGULAR_ON_EDGE"},
	{FlagAtCorner, "SINGULAR_AT_CORNER"},
	{FlagIllConditioned, "ILL_CONDITIONED"},
}

func (f Flag) String() string {
	if f == FlagOK {
		return "OK"
	}
	var names []string
	for _, fn := range flagNames {
		if f&fn.f != 0 {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}

// Singular reports whether the pair hit a fault edge or corner.
func (f Flag) Singular() bool {
	return f&(FlagOnEdge|FlagAtCorner) != 0
}

// Code returns the decimal status code used by the disloc3d driver:
// 1 for a point above the surface, 10 for a negative patch depth and 100
// for a singular point, summed when several apply. Ill-conditioned pairs
// are reported as singular.
func (f Flag) Code() (code int) {
	if f&FlagAboveSurface != 0 {
		code += 1
	}
	if f&FlagNegativeDepth != 0 {
		code += 10
	}
	if f&(FlagOnEdge|FlagAtCorner|FlagIllConditioned) != 0 {
		code += 100
	}
	return
}
