package okada

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/godisloc/utils"
)

// FaultPatch is a rectangular dislocation source. The reference point
// (Easting, Northing) is the centre of the upper edge and Depth is the
// depth of that edge, positive down. Strike is measured clockwise from
// north (+y) and the patch dips to the right of strike. Angles are in
// degrees.
type FaultPatch struct {
	Length, Width, Depth float64
	Dip, Strike          float64
	Easting, Northing    float64
	StrikeSlip, DipSlip  float64
	Opening              float64
}

// Layout selects the column order of a 10 value patch row.
type Layout uint8

const (
	// LayoutStandard: length, width, depth, dip, strike, easting, northing,
	// strike-slip, dip-slip, opening
	LayoutStandard Layout = iota
	// LayoutDisloc3d: easting, northing, depth, length, width, strike, dip,
	// strike-slip, dip-slip, opening
	LayoutDisloc3d
)

func NewLayout(label string) (l Layout, err error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "standard":
		l = LayoutStandard
	case "disloc3d":
		l = LayoutDisloc3d
	default:
		err = fmt.Errorf("unknown patch layout %q", label)
	}
	return
}

func (l Layout) String() string {
	switch l {
	case LayoutDisloc3d:
		return "disloc3d"
	default:
		return "standard"
	}
}

const (
	PatchColumns = 10
	PointColumns = 3
)

// NewFaultPatch maps one row onto a FaultPatch according to layout.
func NewFaultPatch(row []float64, layout Layout) (fp FaultPatch, err error) {
	if len(row) != PatchColumns {
		err = fmt.Errorf("patch row has %d values, want %d: %w", len(row), PatchColumns, ErrShape)
		return
	}
	switch layout {
	case LayoutDisloc3d:
		fp = FaultPatch{
			Easting: row[0], Northing: row[1], Depth: row[2],
			Length: row[3], Width: row[4], Strike: row[5], Dip: row[6],
		}
	default:
		fp = FaultPatch{
			Length: row[0], Width: row[1], Depth: row[2], Dip: row[3], Strike: row[4],
			Easting: row[5], Northing: row[6],
		}
	}
	fp.StrikeSlip, fp.DipSlip, fp.Opening = row[7], row[8], row[9]
	return
}

func PatchesFromRows(rows [][]float64, layout Layout) (patches []FaultPatch, err error) {
	patches = make([]FaultPatch, len(rows))
	for j, row := range rows {
		if patches[j], err = NewFaultPatch(row, layout); err != nil {
			return nil, fmt.Errorf("patch %d: %w", j, err)
		}
	}
	return
}

func PointsFromRows(rows [][]float64) (points []r3.Vec, err error) {
	points = make([]r3.Vec, len(rows))
	for i, row := range rows {
		if len(row) != PointColumns {
			return nil, fmt.Errorf("observation %d has %d values, want %d: %w",
				i, len(row), PointColumns, ErrShape)
		}
		points[i] = r3.Vec{X: row[0], Y: row[1], Z: row[2]}
	}
	return
}

func (fp FaultPatch) values() []float64 {
	return []float64{fp.Length, fp.Width, fp.Depth, fp.Dip, fp.Strike,
		fp.Easting, fp.Northing, fp.StrikeSlip, fp.DipSlip, fp.Opening}
}

// Validate checks the invariants that abort a batch. A negative depth is
// not an error here; it is reported per pair.
func (fp FaultPatch) Validate() error {
	if !utils.IsFinite(fp.values()...) {
		return fmt.Errorf("patch %+v: %w", fp, ErrNonFinite)
	}
	if fp.Length <= 0 || fp.Width <= 0 {
		return fmt.Errorf("length %v and width %v must be positive: %w",
			fp.Length, fp.Width, ErrPatchGeometry)
	}
	if dip := normalizeDegrees(fp.Dip); dip > 180 {
		return fmt.Errorf("dip %v normalises to %v, outside [0, 180]: %w",
			fp.Dip, dip, ErrPatchGeometry)
	}
	return nil
}

// Normalized returns the patch with strike and dip in [0, 360).
func (fp FaultPatch) Normalized() FaultPatch {
	fp.Strike = normalizeDegrees(fp.Strike)
	fp.Dip = normalizeDegrees(fp.Dip)
	return fp
}

func normalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func validatePoint(p r3.Vec) error {
	if !utils.IsFinite(p.X, p.Y, p.Z) {
		return fmt.Errorf("observation %v: %w", p, ErrNonFinite)
	}
	return nil
}
