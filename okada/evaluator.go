package okada

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/godisloc/utils"
)

// Evaluator runs the dislocation kernel over every (point, patch) pair.
// Observation points are split into ParallelDegree contiguous buckets and
// each bucket is evaluated by its own goroutine. Patches are always summed
// in input order, so results do not depend on ParallelDegree.
type Evaluator struct {
	ParallelDegree int
	Eps            float64
	Logger         *zap.Logger
}

// NewEvaluator returns an evaluator using parallelDegree workers, or one
// per CPU when parallelDegree <= 0. A nil logger discards all output.
func NewEvaluator(parallelDegree int, logger *zap.Logger) *Evaluator {
	if parallelDegree <= 0 {
		parallelDegree = runtime.NumCPU()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{
		ParallelDegree: parallelDegree,
		Eps:            DefaultEps,
		Logger:         logger,
	}
}

// OkadaRect evaluates patches given as rows of length, width, depth, dip,
// strike, easting, northing, strike-slip, dip-slip and opening at the
// observation rows (x, y, z).
func OkadaRect(obs, models [][]float64, mu, nu float64) (res *Result, err error) {
	var (
		points  []r3.Vec
		patches []FaultPatch
	)
	if points, err = PointsFromRows(obs); err != nil {
		return
	}
	if patches, err = PatchesFromRows(models, LayoutStandard); err != nil {
		return
	}
	return NewEvaluator(0, nil).Evaluate(points, patches, ElasticConstants{Mu: mu, Nu: nu})
}

func (ev *Evaluator) validate(points []r3.Vec, patches []FaultPatch, ec ElasticConstants) error {
	if err := ec.Validate(); err != nil {
		return err
	}
	for i, p := range points {
		if err := validatePoint(p); err != nil {
			return fmt.Errorf("observation %d: %w", i, err)
		}
	}
	for j, fp := range patches {
		if err := fp.Validate(); err != nil {
			return fmt.Errorf("patch %d: %w", j, err)
		}
	}
	return nil
}

// Evaluate validates the inputs and returns the superposed fields. It
// fails only on invalid input; numerical trouble at individual pairs is
// reported through Result.Flags.
func (ev *Evaluator) Evaluate(points []r3.Vec, patches []FaultPatch, ec ElasticConstants) (res *Result, err error) {
	if err = ev.validate(points, patches, ec); err != nil {
		return nil, err
	}
	var (
		eps    = ev.Eps
		md     = newMedium(ec.Alpha())
		frames = make([]*patchFrame, len(patches))
	)
	if eps <= 0 {
		eps = DefaultEps
	}
	for j, fp := range patches {
		frames[j] = newPatchFrame(fp, eps)
	}
	res = newResult(len(points), len(patches))
	if len(points) == 0 {
		return
	}
	var (
		pm = utils.NewPartitionMap(ev.ParallelDegree, len(points))
		g  errgroup.Group
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		kMin, kMax := pm.GetBucketRange(np)
		ev.Logger.Debug("dispatching bucket",
			zap.Int("bucket", np), zap.Int("points", pm.GetBucketDimension(np)))
		g.Go(func() error {
			for i := kMin; i < kMax; i++ {
				ev.evaluatePoint(i, points[i], frames, md, ec, eps, res)
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	if n := res.DegradedPairs(); n != 0 {
		ev.Logger.Warn("degenerate pairs excluded from totals",
			zap.Int("pairs", n), zap.Int("points", len(points)), zap.Int("patches", len(patches)))
	}
	if ce := ev.Logger.Check(zap.DebugLevel, "batch evaluated"); ce != nil {
		ce.Write(zap.Int("points", len(points)), zap.Int("patches", len(patches)),
			zap.Int("workers", pm.ParallelDegree), zap.String("memory", utils.GetMemUsage()))
	}
	return
}

func (ev *Evaluator) evaluatePoint(i int, pt r3.Vec, frames []*patchFrame, md medium,
	ec ElasticConstants, eps float64, res *Result) {
	var (
		u    r3.Vec
		grad = mat.NewDense(3, 3, nil)
	)
	for j, pf := range frames {
		f, flag := pf.evaluateLocal(pf.toLocal(pt), md, eps)
		res.Flags[i][j] = flag
		if flag != FlagOK {
			ev.Logger.Debug("degenerate pair",
				zap.Int("point", i), zap.Int("patch", j), zap.Stringer("flag", flag))
			continue
		}
		ug, gg := pf.toGlobal(&f)
		u = r3.Add(u, ug)
		grad.Add(grad, gg)
	}
	res.set(i, u, grad, ec)
}
