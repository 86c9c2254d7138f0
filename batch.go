package lambert

import (
	"fmt"
	"math"
)

// problemStride and resultStride are the flat-buffer packing strides:
// [mu, r1x, r1y, r1z, r2x, r2y, r2z, T_sec] in,
// [v1x, v1y, v1z, v2x, v2y, v2z] out.
const (
	problemStride = 8
	resultStride  = 6
)

// BatchOptions are the parameters shared by every problem in one Batch
// call: a single revolution count and path/sense selection applies to the
// whole sweep.
type BatchOptions struct {
	M        int
	Prograde bool
	LowPath  bool
	MaxIter  int
	RTol     float64
}

// Batch strides over problems (stride problemStride) and writes results
// (stride resultStride), returning the count of problems that produced a
// converged solution.
//
// A hard failure on a given problem (bad input, undefined transfer plane, or
// an infeasible revolution count) writes NaN to all six of that problem's
// output slots, so a caller reading only a subset of the slots can't mistake
// stale data for a real result. A soft failure (non-convergence) still
// writes the best-effort velocities but is not counted as a success.
func Batch(problems, results []float64, opts BatchOptions) (successCount int, err error) {
	if len(problems)%problemStride != 0 {
		return 0, fmt.Errorf("lambert: problems buffer length %d is not a multiple of %d", len(problems), problemStride)
	}
	n := len(problems) / problemStride
	if len(results) != n*resultStride {
		return 0, fmt.Errorf("lambert: results buffer length %d does not match %d problems (want %d)", len(results), n, n*resultStride)
	}

	for i := 0; i < n; i++ {
		po := i * problemStride
		ro := i * resultStride

		in := Input{
			Mu:       problems[po],
			R1:       Vector3{problems[po+1], problems[po+2], problems[po+3]},
			R2:       Vector3{problems[po+4], problems[po+5], problems[po+6]},
			TOF:      problems[po+7],
			M:        opts.M,
			Prograde: opts.Prograde,
			LowPath:  opts.LowPath,
			MaxIter:  opts.MaxIter,
			RTol:     opts.RTol,
		}

		out, serr := Solve(in)
		if serr != nil {
			for k := 0; k < resultStride; k++ {
				results[ro+k] = math.NaN()
			}
			continue
		}

		results[ro+0], results[ro+1], results[ro+2] = out.V1[0], out.V1[1], out.V1[2]
		results[ro+3], results[ro+4], results[ro+5] = out.V2[0], out.V2[1], out.V2[2]
		if out.Converged {
			successCount++
		}
	}

	return successCount, nil
}
