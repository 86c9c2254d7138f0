package lambert

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// geometry is the preprocessed, non-dimensional form of a solve input: the
// orthonormal in-plane frame plus λ and the non-dimensional time of flight.
// Every field here is local to one solve; nothing is shared across calls.
type geometry struct {
	r1mag, r2mag float64
	chord        float64
	lambda       float64
	tnd          float64 // non-dimensional time of flight
	s            float64 // semi-perimeter, km

	r1hat, r2hat *mat.VecDense
	t1hat, t2hat *mat.VecDense
}

// buildGeometry validates the input and preprocesses it into the
// non-dimensional form the root-finder works in: chord/semi-perimeter/λ,
// the plane normal and its degeneracy check, and the orientation/retrograde
// sign table for the tangent frame.
func buildGeometry(in Input) (geometry, *SolveError) {
	if in.TOF <= 0 {
		return geometry{}, newError(InvalidInput, "time of flight must be positive, got %g", in.TOF)
	}
	if in.Mu <= 0 {
		return geometry{}, newError(InvalidInput, "mu must be positive, got %g", in.Mu)
	}
	if in.M < 0 || in.M > maxRevolutions {
		return geometry{}, newError(InvalidInput, "revolution count M=%d out of [0,%d]", in.M, maxRevolutions)
	}

	r1 := newVec3(in.R1)
	r2 := newVec3(in.R2)
	r1mag := normVec3(r1)
	r2mag := normVec3(r2)
	if floats.EqualWithinAbs(r1mag, 0, 1e-12) || floats.EqualWithinAbs(r2mag, 0, 1e-12) {
		return geometry{}, newError(InvalidInput, "position vectors must be nonzero")
	}

	diff := mat.NewVecDense(3, nil)
	diff.SubVec(r2, r1)
	c := normVec3(diff)
	s := (r1mag + r2mag + c) / 2

	lambda := math.Sqrt(math.Max(0, 1-c/s))

	r1hat := unitVec3(r1)
	r2hat := unitVec3(r2)
	hvecRaw := crossVec3(r1hat, r2hat)
	hnorm := normVec3(hvecRaw)
	if hnorm < planeDegenerateTol {
		return geometry{}, newError(TransferAngleUndefined, "|r1 x r2|=%g below %g, transfer angle near 180 deg", hnorm, planeDegenerateTol)
	}
	hhat := mat.NewVecDense(3, nil)
	hhat.ScaleVec(1/hnorm, hvecRaw)

	var t1hat, t2hat *mat.VecDense
	if hzSign := sign(hhat.AtVec(2)); hzSign < 0 {
		lambda = -lambda
		t1hat = crossVec3(r1hat, hhat)
		t2hat = crossVec3(r2hat, hhat)
	} else {
		t1hat = crossVec3(hhat, r1hat)
		t2hat = crossVec3(hhat, r2hat)
	}

	if !in.Prograde {
		lambda = -lambda
		t1hat.ScaleVec(-1, t1hat)
		t2hat.ScaleVec(-1, t2hat)
	}

	tnd := math.Sqrt(2*in.Mu/(s*s*s)) * in.TOF

	return geometry{
		r1mag: r1mag, r2mag: r2mag, chord: c,
		lambda: lambda, tnd: tnd, s: s,
		r1hat: r1hat, r2hat: r2hat,
		t1hat: t1hat, t2hat: t2hat,
	}, nil
}
