package lambert

// Solve computes the velocity pair connecting in.R1 at t=0 to in.R2 at
// t=in.TOF under gravitational parameter in.Mu.
//
// Hard failures (malformed input, an undefined transfer plane, or a
// revolution count the time of flight cannot support) are returned as
// *SolveError and the zero Output. Non-convergence of the Householder loop
// is a soft failure: Solve returns its best-effort x, in the form of
// Output.V1/V2, with Converged=false and a nil error — the batch driver and
// any other caller on a hot path decide what to do with a soft failure
// without paying for an error allocation.
func Solve(in Input) (Output, error) {
	g, serr := buildGeometry(in)
	if serr != nil {
		return Output{}, serr
	}

	maxIter := in.maxIter()
	rtol := in.rtol()

	mmax := feasibleMmax(g.lambda, g.tnd, maxIter, rtol)
	if in.M > mmax {
		return Output{}, newError(NoSolutionForRevolutionCount, "requested M=%d exceeds M_max=%d for this time of flight", in.M, mmax)
	}

	x0 := initialGuess(g.tnd, g.lambda, in.M, in.LowPath)
	x, iterations, converged := householder(x0, g.tnd, g.lambda, in.M, maxIter, rtol)

	v1, v2 := reconstructVelocity(g, in.Mu, x)
	return Output{V1: v1, V2: v2, Iterations: iterations, Converged: converged}, nil
}
