package lambert

import "math"

// halleyMinTime locates x where T'(x)=0 for a given M, starting at x=0. It
// is only used during feasibility checking to bound the minimum time of
// flight a given revolution count can achieve; it always returns a T_min,
// even if the stop predicate never fires within maxIter. Known gap: there
// is no way for the caller to distinguish that case from a clean
// convergence, since feasibleMmax only ever needs the resulting T_min.
func halleyMinTime(lambda float64, m, maxIter int, rtol float64) (xMin, tMin float64) {
	x := 0.0
	for i := 0; i < maxIter; i++ {
		d := tofDerivs(x, lambda, m)
		denom := d.T2*d.T2 - 0.5*d.T1*d.T3
		if denom == 0 {
			break
		}
		delta := d.T1 * d.T2 / denom
		x -= delta
		if math.Abs(d.T1) < rtol || math.Abs(delta) < rtol {
			break
		}
	}
	d := tofDerivs(x, lambda, m)
	return x, d.T
}

// householder solves T(x)=target for x via the quartic-order Householder
// iteration, starting from x0. It always returns its best x; the converged
// flag tells the caller whether either stop predicate fired before maxIter
// was exhausted.
func householder(x0, target, lambda float64, m, maxIter int, rtol float64) (x float64, iterations int, converged bool) {
	x = x0
	for i := 0; i < maxIter; i++ {
		iterations = i + 1
		d := tofDerivs(x, lambda, m)
		delta := d.T - target

		t1sq := d.T1 * d.T1
		numerator := delta * (t1sq - 0.5*delta*d.T2)
		denominator := d.T1*(t1sq-delta*d.T2) + delta*delta*d.T3/6
		if denominator == 0 {
			break
		}
		step := numerator / denominator
		x -= step

		if math.Abs(delta) < rtol*math.Abs(target) || math.Abs(step) < rtol {
			converged = true
			break
		}
	}
	return x, iterations, converged
}
