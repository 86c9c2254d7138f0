package lambert

import (
	"math"
	"testing"
)

func TestHouseholderSolvesTofFunction(t *testing.T) {
	lambda := 0.5
	target := t00(lambda) + 0.3 // pick a target reachable from the M=0 region
	x0 := initialGuess(target, lambda, 0, true)

	x, iterations, converged := householder(x0, target, lambda, 0, defaultMaxIter, defaultRTol)
	if !converged {
		t.Fatalf("expected convergence, got x=%g after %d iterations", x, iterations)
	}
	got := tofDerivs(x, lambda, 0).T
	if math.Abs(got-target) > defaultRTol*math.Abs(target) {
		t.Fatalf("T(x)=%g does not match target=%g within rtol", got, target)
	}
	if iterations > 8 {
		t.Fatalf("well-posed case should converge in single digits, took %d", iterations)
	}
}

func TestHouseholderReportsNonConvergence(t *testing.T) {
	lambda := 0.5
	target := t00(lambda) + 0.3
	// A single iteration cannot possibly satisfy the stop predicate from a
	// guess this far off.
	_, _, converged := householder(10, target, lambda, 0, 1, defaultRTol)
	if converged {
		t.Fatalf("expected non-convergence with maxIter=1 from a bad guess")
	}
}

func TestHalleyMinTimeFindsStationaryPoint(t *testing.T) {
	lambda := 0.3
	x, tMin := halleyMinTime(lambda, 1, defaultMaxIter, defaultRTol)
	d := tofDerivs(x, lambda, 1)
	if math.Abs(d.T1) > 1e-6 {
		t.Fatalf("Halley search did not reach a stationary point: T'(x)=%g", d.T1)
	}
	if math.IsNaN(tMin) || tMin <= 0 {
		t.Fatalf("T_min invalid: %g", tMin)
	}
}
