package lambert

import (
	"errors"
	"testing"
)

// TestFeasibilityBoundary checks that if M_max is returned as k, solving
// for M=k converges and solving for M=k+1 fails with
// NoSolutionForRevolutionCount.
func TestFeasibilityBoundary(t *testing.T) {
	in := Input{
		Mu:       MuEarth,
		R1:       Vector3{7000, 0, 0},
		R2:       Vector3{0, 7000, 0},
		TOF:      30000,
		Prograde: true,
		LowPath:  true,
	}

	g, serr := buildGeometry(in)
	if serr != nil {
		t.Fatalf("unexpected geometry error: %v", serr)
	}
	mmax := feasibleMmax(g.lambda, g.tnd, defaultMaxIter, defaultRTol)
	if mmax <= 0 {
		t.Skip("time of flight too short to exercise multi-rev boundary")
	}

	okIn := in
	okIn.M = mmax
	if _, err := Solve(okIn); err != nil {
		t.Fatalf("M=M_max=%d should be solvable, got %v", mmax, err)
	}

	badIn := in
	badIn.M = mmax + 1
	_, err := Solve(badIn)
	if err == nil {
		t.Fatalf("M=M_max+1=%d should fail with NoSolutionForRevolutionCount", mmax+1)
	}
	var serr2 *SolveError
	if !errors.As(err, &serr2) {
		t.Fatalf("expected *SolveError, got %T: %v", err, err)
	}
	if serr2.Kind != NoSolutionForRevolutionCount {
		t.Fatalf("expected NoSolutionForRevolutionCount, got %v", serr2.Kind)
	}
}
