package lambert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mathext"
)

// TestHyp2f1BattinAgainstGonum cross-checks the hand-rolled, truncated
// 2F1(3,1,5/2;z) accumulator used on the Battin branch against gonum's
// general-purpose Gauss hypergeometric evaluator. The solver keeps its own
// series because it only ever needs this one (a,b,c) triple and must not
// pay a general evaluator's cost every Householder iteration; this test is
// what justifies that the shortcut is actually correct.
func TestHyp2f1BattinAgainstGonum(t *testing.T) {
	for _, z := range []float64{-0.9, -0.5, -0.1, 0, 0.1, 0.3, 0.5, 0.8, 0.95} {
		want, err := mathext.Hyp2f1(3, 1, 2.5, z)
		require.NoError(t, err)
		got := hyp2f1Battin(z)
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("z=%g: got %g want %g", z, got, want)
		}
	}
}

// TestTofDerivsContinuousAcrossBattinBoundary checks that T(x) does not
// jump when x crosses the |x-1|<battinBandwidth switch between the Battin
// series and the closed acos/acosh form.
func TestTofDerivsContinuousAcrossBattinBoundary(t *testing.T) {
	lambda := 0.5
	inner := tofDerivs(1-battinBandwidth+1e-6, lambda, 0)
	outer := tofDerivs(1-battinBandwidth-1e-6, lambda, 0)
	if math.Abs(inner.T-outer.T) > 1e-4 {
		t.Fatalf("T(x) discontinuous across Battin boundary: inner=%g outer=%g", inner.T, outer.T)
	}
}

func TestT00AndT1ParabolicAtLambdaZero(t *testing.T) {
	// At lambda=0 (180 degree transfer angle), T00 = pi/2 and T1 = 2/3.
	if got := t00(0); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Fatalf("T00(0)=%g, want pi/2", got)
	}
	if got := t1Parabolic(0); math.Abs(got-2.0/3.0) > 1e-12 {
		t.Fatalf("T1(0)=%g, want 2/3", got)
	}
}
