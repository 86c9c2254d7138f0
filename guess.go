package lambert

import "math"

// initialGuess picks a branch-specific starting x. For m=0 the choice
// depends on which side of T00/T1 the target non-dimensional time falls;
// for m>0 the caller additionally selects the low- or high-energy branch
// since both solve T(x)=target but on opposite sides of T's minimum.
func initialGuess(target, lambda float64, m int, lowPath bool) float64 {
	if m == 0 {
		tZero := t00(lambda)
		tOne := t1Parabolic(lambda)
		switch {
		case target >= tZero:
			return math.Pow(tZero/target, 2.0/3.0) - 1
		case target < tOne:
			lambda5 := math.Pow(lambda, 5)
			return 2.5*tOne*(tOne-target)/(target*(1-lambda5)) + 1
		default:
			exp := math.Log(2) / math.Log(tOne/tZero)
			return math.Pow(tZero/target, exp) - 1
		}
	}

	if lowPath {
		tau := math.Pow(float64(m+1)*math.Pi/(8*target), 2.0/3.0)
		return (tau - 1) / (tau + 1)
	}
	tau := math.Pow(8*target/(float64(m)*math.Pi), 2.0/3.0)
	return (tau - 1) / (tau + 1)
}
