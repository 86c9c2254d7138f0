package lambert

import "math"

// t00 returns T(x=0) for M=0, the non-dimensional time of flight of the
// minimum-energy elliptic transfer.
func t00(lambda float64) float64 {
	return math.Acos(lambda) + lambda*math.Sqrt(math.Max(0, 1-lambda*lambda))
}

// t1Parabolic returns T(x=1), the non-dimensional time of flight at the
// parabolic limit.
func t1Parabolic(lambda float64) float64 {
	lambda3 := lambda * lambda * lambda
	return (2.0 / 3.0) * (1 - lambda3)
}

// feasibleMmax bounds the revolution count a given non-dimensional time of
// flight can support: start from floor(T/pi), then fall back to the Halley
// minimum-time search when the naive bound would accept an M whose
// minimum-time solution actually exceeds T.
func feasibleMmax(lambda, tnd float64, maxIter int, rtol float64) int {
	mmax := int(math.Floor(tnd / math.Pi))
	if mmax <= 0 {
		return 0
	}
	threshold := t00(lambda) + float64(mmax)*math.Pi
	if tnd < threshold {
		_, tMin := halleyMinTime(lambda, mmax, maxIter, rtol)
		if tnd < tMin {
			mmax--
		}
	}
	if mmax < 0 {
		mmax = 0
	}
	return mmax
}
