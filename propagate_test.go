package lambert

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// stumpffC and stumpffS are the universal-variable Stumpff functions. They
// drive forward two-body propagation here purely so the test suite can
// check the round-trip invariant (propagate (r1,v1) for T seconds, expect
// r2) without depending on an external propagator.
func stumpffC(z float64) float64 {
	switch {
	case z > 1e-6:
		sz := math.Sqrt(z)
		return (1 - math.Cos(sz)) / z
	case z < -1e-6:
		sz := math.Sqrt(-z)
		return (1 - math.Cosh(sz)) / z
	default:
		return 1.0 / 2.0
	}
}

func stumpffS(z float64) float64 {
	switch {
	case z > 1e-6:
		sz := math.Sqrt(z)
		return (sz - math.Sin(sz)) / math.Pow(sz, 3)
	case z < -1e-6:
		sz := math.Sqrt(-z)
		return (math.Sinh(sz) - sz) / math.Pow(sz, 3)
	default:
		return 1.0 / 6.0
	}
}

// propagateTwoBody advances (r0, v0) by dt seconds under gravitational
// parameter mu via the universal-variable formulation, converging the
// universal anomaly chi with a Newton loop.
func propagateTwoBody(mu float64, r0, v0 Vector3, dt float64) (Vector3, Vector3) {
	r0vec := newVec3(r0)
	v0vec := newVec3(v0)
	r0mag := normVec3(r0vec)
	v0mag := normVec3(v0vec)
	sqrtMu := math.Sqrt(mu)

	vr0 := mat.Dot(r0vec, v0vec) / r0mag
	alpha := 2/r0mag - v0mag*v0mag/mu

	chi := sqrtMu * math.Abs(alpha) * dt
	for i := 0; i < 100; i++ {
		z := alpha * chi * chi
		c := stumpffC(z)
		s := stumpffS(z)

		f := r0mag*vr0/sqrtMu*chi*chi*c + (1-alpha*r0mag)*chi*chi*chi*s + r0mag*chi - sqrtMu*dt
		fp := r0mag*vr0/sqrtMu*chi*(1-alpha*chi*chi*s) + (1-alpha*r0mag)*chi*chi*c + r0mag

		step := f / fp
		chi -= step
		if math.Abs(step) < 1e-10 {
			break
		}
	}

	z := alpha * chi * chi
	c := stumpffC(z)
	s := stumpffS(z)

	fLag := 1 - chi*chi/r0mag*c
	gLag := dt - chi*chi*chi/sqrtMu*s

	rvec := addScaledVec3(fLag, r0vec, gLag, v0vec)
	rmag := normVec3(rvec)

	fDot := sqrtMu / (rmag * r0mag) * (alpha*chi*chi*chi*s - chi)
	gDot := 1 - chi*chi/rmag*c

	vvec := addScaledVec3(fDot, r0vec, gDot, v0vec)

	return Vector3(vec3Of(rvec)), Vector3(vec3Of(vvec))
}
