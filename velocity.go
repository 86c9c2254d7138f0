package lambert

import "math"

// reconstructVelocity maps a converged (x, geometry) pair back to the
// inertial-frame velocity pair, using Gooding's closed-form mapping.
func reconstructVelocity(g geometry, mu, x float64) (v1, v2 Vector3) {
	y := math.Sqrt(1 - g.lambda*g.lambda*(1-x*x))

	gamma := math.Sqrt(mu * g.s / 2)
	rho := (g.r1mag - g.r2mag) / g.chord
	sigma := math.Sqrt(1 - rho*rho)

	lambdaYmX := g.lambda*y - x
	lambdaYpX := g.lambda*y + x

	vr1 := gamma * (lambdaYmX - rho*lambdaYpX) / g.r1mag
	vr2 := -gamma * (lambdaYmX + rho*lambdaYpX) / g.r2mag
	vt := gamma * sigma * (y + g.lambda*x)
	vt1 := vt / g.r1mag
	vt2 := vt / g.r2mag

	v1vec := addScaledVec3(vr1, g.r1hat, vt1, g.t1hat)
	v2vec := addScaledVec3(vr2, g.r2hat, vt2, g.t2hat)

	return Vector3(vec3Of(v1vec)), Vector3(vec3Of(v2vec))
}
