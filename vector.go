package lambert

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// newVec3 builds a 3-vector backed by gonum's mat.VecDense.
func newVec3(v [3]float64) *mat.VecDense {
	return mat.NewVecDense(3, v[:])
}

func vec3Of(v *mat.VecDense) [3]float64 {
	return [3]float64{v.AtVec(0), v.AtVec(1), v.AtVec(2)}
}

// normVec3 returns the Euclidean norm of a 3-vector.
func normVec3(v *mat.VecDense) float64 {
	return mat.Norm(v, 2)
}

// unitVec3 returns the unit vector of v, or the zero vector if v is (within
// tolerance) the zero vector itself.
func unitVec3(v *mat.VecDense) *mat.VecDense {
	n := normVec3(v)
	if floats.EqualWithinAbs(n, 0, 1e-12) {
		return mat.NewVecDense(3, nil)
	}
	u := mat.NewVecDense(3, nil)
	u.ScaleVec(1/n, v)
	return u
}

// crossVec3 performs the cross product of two 3-vectors.
func crossVec3(a, b *mat.VecDense) *mat.VecDense {
	ax, ay, az := a.AtVec(0), a.AtVec(1), a.AtVec(2)
	bx, by, bz := b.AtVec(0), b.AtVec(1), b.AtVec(2)
	return mat.NewVecDense(3, []float64{
		ay*bz - az*by,
		az*bx - ax*bz,
		ax*by - ay*bx,
	})
}

// addScaledVec3 returns sa*va + sb*vb, folding the frequent "radial plus
// tangential component" combination used by the velocity reconstructor into
// one allocation.
func addScaledVec3(sa float64, va *mat.VecDense, sb float64, vb *mat.VecDense) *mat.VecDense {
	out := mat.NewVecDense(3, nil)
	out.AddScaledVec(out, sa, va)
	out.AddScaledVec(out, sb, vb)
	return out
}

// sign treats zero as positive, which matters for the plane-normal
// orientation branch in the geometry preprocessor.
func sign(v float64) float64 {
	if floats.EqualWithinAbs(v, 0, 1e-12) {
		return 1
	}
	return v / math.Abs(v)
}
