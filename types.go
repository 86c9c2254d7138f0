package lambert

// Vector3 is a Cartesian 3-vector in km (positions) or km/s (velocities).
// The public API trades in this plain value type; the frame built inside
// the geometry preprocessor uses gonum's mat.VecDense so the cross/dot
// machinery stays BLAS-shaped.
type Vector3 [3]float64

// Input is a single Lambert boundary-value problem.
type Input struct {
	Mu       float64 // gravitational parameter, km^3/s^2
	R1, R2   Vector3 // position vectors, km
	TOF      float64 // time of flight, seconds
	M        int     // revolution count, 0..10
	Prograde bool    // short-way sense relative to +z unless retrograde
	LowPath  bool    // low-energy branch; only meaningful when M>0

	// MaxIter and RTol override the package defaults (Config()) for this
	// solve only. Zero means "use the default".
	MaxIter int
	RTol    float64
}

// Output is the result of a converged (or best-effort) Lambert solve.
type Output struct {
	V1, V2     Vector3
	Iterations int
	Converged  bool
}

func (in Input) maxIter() int {
	if in.MaxIter > 0 {
		return in.MaxIter
	}
	return Config().MaxIter
}

func (in Input) rtol() float64 {
	if in.RTol > 0 {
		return in.RTol
	}
	return Config().RTol
}

// derivs bundles the scalar kernel's value and its three derivatives so the
// root-finders can pass them around as one aggregate rather than four
// separate return values threaded through every call site.
type derivs struct {
	T, T1, T2, T3 float64
}
