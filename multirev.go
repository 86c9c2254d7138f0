package lambert

// Branch is one converged solution found while enumerating revolution
// counts and path branches. LowPath is nil for M=0, where the low/high
// distinction does not apply.
type Branch struct {
	M          int
	LowPath    *bool
	V1, V2     Vector3
	Iterations int
	Converged  bool
}

// MultiRev enumerates M=0..maxM and, for each M>0, both the low- and
// high-energy path, invoking Solve for each combination and collecting the
// converged solutions in enumeration order. The trivially-redundant
// (M=0, high-path) combination is skipped, since M=0 has only one branch.
// Callers that need a specific ordering (e.g. by ΔV) sort the result
// themselves.
func MultiRev(mu float64, r1, r2 Vector3, tofSec float64, maxM int, prograde bool) []Branch {
	var branches []Branch

	base := Input{Mu: mu, R1: r1, R2: r2, TOF: tofSec, Prograde: prograde}

	zero := base
	zero.M = 0
	zero.LowPath = true
	if out, err := Solve(zero); err == nil && out.Converged {
		branches = append(branches, Branch{M: 0, LowPath: nil, V1: out.V1, V2: out.V2, Iterations: out.Iterations, Converged: out.Converged})
	}

	for m := 1; m <= maxM; m++ {
		for _, low := range [...]bool{true, false} {
			in := base
			in.M = m
			in.LowPath = low
			out, err := Solve(in)
			if err != nil || !out.Converged {
				continue
			}
			low := low // local copy: each branch needs its own addressable bool
			branches = append(branches, Branch{M: m, LowPath: &low, V1: out.V1, V2: out.V2, Iterations: out.Iterations, Converged: out.Converged})
		}
	}

	return branches
}
