package physics

import "fmt"

// solverMaxIter caps the bisection. Halving a bracket of width 1e5 down
// to 1e-10 takes about 50 iterations; the cap only triggers on a
// genuinely pathological f.
const solverMaxIter = 200

// SolvePositiveRoot finds a root of f inside [lo, hi] by bisection,
// stopping when the bracket width falls below tol. The interval must
// bracket a sign change.
func SolvePositiveRoot(f func(float64) float64, lo, hi, tol float64) (float64, error) {
	flo := f(lo)
	fhi := f(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if (flo > 0) == (fhi > 0) {
		return 0, fmt.Errorf("%w: f(%g)=%g, f(%g)=%g", ErrNoRoot, lo, flo, hi, fhi)
	}

	for i := 0; i < solverMaxIter; i++ {
		mid := lo + (hi-lo)/2
		if hi-lo < tol {
			return mid, nil
		}
		fmid := f(mid)
		if fmid == 0 {
			return mid, nil
		}
		if (fmid > 0) == (fhi > 0) {
			hi, fhi = mid, fmid
		} else {
			lo = mid
		}
	}
	return 0, fmt.Errorf("%w after %d iterations (bracket [%g, %g])", ErrNoConvergence, solverMaxIter, lo, hi)
}
