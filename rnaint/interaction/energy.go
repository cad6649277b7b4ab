/*
Package interaction defines the value types produced and consumed by the
hybridization predictor: energies, positions, index ranges, base pairs, and
the Interaction itself.
*/
package interaction

import "math"

// E is a hybridization or total interaction energy, in kcal/mol. EInf is
// used as the "infeasible / not computed" sentinel rather than a signaling
// NaN so that ordinary comparisons (<, >) keep working without special
// casing at every call site.
type E float64

// EInf represents an infeasible or not-yet-computed energy.
const EInf E = E(math.MaxFloat64)

// equalEpsilon is the tolerance used when comparing energies during
// traceback, where floating point round-off would otherwise break the
// equality checks the recurrence relies on.
const equalEpsilon = 1e-6

// IsFinite reports whether e is a real, computed energy rather than EInf.
func IsFinite(e E) bool {
	return e < EInf
}

// AddE saturates to EInf if either operand is already EInf, keeping the
// infinity propagation in the fill recursion branch-free.
func AddE(a, b E) E {
	if !IsFinite(a) || !IsFinite(b) {
		return EInf
	}
	return a + b
}

// EqualE reports whether a and b are the same energy within equalEpsilon.
// Two EInf values compare equal; an EInf never equals a finite value.
func EqualE(a, b E) bool {
	if a == EInf || b == EInf {
		return a == b
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= equalEpsilon
}

// LessE reports whether a is strictly lower than b, treating EInf as larger
// than any finite value.
func LessE(a, b E) bool {
	return a < b
}
