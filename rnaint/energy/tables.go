package energy

// stackEnergies holds simplified nearest-neighbor stacking free energies
// (kcal/mol) for pairs of adjacent inter-molecular base pairs. Each key is
// two base pairs separated by '/', each written as its strand-one base
// followed by its strand-two partner: the outer pair (i1,i2) before the
// slash and the inner pair (k1,k2) after it,
// e.g. "AU/UA" stacks an A-U pair directly on top of a U-A pair.
//
// These are illustrative nearest-neighbor-style values, not a published
// parameter set; getting the literal numbers from a real thermodynamic
// table is explicitly out of scope (see the energy model non-goal).
var stackEnergies = map[string]float64{
	"AU/UA": -0.9,
	"AU/AU": -1.1,
	"AU/GC": -2.1,
	"AU/CG": -2.2,
	"AU/GU": -0.6,
	"AU/UG": -1.4,
	"UA/AU": -1.3,
	"UA/UA": -0.9,
	"UA/GC": -2.4,
	"UA/CG": -2.1,
	"UA/GU": -1.0,
	"UA/UG": -0.6,
	"GC/AU": -2.1,
	"GC/UA": -2.4,
	"GC/GC": -3.3,
	"GC/CG": -3.4,
	"GC/GU": -1.4,
	"GC/UG": -2.5,
	"CG/AU": -2.2,
	"CG/UA": -2.1,
	"CG/GC": -3.4,
	"CG/CG": -3.3,
	"CG/GU": -1.5,
	"CG/UG": -2.4,
	"GU/AU": -1.4,
	"GU/UA": -0.6,
	"GU/GC": -2.5,
	"GU/CG": -1.5,
	"GU/GU": -0.5,
	"GU/UG": -1.0,
	"UG/AU": -0.6,
	"UG/UA": -1.0,
	"UG/GC": -2.4,
	"UG/CG": -1.4,
	"UG/GU": -1.0,
	"UG/UG": -0.3,
}

// loopInitiationAt10 is the extrapolation anchor used by
// loopInitiation: the initiation penalty (kcal/mol) of an internal
// loop of loopInitiationKnownLen unpaired bases, in the style of the
// teacher's precalculated bulge/internal-loop tables.
const (
	loopInitiationAt10     = 3.2
	loopInitiationKnownLen = 10
	loopAsymmetryPenalty   = 0.3
)

// gasConstantKcal is the gas constant in kcal/(mol*K), used by
// loopInitiation's Jacobson-Stockmayer term exactly as in the teacher's
// fold package.
const gasConstantKcal = 1.9872e-3
