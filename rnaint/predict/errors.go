package predict

import "errors"

// ErrUnsupportedConstraint is returned when an OutputConstraint combination
// cannot be implemented by the single-optimum core: a ReportMax greater
// than 1 requires OverlapBoth.
var ErrUnsupportedConstraint = errors.New("predict: unsupported output constraint")

// ErrBadRange is returned when an input IndexRange is not ascending.
var ErrBadRange = errors.New("predict: range is not ascending")

// ErrOracleRange is returned when an internal index falls outside the
// oracle's bounds; it indicates a programmer error rather than bad input.
var ErrOracleRange = errors.New("predict: index out of oracle bounds")

// ErrInvalidInteraction is returned when traceback receives a malformed
// interaction, or an invariant the fill is supposed to guarantee is
// violated during the walk.
var ErrInvalidInteraction = errors.New("predict: invalid interaction")
