/*
Package matrix provides the dense rectangular energy table the predictor
fills once per right boundary and reuses across the whole prediction.
*/
package matrix

import "github.com/rnaint/rnaint/rnaint/interaction"

// Dense2D is a dense, zero-indexed W1 x W2 array of energies, backed by a
// single contiguous slice rather than a slice of slices so that Resize can
// reuse the existing backing array across boundaries without per-row
// reallocation.
type Dense2D struct {
	w1, w2 int
	cells  []interaction.E
}

// NewDense2D creates an empty matrix; call Resize before use.
func NewDense2D() *Dense2D {
	return &Dense2D{}
}

// Resize (re)allocates the matrix to exactly w1 x w2 cells. Contents are
// undefined afterwards; callers must not read a cell before writing it.
func (m *Dense2D) Resize(w1, w2 int) {
	m.w1, m.w2 = w1, w2
	need := w1 * w2
	if cap(m.cells) < need {
		m.cells = make([]interaction.E, need)
	} else {
		m.cells = m.cells[:need]
	}
}

// Size1 returns the matrix's width along the first sequence's axis.
func (m *Dense2D) Size1() int { return m.w1 }

// Size2 returns the matrix's width along the second sequence's axis.
func (m *Dense2D) Size2() int { return m.w2 }

// Get returns the cell at (i1, i2). Out-of-bounds access panics, matching
// the teacher corpus's convention of unchecked slice indexing for
// programmer errors rather than a recoverable error.
func (m *Dense2D) Get(i1, i2 int) interaction.E {
	return m.cells[i1*m.w2+i2]
}

// Set writes the cell at (i1, i2).
func (m *Dense2D) Set(i1, i2 int, v interaction.E) {
	m.cells[i1*m.w2+i2] = v
}
