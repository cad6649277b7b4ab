package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rnaint/rnaint/rnaint/interaction"
)

func TestGetSetRoundTrip(t *testing.T) {
	m := NewDense2D()
	m.Resize(3, 4)
	assert.Equal(t, 3, m.Size1())
	assert.Equal(t, 4, m.Size2())

	for i1 := 0; i1 < 3; i1++ {
		for i2 := 0; i2 < 4; i2++ {
			m.Set(i1, i2, interaction.E(i1*10+i2))
		}
	}
	for i1 := 0; i1 < 3; i1++ {
		for i2 := 0; i2 < 4; i2++ {
			assert.Equal(t, interaction.E(i1*10+i2), m.Get(i1, i2))
		}
	}
}

func TestResizeReusesBackingArray(t *testing.T) {
	m := NewDense2D()
	m.Resize(10, 10)
	m.Set(5, 5, interaction.E(42))

	// Shrinking should reuse the same backing array rather than
	// reallocate, since its capacity already covers the new size.
	m.Resize(2, 2)
	assert.Equal(t, 100, cap(m.cells))
	m.Set(0, 0, interaction.E(1))
	assert.Equal(t, interaction.E(1), m.Get(0, 0))
}

func TestResizeGrowsWhenNeeded(t *testing.T) {
	m := NewDense2D()
	m.Resize(2, 2)
	m.Resize(20, 20)
	assert.Equal(t, 20, m.Size1())
	assert.Equal(t, 20, m.Size2())
	// the full grown extent must be addressable
	m.Set(19, 19, interaction.E(-7))
	assert.Equal(t, interaction.E(-7), m.Get(19, 19))
}

func TestGetPanicsOutOfBounds(t *testing.T) {
	m := NewDense2D()
	m.Resize(2, 2)
	assert.Panics(t, func() { m.Get(2, 0) })
}
