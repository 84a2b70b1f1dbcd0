package geo_test

import (
	"testing"

	"github.com/katalvlaran/mapmatch/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitCode_AppendAndValueAt(t *testing.T) {
	c := geo.NewBitCode()
	c, err := c.Append(0b01, 2) // NE
	require.NoError(t, err)
	c, err = c.Append(0b10, 2) // SW
	require.NoError(t, err)

	assert.Equal(t, 4, c.Length())
	assert.Equal(t, 2, c.Level())

	v, err := c.ValueAt(0, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b01), v)

	v, err = c.ValueAt(2, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b10), v)
}

func TestBitCode_ImmutableUnderSharing(t *testing.T) {
	base := geo.NewBitCode()
	base, _ = base.Append(0b11, 2)

	left, err := base.Append(0b00, 2)
	require.NoError(t, err)
	right, err := base.Append(0b01, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, base.Level())
	assert.Equal(t, 4, left.Level())
	assert.Equal(t, 4, right.Level())

	lv, _ := left.ValueAt(2, 2)
	rv, _ := right.ValueAt(2, 2)
	assert.NotEqual(t, lv, rv)
}

func TestBitCode_OutOfRange(t *testing.T) {
	c := geo.NewBitCode()
	c, _ = c.Append(0b01, 2)
	_, err := c.ValueAt(0, 4)
	assert.ErrorIs(t, err, geo.ErrBitRange)

	_, err = c.Append(0, 65)
	assert.ErrorIs(t, err, geo.ErrBitWidth)
}

func TestBitCode_CrossWordBoundary(t *testing.T) {
	c := geo.NewBitCode()
	var err error
	for i := 0; i < 40; i++ { // 80 bits, crosses the 64-bit word boundary
		c, err = c.Append(uint64(i%4), 2)
		require.NoError(t, err)
	}
	assert.Equal(t, 80, c.Length())
	v, err := c.ValueAt(78, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(39%4), v)
}
