package mps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	m, err := ReadFile("testdata/known.mps")
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	assert.Equal(t, "known", m.Name)
	assert.True(t, m.Minimize)
	assert.Equal(t, 2, m.NumCols)
	// Two rows plus the upper bound on x1.
	assert.Equal(t, 3, m.NumRows)

	assert.Equal(t, 3.0, m.C.At(0, 0))
	assert.Equal(t, 4.0, m.C.At(0, 1))
	assert.Equal(t, 2.0, m.A.At(0, 1))
	assert.Equal(t, 2.0, m.A.At(1, 0))
	assert.Equal(t, []float64{1, 0}, m.A.RawRowView(2))
	assert.Equal(t, 12.0, m.B.At(1, 0))
	assert.Equal(t, 4.0, m.B.At(2, 0))
}

func TestReadFileRejectsGreaterEqualRows(t *testing.T) {
	_, err := ReadFile("testdata/ge.mps")
	require.ErrorIs(t, err, ErrUnsupported)
}
