package instance

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"q.log/tabsimplex/model"
	"q.log/tabsimplex/simplex"
)

func TestConstructModelFromFileYAML(t *testing.T) {
	p, err := NewReader("testdata/known.yaml").ConstructModelFromFile()
	require.NoError(t, err)

	assert.Equal(t, "known", p.Model.Name)
	assert.Equal(t, 2, p.Model.NumRows)
	assert.Equal(t, 2, p.Model.NumCols)
	assert.False(t, p.Model.Minimize)
	require.NotNil(t, p.Tolerance)
	assert.Equal(t, 0.05, *p.Tolerance)
	assert.Equal(t, 2.0, p.Model.A.At(1, 0))
}

func TestConstructModelFromFileJSON(t *testing.T) {
	p, err := NewReader("testdata/cost.json").ConstructModelFromFile()
	require.NoError(t, err)

	assert.Equal(t, "cost", p.Model.Name)
	assert.True(t, p.Model.Minimize)
	assert.Nil(t, p.Tolerance)
	// min -x1 - 2x2 is stored negated.
	assert.Equal(t, 1.0, p.Model.C.At(0, 0))
	assert.Equal(t, 2.0, p.Model.C.At(0, 1))

	log := logrus.New()
	log.SetOutput(io.Discard)
	res, err := simplex.Solve(p.Model, simplex.WithRule(simplex.StandardRule), simplex.WithLogger(logrus.NewEntry(log)))
	require.NoError(t, err)
	assert.InDelta(t, -6, res.Objective, 1e-12)
}

func TestConstructModelFromFileMissing(t *testing.T) {
	_, err := NewReader("testdata/nope.yaml").ConstructModelFromFile()
	require.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"unknown field", "objective: [1]\nconstraints: [[1]]\nrhs: [1]\nextra: 1\n", ErrFormat},
		{"bad sense", "sense: sideways\nobjective: [1]\nconstraints: [[1]]\nrhs: [1]\n", ErrFormat},
		{"not yaml", "objective: [1, \n", ErrFormat},
		{"ragged", "objective: [1, 2]\nconstraints: [[1]]\nrhs: [1]\n", model.ErrDimension},
		{"empty", "constraints: []\nrhs: []\n", model.ErrEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExamples(t *testing.T) {
	all := Examples()
	require.Len(t, all, 6)
	assert.Equal(t, "test-1", all[0].Model.Name)
	assert.Nil(t, all[0].Tolerance)
	require.NotNil(t, all[4].Tolerance)
	assert.Equal(t, 0.01, *all[4].Tolerance)

	for _, p := range all {
		require.NoError(t, p.Model.Validate(), p.Model.Name)
	}

	p, err := Example("test-unbound")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Model.NumRows)

	_, err = Example("test-9")
	require.ErrorIs(t, err, ErrUnknownExample)
}

func TestExamplesAreIndependent(t *testing.T) {
	a, err := Example("test-5")
	require.NoError(t, err)
	*a.Tolerance = 1
	a.Model.C.Set(0, 0, 100)

	b, err := Example("test-5")
	require.NoError(t, err)
	assert.Equal(t, 0.01, *b.Tolerance)
	assert.Equal(t, 12.0, b.Model.C.At(0, 0))
}
