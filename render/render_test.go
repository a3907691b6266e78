package render

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"q.log/tabsimplex/model"
	"q.log/tabsimplex/simplex"
	"q.log/tabsimplex/tableau"
)

func knownModel(t *testing.T) *model.Model {
	t.Helper()
	m, err := model.FromSlices([]float64{3, 4}, [][]float64{{1, 2}, {2, 0}}, []float64{10, 12})
	require.NoError(t, err)
	return m
}

func TestProblem(t *testing.T) {
	var buf bytes.Buffer
	Problem(&buf, knownModel(t), 0.1, true)

	want := "max z = (3) * x1 + (4) * x2\n" +
		"subject to the constraints:\n" +
		"1) (1) * x1 + (2) * x2 <= 10\n" +
		"2) (2) * x1 <= 12\n" +
		"With precision 0.1 (default)\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	m := knownModel(t)
	m.Minimize = true
	Problem(&buf, m, 0.01, false)
	assert.True(t, strings.HasPrefix(buf.String(), "min z = (-3) * x1"))
	assert.True(t, strings.HasSuffix(buf.String(), "With precision 0.01\n"))
}

func TestMatrices(t *testing.T) {
	var buf bytes.Buffer
	Matrices(&buf, knownModel(t))
	out := buf.String()
	assert.Contains(t, out, "c = [3")
	assert.Contains(t, out, "A = ")
	assert.Contains(t, out, "b = ")
}

func TestTableau(t *testing.T) {
	tab, err := tableau.New(knownModel(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	Tableau(&buf, tab.Snapshot())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"x1", "x2", "s1", "s2", "value"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"z", "-3.00", "-4.00", "0.00", "0.00", "0.00"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"s2", "2.00", "0.00", "0.00", "1.00", "12.00"}, strings.Fields(lines[3]))
}

func TestResult(t *testing.T) {
	var buf bytes.Buffer
	Result(&buf, &simplex.Result{
		Status:     simplex.Solved,
		Objective:  74.0 / 3,
		Assignment: map[string]float64{"x10": 1, "x2": 8.0 / 3, "x1": 14.0 / 3},
	})
	want := "Solved!\n" +
		"The maximum is 24.67 and the solution is:\n" +
		"x1 = 4.67\n" +
		"x2 = 2.67\n" +
		"x10 = 1.00\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	Result(&buf, &simplex.Result{Status: simplex.Unbounded})
	assert.Equal(t, "Could not solve the problem since it is unbounded!\n", buf.String())

	buf.Reset()
	Result(&buf, &simplex.Result{Status: simplex.NotConverged, Iterations: 3})
	assert.Equal(t, "Did not converge after 3 iterations.\n", buf.String())
}

func TestTracer(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	var buf bytes.Buffer
	res, err := simplex.Solve(knownModel(t),
		simplex.WithObserver(Tracer{W: &buf}),
		simplex.WithLogger(logrus.NewEntry(log)),
	)
	require.NoError(t, err)
	require.Equal(t, simplex.Solved, res.Status)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Initial table:\n"))
	assert.Contains(t, out, "Iteration #1:\nx2 enters, s1 leaves!\n")
	assert.Equal(t, res.Iterations, strings.Count(out, "-----------\n"))
}
