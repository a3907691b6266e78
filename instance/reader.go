package instance

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"q.log/tabsimplex/model"
	"sigs.k8s.io/yaml"
)

// Problem is a model together with the tolerance it should be solved with.
// A nil Tolerance means the solver default.
type Problem struct {
	Model     *model.Model
	Tolerance *float64
}

// file is the on-disk layout of a problem, in YAML or JSON:
//
//	name: diet
//	sense: max
//	objective: [3, 4]
//	constraints:
//	  - [1, 2]
//	  - [2, 1]
//	rhs: [10, 12]
//	tolerance: 0.1
type file struct {
	Name        string      `json:"name,omitempty"`
	Sense       string      `json:"sense,omitempty"`
	Objective   []float64   `json:"objective"`
	Constraints [][]float64 `json:"constraints"`
	RHS         []float64   `json:"rhs"`
	Tolerance   *float64    `json:"tolerance,omitempty"`
}

// Reader reads a YAML or JSON problem file
type Reader struct {
	filename string
}

func NewReader(filename string) *Reader {
	return &Reader{
		filename: filename,
	}
}

// ConstructModelFromFile returns the problem stored in the file
func (r *Reader) ConstructModelFromFile() (*Problem, error) {
	data, err := os.ReadFile(r.filename)
	if err != nil {
		return nil, errors.Wrap(err, "reading problem file")
	}
	p, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", r.filename)
	}
	if p.Model.Name == "" {
		p.Model.Name = strings.TrimSuffix(filepath.Base(r.filename), filepath.Ext(r.filename))
	}
	return p, nil
}

// Parse decodes a problem from YAML or JSON.
func Parse(data []byte) (*Problem, error) {
	var f file
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, errors.Wrap(ErrFormat, err.Error())
	}

	var minimize bool
	switch strings.ToLower(f.Sense) {
	case "", "max", "maximize":
	case "min", "minimize":
		minimize = true
	default:
		return nil, errors.Wrapf(ErrFormat, "unknown sense %q", f.Sense)
	}

	c := f.Objective
	if minimize {
		c = make([]float64, len(f.Objective))
		for j, v := range f.Objective {
			c[j] = -v
		}
	}

	m, err := model.FromSlices(c, f.Constraints, f.RHS)
	if err != nil {
		return nil, err
	}
	m.Name = f.Name
	m.Minimize = minimize

	return &Problem{Model: m, Tolerance: f.Tolerance}, nil
}
