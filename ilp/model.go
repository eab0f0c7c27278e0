package ilp

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// ErrNoVariables is returned by Solve when a model has no variables.
var ErrNoVariables = errors.New("ilp: model has no variables")

// RowOp names the comparison a Row expresses.
type RowOp int

const (
	// GreaterEqual requires the row's weighted sum to be at least Rhs.
	GreaterEqual RowOp = iota
	// LessEqual requires the row's weighted sum to be at most Rhs.
	LessEqual
	// Equal requires the row's weighted sum to equal Rhs exactly.
	Equal
)

// row is a single linear constraint: sum_i Coeffs[i] * x[Vars[i]] (op) Rhs.
type row struct {
	vars   []int
	coeffs []float64
	op     RowOp
	rhs    float64
}

// Model is a small MILP builder: 0/1 and continuous variables, named
// inequality/equality rows, and an implicit objective of minimizing the
// sum of every variable's cost (1.0 by default, overridable per
// variable). That default matches every use in this solver: minimizing
// the count of chosen vertices or hitting-set members.
type Model struct {
	binary []bool
	cost   []float64
	rows   []row
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// AddVariable appends a new variable (binary if binary is true, otherwise
// continuous and assumed bounded to [0,1] like the binary ones — the LP
// relaxation of a hitting-set/vertex-cover model never needs a variable
// outside that range) and returns its index.
func (m *Model) AddVariable(binary bool) int {
	idx := len(m.binary)
	m.binary = append(m.binary, binary)
	m.cost = append(m.cost, 1.0)
	return idx
}

// SetCost overrides variable idx's objective coefficient (default 1.0).
func (m *Model) SetCost(idx int, cost float64) {
	m.cost[idx] = cost
}

// AddRow adds a constraint over the given variable indices and
// coefficients.
func (m *Model) AddRow(vars []int, coeffs []float64, op RowOp, rhs float64) {
	m.rows = append(m.rows, row{
		vars:   append([]int(nil), vars...),
		coeffs: append([]float64(nil), coeffs...),
		op:     op,
		rhs:    rhs,
	})
}

// NumVariables returns the number of variables registered so far.
func (m *Model) NumVariables() int {
	return len(m.binary)
}

// Solve builds the dense (c, A, b, G, h, whole) form gonum's lp.BNB
// expects and solves it. When relax is true every binary variable's
// integrality constraint is dropped, turning the call into a plain LP
// relaxation — used by the lower bound, which only needs a fractional
// optimum, not an integral one.
func (m *Model) Solve(relax bool, tol float64) (objective float64, values []float64, err error) {
	n := len(m.binary)
	if n == 0 {
		return 0, nil, ErrNoVariables
	}

	var aRows [][]float64
	var bVec []float64
	var gRows [][]float64
	var hVec []float64

	addRow := func(dst *[][]float64, coeffRow []float64) {
		*dst = append(*dst, coeffRow)
	}

	for _, r := range m.rows {
		dense := make([]float64, n)
		for i, v := range r.vars {
			dense[v] = r.coeffs[i]
		}

		switch r.op {
		case Equal:
			addRow(&aRows, dense)
			bVec = append(bVec, r.rhs)
		case LessEqual:
			addRow(&gRows, dense)
			hVec = append(hVec, r.rhs)
		case GreaterEqual:
			neg := make([]float64, n)
			for i, v := range dense {
				neg[i] = -v
			}
			addRow(&gRows, neg)
			hVec = append(hVec, -r.rhs)
		}
	}

	// Every variable here is modeled in [0,1]: x_i <= 1 and -x_i <= 0.
	for i := 0; i < n; i++ {
		upper := make([]float64, n)
		upper[i] = 1
		addRow(&gRows, upper)
		hVec = append(hVec, 1)

		lower := make([]float64, n)
		lower[i] = -1
		addRow(&gRows, lower)
		hVec = append(hVec, 0)
	}

	whole := make([]bool, n)
	for i, b := range m.binary {
		whole[i] = b && !relax
	}

	var A, G mat.Matrix
	if len(aRows) > 0 {
		A = toDense(aRows, n)
	}
	if len(gRows) > 0 {
		G = toDense(gRows, n)
	}

	fit, x, solveErr := lp.BNB(m.cost, A, bVec, G, hVec, whole, tol)
	if solveErr != nil {
		return 0, nil, fmt.Errorf("ilp: solve: %w", solveErr)
	}

	return fit, x, nil
}

// toDense packs rows (each of length n) into a row-major *mat.Dense.
func toDense(rows [][]float64, n int) *mat.Dense {
	flat := make([]float64, 0, len(rows)*n)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	return mat.NewDense(len(rows), n, flat)
}
