package dpll_test

import (
	"testing"

	"github.com/katalvlaran/orthograph/satcnf"
	"github.com/katalvlaran/orthograph/satoracle/dpll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolver_SatisfiableInstance(t *testing.T) {
	cnf := satcnf.NewCnf()
	cnf.AddClause(1, 2)
	cnf.AddClause(-1, 2)
	cnf.AddClause(1, -2)

	result, err := dpll.New().Solve(cnf)
	require.NoError(t, err)
	require.True(t, result.SAT)
	require.Len(t, result.Assignment, 2)

	assign := make(map[int]bool)
	for _, lit := range result.Assignment {
		assign[abs(lit)] = lit > 0
	}
	assert.True(t, assign[1])
	assert.True(t, assign[2])
}

func TestSolver_UnsatisfiableInstance(t *testing.T) {
	cnf := satcnf.NewCnf()
	cnf.AddClause(1)
	cnf.AddClause(-1)

	result, err := dpll.New().Solve(cnf)
	require.NoError(t, err)
	assert.False(t, result.SAT)
	assert.NotEmpty(t, result.ProofLines)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
