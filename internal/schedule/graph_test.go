package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tbecker/resplan/internal/domain"
)

func TestValidateDependencies_SelfDependency(t *testing.T) {
	err := ValidateDependencies("a", []string{"a"}, nil)
	assert.ErrorIs(t, err, ErrSelfDependency)
}

func TestValidateDependencies_DirectCycle(t *testing.T) {
	all := []*domain.Task{
		{ID: "a", Dependencies: []string{"b"}},
		{ID: "b"},
	}
	err := ValidateDependencies("b", []string{"a"}, all)
	assert.ErrorContains(t, err, "cycle")
}

func TestValidateDependencies_TransitiveCycle(t *testing.T) {
	all := []*domain.Task{
		{ID: "a", Dependencies: []string{"b"}},
		{ID: "b", Dependencies: []string{"c"}},
		{ID: "c"},
	}
	err := ValidateDependencies("c", []string{"a"}, all)
	assert.ErrorContains(t, err, "cycle")
}

func TestValidateDependencies_ValidChain(t *testing.T) {
	all := []*domain.Task{
		{ID: "a"},
		{ID: "b", Dependencies: []string{"a"}},
		{ID: "c"},
	}
	assert.NoError(t, ValidateDependencies("c", []string{"a", "b"}, all))
}

func TestValidateDependencies_EditReplacesExistingEdges(t *testing.T) {
	// b currently depends on a; replacing b's set with {c} must not
	// consider the old edge when checking c -> b -> a.
	all := []*domain.Task{
		{ID: "a", Dependencies: []string{"b"}},
		{ID: "b", Dependencies: []string{"a"}}, // stale state being corrected
		{ID: "c"},
	}
	assert.NoError(t, ValidateDependencies("b", []string{"c"}, all))
}

func TestValidateDependencies_UnknownIDsAreAcyclic(t *testing.T) {
	assert.NoError(t, ValidateDependencies("a", []string{"missing"}, nil))
}
