package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveEqualities(t *testing.T) {
	cs := NewConstraintSet()
	cs.AddEq(&TVar{ID: 1}, TInt)
	cs.AddEq(&TVar{ID: 2}, Fn(&TVar{ID: 1}, TString))

	subs, err := Solve(cs, NewVarSupply(100))
	require.NoError(t, err)
	assert.True(t, TInt.Equals(subs[1]))
	assert.True(t, Fn(TInt, TString).Equals(subs[2]))
}

func TestSolveExplicit(t *testing.T) {
	cs := NewConstraintSet()
	scheme := NewScheme([]uint32{7}, Fn(&TVar{ID: 7}, &TVar{ID: 7}))
	cs.AddExplicit(&TVar{ID: 1}, scheme)

	subs, err := Solve(cs, NewVarSupply(100))
	require.NoError(t, err)

	// t1 became the instantiated body with a fresh variable
	fn, ok := subs[1].(*TFunc)
	require.True(t, ok)
	assert.True(t, fn.Param.Equals(fn.Return))
	v, ok := fn.Param.(*TVar)
	require.True(t, ok)
	assert.GreaterOrEqual(t, v.ID, uint32(100))
}

// An implicit constraint waits for the equalities pinning its target,
// then generalizes and behaves like an explicit instance.
func TestSolveImplicit(t *testing.T) {
	cs := NewConstraintSet()
	cs.AddImplicit(&TVar{ID: 1}, nil, &TVar{ID: 2})
	cs.AddEq(&TVar{ID: 2}, Fn(TInt, TInt))

	subs, err := Solve(cs, NewVarSupply(100))
	require.NoError(t, err)
	assert.True(t, Fn(TInt, TInt).Equals(ApplySubstitution(subs, &TVar{ID: 1})))
}

// Monomorphic variables survive generalization: the instance is unified
// with the pinned variable itself, not a fresh copy.
func TestSolveImplicitPinned(t *testing.T) {
	pinned := &TVar{ID: 5}
	cs := NewConstraintSet()
	cs.AddImplicit(&TVar{ID: 1}, []Type{pinned}, pinned)

	subs, err := Solve(cs, NewVarSupply(100))
	require.NoError(t, err)
	assert.True(t, pinned.Equals(ApplySubstitution(subs, &TVar{ID: 1})))
}

func TestSolveUnificationFailure(t *testing.T) {
	cs := NewConstraintSet()
	cs.AddEq(TInt, TString)

	_, err := Solve(cs, NewVarSupply(0))
	var unifyErr *UnificationError
	require.ErrorAs(t, err, &unifyErr)
}

// Two implicits each holding the other's target active can never make
// progress; the solver reports the invariant violation instead of
// spinning.
func TestSolveStuck(t *testing.T) {
	cs := NewConstraintSet()
	cs.AddImplicit(&TVar{ID: 1}, nil, &TVar{ID: 2})
	cs.AddImplicit(&TVar{ID: 2}, nil, &TVar{ID: 1})

	_, err := Solve(cs, NewVarSupply(100))
	var stuckErr *SolverStuckError
	require.ErrorAs(t, err, &stuckErr)
	assert.Equal(t, 2, stuckErr.Remaining)
}

// Let-polymorphism in miniature: one generalized target, two instances
// at incompatible concrete types, both satisfied.
func TestSolveTwoInstantiations(t *testing.T) {
	identity := Fn(&TVar{ID: 3}, &TVar{ID: 3})
	cs := NewConstraintSet()
	cs.AddImplicit(&TVar{ID: 1}, nil, identity)
	cs.AddImplicit(&TVar{ID: 2}, nil, identity)
	cs.AddEq(&TVar{ID: 1}, Fn(TInt, TInt))
	cs.AddEq(&TVar{ID: 2}, Fn(TString, TString))

	_, err := Solve(cs, NewVarSupply(100))
	require.NoError(t, err)
}
