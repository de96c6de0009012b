package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnify(t *testing.T) {
	tests := []struct {
		name string
		t1   Type
		t2   Type
		want Substitution
	}{
		{"int int", TInt, TInt, Substitution{}},
		{"string string", TString, TString, Substitution{}},
		{"unit unit", TUnit, TUnit, Substitution{}},
		{"same var", &TVar{ID: 1}, &TVar{ID: 1}, Substitution{}},
		{"var left", &TVar{ID: 1}, TInt, Substitution{1: TInt}},
		{"var right", TInt, &TVar{ID: 1}, Substitution{1: TInt}},
		{"var var", &TVar{ID: 1}, &TVar{ID: 2}, Substitution{1: &TVar{ID: 2}}},
		{"var func", &TVar{ID: 3}, Fn(TInt, TString), Substitution{3: Fn(TInt, TString)}},
		{
			"funcs",
			Fn(&TVar{ID: 1}, TInt),
			Fn(TString, &TVar{ID: 2}),
			Substitution{1: TString, 2: TInt},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unify(tt.t1, tt.t2)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for id, typ := range tt.want {
				require.Contains(t, got, id)
				assert.True(t, typ.Equals(got[id]), "t%d: want %s, got %s", id, typ, got[id])
			}
		})
	}
}

func TestUnifyFailure(t *testing.T) {
	tests := []struct {
		name string
		t1   Type
		t2   Type
	}{
		{"int string", TInt, TString},
		{"int func", TInt, Fn(TInt, TInt)},
		{"func unit", Fn(TInt, TInt), TUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unify(tt.t1, tt.t2)
			require.Error(t, err)
			var unifyErr *UnificationError
			require.ErrorAs(t, err, &unifyErr)
			assert.True(t, tt.t1.Equals(unifyErr.Left))
			assert.True(t, tt.t2.Equals(unifyErr.Right))
		})
	}
}

func TestUnifyOccursCheck(t *testing.T) {
	v := &TVar{ID: 1}
	_, err := Unify(v, Fn(v, TInt))
	var occursErr *OccursCheckError
	require.ErrorAs(t, err, &occursErr)
	assert.Equal(t, uint32(1), occursErr.Var.ID)

	// Mirrored orientation fails the same way
	_, err = Unify(Fn(v, TInt), v)
	require.ErrorAs(t, err, &occursErr)
}

// A variable shared between parameter and return position keeps both
// bindings.
func TestUnifySharedVar(t *testing.T) {
	sub, err := Unify(Fn(&TVar{ID: 0}, &TVar{ID: 0}), Fn(TInt, &TVar{ID: 2}))
	require.NoError(t, err)
	assert.True(t, TInt.Equals(sub[0]))
	assert.True(t, TInt.Equals(sub[2]))
}

// The unifier's substitution is a unifier: applying it to both sides
// makes them equal.
func TestUnifySound(t *testing.T) {
	t1 := Fn(&TVar{ID: 1}, Fn(&TVar{ID: 2}, &TVar{ID: 1}))
	t2 := Fn(TInt, &TVar{ID: 3})
	sub, err := Unify(t1, t2)
	require.NoError(t, err)
	assert.True(t, ApplySubstitution(sub, t1).Equals(ApplySubstitution(sub, t2)))
}
