package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreeVars(t *testing.T) {
	tests := []struct {
		name     string
		typ      Type
		expected []uint32
	}{
		{"con", TInt, nil},
		{"var", &TVar{ID: 4}, []uint32{4}},
		{"func union", Fn(&TVar{ID: 1}, Fn(&TVar{ID: 2}, &TVar{ID: 1})), []uint32{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FreeVars(tt.typ).Sorted()
			if tt.expected == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestFreeVarsScheme(t *testing.T) {
	scheme := NewScheme([]uint32{1}, Fn(&TVar{ID: 1}, &TVar{ID: 2}))
	assert.Equal(t, []uint32{2}, FreeVarsScheme(scheme).Sorted())
}

func TestFreeVarsAll(t *testing.T) {
	free := FreeVarsAll([]Type{&TVar{ID: 1}, Fn(&TVar{ID: 2}, TInt), TString})
	assert.Equal(t, []uint32{1, 2}, free.Sorted())
}

func TestVarSetOps(t *testing.T) {
	a := NewVarSet(1, 2, 3)
	b := NewVarSet(3, 4)

	assert.Equal(t, []uint32{3}, a.Intersect(b).Sorted())
	assert.False(t, a.Disjoint(b))
	assert.True(t, NewVarSet(1).Disjoint(NewVarSet(2)))

	a.Add(b)
	assert.Equal(t, []uint32{1, 2, 3, 4}, a.Sorted())
}
