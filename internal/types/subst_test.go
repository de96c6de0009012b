package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplySubstitution(t *testing.T) {
	sub := Substitution{1: TInt, 2: TString}

	tests := []struct {
		name     string
		typ      Type
		expected Type
	}{
		{"mapped var", &TVar{ID: 1}, TInt},
		{"unmapped var", &TVar{ID: 9}, &TVar{ID: 9}},
		{"con untouched", TString, TString},
		{"func rebuilt", Fn(&TVar{ID: 1}, &TVar{ID: 2}), Fn(TInt, TString)},
		{"nested", Fn(Fn(&TVar{ID: 1}, TUnit), &TVar{ID: 3}), Fn(Fn(TInt, TUnit), &TVar{ID: 3})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.expected.Equals(ApplySubstitution(sub, tt.typ)))
		})
	}
}

func TestApplyGroundTypeUnchanged(t *testing.T) {
	ground := Fn(TInt, Fn(TString, TUnit))
	sub := Substitution{0: TInt, 1: TString, 2: TUnit}
	assert.True(t, ground.Equals(ApplySubstitution(sub, ground)))
}

// Compose agreement: apply(compose(a, b), T) = apply(a, apply(b, T)).
func TestComposeAgreement(t *testing.T) {
	a := Substitution{2: TInt}
	b := Substitution{1: Fn(&TVar{ID: 2}, TString)}

	targets := []Type{
		&TVar{ID: 1},
		&TVar{ID: 2},
		Fn(&TVar{ID: 1}, &TVar{ID: 2}),
	}
	composed := Compose(a, b)
	for _, typ := range targets {
		direct := ApplySubstitution(composed, typ)
		staged := ApplySubstitution(a, ApplySubstitution(b, typ))
		assert.True(t, direct.Equals(staged), "mismatch for %s: %s vs %s", typ, direct, staged)
	}
}

func TestComposeLeftWins(t *testing.T) {
	s1 := Substitution{1: TInt}
	s2 := Substitution{1: TString}
	composed := Compose(s1, s2)
	assert.True(t, TInt.Equals(composed[1]))
}

// Idempotence after composition: values carry no keys of the domain.
func TestComposeIdempotent(t *testing.T) {
	s := Compose(Substitution{2: TInt}, Substitution{1: Fn(&TVar{ID: 2}, TString)})
	typ := Fn(&TVar{ID: 1}, &TVar{ID: 2})
	once := ApplySubstitution(s, typ)
	twice := ApplySubstitution(s, once)
	assert.True(t, once.Equals(twice))
}

func TestApplyToScheme(t *testing.T) {
	scheme := NewScheme([]uint32{1}, Fn(&TVar{ID: 1}, &TVar{ID: 2}))
	sub := Substitution{2: TInt}
	applied := ApplyToScheme(sub, scheme)
	// Quantified set untouched, body substituted
	assert.Equal(t, []uint32{1}, applied.Vars)
	assert.True(t, Fn(&TVar{ID: 1}, TInt).Equals(applied.Type))
}

func TestSubstitutionString(t *testing.T) {
	s := Substitution{2: TString, 1: TInt}
	assert.Equal(t, "{t1 ↦ int, t2 ↦ string}", s.String())
}
