package types

import (
	"fmt"
	"strings"
)

// Substitution maps type-variable ids to types.
type Substitution map[uint32]Type

func (s Substitution) String() string {
	parts := make([]string, 0, len(s))
	set := make(VarSet, len(s))
	for id := range s {
		set[id] = true
	}
	for _, id := range set.Sorted() {
		parts = append(parts, fmt.Sprintf("t%d ↦ %s", id, s[id]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ApplySubstitution replaces every variable of t whose id is a key of sub
// by its mapped type. Mapped values are not re-substituted; composition
// keeps substitutions idempotent on their own keys.
func ApplySubstitution(sub Substitution, t Type) Type {
	switch typ := t.(type) {
	case *TVar:
		if replacement, ok := sub[typ.ID]; ok {
			return replacement
		}
		return typ
	case *TCon:
		return typ
	case *TFunc:
		return &TFunc{
			Param:  ApplySubstitution(sub, typ.Param),
			Return: ApplySubstitution(sub, typ.Return),
		}
	default:
		return t
	}
}

// ApplyToAll applies sub to every type of ts, returning a fresh slice.
func ApplyToAll(sub Substitution, ts []Type) []Type {
	result := make([]Type, len(ts))
	for i, t := range ts {
		result[i] = ApplySubstitution(sub, t)
	}
	return result
}

// ApplyToScheme applies sub to the scheme body. Quantified ids never
// appear as substitution keys: they are freshly minted per instantiation,
// so the quantified set is left untouched.
func ApplyToScheme(sub Substitution, s *Scheme) *Scheme {
	return &Scheme{
		Vars: s.Vars,
		Type: ApplySubstitution(sub, s.Type),
	}
}

// Compose combines two substitutions such that applying the result equals
// applying s2 first and then s1: s1 is applied to every value of s2, and
// s1 wins on key conflicts. The solver always composes the newly produced
// substitution on the left.
func Compose(s1, s2 Substitution) Substitution {
	result := make(Substitution, len(s1)+len(s2))
	for id, t := range s2 {
		result[id] = ApplySubstitution(s1, t)
	}
	for id, t := range s1 {
		result[id] = t
	}
	return result
}
