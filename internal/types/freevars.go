package types

import "sort"

// VarSet is a set of type-variable ids.
type VarSet map[uint32]bool

// NewVarSet builds a set from the given ids.
func NewVarSet(ids ...uint32) VarSet {
	set := make(VarSet, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// Add inserts every id of other into the set.
func (s VarSet) Add(other VarSet) {
	for id := range other {
		s[id] = true
	}
}

// Intersect returns the ids present in both sets.
func (s VarSet) Intersect(other VarSet) VarSet {
	result := make(VarSet)
	for id := range s {
		if other[id] {
			result[id] = true
		}
	}
	return result
}

// Disjoint reports whether the two sets share no id.
func (s VarSet) Disjoint(other VarSet) bool {
	for id := range s {
		if other[id] {
			return false
		}
	}
	return true
}

// Sorted returns the ids in ascending order.
func (s VarSet) Sorted() []uint32 {
	ids := make([]uint32, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// FreeVars returns the ids of the type variables occurring in t.
func FreeVars(t Type) VarSet {
	free := make(VarSet)
	collectFreeVars(t, free)
	return free
}

func collectFreeVars(t Type, free VarSet) {
	switch typ := t.(type) {
	case *TVar:
		free[typ.ID] = true
	case *TFunc:
		collectFreeVars(typ.Param, free)
		collectFreeVars(typ.Return, free)
	}
}

// FreeVarsAll returns the union of the free variables of every type in ts.
func FreeVarsAll(ts []Type) VarSet {
	free := make(VarSet)
	for _, t := range ts {
		collectFreeVars(t, free)
	}
	return free
}

// FreeVarsScheme returns the scheme's free variables: those of the body
// minus the quantified set.
func FreeVarsScheme(s *Scheme) VarSet {
	free := FreeVars(s.Type)
	for _, v := range s.Vars {
		delete(free, v)
	}
	return free
}
