package types

// Generalize turns t into a scheme by quantifying the variables that are
// free in t but pinned by none of the monomorphic types.
func Generalize(monomorphics []Type, t Type) *Scheme {
	pinned := FreeVarsAll(monomorphics)
	quantified := make([]uint32, 0)
	for _, id := range FreeVars(t).Sorted() {
		if !pinned[id] {
			quantified = append(quantified, id)
		}
	}
	return NewScheme(quantified, t)
}

// Instantiate opens a scheme by replacing each quantified variable with a
// fresh one drawn from supply. Quantified ids are visited in sorted order
// so the fresh ids assigned are reproducible.
func Instantiate(s *Scheme, supply *VarSupply) Type {
	if len(s.Vars) == 0 {
		return s.Type
	}
	sub := make(Substitution, len(s.Vars))
	for _, v := range s.Vars {
		sub[v] = supply.Fresh()
	}
	return ApplySubstitution(sub, s.Type)
}
