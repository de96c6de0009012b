package types

// Solve resolves a constraint set to a substitution, or fails on the
// first pair of types that cannot be unified.
//
// Each step picks a constraint in a fixed priority order: any equality
// first, then any explicit instance, then any implicit instance whose
// generalization target is disjoint from the active variables of the
// remaining constraints. Equalities strictly reduce variable count,
// explicits trade themselves for one equality, implicits for one
// explicit, so the loop terminates.
func Solve(cs *ConstraintSet, supply *VarSupply) (Substitution, error) {
	subs := Substitution{}
	for !cs.Empty() {
		if c, ok := cs.popEq(); ok {
			s, err := Unify(c.Left, c.Right)
			if err != nil {
				return nil, err
			}
			cs.ApplySubst(s)
			subs = Compose(s, subs)
			continue
		}
		if c, ok := cs.popExplicit(); ok {
			cs.AddEq(c.Instance, Instantiate(c.Scheme, supply))
			continue
		}
		if c, ok := cs.popImplicit(); ok {
			cs.AddExplicit(c.Instance, Generalize(c.Monomorphics, c.Generalized))
			continue
		}
		return nil, &SolverStuckError{Remaining: cs.Len()}
	}
	return subs, nil
}
