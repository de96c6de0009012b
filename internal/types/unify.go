package types

// Unify returns the most general substitution making t1 and t2 equal.
//
// In the function case the parameter unifier is applied to both return
// types before the second recursive call; without that threading a
// variable shared between parameter and return position can lose one of
// its bindings. Binding a variable to a type containing it is rejected
// by the occurs check rather than building an infinite type.
func Unify(t1, t2 Type) (Substitution, error) {
	switch a := t1.(type) {
	case *TCon:
		switch b := t2.(type) {
		case *TCon:
			if a.Name == b.Name {
				return Substitution{}, nil
			}
			return nil, &UnificationError{Left: t1, Right: t2}
		case *TVar:
			return bind(b, t1)
		}
		return nil, &UnificationError{Left: t1, Right: t2}

	case *TFunc:
		switch b := t2.(type) {
		case *TFunc:
			s1, err := Unify(a.Param, b.Param)
			if err != nil {
				return nil, err
			}
			s2, err := Unify(ApplySubstitution(s1, a.Return), ApplySubstitution(s1, b.Return))
			if err != nil {
				return nil, err
			}
			return Compose(s2, s1), nil
		case *TVar:
			return bind(b, t1)
		}
		return nil, &UnificationError{Left: t1, Right: t2}

	case *TVar:
		if b, ok := t2.(*TVar); ok && a.ID == b.ID {
			return Substitution{}, nil
		}
		return bind(a, t2)
	}
	return nil, &UnificationError{Left: t1, Right: t2}
}

// bind produces the single-entry substitution v ↦ t.
func bind(v *TVar, t Type) (Substitution, error) {
	if FreeVars(t)[v.ID] {
		return nil, &OccursCheckError{Var: v, In: t}
	}
	return Substitution{v.ID: t}, nil
}
