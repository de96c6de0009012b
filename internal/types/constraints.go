package types

import (
	"fmt"
	"strings"
)

// EqConstraint requires its two types to be unifiable.
type EqConstraint struct {
	Left  Type
	Right Type
}

func (c EqConstraint) String() string {
	return fmt.Sprintf("%s ≡ %s", c.Left, c.Right)
}

// ExplicitConstraint requires Instance to be a specialization of Scheme.
type ExplicitConstraint struct {
	Instance Type
	Scheme   *Scheme
}

func (c ExplicitConstraint) String() string {
	return fmt.Sprintf("%s ≤ %s", c.Instance, c.Scheme)
}

// ImplicitConstraint requires Instance to be a specialization of the
// scheme obtained by generalizing Generalized with respect to the free
// variables of Monomorphics. We sometimes do not know the polymorphic
// type of a let binding right away; an implicit constraint defers the
// instance constraint until generalization is safe.
type ImplicitConstraint struct {
	Instance     Type
	Monomorphics []Type
	Generalized  Type
}

func (c ImplicitConstraint) String() string {
	mono := make([]string, len(c.Monomorphics))
	for i, m := range c.Monomorphics {
		mono[i] = m.String()
	}
	return fmt.Sprintf("%s ≤ gen({%s}, %s)", c.Instance, strings.Join(mono, ", "), c.Generalized)
}

// ConstraintSet holds the three constraint groups. Backing containers are
// slices in insertion order so step selection is deterministic across
// runs on the same input.
type ConstraintSet struct {
	eqs       []EqConstraint
	explicits []ExplicitConstraint
	implicits []ImplicitConstraint
}

// NewConstraintSet creates an empty constraint set.
func NewConstraintSet() *ConstraintSet {
	return &ConstraintSet{}
}

// AddEq records an equality constraint.
func (cs *ConstraintSet) AddEq(left, right Type) {
	cs.eqs = append(cs.eqs, EqConstraint{Left: left, Right: right})
}

// AddExplicit records an explicit instance constraint.
func (cs *ConstraintSet) AddExplicit(instance Type, scheme *Scheme) {
	cs.explicits = append(cs.explicits, ExplicitConstraint{Instance: instance, Scheme: scheme})
}

// AddImplicit records an implicit instance constraint.
func (cs *ConstraintSet) AddImplicit(instance Type, monomorphics []Type, generalized Type) {
	cs.implicits = append(cs.implicits, ImplicitConstraint{
		Instance:     instance,
		Monomorphics: monomorphics,
		Generalized:  generalized,
	})
}

// Merge moves every constraint of other into cs, preserving order.
func (cs *ConstraintSet) Merge(other *ConstraintSet) {
	cs.eqs = append(cs.eqs, other.eqs...)
	cs.explicits = append(cs.explicits, other.explicits...)
	cs.implicits = append(cs.implicits, other.implicits...)
}

// Empty reports whether no constraint remains.
func (cs *ConstraintSet) Empty() bool {
	return len(cs.eqs) == 0 && len(cs.explicits) == 0 && len(cs.implicits) == 0
}

// Len returns the total number of constraints.
func (cs *ConstraintSet) Len() int {
	return len(cs.eqs) + len(cs.explicits) + len(cs.implicits)
}

// popEq removes and returns the oldest equality constraint.
func (cs *ConstraintSet) popEq() (EqConstraint, bool) {
	if len(cs.eqs) == 0 {
		return EqConstraint{}, false
	}
	c := cs.eqs[0]
	cs.eqs = cs.eqs[1:]
	return c, true
}

// popExplicit removes and returns the oldest explicit instance constraint.
func (cs *ConstraintSet) popExplicit() (ExplicitConstraint, bool) {
	if len(cs.explicits) == 0 {
		return ExplicitConstraint{}, false
	}
	c := cs.explicits[0]
	cs.explicits = cs.explicits[1:]
	return c, true
}

// popImplicit removes and returns the first implicit instance constraint
// whose generalization target shares no variable with the active
// variables of the rest of the set. Only then is generalizing safe: every
// variable the remaining constraints could still pin has been resolved.
func (cs *ConstraintSet) popImplicit() (ImplicitConstraint, bool) {
	for i, c := range cs.implicits {
		if FreeVars(c.Generalized).Disjoint(cs.activeVarsExcluding(i)) {
			cs.implicits = append(cs.implicits[:i], cs.implicits[i+1:]...)
			return c, true
		}
	}
	return ImplicitConstraint{}, false
}

// ApplySubst applies sub to every type appearing in the set, in place.
func (cs *ConstraintSet) ApplySubst(sub Substitution) {
	for i, c := range cs.eqs {
		cs.eqs[i] = EqConstraint{
			Left:  ApplySubstitution(sub, c.Left),
			Right: ApplySubstitution(sub, c.Right),
		}
	}
	for i, c := range cs.explicits {
		cs.explicits[i] = ExplicitConstraint{
			Instance: ApplySubstitution(sub, c.Instance),
			Scheme:   ApplyToScheme(sub, c.Scheme),
		}
	}
	for i, c := range cs.implicits {
		cs.implicits[i] = ImplicitConstraint{
			Instance:     ApplySubstitution(sub, c.Instance),
			Monomorphics: ApplyToAll(sub, c.Monomorphics),
			Generalized:  ApplySubstitution(sub, c.Generalized),
		}
	}
}

// ActiveVars returns the variables the constraint set still needs solved.
// For implicit constraints this is the instance's variables plus the
// INTERSECTION of the monomorphic and generalization-target variables:
// exactly the variables of the target pinned by the monomorphic context.
func (cs *ConstraintSet) ActiveVars() VarSet {
	return cs.activeVarsExcluding(-1)
}

func (cs *ConstraintSet) activeVarsExcluding(skipImplicit int) VarSet {
	active := make(VarSet)
	for _, c := range cs.eqs {
		active.Add(FreeVars(c.Left))
		active.Add(FreeVars(c.Right))
	}
	for _, c := range cs.explicits {
		active.Add(FreeVars(c.Instance))
		active.Add(FreeVarsScheme(c.Scheme))
	}
	for i, c := range cs.implicits {
		if i == skipImplicit {
			continue
		}
		active.Add(FreeVars(c.Instance))
		active.Add(FreeVarsAll(c.Monomorphics).Intersect(FreeVars(c.Generalized)))
	}
	return active
}
