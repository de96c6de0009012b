// Package infer implements constraint-based type inference for the core
// IR: a bottom-up generation pass that collects assumptions and
// constraints per subexpression, finalization against the environment,
// constraint solving, and elaboration of the typed tree.
package infer

import (
	"sort"

	"github.com/sunholo/mel/internal/core"
	"github.com/sunholo/mel/internal/typedast"
	"github.com/sunholo/mel/internal/types"
)

// Assumption records one free occurrence of an identifier together with
// the fresh type assigned to that occurrence. Assumptions form a
// multiset: the same name appears once per occurrence, each with a
// distinct fresh variable.
type Assumption struct {
	Name string
	Type types.Type
}

// step is the result of inferring one subexpression.
type step struct {
	assumptions []Assumption
	constraints *types.ConstraintSet
	typed       typedast.Node
}

// Inferencer runs inference against a fixed environment. Each call owns
// its assumptions, constraint set, and typed tree exclusively; the
// environment is read-only.
type Inferencer struct {
	env    types.Environment
	supply *types.VarSupply
}

// Option configures an Inferencer.
type Option func(*Inferencer)

// WithSupply sets the variable supply. The environment's scheme ids must
// come from the same supply.
func WithSupply(supply *types.VarSupply) Option {
	return func(inf *Inferencer) { inf.supply = supply }
}

// New creates an Inferencer over env, drawing fresh variables from the
// process-wide supply unless overridden.
func New(env types.Environment, opts ...Option) *Inferencer {
	inf := &Inferencer{env: env, supply: types.DefaultSupply()}
	for _, opt := range opts {
		opt(inf)
	}
	return inf
}

// Infer computes the final substitution and the elaborated typed tree for
// expr. It fails on unbound identifiers, on a unification or occurs-check
// failure, or (indicating an internal invariant violation) on a stuck
// solver. No partial tree is returned on failure.
func Infer(env types.Environment, expr core.Expr) (types.Substitution, typedast.Node, error) {
	return New(env).Infer(expr)
}

// Infer runs one inference call; see the package-level Infer.
func (inf *Inferencer) Infer(expr core.Expr) (types.Substitution, typedast.Node, error) {
	result := inf.gen(nil, expr)

	// Identifiers with no binder in expr must come from the environment:
	// their usage has to match the environment scheme. Anything else is
	// unbound and fatal before solving starts.
	var unbound []string
	seen := make(map[string]bool)
	for _, a := range result.assumptions {
		if scheme, ok := inf.env.Lookup(a.Name); ok {
			result.constraints.AddExplicit(a.Type, scheme)
		} else if !seen[a.Name] {
			seen[a.Name] = true
			unbound = append(unbound, a.Name)
		}
	}
	if len(unbound) > 0 {
		sort.Strings(unbound)
		return nil, nil, &UnboundError{Names: unbound}
	}

	subs, err := types.Solve(result.constraints, inf.supply)
	if err != nil {
		return nil, nil, err
	}
	return subs, typedast.ApplySubst(subs, result.typed), nil
}

// gen performs the bottom-up generation pass. monomorphics is the set of
// lambda-bound parameter types in enclosing scope; it is threaded
// unchanged into children except that a lambda adds its fresh parameter
// type before descending into the body.
func (inf *Inferencer) gen(monomorphics []types.Type, expr core.Expr) step {
	switch e := expr.(type) {
	case *core.Nop:
		return step{
			constraints: types.NewConstraintSet(),
			typed:       &typedast.Nop{Typ: types.TUnit},
		}

	case *core.Lit:
		typ := types.Type(types.TInt)
		if e.Kind == core.StringLit {
			typ = types.TString
		}
		return step{
			constraints: types.NewConstraintSet(),
			typed:       &typedast.Lit{Kind: e.Kind, Value: e.Value, Typ: typ},
		}

	case *core.Var:
		fresh := inf.supply.Fresh()
		return step{
			assumptions: []Assumption{{Name: e.Name, Type: fresh}},
			constraints: types.NewConstraintSet(),
			typed:       &typedast.Var{Name: e.Name, Typ: fresh},
		}

	case *core.App:
		fn := inf.gen(monomorphics, e.Func)
		arg := inf.gen(monomorphics, e.Arg)
		fresh := inf.supply.Fresh()
		fn.constraints.Merge(arg.constraints)
		fn.constraints.AddEq(fn.typed.Type(), types.Fn(arg.typed.Type(), fresh))
		return step{
			assumptions: append(fn.assumptions, arg.assumptions...),
			constraints: fn.constraints,
			typed:       &typedast.App{Func: fn.typed, Arg: arg.typed, Typ: fresh},
		}

	case *core.Lambda:
		// The parameter variable is monomorphic throughout the body:
		// lets under this lambda must not generalize over it.
		fresh := inf.supply.Fresh()
		body := inf.gen(append(monomorphics, fresh), e.Body)
		kept := body.assumptions[:0]
		for _, a := range body.assumptions {
			if a.Name == e.Param {
				body.constraints.AddEq(a.Type, fresh)
			} else {
				kept = append(kept, a)
			}
		}
		return step{
			assumptions: kept,
			constraints: body.constraints,
			typed: &typedast.Lambda{
				Param: e.Param,
				Body:  body.typed,
				Typ:   types.Fn(fresh, body.typed.Type()),
			},
		}

	case *core.Let:
		value := inf.gen(monomorphics, e.Value)
		body := inf.gen(monomorphics, e.Body)
		value.constraints.Merge(body.constraints)
		mono := append([]types.Type(nil), monomorphics...)
		kept := body.assumptions[:0]
		for _, a := range body.assumptions {
			if a.Name == e.Name {
				value.constraints.AddImplicit(a.Type, mono, value.typed.Type())
			} else {
				kept = append(kept, a)
			}
		}
		return step{
			assumptions: append(kept, value.assumptions...),
			constraints: value.constraints,
			typed: &typedast.Let{
				Name:  e.Name,
				Value: value.typed,
				Body:  body.typed,
				Typ:   body.typed.Type(),
			},
		}

	case *core.BinOp:
		left := inf.gen(monomorphics, e.Left)
		right := inf.gen(monomorphics, e.Right)
		left.constraints.Merge(right.constraints)
		left.constraints.AddEq(left.typed.Type(), types.TInt)
		left.constraints.AddEq(right.typed.Type(), types.TInt)
		return step{
			assumptions: append(left.assumptions, right.assumptions...),
			constraints: left.constraints,
			typed:       &typedast.BinOp{Op: e.Op, Left: left.typed, Right: right.typed},
		}

	case *core.Seq:
		first := inf.gen(monomorphics, e.First)
		second := inf.gen(monomorphics, e.Second)
		first.constraints.Merge(second.constraints)
		return step{
			assumptions: append(first.assumptions, second.assumptions...),
			constraints: first.constraints,
			typed:       &typedast.Seq{First: first.typed, Second: second.typed},
		}
	}
	// The core IR is closed; a new node kind is a bug here.
	panic("infer: unknown core expression")
}
