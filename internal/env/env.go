// Package env builds type environments: the built-in prelude and
// environments loaded from YAML files of `name: type-expression`
// bindings. Scheme quantified ids are always drawn from the caller's
// variable supply so they cannot collide with inferred ids.
package env

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/sunholo/mel/internal/ast"
	"github.com/sunholo/mel/internal/parser"
	"github.com/sunholo/mel/internal/types"
)

// Prelude returns the default environment:
//
//	len   : string -> int
//	print : forall a. a -> ()
func Prelude(supply *types.VarSupply) types.Environment {
	printVar := supply.Fresh()
	return types.Environment{
		"len":   types.NewScheme(nil, types.Fn(types.TString, types.TInt)),
		"print": types.NewScheme([]uint32{printVar.ID}, types.Fn(printVar, types.TUnit)),
	}
}

// File is the on-disk environment format: a bindings map from identifier
// to surface type expression.
type File struct {
	Bindings map[string]string `yaml:"bindings"`
}

// Load reads a YAML environment file.
func Load(path string, supply *types.VarSupply) (types.Environment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	return Parse(data, path, supply)
}

// Parse decodes YAML environment data into an Environment.
func Parse(data []byte, path string, supply *types.VarSupply) (types.Environment, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing environment %s: %w", path, err)
	}

	// Bindings are processed in name order so fresh-id assignment is
	// reproducible regardless of YAML map iteration.
	names := make([]string, 0, len(file.Bindings))
	for name := range file.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	environment := make(types.Environment, len(file.Bindings))
	for _, name := range names {
		typ, err := parser.ParseType(file.Bindings[name], path)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", name, err)
		}
		scheme, err := schemeFromAST(typ, supply)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", name, err)
		}
		environment[name] = scheme
	}
	return environment, nil
}

// schemeFromAST converts a surface type expression to a scheme, minting a
// fresh id for each quantified variable.
func schemeFromAST(typ ast.TypeExpr, supply *types.VarSupply) (*types.Scheme, error) {
	bound := map[string]*types.TVar{}
	var quantified []uint32

	if scheme, ok := typ.(*ast.TypeScheme); ok {
		for _, name := range scheme.Vars {
			if _, dup := bound[name]; dup {
				return nil, fmt.Errorf("duplicate type variable %s", name)
			}
			fresh := supply.Fresh()
			bound[name] = fresh
			quantified = append(quantified, fresh.ID)
		}
		typ = scheme.Body
	}

	body, err := typeFromAST(typ, bound)
	if err != nil {
		return nil, err
	}
	return types.NewScheme(quantified, body), nil
}

func typeFromAST(typ ast.TypeExpr, bound map[string]*types.TVar) (types.Type, error) {
	switch t := typ.(type) {
	case *ast.TypeCon:
		switch t.Name {
		case "int":
			return types.TInt, nil
		case "string":
			return types.TString, nil
		case "()":
			return types.TUnit, nil
		}
		return nil, fmt.Errorf("unknown base type %s", t.Name)
	case *ast.TypeVar:
		if v, ok := bound[t.Name]; ok {
			return v, nil
		}
		return nil, fmt.Errorf("type variable %s is not bound by forall", t.Name)
	case *ast.TypeFunc:
		param, err := typeFromAST(t.Param, bound)
		if err != nil {
			return nil, err
		}
		result, err := typeFromAST(t.Result, bound)
		if err != nil {
			return nil, err
		}
		return types.Fn(param, result), nil
	case *ast.TypeScheme:
		return nil, fmt.Errorf("nested forall is not allowed")
	}
	return nil, fmt.Errorf("unknown type expression %T", typ)
}
