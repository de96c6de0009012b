package parser

import (
	"fmt"

	"github.com/sunholo/mel/internal/ast"
	"github.com/sunholo/mel/internal/lexer"
)

// ParseType parses a surface type expression, as written in environment
// files: `int`, `string -> int`, `forall a. a -> ()`. The arrow is
// right-associative. Identifiers other than the base type names are type
// variables and should be bound by a forall; the environment loader
// enforces that.
func ParseType(input string, filename string) (ast.TypeExpr, error) {
	p := New(lexer.New(input, filename))
	typ := p.parseTypeExpr()
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	if !p.peekTokenIs(lexer.EOF) {
		return nil, &ParserError{
			Message: fmt.Sprintf("unexpected %s after type", p.peekToken.Type),
			Pos:     p.tokenPos(p.peekToken),
			Near:    p.peekToken,
		}
	}
	return typ, nil
}

// parseTypeExpr parses an optionally quantified type.
func (p *Parser) parseTypeExpr() ast.TypeExpr {
	if p.curTokenIs(lexer.FORALL) {
		pos := p.curPos()
		var vars []string
		for p.peekTokenIs(lexer.IDENT) {
			p.nextToken()
			vars = append(vars, p.curToken.Literal)
		}
		if len(vars) == 0 {
			p.errors = append(p.errors, &ParserError{
				Message: "forall needs at least one type variable",
				Pos:     pos,
				Near:    p.curToken,
			})
			return nil
		}
		if !p.expectPeek(lexer.DOT) {
			return nil
		}
		p.nextToken()
		body := p.parseArrowType()
		if body == nil {
			return nil
		}
		return &ast.TypeScheme{Vars: vars, Body: body, Pos: pos}
	}
	return p.parseArrowType()
}

// parseArrowType parses `atom -> atom -> ...`, right-associative.
func (p *Parser) parseArrowType() ast.TypeExpr {
	left := p.parseTypeAtom()
	if left == nil {
		return nil
	}
	if p.peekTokenIs(lexer.ARROW) {
		pos := p.tokenPos(p.peekToken)
		p.nextToken()
		p.nextToken()
		right := p.parseArrowType()
		if right == nil {
			return nil
		}
		return &ast.TypeFunc{Param: left, Result: right, Pos: pos}
	}
	return left
}

// Base type names of the surface type syntax.
var baseTypeNames = map[string]bool{
	"int":    true,
	"string": true,
}

func (p *Parser) parseTypeAtom() ast.TypeExpr {
	switch p.curToken.Type {
	case lexer.UNIT:
		return &ast.TypeCon{Name: "()", Pos: p.curPos()}
	case lexer.IDENT:
		if baseTypeNames[p.curToken.Literal] {
			return &ast.TypeCon{Name: p.curToken.Literal, Pos: p.curPos()}
		}
		return &ast.TypeVar{Name: p.curToken.Literal, Pos: p.curPos()}
	case lexer.LPAREN:
		p.nextToken()
		inner := p.parseArrowType()
		if inner == nil {
			return nil
		}
		if !p.expectPeek(lexer.RPAREN) {
			return nil
		}
		return inner
	default:
		p.errors = append(p.errors, &ParserError{
			Message: fmt.Sprintf("no type starts with %s", p.curToken.Type),
			Pos:     p.curPos(),
			Near:    p.curToken,
		})
		return nil
	}
}
