package parser

import (
	"fmt"
	"strconv"

	"github.com/sunholo/mel/internal/ast"
	"github.com/sunholo/mel/internal/lexer"
)

// ParserError represents a structured parser error.
type ParserError struct {
	Message  string
	Pos      ast.Pos
	Near     lexer.Token
	Expected []lexer.TokenType
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Message)
}

// Parser parses mel source code into a surface AST.
type Parser struct {
	l         *lexer.Lexer
	curToken  lexer.Token
	peekToken lexer.Token
	errors    []error

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

// Precedence levels
const (
	LOWEST int = iota
	SUM        // +
	CALL       // f(x)
)

var precedences = map[lexer.TokenType]int{
	lexer.PLUS:   SUM,
	lexer.LPAREN: CALL,
}

// New creates a new Parser.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: []error{},
	}

	p.prefixParseFns = make(map[lexer.TokenType]prefixParseFn)
	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.INT, p.parseIntegerLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(lexer.BACKSLASH, p.parseLambda)

	p.infixParseFns = make(map[lexer.TokenType]infixParseFn)
	p.registerInfix(lexer.PLUS, p.parseInfixExpression)
	p.registerInfix(lexer.LPAREN, p.parseCallExpression)

	// Read two tokens so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(tokenType lexer.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType lexer.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

// Errors returns all errors encountered during parsing.
func (p *Parser) Errors() []error {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t lexer.TokenType) {
	p.errors = append(p.errors, &ParserError{
		Message:  fmt.Sprintf("expected %s, got %s", t, p.peekToken.Type),
		Pos:      p.tokenPos(p.peekToken),
		Near:     p.peekToken,
		Expected: []lexer.TokenType{t},
	})
}

func (p *Parser) tokenPos(tok lexer.Token) ast.Pos {
	return ast.Pos{Line: tok.Line, Column: tok.Column, File: tok.File}
}

func (p *Parser) curPos() ast.Pos { return p.tokenPos(p.curToken) }

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// ParseProgram parses a sequence of statements separated by newlines or
// semicolons into a block.
func (p *Parser) ParseProgram() *ast.Block {
	block := &ast.Block{Pos: p.curPos()}

	p.skipSeparators()
	for !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Exprs = append(block.Exprs, stmt)
		}
		if !p.curTokenIs(lexer.EOF) && !p.curTokenIs(lexer.SEMICOLON) {
			p.errors = append(p.errors, &ParserError{
				Message:  fmt.Sprintf("unexpected %s after statement", p.curToken.Type),
				Pos:      p.curPos(),
				Near:     p.curToken,
				Expected: []lexer.TokenType{lexer.SEMICOLON},
			})
			return block
		}
		p.skipSeparators()
	}
	return block
}

func (p *Parser) skipSeparators() {
	for p.curTokenIs(lexer.SEMICOLON) {
		p.nextToken()
	}
}

// parseStatement parses one statement and leaves curToken on the first
// token after it (separator or EOF).
func (p *Parser) parseStatement() ast.Expr {
	switch p.curToken.Type {
	case lexer.LET:
		return p.parseLetStatement()
	case lexer.FN:
		return p.parseFnStatement()
	default:
		expr := p.parseExpression(LOWEST)
		p.nextToken()
		return expr
	}
}

// parseLetStatement parses `let x = expr`.
func (p *Parser) parseLetStatement() ast.Expr {
	pos := p.curPos()
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(lexer.ASSIGN) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	p.nextToken()
	return &ast.Let{Name: name, Value: value, Pos: pos}
}

// parseFnStatement parses `fn f x = expr`.
func (p *Parser) parseFnStatement() ast.Expr {
	pos := p.curPos()
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	param := p.curToken.Literal
	if !p.expectPeek(lexer.ASSIGN) {
		return nil
	}
	p.nextToken()
	body := p.parseExpression(LOWEST)
	if body == nil {
		return nil
	}
	p.nextToken()
	return &ast.FuncDecl{Name: name, Param: param, Body: body, Pos: pos}
}

func (p *Parser) parseExpression(precedence int) ast.Expr {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errors = append(p.errors, &ParserError{
			Message: fmt.Sprintf("no expression starts with %s", p.curToken.Type),
			Pos:     p.curPos(),
			Near:    p.curToken,
		})
		return nil
	}
	left := prefix()

	for left != nil && !p.peekTokenIs(lexer.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expr {
	return &ast.Identifier{Name: p.curToken.Literal, Pos: p.curPos()}
}

func (p *Parser) parseIntegerLiteral() ast.Expr {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errors = append(p.errors, &ParserError{
			Message: fmt.Sprintf("could not parse %q as integer", p.curToken.Literal),
			Pos:     p.curPos(),
			Near:    p.curToken,
		})
		return nil
	}
	return &ast.IntLit{Value: value, Pos: p.curPos()}
}

func (p *Parser) parseStringLiteral() ast.Expr {
	return &ast.StringLit{Value: p.curToken.Literal, Pos: p.curPos()}
}

func (p *Parser) parseGroupedExpression() ast.Expr {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return expr
}

// parseLambda parses `\x. body`; the body extends as far right as possible.
func (p *Parser) parseLambda() ast.Expr {
	pos := p.curPos()
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	param := p.curToken.Literal
	if !p.expectPeek(lexer.DOT) {
		return nil
	}
	p.nextToken()
	body := p.parseExpression(LOWEST)
	if body == nil {
		return nil
	}
	return &ast.Lambda{Param: param, Body: body, Pos: pos}
}

func (p *Parser) parseInfixExpression(left ast.Expr) ast.Expr {
	op := p.curToken.Literal
	pos := p.curPos()
	precedence := precedences[p.curToken.Type]
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return &ast.BinOp{Op: op, Left: left, Right: right, Pos: pos}
}

// parseCallExpression parses `f(arg)`. Application is single-argument.
func (p *Parser) parseCallExpression(fn ast.Expr) ast.Expr {
	pos := p.curPos()
	p.nextToken()
	arg := p.parseExpression(LOWEST)
	if arg == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return &ast.App{Func: fn, Arg: arg, Pos: pos}
}
