// Package parser builds Espresso syntax trees from a token stream.
//
// Expressions are parsed with a Pratt engine: each token type maps to
// a prefix routine (how the token opens an expression) and optionally
// an infix routine (how it joins two expressions), and a precedence
// table drives the climbing loop. The first error aborts the whole
// parse; no partial tree is returned and no resynchronization is
// attempted.
package parser

import (
	"github.com/vyPal/Espresso/lib/ast"
	"github.com/vyPal/Espresso/lib/lexer"
)

// Precedence orders operator binding strength, weakest first.
type Precedence int

const (
	Lowest      Precedence = iota + 1
	Equals                 // ==
	LessGreater            // > or <
	Sum                    // +
	Product                // *
	Prefix                 // -x or !x
	Call                   // add(x)
)

var precedences = map[lexer.Type]Precedence{
	lexer.Eq:       Equals,
	lexer.NotEq:    Equals,
	lexer.LT:       LessGreater,
	lexer.GT:       LessGreater,
	lexer.Plus:     Sum,
	lexer.Minus:    Sum,
	lexer.Slash:    Product,
	lexer.Asterisk: Product,
	lexer.LParen:   Call,
}

type (
	prefixParseFn func() (ast.Expression, error)
	infixParseFn  func(ast.Expression) (ast.Expression, error)
)

// Parser consumes tokens from a Lexer one statement at a time. It
// buffers the current token and one token of lookahead; nothing else
// is retained. A Parser is single-use and not safe for concurrent
// calls, but independent parsers share no state.
type Parser struct {
	l *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	prefixParseFns map[lexer.Type]prefixParseFn
	infixParseFns  map[lexer.Type]infixParseFn
}

// New returns a Parser positioned on the first token of l's input.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[lexer.Type]prefixParseFn{
		lexer.Ident:    p.parseIdentifier,
		lexer.Int:      p.parseIntegerLiteral,
		lexer.Bang:     p.parsePrefixExpression,
		lexer.Minus:    p.parsePrefixExpression,
		lexer.True:     p.parseBoolean,
		lexer.False:    p.parseBoolean,
		lexer.LParen:   p.parseGroupedExpression,
		lexer.If:       p.parseIfExpression,
		lexer.Function: p.parseFunctionLiteral,
	}
	p.infixParseFns = map[lexer.Type]infixParseFn{
		lexer.Plus:     p.parseInfixExpression,
		lexer.Minus:    p.parseInfixExpression,
		lexer.Slash:    p.parseInfixExpression,
		lexer.Asterisk: p.parseInfixExpression,
		lexer.Eq:       p.parseInfixExpression,
		lexer.NotEq:    p.parseInfixExpression,
		lexer.LT:       p.parseInfixExpression,
		lexer.GT:       p.parseInfixExpression,
		lexer.LParen:   p.parseCallExpression,
	}

	// Fill curToken and peekToken.
	p.nextToken()
	p.nextToken()

	return p
}

// ParseProgram parses the whole input and returns the resulting tree,
// or the first error encountered.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{}

	for p.curToken.Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
		p.nextToken()
	}

	return program, nil
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curToken.Type {
	case lexer.Let:
		return p.parseLetStatement()
	case lexer.Return:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() (*ast.LetStatement, error) {
	stmt := &ast.LetStatement{Token: p.curToken}

	if p.peekToken.Type != lexer.Ident {
		return nil, missingIdentifier(p.peekToken)
	}
	p.nextToken()
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if err := p.expectPeek(lexer.Assign); err != nil {
		return nil, err
	}
	p.nextToken()

	value, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	stmt.Value = value

	if p.peekToken.Type == lexer.Semicolon {
		p.nextToken()
	}

	return stmt, nil
}

func (p *Parser) parseReturnStatement() (*ast.ReturnStatement, error) {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	p.nextToken()

	value, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	stmt.ReturnValue = value

	if p.peekToken.Type == lexer.Semicolon {
		p.nextToken()
	}

	return stmt, nil
}

func (p *Parser) parseExpressionStatement() (*ast.ExpressionStatement, error) {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	expression, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	stmt.Expression = expression

	// The trailing semicolon is optional after an expression statement.
	if p.peekToken.Type == lexer.Semicolon {
		p.nextToken()
	}

	return stmt, nil
}

func (p *Parser) parseBlockStatement() (*ast.BlockStatement, error) {
	block := &ast.BlockStatement{Token: p.curToken}

	p.nextToken()

	for p.curToken.Type != lexer.RBrace {
		if p.curToken.Type == lexer.EOF {
			return nil, unexpectedToken(lexer.RBrace, p.curToken)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		p.nextToken()
	}

	return block, nil
}

// expectPeek advances onto the peek token if it has the wanted type,
// and fails the parse otherwise.
func (p *Parser) expectPeek(t lexer.Type) error {
	if p.peekToken.Type != t {
		return unexpectedToken(t, p.peekToken)
	}
	p.nextToken()
	return nil
}

func (p *Parser) peekPrecedence() Precedence {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return Lowest
}

func (p *Parser) curPrecedence() Precedence {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return Lowest
}
