package parser

import (
	"strconv"

	"github.com/vyPal/Espresso/lib/ast"
	"github.com/vyPal/Espresso/lib/lexer"
)

// parseExpression is the precedence-climbing loop. It resolves a
// prefix routine for the current token to get a left-hand expression,
// then keeps folding infix operators into it while the peek token
// binds tighter than min.
func (p *Parser) parseExpression(min Precedence) (ast.Expression, error) {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		return nil, noPrefixRoutine(p.curToken)
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for min < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left, nil
		}
		p.nextToken()
		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *Parser) parseIdentifier() (ast.Expression, error) {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}, nil
}

func (p *Parser) parseIntegerLiteral() (ast.Expression, error) {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		return nil, invalidIntegerLiteral(p.curToken)
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}, nil
}

func (p *Parser) parseBoolean() (ast.Expression, error) {
	return &ast.Boolean{Token: p.curToken, Value: p.curToken.Type == lexer.True}, nil
}

func (p *Parser) parsePrefixExpression() (ast.Expression, error) {
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}

	p.nextToken()

	right, err := p.parseExpression(Prefix)
	if err != nil {
		return nil, err
	}
	expression.Right = right

	return expression, nil
}

func (p *Parser) parseInfixExpression(left ast.Expression) (ast.Expression, error) {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Literal,
	}

	precedence := p.curPrecedence()
	p.nextToken()

	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}
	expression.Right = right

	return expression, nil
}

func (p *Parser) parseGroupedExpression() (ast.Expression, error) {
	p.nextToken()

	expression, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}

	if err := p.expectPeek(lexer.RParen); err != nil {
		return nil, err
	}

	return expression, nil
}

func (p *Parser) parseIfExpression() (ast.Expression, error) {
	expression := &ast.IfExpression{Token: p.curToken}

	if err := p.expectPeek(lexer.LParen); err != nil {
		return nil, err
	}
	p.nextToken()

	condition, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	expression.Condition = condition

	if err := p.expectPeek(lexer.RParen); err != nil {
		return nil, err
	}
	if err := p.expectPeek(lexer.LBrace); err != nil {
		return nil, err
	}

	consequence, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	expression.Consequence = consequence

	if p.peekToken.Type == lexer.Else {
		p.nextToken()

		if err := p.expectPeek(lexer.LBrace); err != nil {
			return nil, err
		}

		alternative, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		expression.Alternative = alternative
	}

	return expression, nil
}

func (p *Parser) parseFunctionLiteral() (ast.Expression, error) {
	literal := &ast.FunctionLiteral{Token: p.curToken}

	if err := p.expectPeek(lexer.LParen); err != nil {
		return nil, err
	}

	parameters, err := p.parseFunctionParameters()
	if err != nil {
		return nil, err
	}
	literal.Parameters = parameters

	if err := p.expectPeek(lexer.LBrace); err != nil {
		return nil, err
	}

	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	literal.Body = body

	return literal, nil
}

func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, error) {
	parameters := []*ast.Identifier{}

	if p.peekToken.Type == lexer.RParen {
		p.nextToken()
		return parameters, nil
	}

	p.nextToken()
	if p.curToken.Type != lexer.Ident {
		return nil, missingIdentifier(p.curToken)
	}
	parameters = append(parameters, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekToken.Type == lexer.Comma {
		p.nextToken()
		p.nextToken()
		if p.curToken.Type != lexer.Ident {
			return nil, missingIdentifier(p.curToken)
		}
		parameters = append(parameters, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if err := p.expectPeek(lexer.RParen); err != nil {
		return nil, err
	}

	return parameters, nil
}

func (p *Parser) parseCallExpression(function ast.Expression) (ast.Expression, error) {
	expression := &ast.CallExpression{Token: p.curToken, Function: function}

	arguments, err := p.parseCallArguments()
	if err != nil {
		return nil, err
	}
	expression.Arguments = arguments

	return expression, nil
}

func (p *Parser) parseCallArguments() ([]ast.Expression, error) {
	arguments := []ast.Expression{}

	if p.peekToken.Type == lexer.RParen {
		p.nextToken()
		return arguments, nil
	}

	p.nextToken()
	argument, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	arguments = append(arguments, argument)

	for p.peekToken.Type == lexer.Comma {
		p.nextToken()
		p.nextToken()
		argument, err := p.parseExpression(Lowest)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, argument)
	}

	if err := p.expectPeek(lexer.RParen); err != nil {
		return nil, err
	}

	return arguments, nil
}
