package parser

import (
	"fmt"

	"github.com/vyPal/Espresso/lib/lexer"
)

// ErrorKind enumerates the ways a parse can fail. The set is closed;
// every error ParseProgram returns carries one of these.
type ErrorKind int

const (
	// UnexpectedToken: a required token was not the next one found.
	UnexpectedToken ErrorKind = iota
	// MissingIdentifier: an identifier was required and absent.
	MissingIdentifier
	// NoPrefixRoutine: the token cannot open an expression.
	NoPrefixRoutine
	// InvalidIntegerLiteral: an integer literal out of int64 range.
	InvalidIntegerLiteral
)

// ParseError is the only error type the parser produces. Want is the
// expected surface text (set for UnexpectedToken), Got the offending
// token.
type ParseError struct {
	Kind ErrorKind
	Want string
	Got  lexer.Token
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("parser found unexpected token: %s, expected: %s", e.Got.TokenLiteral(), e.Want)
	case MissingIdentifier:
		return fmt.Sprintf("was expecting identifier, got %s", e.Got.TokenLiteral())
	case NoPrefixRoutine:
		return fmt.Sprintf("no prefix parse routine for token %s", e.Got.TokenLiteral())
	case InvalidIntegerLiteral:
		return fmt.Sprintf("could not parse %q as integer", e.Got.Literal)
	}
	return fmt.Sprintf("unknown parse error at token %s", e.Got)
}

func unexpectedToken(want lexer.Type, got lexer.Token) *ParseError {
	return &ParseError{Kind: UnexpectedToken, Want: want.TokenLiteral(), Got: got}
}

func missingIdentifier(got lexer.Token) *ParseError {
	return &ParseError{Kind: MissingIdentifier, Got: got}
}

func noPrefixRoutine(got lexer.Token) *ParseError {
	return &ParseError{Kind: NoPrefixRoutine, Got: got}
}

func invalidIntegerLiteral(got lexer.Token) *ParseError {
	return &ParseError{Kind: InvalidIntegerLiteral, Got: got}
}
