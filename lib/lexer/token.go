package lexer

import "fmt"

// Type identifies the kind of a token. The set is closed; the lexer
// classifies every input byte into exactly one of these.
type Type int

const (
	EOF Type = iota
	Illegal

	Ident
	Int

	Assign
	Plus
	Minus
	Bang
	Asterisk
	Slash

	LT
	GT
	Eq
	NotEq

	Comma
	Semicolon

	LParen
	RParen
	LBrace
	RBrace

	Function
	Let
	True
	False
	If
	Else
	Return
)

// Token is an immutable value pairing a type with its literal text.
// Literal carries the captured source text for Ident, Int and Illegal,
// the fixed surface text for operators, delimiters and keywords, and
// is empty for EOF.
type Token struct {
	Type    Type
	Literal string
}

var keywords = map[string]Type{
	"fn":     Function,
	"let":    Let,
	"true":   True,
	"false":  False,
	"if":     If,
	"else":   Else,
	"return": Return,
}

// LookupIdent returns the keyword type for ident, or Ident if the text
// is not a reserved word.
func LookupIdent(ident string) Type {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return Ident
}

// String returns the debug name of the token type.
func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case Illegal:
		return "ILLEGAL"
	case Ident:
		return "IDENT"
	case Int:
		return "INT"
	case Assign:
		return "ASSIGN"
	case Plus:
		return "PLUS"
	case Minus:
		return "MINUS"
	case Bang:
		return "BANG"
	case Asterisk:
		return "ASTERISK"
	case Slash:
		return "SLASH"
	case LT:
		return "LT"
	case GT:
		return "GT"
	case Eq:
		return "EQ"
	case NotEq:
		return "NOT_EQ"
	case Comma:
		return "COMMA"
	case Semicolon:
		return "SEMICOLON"
	case LParen:
		return "LPAREN"
	case RParen:
		return "RPAREN"
	case LBrace:
		return "LBRACE"
	case RBrace:
		return "RBRACE"
	case Function:
		return "FUNCTION"
	case Let:
		return "LET"
	case True:
		return "TRUE"
	case False:
		return "FALSE"
	case If:
		return "IF"
	case Else:
		return "ELSE"
	case Return:
		return "RETURN"
	}
	return fmt.Sprintf("TYPE(%d)", int(t))
}

// TokenLiteral returns the canonical surface text of the token type.
// It is total: payload-bearing and sentinel types return their debug
// name, every fixed type returns the text it lexes from.
func (t Type) TokenLiteral() string {
	switch t {
	case Assign:
		return "="
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Bang:
		return "!"
	case Asterisk:
		return "*"
	case Slash:
		return "/"
	case LT:
		return "<"
	case GT:
		return ">"
	case Eq:
		return "=="
	case NotEq:
		return "!="
	case Comma:
		return ","
	case Semicolon:
		return ";"
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case Function:
		return "fn"
	case Let:
		return "let"
	case True:
		return "true"
	case False:
		return "false"
	case If:
		return "if"
	case Else:
		return "else"
	case Return:
		return "return"
	}
	return t.String()
}

// TokenLiteral returns the surface text of the token: the captured
// payload for Ident, Int and Illegal, the canonical text otherwise.
func (t Token) TokenLiteral() string {
	switch t.Type {
	case Ident, Int, Illegal:
		return t.Literal
	}
	return t.Type.TokenLiteral()
}

// String returns the debug form printed by the REPL token dump.
func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "EOF"
	default:
		return fmt.Sprintf("%s(%q)", t.Type, t.Literal)
	}
}
