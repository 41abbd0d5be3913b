// Package lexer turns Espresso source text into a stream of tokens.
package lexer

// Lexer walks a source buffer one byte at a time. position is the byte
// currently under examination, readPosition the byte after it, and ch
// the value at position (0 once the input is exhausted).
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
}

// New returns a Lexer primed on the first byte of input. An empty
// input is legal; such a lexer produces EOF tokens forever.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// NextToken consumes and returns the next token. It never fails:
// bytes that belong to no lexeme come back as Illegal tokens, and once
// the input is exhausted every call returns EOF.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	switch {
	case isLetter(l.ch):
		literal := l.readIdentifier()
		return Token{Type: LookupIdent(literal), Literal: literal}
	case isDigit(l.ch):
		return Token{Type: Int, Literal: l.readNumber()}
	}

	var tok Token
	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: Eq, Literal: "=="}
		} else {
			tok = Token{Type: Assign, Literal: "="}
		}
	case '+':
		tok = Token{Type: Plus, Literal: "+"}
	case '-':
		tok = Token{Type: Minus, Literal: "-"}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: NotEq, Literal: "!="}
		} else {
			tok = Token{Type: Bang, Literal: "!"}
		}
	case '*':
		tok = Token{Type: Asterisk, Literal: "*"}
	case '/':
		tok = Token{Type: Slash, Literal: "/"}
	case '<':
		tok = Token{Type: LT, Literal: "<"}
	case '>':
		tok = Token{Type: GT, Literal: ">"}
	case ',':
		tok = Token{Type: Comma, Literal: ","}
	case ';':
		tok = Token{Type: Semicolon, Literal: ";"}
	case '(':
		tok = Token{Type: LParen, Literal: "("}
	case ')':
		tok = Token{Type: RParen, Literal: ")"}
	case '{':
		tok = Token{Type: LBrace, Literal: "{"}
	case '}':
		tok = Token{Type: RBrace, Literal: "}"}
	case 0:
		return Token{Type: EOF}
	default:
		tok = Token{Type: Illegal, Literal: string(l.ch)}
	}

	l.readChar()
	return tok
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// peekChar looks at the byte after the current one without consuming it.
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) readIdentifier() string {
	pos := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[pos:l.position]
}

func (l *Lexer) readNumber() string {
	pos := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[pos:l.position]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
