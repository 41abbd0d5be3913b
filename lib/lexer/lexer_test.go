package lexer

import "testing"

func TestNextTokenSimple(t *testing.T) {
	input := "=+(){},;"

	expected := []Token{
		{Assign, "="},
		{Plus, "+"},
		{LParen, "("},
		{RParen, ")"},
		{LBrace, "{"},
		{RBrace, "}"},
		{Comma, ","},
		{Semicolon, ";"},
		{EOF, ""},
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok != want {
			t.Fatalf("token %d: expected %s, got %s", i, want, tok)
		}
	}
}

func TestNextTokenProgram(t *testing.T) {
	input := `let five = 5;
let ten = 10;
let add = fn(x, y) {
	x + y;
};
let result = add(five, ten);
!-/*5;
5 < 10 > 5;
if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
`

	expected := []Token{
		{Let, "let"}, {Ident, "five"}, {Assign, "="}, {Int, "5"}, {Semicolon, ";"},
		{Let, "let"}, {Ident, "ten"}, {Assign, "="}, {Int, "10"}, {Semicolon, ";"},
		{Let, "let"}, {Ident, "add"}, {Assign, "="}, {Function, "fn"},
		{LParen, "("}, {Ident, "x"}, {Comma, ","}, {Ident, "y"}, {RParen, ")"},
		{LBrace, "{"},
		{Ident, "x"}, {Plus, "+"}, {Ident, "y"}, {Semicolon, ";"},
		{RBrace, "}"}, {Semicolon, ";"},
		{Let, "let"}, {Ident, "result"}, {Assign, "="}, {Ident, "add"},
		{LParen, "("}, {Ident, "five"}, {Comma, ","}, {Ident, "ten"}, {RParen, ")"},
		{Semicolon, ";"},
		{Bang, "!"}, {Minus, "-"}, {Slash, "/"}, {Asterisk, "*"}, {Int, "5"}, {Semicolon, ";"},
		{Int, "5"}, {LT, "<"}, {Int, "10"}, {GT, ">"}, {Int, "5"}, {Semicolon, ";"},
		{If, "if"}, {LParen, "("}, {Int, "5"}, {LT, "<"}, {Int, "10"}, {RParen, ")"},
		{LBrace, "{"},
		{Return, "return"}, {True, "true"}, {Semicolon, ";"},
		{RBrace, "}"},
		{Else, "else"},
		{LBrace, "{"},
		{Return, "return"}, {False, "false"}, {Semicolon, ";"},
		{RBrace, "}"},
		{Int, "10"}, {Eq, "=="}, {Int, "10"}, {Semicolon, ";"},
		{Int, "10"}, {NotEq, "!="}, {Int, "9"}, {Semicolon, ";"},
		{EOF, ""},
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok != want {
			t.Fatalf("token %d: expected %s, got %s", i, want, tok)
		}
	}
}

func TestTwoCharOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected []Token
	}{
		{"==", []Token{{Eq, "=="}}},
		{"!=", []Token{{NotEq, "!="}}},
		{"=", []Token{{Assign, "="}}},
		{"!", []Token{{Bang, "!"}}},
		{"= =", []Token{{Assign, "="}, {Assign, "="}}},
		{"!==", []Token{{NotEq, "!="}, {Assign, "="}}},
		{"==!", []Token{{Eq, "=="}, {Bang, "!"}}},
	}

	for _, tt := range tests {
		l := New(tt.input)
		for i, want := range tt.expected {
			tok := l.NextToken()
			if tok != want {
				t.Errorf("input %q token %d: expected %s, got %s", tt.input, i, want, tok)
			}
		}
		if tok := l.NextToken(); tok.Type != EOF {
			t.Errorf("input %q: expected EOF after %d tokens, got %s", tt.input, len(tt.expected), tok)
		}
	}
}

func TestWhitespaceOnlyInput(t *testing.T) {
	for _, input := range []string{"", " ", "   ", "\t", "\n", "\r\n", " \t\n\r "} {
		l := New(input)
		if tok := l.NextToken(); tok.Type != EOF {
			t.Errorf("input %q: expected EOF, got %s", input, tok)
		}
		// EOF must repeat on further calls.
		if tok := l.NextToken(); tok.Type != EOF {
			t.Errorf("input %q: expected repeated EOF, got %s", input, tok)
		}
	}
}

func TestIllegalBytes(t *testing.T) {
	input := "let a = @;"

	expected := []Token{
		{Let, "let"},
		{Ident, "a"},
		{Assign, "="},
		{Illegal, "@"},
		{Semicolon, ";"},
		{EOF, ""},
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok != want {
			t.Fatalf("token %d: expected %s, got %s", i, want, tok)
		}
	}
}

func TestIllegalBytesDoNotStopScanning(t *testing.T) {
	l := New("#$%")
	for i := 0; i < 3; i++ {
		tok := l.NextToken()
		if tok.Type != Illegal {
			t.Fatalf("token %d: expected ILLEGAL, got %s", i, tok)
		}
	}
	if tok := l.NextToken(); tok.Type != EOF {
		t.Fatalf("expected EOF after illegal tokens, got %s", tok)
	}
}

func TestIdentifiersWithUnderscores(t *testing.T) {
	l := New("_foo bar_baz")

	if tok := l.NextToken(); tok != (Token{Ident, "_foo"}) {
		t.Fatalf("expected IDENT(\"_foo\"), got %s", tok)
	}
	if tok := l.NextToken(); tok != (Token{Ident, "bar_baz"}) {
		t.Fatalf("expected IDENT(\"bar_baz\"), got %s", tok)
	}
}

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident    string
		expected Type
	}{
		{"fn", Function},
		{"let", Let},
		{"true", True},
		{"false", False},
		{"if", If},
		{"else", Else},
		{"return", Return},
		{"foobar", Ident},
		{"lets", Ident},
		{"Return", Ident},
	}

	for _, tt := range tests {
		if got := LookupIdent(tt.ident); got != tt.expected {
			t.Errorf("LookupIdent(%q) = %s, expected %s", tt.ident, got, tt.expected)
		}
	}
}

func TestTokenLiteralIsTotal(t *testing.T) {
	for ty := EOF; ty <= Return; ty++ {
		if ty.TokenLiteral() == "" {
			t.Errorf("type %s: TokenLiteral returned an empty string", ty)
		}
		if ty.String() == "" {
			t.Errorf("type %d has no debug name", int(ty))
		}
	}
}
