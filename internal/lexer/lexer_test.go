package lexer

import "testing"

func TestNextToken(t *testing.T) {
	input := `let id = \x. x
fn apply f = f(1) -- comment
"hi\n" + 2; ()`

	expected := []struct {
		typ     TokenType
		literal string
	}{
		{LET, "let"},
		{IDENT, "id"},
		{ASSIGN, "="},
		{BACKSLASH, "\\"},
		{IDENT, "x"},
		{DOT, "."},
		{IDENT, "x"},
		{SEMICOLON, "\n"},
		{FN, "fn"},
		{IDENT, "apply"},
		{IDENT, "f"},
		{ASSIGN, "="},
		{IDENT, "f"},
		{LPAREN, "("},
		{INT, "1"},
		{RPAREN, ")"},
		{SEMICOLON, "\n"},
		{STRING, "hi\n"},
		{PLUS, "+"},
		{INT, "2"},
		{SEMICOLON, ";"},
		{UNIT, "()"},
		{EOF, ""},
	}

	l := New(input, "test.mel")
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want.typ {
			t.Fatalf("token %d: type = %s, want %s (literal %q)", i, tok.Type, want.typ, tok.Literal)
		}
		if tok.Literal != want.literal {
			t.Fatalf("token %d: literal = %q, want %q", i, tok.Literal, want.literal)
		}
	}
}

func TestArrowAndForall(t *testing.T) {
	l := New("forall a. a -> ()", "env.yaml")
	expected := []TokenType{FORALL, IDENT, DOT, IDENT, ARROW, UNIT, EOF}
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("token %d: type = %s, want %s", i, tok.Type, want)
		}
	}
}

func TestBlankLinesCollapse(t *testing.T) {
	l := New("a\n\n\nb", "test.mel")
	types := []TokenType{}
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == EOF {
			break
		}
	}
	want := []TokenType{IDENT, SEMICOLON, IDENT, EOF}
	if len(types) != len(want) {
		t.Fatalf("token types = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("token %d: %s, want %s", i, types[i], want[i])
		}
	}
}

func TestPositions(t *testing.T) {
	l := New("let x", "test.mel")
	tok := l.NextToken()
	if tok.Line != 1 || tok.Column != 1 {
		t.Errorf("let at %d:%d, want 1:1", tok.Line, tok.Column)
	}
	tok = l.NextToken()
	if tok.Line != 1 || tok.Column != 5 {
		t.Errorf("x at %d:%d, want 1:5", tok.Line, tok.Column)
	}
}

func TestNormalize(t *testing.T) {
	// NFD input: 'e' followed by a combining acute accent
	nfd := "cafe\u0301"
	nfc := "caf\u00e9"
	l := New(nfd, "test.mel")
	tok := l.NextToken()
	if tok.Type != IDENT {
		t.Fatalf("token type = %s, want IDENT", tok.Type)
	}
	if tok.Literal != nfc {
		t.Errorf("literal = %q, want NFC %q", tok.Literal, nfc)
	}
}

func TestNormalizeBOM(t *testing.T) {
	src := Normalize([]byte("\uFEFFlet"))
	if string(src) != "let" {
		t.Errorf("BOM not stripped: %q", src)
	}
}
