package lexer

import (
	"testing"

	"github.com/lookbusy1344/minic/symtab"
	"github.com/lookbusy1344/minic/token"
)

func scanAll(t *testing.T, src string) ([]token.Token, *Lexer) {
	t.Helper()
	l := New([]byte(src), symtab.New())
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks, l
}

func TestTokenShapesScenario1(t *testing.T) {
	src := "int a = 0;\na = 2 + 2;\n//b = a < cde;\nif a == 0;\n"
	toks, _ := scanAll(t, src)

	wantKinds := []token.Kind{
		token.KEYWORD, token.ID, token.SYMBOL, token.NUM, token.SYMBOL,
		token.ID, token.SYMBOL, token.NUM, token.SYMBOL, token.NUM, token.SYMBOL,
		token.KEYWORD, token.ID, token.SYMBOL, token.NUM, token.SYMBOL,
	}
	wantLexemes := []string{
		"int", "a", "=", "0", ";",
		"a", "=", "2", "+", "2", ";",
		"if", "a", "==", "0", ";",
	}
	wantRows := []int{1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 4, 4, 4, 4, 4}
	wantCols := []int{0, 4, 6, 8, 9, 0, 2, 4, 6, 8, 9, 0, 3, 5, 8, 9}

	if len(toks) != len(wantKinds)+1 {
		t.Fatalf("got %d tokens (incl. EOF), want %d", len(toks), len(wantKinds)+1)
	}
	for i := range wantKinds {
		tok := toks[i]
		if tok.Kind != wantKinds[i] || tok.Lexeme != wantLexemes[i] || tok.Row != wantRows[i] || tok.Column != wantCols[i] {
			t.Fatalf("token[%d] = %+v, want {Row:%d Col:%d Kind:%s Lexeme:%q}", i, tok, wantRows[i], wantCols[i], wantKinds[i], wantLexemes[i])
		}
	}
	if last := toks[len(toks)-1]; last.Kind != token.EOF || last.Lexeme != token.EOFLexeme {
		t.Fatalf("final token = %+v, want EOF", last)
	}
}

func TestLexicalRecoveryScenario2(t *testing.T) {
	src := "if (b /* comment2 */ == 3d) {\na = 3;\ncd!e = 7;\n}\nelse */\n"
	toks, l := scanAll(t, src)

	var lexemes []string
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			continue
		}
		lexemes = append(lexemes, tok.Lexeme)
	}
	want := []string{"if", "(", "b", "==", ")", "{", "a", "=", "3", ";", "e", "=", "7", ";", "}", "else"}
	if len(lexemes) != len(want) {
		t.Fatalf("got lexemes %v, want %v", lexemes, want)
	}
	for i := range want {
		if lexemes[i] != want[i] {
			t.Fatalf("lexeme[%d] = %q, want %q (full: %v)", i, lexemes[i], want[i], lexemes)
		}
	}

	errs := l.Errors()
	var kinds []ErrorKind
	for _, e := range errs {
		kinds = append(kinds, e.Kind)
	}
	mustContain := func(k ErrorKind) {
		for _, got := range kinds {
			if got == k {
				return
			}
		}
		t.Fatalf("errors %v missing kind %s", errs, k)
	}
	mustContain(InvalidNumber)
	mustContain(InvalidInput)
	mustContain(UnmatchedComment)
}

func TestNestedBlockComment(t *testing.T) {
	src := "a = 1; /* outer /* inner */ still comment */ b = 2;"
	toks, l := scanAll(t, src)
	if len(l.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", l.Errors())
	}
	var lexemes []string
	for _, tok := range toks {
		if tok.Kind != token.EOF {
			lexemes = append(lexemes, tok.Lexeme)
		}
	}
	want := []string{"a", "=", "1", ";", "b", "=", "2", ";"}
	if len(lexemes) != len(want) {
		t.Fatalf("lexemes = %v, want %v", lexemes, want)
	}
}

func TestUnclosedBlockComment(t *testing.T) {
	src := "a = 1; /* never closed"
	_, l := scanAll(t, src)
	errs := l.Errors()
	if len(errs) != 1 || errs[0].Kind != UnclosedComment {
		t.Fatalf("errors = %v, want exactly one UnclosedComment", errs)
	}
}

func TestIdentifierInsertedIntoSymbolTable(t *testing.T) {
	tab := symtab.New()
	l := New([]byte("foo = 1;"), tab)
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			break
		}
	}
	if _, ok := tab.Lookup("foo"); !ok {
		t.Fatalf("identifier foo was not inserted into the symbol table")
	}
}
