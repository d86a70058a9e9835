// Package lexer scans a raw byte buffer into the token stream the
// parser pulls from, per spec §4.C. It never aborts on malformed
// input: lexical errors are recorded and scanning continues.
package lexer

import (
	"github.com/lookbusy1344/minic/symtab"
	"github.com/lookbusy1344/minic/token"
)

// Lexer turns a byte buffer into tokens on demand (pull model: the
// parser calls NextToken once per token it needs).
type Lexer struct {
	input []byte
	pos   int // next unread byte
	row   int // 1-based
	col   int // 0-based, column of the next unread byte

	symbols *symtab.Table
	errors  []*Error

	lineBuf []token.Token
	lines   [][]token.Token
}

// New returns a scanner over input, inserting identifiers into tab as
// they are first seen (mirroring PROCESS_ID's insert-on-first-sight
// behavior one layer down, matching the teacher's lexer/symbol-table
// relationship).
func New(input []byte, tab *symtab.Table) *Lexer {
	return &Lexer{
		input:   input,
		row:     1,
		symbols: tab,
	}
}

// Errors returns every lexical error recorded so far, in scan order.
func (l *Lexer) Errors() []*Error {
	return l.errors
}

// Lines returns the tokens grouped by source line, in the order
// lines were completed. A final, newline-less partial line (if any)
// is included once NextToken has reached EOF.
func (l *Lexer) Lines() [][]token.Token {
	return l.lines
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekAt(offset int) byte {
	if l.pos+offset >= len(l.input) {
		return 0
	}
	return l.input[l.pos+offset]
}

func (l *Lexer) advance() byte {
	b := l.input[l.pos]
	l.pos++
	l.col++
	return b
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\v' || b == '\f'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isBoundary(b byte, eof bool) bool {
	if eof {
		return true
	}
	return token.IsOperator(b) || isWhitespace(b) || b == '\n' || isDigit(b) || isLetter(b) || b == '/'
}

func (l *Lexer) addError(row int, text string, kind ErrorKind) {
	l.errors = append(l.errors, &Error{Row: row, Text: text, Kind: kind})
}

func (l *Lexer) emit(tok token.Token) token.Token {
	l.lineBuf = append(l.lineBuf, tok)
	return tok
}

func (l *Lexer) newline() {
	l.row++
	l.col = 0
	l.lines = append(l.lines, l.lineBuf)
	l.lineBuf = nil
}

// NextToken returns the next token in the stream. At end of input it
// returns a single EOF token with lexeme "$"; subsequent calls are
// unspecified.
func (l *Lexer) NextToken() token.Token {
	for {
		if l.pos >= len(l.input) {
			if len(l.lineBuf) > 0 {
				l.lines = append(l.lines, l.lineBuf)
				l.lineBuf = nil
			}
			return token.Token{Row: l.row, Column: l.col, Kind: token.EOF, Lexeme: token.EOFLexeme}
		}

		ch := l.peek()

		switch {
		case ch == '\n':
			l.advance()
			l.newline()
			continue

		case isWhitespace(ch):
			l.advance()
			continue

		case ch == '/' && l.peekAt(1) == '/':
			l.skipLineComment()
			continue

		case ch == '/' && l.peekAt(1) == '*':
			l.skipBlockComment()
			continue

		case ch == '*' && l.peekAt(1) == '/':
			row, col := l.row, l.col
			l.advance()
			l.advance()
			l.addError(row, "*/", UnmatchedComment)
			_ = col
			continue

		case token.IsOperator(ch):
			return l.emit(l.scanSymbol())

		case isDigit(ch):
			if tok, ok := l.scanNumber(); ok {
				return l.emit(tok)
			}
			continue

		case isLetter(ch):
			if tok, ok := l.scanIdentifier(); ok {
				return l.emit(tok)
			}
			continue

		default:
			l.scanInvalidRun()
			continue
		}
	}
}

func (l *Lexer) skipLineComment() {
	for l.pos < len(l.input) && l.peek() != '\n' {
		l.advance()
	}
}

// skipBlockComment consumes a /* ... */ comment, supporting nesting:
// each nested /* increments a depth counter, each */ decrements it;
// the comment ends when depth returns to zero. EOF with depth > 0 is
// an Unclosed comment error keyed to the opening row.
func (l *Lexer) skipBlockComment() {
	startRow := l.row
	l.advance() // '/'
	l.advance() // '*'
	depth := 1

	for depth > 0 {
		if l.pos >= len(l.input) {
			l.addError(startRow, "/*", UnclosedComment)
			return
		}
		ch := l.peek()
		switch {
		case ch == '\n':
			l.advance()
			l.newline()
		case ch == '/' && l.peekAt(1) == '*':
			l.advance()
			l.advance()
			depth++
		case ch == '*' && l.peekAt(1) == '/':
			l.advance()
			l.advance()
			depth--
		default:
			l.advance()
		}
	}
}

func (l *Lexer) scanSymbol() token.Token {
	row, col := l.row, l.col
	ch := l.advance()
	if ch == '=' && l.peek() == '=' {
		l.advance()
		return token.Token{Row: row, Column: col, Kind: token.SYMBOL, Lexeme: token.EqEq}
	}
	return token.Token{Row: row, Column: col, Kind: token.SYMBOL, Lexeme: string(ch)}
}

// scanNumber reads a maximal run of digits. If that run is
// immediately followed by a letter, it consumes that one letter and
// reports Invalid number instead of returning a token.
func (l *Lexer) scanNumber() (token.Token, bool) {
	row, col := l.row, l.col
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.peek()) {
		l.advance()
	}
	digits := string(l.input[start:l.pos])

	if l.pos < len(l.input) && isLetter(l.peek()) {
		bad := l.advance()
		l.addError(row, digits+string(bad), InvalidNumber)
		return token.Token{}, false
	}

	return token.Token{Row: row, Column: col, Kind: token.NUM, Lexeme: digits}, true
}

// scanIdentifier reads an initial letter followed by a maximal run of
// letters/digits. If the character immediately following that run is
// neither whitespace, an operator, '/', nor EOF, it is consumed and
// reported as Invalid input; otherwise the run is classified as a
// keyword or identifier (inserting identifiers into the symbol
// table).
func (l *Lexer) scanIdentifier() (token.Token, bool) {
	row, col := l.row, l.col
	start := l.pos
	for l.pos < len(l.input) && (isLetter(l.peek()) || isDigit(l.peek())) {
		l.advance()
	}
	name := string(l.input[start:l.pos])

	eof := l.pos >= len(l.input)
	if !eof && !isBoundary(l.peek(), eof) {
		bad := l.advance()
		l.addError(row, name+string(bad), InvalidInput)
		return token.Token{}, false
	}

	if token.IsKeyword(name) {
		return token.Token{Row: row, Column: col, Kind: token.KEYWORD, Lexeme: name}, true
	}
	l.symbols.Insert(name)
	return token.Token{Row: row, Column: col, Kind: token.ID, Lexeme: name}, true
}

// scanInvalidRun accumulates bytes starting at the current,
// unrecognised character until a recognised boundary (an operator,
// whitespace, digit, letter, '/', or EOF) is reached, and reports the
// whole run as a single Invalid input error.
func (l *Lexer) scanInvalidRun() {
	row := l.row
	start := l.pos
	l.advance()
	for l.pos < len(l.input) {
		eof := false
		if isBoundary(l.peek(), eof) {
			break
		}
		l.advance()
	}
	l.addError(row, string(l.input[start:l.pos]), InvalidInput)
}
