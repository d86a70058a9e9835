// Package compiler wires the scanner, parser, and code generator
// into a single Compile entry point and renders the six output
// artifacts spec §6 names.
package compiler

import (
	"fmt"
	"strings"

	"github.com/lookbusy1344/minic/codegen"
	"github.com/lookbusy1344/minic/lexer"
	"github.com/lookbusy1344/minic/parser"
	"github.com/lookbusy1344/minic/symtab"
	"github.com/lookbusy1344/minic/token"
)

// Result bundles everything one compilation produced: the token
// stream (for tokens.txt), the three diagnostic streams, the
// rendered parse tree, and the program block.
type Result struct {
	Symbols      *symtab.Table
	Lines        [][]token.Token
	LexicalErrs  []*lexer.Error
	SyntaxErrs   []*parser.SyntaxError
	SemanticErrs []*codegen.SemanticError
	Tree         string
	Program      *codegen.Program
}

// Compile runs the full front-end over src: scan, parse (which drives
// code generation inline), and collect every diagnostic stream. It
// never returns an error itself — lexical, syntax, and semantic
// problems are all non-fatal per spec §7 and are reported through
// Result's fields instead.
func Compile(src []byte) *Result {
	tab := symtab.New()
	lx := lexer.New(src, tab)
	gen := codegen.New(tab)
	p := parser.New(lx, gen)

	return &Result{
		Symbols:      tab,
		Lines:        lx.Lines(),
		LexicalErrs:  lx.Errors(),
		SyntaxErrs:   p.SyntaxErrors(),
		SemanticErrs: gen.Errors(),
		Tree:         p.ParseTree(),
		Program:      gen.Program(),
	}
}

// RenderTokens renders tokens.txt: one line per source line,
// "<row>. (KIND, lexeme) (…)\n".
func (r *Result) RenderTokens() string {
	var sb strings.Builder
	for i, line := range r.Lines {
		if len(line) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%d.\t", i+1)
		for _, tok := range line {
			fmt.Fprintf(&sb, "(%s, %s) ", tok.Kind, tok.Lexeme)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderLexicalErrors renders lexical_errors.txt.
func (r *Result) RenderLexicalErrors() string {
	if len(r.LexicalErrs) == 0 {
		return "There is no lexical error.\n"
	}
	var sb strings.Builder
	for _, e := range r.LexicalErrs {
		fmt.Fprintf(&sb, "%d.\t(%s, %s)\n", e.Row, e.Text, e.Kind)
	}
	return sb.String()
}

// RenderParseTree renders parse_tree.txt.
func (r *Result) RenderParseTree() string {
	return r.Tree
}

// RenderSyntaxErrors renders syntax_errors.txt.
func (r *Result) RenderSyntaxErrors() string {
	if len(r.SyntaxErrs) == 0 {
		return "There is no syntax error.\n"
	}
	var sb strings.Builder
	for _, e := range r.SyntaxErrs {
		sb.WriteString(e.Error())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderSemanticErrors renders semantic_error.txt.
func (r *Result) RenderSemanticErrors() string {
	if len(r.SemanticErrs) == 0 {
		return "The input program is semantically correct.\n"
	}
	var sb strings.Builder
	for _, e := range r.SemanticErrs {
		sb.WriteString(e.Error())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderOutput renders output.txt: the three-address program, unless
// semantic errors are present, in which case it is replaced by the
// sentinel message spec §6 gives.
func (r *Result) RenderOutput() string {
	if len(r.SemanticErrs) > 0 {
		return "The output code has not been generated\n"
	}
	return r.Program.Render()
}
