package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanProgramProducesOutput(t *testing.T) {
	r := Compile([]byte("void main(void){ int a; a = 1; output(a); }"))
	assert.Empty(t, r.SemanticErrs)
	assert.NotContains(t, r.RenderOutput(), "has not been generated")
	assert.Equal(t, "There is no lexical error.\n", r.RenderLexicalErrors())
	assert.Equal(t, "There is no syntax error.\n", r.RenderSyntaxErrors())
	assert.Equal(t, "The input program is semantically correct.\n", r.RenderSemanticErrors())
}

func TestSemanticErrorSuppressesOutput(t *testing.T) {
	r := Compile([]byte("void main(void){ break; }"))
	assert.NotEmpty(t, r.SemanticErrs)
	assert.Equal(t, "The output code has not been generated\n", r.RenderOutput())
}

func TestTokensRenderIncludesEveryLine(t *testing.T) {
	r := Compile([]byte("int a;\na = 1;\n"))
	rendered := r.RenderTokens()
	assert.Contains(t, rendered, "(KEYWORD, int)")
	assert.Contains(t, rendered, "(ID, a)")
}

func TestParseTreeRootAndTerminator(t *testing.T) {
	r := Compile([]byte("void main(void){ }"))
	assert.Contains(t, r.RenderParseTree(), "Program")
	assert.Contains(t, r.RenderParseTree(), "EOF, $")
}
