// Package parser implements the recursive-descent LL(1) parser: one
// procedure per non-terminal, each building a parse-tree node and
// firing the generator's action symbols at the fixed points spec §4.E
// lists. The parser pulls tokens from the scanner one at a time and
// is itself unaware of the emitted code.
package parser

import (
	"github.com/lookbusy1344/minic/codegen"
	"github.com/lookbusy1344/minic/lexer"
	"github.com/lookbusy1344/minic/symtab"
	"github.com/lookbusy1344/minic/token"
)

// Parser drives a Lexer and a codegen.Generator in lockstep, per
// spec §2: the parser pulls one token at a time (pull model) and
// invokes the generator with an action symbol and the current
// lexeme at fixed points in each rule body.
type Parser struct {
	lx      *lexer.Lexer
	gen     *codegen.Generator
	current token.Token

	root   *Node
	errors []*SyntaxError

	// currentFuncParams accumulates Param records while parsing a
	// function's parameter list, for DeclareFunc at the end of
	// Fun-declaration-prime.
	currentFuncParams []symtab.Param
}

// New constructs a parser over lx, driving gen. Construction reads
// the first token and parses Program; any tokens left before EOF are
// reported as one syntax error and skipped, so the "$" leaf spec §4.E
// requires is always the last child.
func New(lx *lexer.Lexer, gen *codegen.Generator) *Parser {
	p := &Parser{lx: lx, gen: gen}
	p.current = p.lx.NextToken()
	p.root = newNode(nil, "Program")
	p.parseDeclarationList(p.root)
	if p.current.Kind != token.EOF {
		p.errors = append(p.errors, &SyntaxError{Row: p.current.Row, Got: p.current.Lexeme})
		for p.current.Kind != token.EOF {
			p.advance()
		}
	}
	leaf(p.root, p.current) // the synthetic "$" EOF leaf
	return p
}

// ParseTree returns the rendered tree as text.
func (p *Parser) ParseTree() string { return p.root.Render() }

// SyntaxErrors returns the captured diagnostics.
func (p *Parser) SyntaxErrors() []*SyntaxError { return p.errors }

func (p *Parser) advance() {
	p.current = p.lx.NextToken()
}

func (p *Parser) atKeyword(lexeme string) bool {
	return p.current.Kind == token.KEYWORD && p.current.Lexeme == lexeme
}

func (p *Parser) atSymbol(lexeme string) bool {
	return p.current.Kind == token.SYMBOL && p.current.Lexeme == lexeme
}

// matchKeyword consumes the current token if it is the named keyword,
// attaching a leaf to parent; otherwise records a syntax error and
// recovers in panic mode.
func (p *Parser) matchKeyword(lexeme string, parent *Node) token.Token {
	return p.expect(lexeme, p.atKeyword(lexeme), parent)
}

func (p *Parser) matchSymbol(lexeme string, parent *Node) token.Token {
	return p.expect(lexeme, p.atSymbol(lexeme), parent)
}

func (p *Parser) matchID(parent *Node) token.Token {
	return p.expect("ID", p.current.Kind == token.ID, parent)
}

func (p *Parser) matchNUM(parent *Node) token.Token {
	return p.expect("NUM", p.current.Kind == token.NUM, parent)
}

func (p *Parser) expect(label string, ok bool, parent *Node) token.Token {
	if ok {
		tok := p.current
		leaf(parent, tok)
		p.advance()
		return tok
	}
	p.errors = append(p.errors, &SyntaxError{Row: p.current.Row, Expected: label, Got: p.current.Lexeme})
	p.recover()
	return p.current
}

// recover implements the panic-mode recovery spec §9 leaves open:
// skip tokens until a synchronising token (";", "}", or EOF) is
// reached, so one malformed construct does not abort the whole parse.
func (p *Parser) recover() {
	for p.current.Kind != token.EOF {
		if p.atSymbol(";") || p.atSymbol("}") {
			return
		}
		p.advance()
	}
}

// --- declarations -----------------------------------------------------------

func (p *Parser) parseDeclarationList(parent *Node) {
	n := newNode(parent, "Declaration-list")
	for p.atKeyword("int") || p.atKeyword("void") {
		p.parseDeclaration(n)
	}
	epsilonLeaf(n)
}

func (p *Parser) parseDeclaration(parent *Node) {
	n := newNode(parent, "Declaration")
	name, isVoid := p.parseDeclarationInitial(n)
	p.parseDeclarationPrime(n, name, isVoid)
}

// parseDeclarationInitial matches TypeSpecifier ID, firing PROCESS_ID
// right after ID per spec §4.E, and returns the declared name plus
// whether its type was void (a function-only type in this language).
func (p *Parser) parseDeclarationInitial(parent *Node) (string, bool) {
	n := newNode(parent, "Declaration-initial")
	isVoid := p.parseTypeSpecifier(n)
	idTok := p.matchID(n)
	p.gen.DeclareVar(idTok.Lexeme)
	p.gen.ProcessID(idTok.Lexeme, idTok.Row, false)
	return idTok.Lexeme, isVoid
}

func (p *Parser) parseTypeSpecifier(parent *Node) bool {
	n := newNode(parent, "Type-specifier")
	if p.atKeyword("void") {
		p.matchKeyword("void", n)
		return true
	}
	p.matchKeyword("int", n)
	return false
}

func (p *Parser) parseDeclarationPrime(parent *Node, name string, isVoid bool) {
	n := newNode(parent, "Declaration-prime")
	if p.atSymbol("(") {
		p.parseFunDeclarationPrime(n, name)
		return
	}
	p.parseVarDeclarationPrime(n, name, isVoid)
}

func (p *Parser) parseVarDeclarationPrime(parent *Node, name string, isVoid bool) {
	n := newNode(parent, "Var-declaration-prime")
	if p.atSymbol("[") {
		p.matchSymbol("[", n)
		p.gen.ProcessArray()
		sizeTok := p.matchNUM(n)
		p.gen.ReserveArray(name, sizeTok.Lexeme)
		p.matchSymbol("]", n)
		p.matchSymbol(";", n)
		p.gen.Discard(1) // the address ProcessID left on the stack
		return
	}
	p.matchSymbol(";", n)
	p.gen.AssignEmpty()
	_ = isVoid
}

func (p *Parser) parseFunDeclarationPrime(parent *Node, name string) {
	n := newNode(parent, "Fun-declaration-prime")
	p.gen.Discard(1) // functions don't zero-initialise a data slot
	p.matchSymbol("(", n)
	saved := p.currentFuncParams
	p.currentFuncParams = nil
	p.parseParams(n)
	params := p.currentFuncParams
	p.currentFuncParams = saved
	p.matchSymbol(")", n)
	p.gen.DeclareFunc(name, params)
	p.parseCompoundStmt(n)
}

func (p *Parser) parseParams(parent *Node) {
	n := newNode(parent, "Params")
	if p.atKeyword("int") {
		p.matchKeyword("int", n)
		idTok := p.matchID(n)
		isArr := p.parseParamPrime(n)
		p.currentFuncParams = append(p.currentFuncParams, symtab.Param{Name: idTok.Lexeme, IsArr: isArr})
		p.parseParamList(n)
		return
	}
	p.matchKeyword("void", n)
	p.parseParamListVoidAbtar(n)
}

func (p *Parser) parseParamListVoidAbtar(parent *Node) {
	n := newNode(parent, "Param-list-void-abtar")
	if p.atSymbol(",") {
		p.matchSymbol(",", n)
		p.parseParam(n)
		p.parseParamList(n)
		return
	}
	epsilonLeaf(n)
}

func (p *Parser) parseParamList(parent *Node) {
	n := newNode(parent, "Param-list")
	if p.atSymbol(",") {
		p.matchSymbol(",", n)
		p.parseParam(n)
		p.parseParamList(n)
		return
	}
	epsilonLeaf(n)
}

func (p *Parser) parseParam(parent *Node) {
	n := newNode(parent, "Param")
	name, _ := p.parseDeclarationInitial(n)
	p.gen.Discard(1) // a parameter's address isn't zero-initialised here
	isArr := p.parseParamPrime(n)
	p.currentFuncParams = append(p.currentFuncParams, symtab.Param{Name: name, IsArr: isArr})
}

func (p *Parser) parseParamPrime(parent *Node) bool {
	n := newNode(parent, "Param-prime")
	if p.atSymbol("[") {
		p.matchSymbol("[", n)
		p.matchSymbol("]", n)
		return true
	}
	epsilonLeaf(n)
	return false
}

// --- statements --------------------------------------------------------------

func (p *Parser) parseCompoundStmt(parent *Node) {
	n := newNode(parent, "Compound-stmt")
	p.matchSymbol("{", n)
	p.parseDeclarationList(n)
	p.parseStatementList(n)
	p.matchSymbol("}", n)
}

func (p *Parser) parseStatementList(parent *Node) {
	n := newNode(parent, "Statement-list")
	for p.startsStatement() {
		p.parseStatement(n)
	}
	epsilonLeaf(n)
}

func (p *Parser) startsStatement() bool {
	if p.current.Kind == token.ID || p.current.Kind == token.NUM {
		return true
	}
	if p.atSymbol("(") || p.atSymbol("+") || p.atSymbol("-") || p.atSymbol(";") || p.atSymbol("{") {
		return true
	}
	for _, kw := range []string{"if", "while", "return", "switch", "break", "continue", "output"} {
		if p.atKeyword(kw) {
			return true
		}
	}
	return false
}

func (p *Parser) parseStatement(parent *Node) {
	n := newNode(parent, "Statement")
	switch {
	case p.atSymbol("{"):
		p.parseCompoundStmt(n)
	case p.atKeyword("if"):
		p.parseSelectionStmt(n)
	case p.atKeyword("while"):
		p.parseIterationStmt(n)
	case p.atKeyword("return"):
		p.parseReturnStmt(n)
	case p.atKeyword("switch"):
		p.parseSwitchStmt(n)
	case p.atKeyword("output"):
		p.parseOutputStmt(n)
	default:
		p.parseExpressionStmt(n)
	}
}

func (p *Parser) parseExpressionStmt(parent *Node) {
	n := newNode(parent, "Expression-stmt")
	switch {
	case p.atKeyword("break"):
		p.matchKeyword("break", n)
		p.matchSymbol(";", n)
		p.gen.CheckBreak(p.current.Row)
	case p.atKeyword("continue"):
		p.matchKeyword("continue", n)
		p.matchSymbol(";", n)
		p.gen.CheckContinue(p.current.Row)
	case p.atSymbol(";"):
		p.matchSymbol(";", n)
	default:
		p.parseExpression(n)
		p.matchSymbol(";", n)
	}
}

func (p *Parser) parseOutputStmt(parent *Node) {
	n := newNode(parent, "Statement")
	p.matchKeyword("output", n)
	p.matchSymbol("(", n)
	p.parseExpression(n)
	p.matchSymbol(")", n)
	p.gen.Print()
	p.matchSymbol(";", n)
}

func (p *Parser) parseSelectionStmt(parent *Node) {
	n := newNode(parent, "Selection-stmt")
	p.matchKeyword("if", n)
	p.matchSymbol("(", n)
	p.parseExpression(n)
	p.matchSymbol(")", n)
	p.gen.Save()
	p.parseStatement(n)
	p.matchKeyword("else", n)
	p.gen.JpfSave()
	p.parseStatement(n)
	p.gen.Jump()
}

func (p *Parser) parseIterationStmt(parent *Node) {
	n := newNode(parent, "Iteration-stmt")
	p.matchKeyword("while", n)
	p.gen.Label()
	p.matchSymbol("(", n)
	p.parseExpression(n)
	p.matchSymbol(")", n)
	p.gen.Save()
	p.gen.EnterLoop()
	p.parseStatement(n)
	p.gen.ExitLoop()
	p.gen.While()
}

func (p *Parser) parseReturnStmt(parent *Node) {
	n := newNode(parent, "Return-stmt")
	p.matchKeyword("return", n)
	p.parseReturnStmtPrime(n)
}

func (p *Parser) parseReturnStmtPrime(parent *Node) {
	n := newNode(parent, "Return-stmt-prime")
	if p.atSymbol(";") {
		p.matchSymbol(";", n)
		return
	}
	p.parseExpression(n)
	p.gen.Discard(1) // the return value is not threaded further
	p.matchSymbol(";", n)
}

// parseSwitchStmt implements the supplemented switch/case/default
// construct (SPEC_FULL.md §4), dispatching each case with an EQUALS
// comparison against the subject and a SAVE + CONDITIONAL_JUMP pair
// around the case body, chained so a failing case falls through to the
// next case's check.
func (p *Parser) parseSwitchStmt(parent *Node) {
	n := newNode(parent, "Switch-stmt")
	p.matchKeyword("switch", n)
	p.matchSymbol("(", n)
	p.parseExpression(n)
	p.matchSymbol(")", n)
	p.matchSymbol("{", n)
	p.gen.EnterSwitch()
	p.parseCaseStmts(n)
	p.parseDefaultStmt(n)
	p.gen.ExitSwitch()
	p.matchSymbol("}", n)
	p.gen.Discard(1) // the switch subject's address, pushed once for all cases
}

func (p *Parser) parseCaseStmts(parent *Node) {
	n := newNode(parent, "Case-stmts")
	for p.atKeyword("case") {
		p.parseCaseStmt(n)
	}
	epsilonLeaf(n)
}

func (p *Parser) parseCaseStmt(parent *Node) {
	n := newNode(parent, "Case-stmt")
	p.matchKeyword("case", n)
	p.dupSwitchSubject()
	numTok := p.matchNUM(n)
	p.gen.ProcessNum(numTok.Lexeme)
	p.gen.Equals()
	p.gen.Save()
	p.matchSymbol(":", n)
	p.parseStatementList(n)
	p.gen.ConditionalJump()
}

func (p *Parser) parseDefaultStmt(parent *Node) {
	n := newNode(parent, "Default-stmt")
	if p.atKeyword("default") {
		p.matchKeyword("default", n)
		p.matchSymbol(":", n)
		p.parseStatementList(n)
		return
	}
	epsilonLeaf(n)
}

// dupSwitchSubject re-pushes the switch subject's operand (left on
// the stack by the switch header's Expression, one copy consumed per
// case) so each case-comparison can run Equals without disturbing the
// single value every case compares against.
func (p *Parser) dupSwitchSubject() {
	top := p.gen.Stack().Top()
	p.gen.Stack().Push(top)
}

// --- expressions ---------------------------------------------------------

func (p *Parser) parseExpression(parent *Node) {
	n := newNode(parent, "Expression")
	if p.current.Kind == token.ID {
		idTok := p.current
		leaf(n, idTok)
		p.advance()
		p.gen.ProcessID(idTok.Lexeme, idTok.Row, true)
		p.parseB(n)
		return
	}
	p.parseSimpleExpressionZegond(n)
}

func (p *Parser) parseB(parent *Node) {
	n := newNode(parent, "B")
	switch {
	case p.atSymbol("="):
		p.matchSymbol("=", n)
		p.parseExpression(n)
		p.gen.Assign()
	case p.atSymbol("["):
		p.matchSymbol("[", n)
		p.parseExpression(n)
		p.matchSymbol("]", n)
		p.parseH(n)
	default:
		p.parseSimpleExpressionPrime(n)
	}
}

func (p *Parser) parseH(parent *Node) {
	n := newNode(parent, "H")
	if p.atSymbol("=") {
		p.matchSymbol("=", n)
		p.parseExpression(n)
		p.gen.Assign()
		return
	}
	p.parseG(n)
	p.parseD(n)
	p.parseC(n)
}

func (p *Parser) parseSimpleExpressionZegond(parent *Node) {
	n := newNode(parent, "Simple-expression-zegond")
	p.parseAdditiveExpressionZegond(n)
	p.parseC(n)
}

func (p *Parser) parseSimpleExpressionPrime(parent *Node) {
	n := newNode(parent, "Simple-expression-prime")
	p.parseAdditiveExpressionPrime(n)
	p.parseC(n)
}

func (p *Parser) parseC(parent *Node) {
	n := newNode(parent, "C")
	if p.atSymbol("<") || p.atSymbol(token.EqEq) {
		op := p.parseRelop(n)
		p.parseAdditiveExpression(n)
		if op == "<" {
			p.gen.LessThan()
		} else {
			p.gen.Equals()
		}
		return
	}
	epsilonLeaf(n)
}

func (p *Parser) parseRelop(parent *Node) string {
	n := newNode(parent, "Relop")
	tok := p.current
	if p.atSymbol(token.EqEq) {
		p.matchSymbol(token.EqEq, n)
	} else {
		p.matchSymbol("<", n)
	}
	return tok.Lexeme
}

func (p *Parser) parseAdditiveExpression(parent *Node) {
	n := newNode(parent, "Additive-expression")
	p.parseTerm(n)
	p.parseD(n)
}

func (p *Parser) parseAdditiveExpressionPrime(parent *Node) {
	n := newNode(parent, "Additive-expression-prime")
	p.parseTermPrime(n)
	p.parseD(n)
}

func (p *Parser) parseAdditiveExpressionZegond(parent *Node) {
	n := newNode(parent, "Additive-expression-zegond")
	p.parseTermZegond(n)
	p.parseD(n)
}

func (p *Parser) parseD(parent *Node) {
	n := newNode(parent, "D")
	if p.atSymbol("+") || p.atSymbol("-") {
		addop := p.parseAddop(n)
		p.parseTerm(n)
		p.gen.Addition(addop)
		p.parseD(n)
		return
	}
	epsilonLeaf(n)
}

func (p *Parser) parseAddop(parent *Node) string {
	n := newNode(parent, "Addop")
	tok := p.current
	if p.atSymbol("+") {
		p.matchSymbol("+", n)
	} else {
		p.matchSymbol("-", n)
	}
	return tok.Lexeme
}

func (p *Parser) parseTerm(parent *Node) {
	n := newNode(parent, "Term")
	p.parseSignedFactor(n)
	p.parseG(n)
}

func (p *Parser) parseTermPrime(parent *Node) {
	n := newNode(parent, "Term-prime")
	p.parseFactorPrime(n)
	p.parseG(n)
}

func (p *Parser) parseTermZegond(parent *Node) {
	n := newNode(parent, "Term-zegond")
	p.parseSignedFactorZegond(n)
	p.parseG(n)
}

func (p *Parser) parseG(parent *Node) {
	n := newNode(parent, "G")
	if p.atSymbol("*") {
		p.matchSymbol("*", n)
		p.parseSignedFactor(n)
		p.gen.Multiply()
		p.parseG(n)
		return
	}
	epsilonLeaf(n)
}

func (p *Parser) parseSignedFactor(parent *Node) {
	n := newNode(parent, "Signed-factor")
	switch {
	case p.atSymbol("-"):
		// Unary minus is parsed but, like PROCESS_ARRAY and break/continue,
		// fires no action: the closed 16-symbol action set (spec §4.D) has
		// no NEGATE, so a leading "-" on a factor has no codegen effect.
		p.matchSymbol("-", n)
		p.parseFactor(n)
	case p.atSymbol("+"):
		p.matchSymbol("+", n)
		p.parseFactor(n)
	default:
		p.parseFactor(n)
	}
}

func (p *Parser) parseSignedFactorPrime(parent *Node) {
	n := newNode(parent, "Signed-factor-prime")
	p.parseFactorPrime(n)
}

func (p *Parser) parseSignedFactorZegond(parent *Node) {
	n := newNode(parent, "Signed-factor-zegond")
	switch {
	case p.atSymbol("-"):
		p.matchSymbol("-", n)
		p.parseFactor(n)
	case p.atSymbol("+"):
		p.matchSymbol("+", n)
		p.parseFactor(n)
	default:
		p.parseFactorZegond(n)
	}
}

func (p *Parser) parseFactor(parent *Node) {
	n := newNode(parent, "Factor")
	switch {
	case p.atSymbol("("):
		p.matchSymbol("(", n)
		p.parseExpression(n)
		p.matchSymbol(")", n)
	case p.current.Kind == token.ID:
		idTok := p.current
		leaf(n, idTok)
		p.advance()
		p.gen.ProcessID(idTok.Lexeme, idTok.Row, true)
		p.parseVarCallPrime(n, idTok)
	default:
		numTok := p.matchNUM(n)
		p.gen.ProcessNum(numTok.Lexeme)
	}
}

func (p *Parser) parseVarCallPrime(parent *Node, name token.Token) {
	n := newNode(parent, "Var-call-prime")
	if p.atSymbol("(") {
		p.matchSymbol("(", n)
		p.gen.Discard(1) // the callee's address isn't a runtime operand
		argc := p.parseArgs(n)
		p.matchSymbol(")", n)
		p.gen.CheckArgCount(name.Lexeme, argc, name.Row)
		p.gen.Stack().Push(codegen.Addr(0)) // placeholder result slot
		return
	}
	p.parseVarPrime(n)
}

func (p *Parser) parseVarPrime(parent *Node) {
	n := newNode(parent, "Var-prime")
	if p.atSymbol("[") {
		p.matchSymbol("[", n)
		p.parseExpression(n)
		p.matchSymbol("]", n)
		p.gen.Discard(1) // index value; real indexed addressing is out of scope
		return
	}
	epsilonLeaf(n)
}

func (p *Parser) parseFactorPrime(parent *Node) {
	n := newNode(parent, "Factor-prime")
	if p.atSymbol("(") {
		p.matchSymbol("(", n)
		argc := p.parseArgs(n)
		p.matchSymbol(")", n)
		_ = argc
		return
	}
	epsilonLeaf(n)
}

func (p *Parser) parseFactorZegond(parent *Node) {
	n := newNode(parent, "Factor-zegond")
	if p.atSymbol("(") {
		p.matchSymbol("(", n)
		p.parseExpression(n)
		p.matchSymbol(")", n)
		return
	}
	numTok := p.matchNUM(n)
	p.gen.ProcessNum(numTok.Lexeme)
}

func (p *Parser) parseArgs(parent *Node) int {
	n := newNode(parent, "Args")
	if p.current.Kind == token.ID || p.current.Kind == token.NUM || p.atSymbol("(") || p.atSymbol("+") || p.atSymbol("-") {
		return p.parseArgList(n)
	}
	epsilonLeaf(n)
	return 0
}

func (p *Parser) parseArgList(parent *Node) int {
	n := newNode(parent, "Arg-list")
	p.parseExpression(n)
	p.gen.Discard(1) // each argument's value is not threaded further
	return 1 + p.parseArgListPrime(n)
}

func (p *Parser) parseArgListPrime(parent *Node) int {
	n := newNode(parent, "Arg-list-prime")
	if p.atSymbol(",") {
		p.matchSymbol(",", n)
		p.parseExpression(n)
		p.gen.Discard(1)
		return 1 + p.parseArgListPrime(n)
	}
	epsilonLeaf(n)
	return 0
}

