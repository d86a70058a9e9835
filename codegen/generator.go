// Package codegen implements the semantic analyser / code generator:
// the semantic stack, the program block, and the sixteen action
// routines of spec §4.F, driven by action-symbol firings the parser
// embeds at fixed points in its rule bodies.
package codegen

import (
	"strconv"

	"github.com/lookbusy1344/minic/symtab"
)

// Generator wires the semantic stack, the symbol table, and the
// program block together. It is owned by one compilation (spec §5: a
// second concurrent compilation needs a fresh Generator over a fresh
// symtab.Table).
type Generator struct {
	symbols *symtab.Table
	stack   Stack
	program *Program
	errors  []*SemanticError

	// loopDepth/switchDepth back the break/continue context check
	// (SPEC_FULL.md's closing of half the §9 break/continue gap).
	loopDepth   int
	switchDepth int
}

// New returns a generator over tab, with an empty stack and an empty
// program block.
func New(tab *symtab.Table) *Generator {
	return &Generator{symbols: tab, program: NewProgram()}
}

// Program returns the program block being built.
func (g *Generator) Program() *Program { return g.program }

// Stack returns the semantic stack (exposed for the inspector).
func (g *Generator) Stack() *Stack { return &g.stack }

// Errors returns every semantic error recorded so far.
func (g *Generator) Errors() []*SemanticError { return g.errors }

func (g *Generator) addError(row int, kind SemanticErrorKind, detail string) {
	g.errors = append(g.errors, newSemanticError(row, kind, detail))
}

// --- declaration-context symbol handling -----------------------------------

// DeclareVar records a scalar variable declaration.
func (g *Generator) DeclareVar(name string) *symtab.Symbol {
	return g.symbols.Insert(name)
}

// DeclareFunc records a function declaration with its parameter list.
func (g *Generator) DeclareFunc(name string, params []symtab.Param) *symtab.Symbol {
	return g.symbols.InsertFunc(name, params)
}

// ReserveArray finalises a declaration discovered (after PROCESS_ARRAY
// fired on `[`) to be an array of the given NUM lexeme's size,
// expanding the symbol's already-allocated scalar slot into size
// contiguous slots. This resolves spec §9's PROCESS_ARRAY open
// question per SPEC_FULL.md.
func (g *Generator) ReserveArray(name, sizeLexeme string) {
	size, err := strconv.Atoi(sizeLexeme)
	if err != nil || size <= 0 {
		size = 1
	}
	g.symbols.ExpandToArray(name, size)
}

// --- the sixteen action routines (spec §4.F) --------------------------------

// ProcessID pushes the address of the named symbol, inserting it on
// first sight exactly as spec §4.F specifies. When isUse is true
// (Factor/Expression context, as opposed to a declaration context)
// and this is the symbol's first sight, the identifier was never
// declared before being used: this is additionally reported as a
// SCOPING semantic error without changing the pushed address, so
// every scenario whose variables are declared before use is emitted
// identically to the bare "insert on first sight" behaviour spec §4.B
// calls out as the tolerated current design.
func (g *Generator) ProcessID(name string, row int, isUse bool) {
	_, existed := g.symbols.Lookup(name)
	sym := g.symbols.Insert(name)
	g.symbols.Reference(name, symtab.Position{Row: row})
	if isUse && !existed {
		g.addError(row, Scoping, "undeclared identifier '"+name+"'")
	}
	g.stack.Push(Addr(sym.Address))
}

// ProcessNum pushes the immediate operand #<lexeme>.
func (g *Generator) ProcessNum(lexeme string) {
	n, _ := strconv.Atoi(lexeme)
	g.stack.Push(Imm(n))
}

// ProcessArray fires on `[`, before the array's NUM is known; spec §9
// leaves it with no described stack effect, and this repo's actual
// array-size reservation happens in ReserveArray once NUM has been
// matched.
func (g *Generator) ProcessArray() {}

// Assign emits ASSIGN top from_top(1) and pops both operands.
func (g *Generator) Assign() {
	value := g.stack.Top()
	dest := g.stack.FromTop(1)
	g.program.Emit(OpAssign, value.String(), dest.String(), "")
	g.stack.Pop(2)
}

// AssignEmpty emits ASSIGN #0 top (zero-initialisation of a
// just-declared variable) and pops it.
func (g *Generator) AssignEmpty() {
	dest := g.stack.Top()
	g.program.Emit(OpAssign, "#0", dest.String(), "")
	g.stack.Pop(1)
}

// Label pushes the current line counter, marking a jump target for a
// later back-edge (the loop head of a while statement).
func (g *Generator) Label() {
	g.stack.Push(Addr(g.program.LineCount()))
}

// Save pushes the current line counter and reserves that line.
func (g *Generator) Save() {
	g.stack.Push(Addr(g.program.Reserve()))
}

// JpfSave patches the reserved line on top of the stack with a
// conditional jump past a freshly reserved line, which it pushes in
// the patched line's place.
func (g *Generator) JpfSave() {
	reserved := g.stack.FromTop(0).Value()
	cond := g.stack.FromTop(1)
	target := g.program.LineCount() + 1
	g.program.Patch(reserved, OpJpf, cond.String(), strconv.Itoa(target), "")
	g.stack.Pop(2)
	g.stack.Push(Addr(g.program.Reserve()))
}

// Jump patches the reserved line on top of the stack with an
// unconditional jump to the current line.
func (g *Generator) Jump() {
	reserved := g.stack.Top().Value()
	target := g.program.LineCount()
	g.program.Patch(reserved, OpJp, strconv.Itoa(target), "", "")
	g.stack.Pop(1)
}

// ConditionalJump patches the reserved line on top of the stack with
// a conditional jump to the current line (used by this repo's
// switch/case dispatch chain; see SPEC_FULL.md §4).
func (g *Generator) ConditionalJump() {
	reserved := g.stack.FromTop(0).Value()
	cond := g.stack.FromTop(1)
	target := g.program.LineCount()
	g.program.Patch(reserved, OpJpf, cond.String(), strconv.Itoa(target), "")
	g.stack.Pop(2)
}

// While patches the guard-reserved line on top of the stack with a
// conditional exit jump, then emits the unconditional back-edge to
// the loop head.
func (g *Generator) While() {
	guardReserved := g.stack.FromTop(0).Value()
	cond := g.stack.FromTop(1)
	loopHead := g.stack.FromTop(2).Value()

	exitTarget := g.program.LineCount() + 1
	g.program.Patch(guardReserved, OpJpf, cond.String(), strconv.Itoa(exitTarget), "")
	g.program.Emit(OpJp, strconv.Itoa(loopHead), "", "")
	g.stack.Pop(3)
}

// LessThan allocates a temporary, emits LT from_top(1) top temp, pops
// both operands and pushes the temporary.
func (g *Generator) LessThan() {
	left := g.stack.FromTop(1)
	right := g.stack.Top()
	temp := g.symbols.GetTemporaryAddress()
	g.program.Emit(OpLt, left.String(), right.String(), strconv.Itoa(temp))
	g.stack.Pop(2)
	g.stack.Push(Addr(temp))
}

// Equals allocates a temporary, emits EQ from_top(1) top temp, pops
// both operands and pushes the temporary.
func (g *Generator) Equals() {
	left := g.stack.FromTop(1)
	right := g.stack.Top()
	temp := g.symbols.GetTemporaryAddress()
	g.program.Emit(OpEq, left.String(), right.String(), strconv.Itoa(temp))
	g.stack.Pop(2)
	g.stack.Push(Addr(temp))
}

// Addition allocates a temporary, emits ADD top from_top(1) temp (or
// SUB, when the accumulated addop was '-'), pops both operands and
// pushes the temporary.
func (g *Generator) Addition(addop string) {
	right := g.stack.Top()
	left := g.stack.FromTop(1)
	temp := g.symbols.GetTemporaryAddress()
	op := OpAdd
	if addop == "-" {
		op = OpSub
	}
	g.program.Emit(op, right.String(), left.String(), strconv.Itoa(temp))
	g.stack.Pop(2)
	g.stack.Push(Addr(temp))
}

// Multiply allocates a temporary, emits MULT top from_top(1) temp,
// pops both operands and pushes the temporary.
func (g *Generator) Multiply() {
	right := g.stack.Top()
	left := g.stack.FromTop(1)
	temp := g.symbols.GetTemporaryAddress()
	g.program.Emit(OpMult, right.String(), left.String(), strconv.Itoa(temp))
	g.stack.Pop(2)
	g.stack.Push(Addr(temp))
}

// Print emits PRINT top and pops it.
func (g *Generator) Print() {
	value := g.stack.Top()
	g.program.Emit(OpPrint, value.String(), "", "")
	g.stack.Pop(1)
}

// Discard drops the top n operands without emitting anything. It
// backs several of this repo's simplifications of constructs the
// closed action-symbol set does not fully cover (array declarations,
// function/parameter declarations, call arguments, switch subjects):
// PROCESS_ID's unconditional push still fires at those points, and
// Discard is how the parser keeps the semantic stack balanced per
// spec §8's "stack is empty at end of successful compilation"
// invariant.
func (g *Generator) Discard(n int) {
	g.stack.Pop(n)
}

// CheckArgCount reports a ParametersNumber semantic error when a call
// to name supplies a different number of arguments than its
// declaration names, and a Scoping error when name was never declared
// as a function at all.
func (g *Generator) CheckArgCount(name string, argc int, row int) {
	sym, ok := g.symbols.Lookup(name)
	if !ok || sym.Kind != symtab.Func {
		g.addError(row, Scoping, "'"+name+"' is not a function")
		return
	}
	if len(sym.Params) != argc {
		g.addError(row, ParametersNumber, "in calling '"+name+"'")
	}
}

// --- break/continue context validation (no code emission; see spec.md §9 and
// SPEC_FULL.md's open-question resolution) ----------------------------------

// EnterLoop/ExitLoop and EnterSwitch/ExitSwitch track nesting so
// CheckBreak/CheckContinue can tell whether a break/continue is
// validly placed.
func (g *Generator) EnterLoop()   { g.loopDepth++ }
func (g *Generator) ExitLoop()    { g.loopDepth-- }
func (g *Generator) EnterSwitch() { g.switchDepth++ }
func (g *Generator) ExitSwitch()  { g.switchDepth-- }

// CheckBreak reports a BREAK semantic error if break appears outside
// any enclosing loop or switch. It never emits code, matching spec.md
// §8 Scenario 4's normative trace.
func (g *Generator) CheckBreak(row int) {
	if g.loopDepth == 0 && g.switchDepth == 0 {
		g.addError(row, Break, "")
	}
}

// CheckContinue reports a ContinueOutsideLoop semantic error if
// continue appears outside any enclosing loop. It never emits code.
func (g *Generator) CheckContinue(row int) {
	if g.loopDepth == 0 {
		g.addError(row, ContinueOutsideLoop, "")
	}
}
