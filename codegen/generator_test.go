package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lookbusy1344/minic/symtab"
)

// TestScenario4WhileIfElseBreak reproduces spec.md §8 Scenario 4
// verbatim: a=10;b=0; while(b<a){ b=b+1; if(b==2) output(a); else {
// if(6<b) break; else output(b); } }
func TestScenario4WhileIfElseBreak(t *testing.T) {
	tab := symtab.New()
	g := New(tab)

	arr := tab.Insert("__array_slot_zero__") // occupies address 500
	require.Equal(t, symtab.DataBase, arr.Address)
	g.Program().Emit(OpAssign, "#0", "500", "")

	a := tab.Insert("a")
	b := tab.Insert("b")
	require.Equal(t, 504, a.Address)
	require.Equal(t, 508, b.Address)

	g.Stack().Push(Addr(a.Address))
	g.AssignEmpty()
	g.Stack().Push(Addr(b.Address))
	g.AssignEmpty()

	// a = 10;
	g.Stack().Push(Addr(a.Address))
	g.Stack().Push(Imm(10))
	g.Assign()
	// b = 0;
	g.Stack().Push(Addr(b.Address))
	g.Stack().Push(Imm(0))
	g.Assign()

	g.EnterLoop()
	g.Label() // while head

	// b < a
	g.Stack().Push(Addr(b.Address))
	g.Stack().Push(Addr(a.Address))
	g.LessThan()
	g.Save()

	// b = b + 1;
	g.Stack().Push(Addr(b.Address)) // assignment target
	g.Stack().Push(Addr(b.Address))
	g.Stack().Push(Imm(1))
	g.Addition("+")
	g.Assign()

	// if (b == 2)
	g.Stack().Push(Addr(b.Address))
	g.Stack().Push(Imm(2))
	g.Equals()
	g.Save()
	// then: output(a);
	g.Stack().Push(Addr(a.Address))
	g.Print()
	g.JpfSave()
	// else: if (6 < b) break; else output(b);
	g.Stack().Push(Imm(6))
	g.Stack().Push(Addr(b.Address))
	g.LessThan()
	g.Save()
	// then: break; -- zero instructions, context check only
	g.CheckBreak(0)
	g.JpfSave()
	// else: output(b);
	g.Stack().Push(Addr(b.Address))
	g.Print()
	g.Jump() // inner if's JUMP
	g.Jump() // outer if's JUMP
	g.ExitLoop()
	g.While()

	assert.True(t, g.Stack().IsEmpty())
	assert.Empty(t, g.Errors())

	want := "0\t(ASSIGN, #0, 500, )\n" +
		"1\t(ASSIGN, #0, 504, )\n" +
		"2\t(ASSIGN, #0, 508, )\n" +
		"3\t(ASSIGN, #10, 504, )\n" +
		"4\t(ASSIGN, #0, 508, )\n" +
		"5\t(LT, 508, 504, 1000)\n" +
		"6\t(JPF, 1000, 18, )\n" +
		"7\t(ADD, #1, 508, 1004)\n" +
		"8\t(ASSIGN, 1004, 508, )\n" +
		"9\t(EQ, 508, #2, 1008)\n" +
		"10\t(JPF, 1008, 13, )\n" +
		"11\t(PRINT, 504, , )\n" +
		"12\t(JP, 17, , )\n" +
		"13\t(LT, #6, 508, 1012)\n" +
		"14\t(JPF, 1012, 16, )\n" +
		"15\t(JP, 17, , )\n" +
		"16\t(PRINT, 508, , )\n" +
		"17\t(JP, 5, , )\n"
	assert.Equal(t, want, g.Program().Render())
}

// TestScenario5ArithmeticPrecedence reproduces spec.md §8 Scenario 5:
// a = 10 * 2 + 3 * (1 < 0); b = 4 + 3; output(a); output(b);
func TestScenario5ArithmeticPrecedence(t *testing.T) {
	tab := symtab.New()
	g := New(tab)
	a := tab.Insert("a")
	b := tab.Insert("b")

	g.Stack().Push(Addr(a.Address)) // assignment target
	// 10 * 2 -> t0
	g.Stack().Push(Imm(10))
	g.Stack().Push(Imm(2))
	g.Multiply()
	// 3, then 1 < 0 -> t1
	g.Stack().Push(Imm(3))
	g.Stack().Push(Imm(1))
	g.Stack().Push(Imm(0))
	g.LessThan()
	// 3 * t1 -> t2
	g.Multiply()
	// t0 + t2 -> t3
	g.Addition("+")
	g.Assign()

	// b = 4 + 3 -> t4
	g.Stack().Push(Addr(b.Address))
	g.Stack().Push(Imm(4))
	g.Stack().Push(Imm(3))
	g.Addition("+")
	g.Assign()

	g.Stack().Push(Addr(a.Address))
	g.Print()
	g.Stack().Push(Addr(b.Address))
	g.Print()

	assert.Equal(t, 9, g.Program().Len())
	instrs := g.Program().Instructions()
	assert.Equal(t, OpMult, instrs[0].Op)
	assert.Equal(t, "#2", instrs[0].A1)
	assert.Equal(t, "#10", instrs[0].A2)
	assert.Equal(t, OpLt, instrs[1].Op)
	assert.Equal(t, "#1", instrs[1].A1)
	assert.Equal(t, "#0", instrs[1].A2)
	assert.Equal(t, OpMult, instrs[2].Op)
	assert.Equal(t, instrs[1].A3, instrs[2].A1)
	assert.Equal(t, "#3", instrs[2].A2)
	assert.Equal(t, OpAdd, instrs[3].Op)
	assert.Equal(t, instrs[2].A3, instrs[3].A1)
	assert.Equal(t, instrs[0].A3, instrs[3].A2)
	assert.Equal(t, OpAssign, instrs[4].Op)
	assert.Equal(t, instrs[3].A3, instrs[4].A1)
	assert.Equal(t, "500", instrs[4].A2)
	assert.Equal(t, OpPrint, instrs[7].Op)
	assert.Equal(t, "500", instrs[7].A1)
	assert.Equal(t, OpPrint, instrs[8].Op)
	assert.Equal(t, "504", instrs[8].A1)
}

// TestProcessIDUseBeforeDeclarationReportsScoping ensures the
// supplemented SCOPING check fires for a genuinely undeclared use,
// while a declared-then-used identifier is silent.
func TestProcessIDUseBeforeDeclarationReportsScoping(t *testing.T) {
	tab := symtab.New()
	g := New(tab)

	g.DeclareVar("a")
	g.ProcessID("a", 3, true)
	assert.Empty(t, g.Errors())

	g.ProcessID("ghost", 4, true)
	require.Len(t, g.Errors(), 1)
	assert.Equal(t, Scoping, g.Errors()[0].Kind)
}

// TestCheckBreakOutsideLoopOrSwitch covers spec.md §9's break-context
// gap, supplemented per SPEC_FULL.md: break/continue never emit code,
// but using either outside any loop/switch is a reported error.
func TestCheckBreakOutsideLoopOrSwitch(t *testing.T) {
	tab := symtab.New()
	g := New(tab)

	g.CheckBreak(10)
	require.Len(t, g.Errors(), 1)
	assert.Equal(t, Break, g.Errors()[0].Kind)

	g.EnterLoop()
	g.CheckContinue(11)
	g.ExitLoop()
	assert.Len(t, g.Errors(), 1) // still just the one from above

	g.CheckContinue(12)
	require.Len(t, g.Errors(), 2)
	assert.Equal(t, ContinueOutsideLoop, g.Errors()[1].Kind)
	assert.Equal(t, 0, g.Program().Len())
}

// TestReserveArrayExpandsContiguousSlots covers the PROCESS_ARRAY
// open-question resolution: declaring arr[10] must leave arr's base
// address where its scalar insert placed it, while pushing the next
// allocation 10 slots past that base.
func TestReserveArrayExpandsContiguousSlots(t *testing.T) {
	tab := symtab.New()
	g := New(tab)

	arr := g.DeclareVar("arr")
	g.ReserveArray("arr", "10")
	next := g.DeclareVar("after")

	assert.Equal(t, symtab.DataBase, arr.Address)
	assert.Equal(t, 10, arr.Size)
	assert.Equal(t, symtab.DataBase+10*symtab.DefaultSize, next.Address)
}
