// Package inspector implements an interactive terminal UI over a
// finished compilation: panes for the token stream, the parse tree,
// and the generated program block, with a simple row-based
// breakpoint/step model. Grounded on the teacher repo's tview/tcell
// debugger TUI, repurposed from stepping CPU instructions to
// stepping compiler output lines.
package inspector

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lookbusy1344/minic/compiler"
	"github.com/lookbusy1344/minic/config"
)

// Run launches the interactive inspector over a finished compilation.
// It blocks until the user quits (q or Ctrl-C).
func Run(result *compiler.Result, cfg *config.Config) error {
	app := tview.NewApplication()
	state := newState(result)

	tokens := tview.NewTextView().SetDynamicColors(true)
	tokens.SetBorder(true).SetTitle(" tokens ")

	tree := tview.NewTextView().SetDynamicColors(true)
	tree.SetBorder(true).SetTitle(" parse tree ")
	tree.SetText(tview.Escape(result.RenderParseTree()))

	program := tview.NewTable().SetBorders(false)
	program.SetBorder(true).SetTitle(" program block ")

	status := tview.NewTextView().SetDynamicColors(true)
	status.SetBorder(true).SetTitle(" status ")

	render := func() {
		tokens.SetText(tview.Escape(state.renderTokens()))
		state.renderProgram(program)
		status.SetText(tview.Escape(state.renderStatus(cfg)))
	}
	render()

	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tokens, 0, 1, false).
		AddItem(tree, 0, 1, false)
	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(program, 0, 3, true).
		AddItem(status, 5, 1, false)
	root := tview.NewFlex().
		AddItem(left, 0, 1, false).
		AddItem(right, 0, 2, true)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'q':
			app.Stop()
			return nil
		case 'n', ' ':
			state.step()
			render()
			return nil
		case 'b':
			state.toggleBreakpoint()
			render()
			return nil
		case 'c':
			state.continueToBreakpoint()
			render()
			return nil
		}
		return event
	})

	if cfg.Inspector.BreakOnFirstRow {
		state.toggleBreakpoint()
	}

	return app.SetRoot(root, true).SetFocus(program).Run()
}

// state tracks the inspector's cursor over the rendered program
// block and a set of line-number breakpoints, mirroring the teacher's
// single-step/breakpoint model one layer up (compiler output lines
// instead of CPU instructions).
type state struct {
	result      *compiler.Result
	lines       []string
	cursor      int
	breakpoints map[int]bool
}

func newState(result *compiler.Result) *state {
	text := result.RenderOutput()
	var lines []string
	if strings.TrimSpace(text) != "" {
		lines = strings.Split(strings.TrimRight(text, "\n"), "\n")
	}
	return &state{result: result, lines: lines, breakpoints: make(map[int]bool)}
}

func (s *state) renderTokens() string {
	var sb strings.Builder
	for i, line := range s.result.Lines {
		if len(line) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%d: ", i+1)
		for _, tok := range line {
			fmt.Fprintf(&sb, "%s ", tok.Lexeme)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (s *state) renderProgram(table *tview.Table) {
	table.Clear()
	for row, line := range s.lines {
		cell := tview.NewTableCell(line)
		if row == s.cursor {
			cell.SetTextColor(tcell.ColorBlack).SetBackgroundColor(tcell.ColorYellow)
		}
		if s.breakpoints[row] {
			cell.SetTextColor(tcell.ColorRed)
		}
		table.SetCell(row, 0, cell)
	}
}

func (s *state) renderStatus(cfg *config.Config) string {
	return fmt.Sprintf(
		"line %d/%d   breakpoints: %d   [n]ext  [b]reakpoint  [c]ontinue  [q]uit\ndata base %d  temp base %d",
		s.cursor+1, len(s.lines), len(s.breakpoints), cfg.Addresses.DataBase, cfg.Addresses.TempBase,
	)
}

func (s *state) step() {
	if s.cursor < len(s.lines)-1 {
		s.cursor++
	}
}

func (s *state) toggleBreakpoint() {
	if s.breakpoints[s.cursor] {
		delete(s.breakpoints, s.cursor)
		return
	}
	s.breakpoints[s.cursor] = true
}

func (s *state) continueToBreakpoint() {
	for s.cursor < len(s.lines)-1 {
		s.cursor++
		if s.breakpoints[s.cursor] {
			return
		}
	}
}
