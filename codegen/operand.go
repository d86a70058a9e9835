package codegen

import "strconv"

// Operand is a semantic-stack entry: either an address literal (an
// immediate integer, rendered "#<n>") or a data address (an integer
// referring to a symbol's slot or a reserved program-block line used
// for backpatching). Per spec §3 this is the tagged variant the
// semantic stack carries.
type Operand struct {
	immediate bool
	value     int
}

// Imm returns an address-literal operand carrying n.
func Imm(n int) Operand { return Operand{immediate: true, value: n} }

// Addr returns a data-address operand carrying n.
func Addr(n int) Operand { return Operand{immediate: false, value: n} }

// Value returns the bare integer the operand carries, regardless of
// whether it is an immediate or an address.
func (o Operand) Value() int { return o.value }

// IsImmediate reports whether o is an address literal (`#n`) rather
// than a data address.
func (o Operand) IsImmediate() bool { return o.immediate }

// String renders the operand the way a program-block argument is
// rendered: "#n" for an immediate, "n" for an address.
func (o Operand) String() string {
	if o.immediate {
		return "#" + strconv.Itoa(o.value)
	}
	return strconv.Itoa(o.value)
}
