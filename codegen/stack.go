package codegen

// Stack is the semantic stack: a LIFO of operands threaded between
// action-routine firings, per spec §4.F.
type Stack struct {
	items []Operand
}

// Push pushes x onto the stack.
func (s *Stack) Push(x Operand) {
	s.items = append(s.items, x)
}

// Pop removes the top n items (default 1 if n==0 is never passed;
// callers always pass an explicit count, matching spec's pop(n=1)).
func (s *Stack) Pop(n int) {
	if n <= 0 {
		n = 1
	}
	if n > len(s.items) {
		n = len(s.items)
	}
	s.items = s.items[:len(s.items)-n]
}

// Top returns the item on top of the stack.
func (s *Stack) Top() Operand {
	return s.items[len(s.items)-1]
}

// FromTop peeks k+1 entries from the top: FromTop(0) is Top(),
// FromTop(1) is one below it, and so on.
func (s *Stack) FromTop(k int) Operand {
	return s.items[len(s.items)-1-k]
}

// IsEmpty reports whether the stack holds no operands.
func (s *Stack) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the number of operands currently on the stack.
func (s *Stack) Len() int {
	return len(s.items)
}
