// Package symtab implements the compiler's symbol table: a
// process-wide name → symbol mapping augmented with a separate
// allocator for temporary addresses, following spec §4.B.
package symtab

// SymbolKind distinguishes the few kinds of names the language knows
// about. The language itself only has variables and functions; arrays
// are variables with Size > 1.
type SymbolKind int

const (
	Var SymbolKind = iota
	Func
)

const (
	// DataBase is the first address of the data area.
	DataBase = 500
	// DefaultSize is the number of address units a scalar occupies.
	DefaultSize = 4
	// TempBase is the first address of the temporary area.
	TempBase = 1000
	// TempSize is the number of address units a temporary occupies.
	TempSize = 4
)

// Position names a single place in the source a symbol was
// referenced or declared; used to build the cross-reference report
// exercised by SCOPING diagnostics and the inspector's symbol pane.
type Position struct {
	Row    int
	Column int
}

// Symbol is a mutable record for one declared name. Address is
// assigned on first insertion; subsequent lookups return the same
// record.
type Symbol struct {
	Name    string
	Kind    SymbolKind
	Scope   string
	Size    int // number of DefaultSize-sized slots (array length, else 1)
	Address int
	Params  []Param

	references []Position
}

// Param describes one formal parameter of a function symbol.
type Param struct {
	Name  string
	IsArr bool
}

// Table is the symbol table: a process-wide resource, owned
// explicitly by one compilation (see spec §9, "pass it explicitly as
// an owned collaborator rather than as ambient state").
type Table struct {
	symbols   map[string]*Symbol
	count     int // number of data-area allocations made so far
	tempCount int // number of temporary allocations made so far
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{symbols: make(map[string]*Symbol)}
}

// Insert returns the existing record for name if one exists;
// otherwise it allocates a fresh data address (DataBase + count *
// DefaultSize), stores a new scalar record, and returns it.
func (t *Table) Insert(name string) *Symbol {
	if sym, ok := t.symbols[name]; ok {
		return sym
	}
	sym := &Symbol{
		Name:    name,
		Kind:    Var,
		Size:    1,
		Address: DataBase + t.count*DefaultSize,
	}
	t.count++
	t.symbols[name] = sym
	return sym
}

// InsertArray behaves like Insert but reserves size contiguous
// DefaultSize-sized slots instead of one, per the PROCESS_ARRAY
// open-question resolution in SPEC_FULL.md.
func (t *Table) InsertArray(name string, size int) *Symbol {
	if sym, ok := t.symbols[name]; ok {
		return sym
	}
	sym := &Symbol{
		Name:    name,
		Kind:    Var,
		Size:    size,
		Address: DataBase + t.count*DefaultSize,
	}
	t.count += size
	t.symbols[name] = sym
	return sym
}

// ExpandToArray turns an already-inserted scalar symbol into an array
// of size contiguous slots, bumping the allocator's count by the
// extra slots this reservation needs. It is a caller error to call
// this for a name that was never Insert-ed, or after another
// allocation has already been made for a different name in between
// (the grammar guarantees PROCESS_ARRAY's NUM always follows the same
// declaration's PROCESS_ID with no intervening declaration, so this
// never arises in practice).
func (t *Table) ExpandToArray(name string, size int) *Symbol {
	sym, ok := t.symbols[name]
	if !ok {
		return nil
	}
	if size > sym.Size {
		t.count += size - sym.Size
		sym.Size = size
	}
	return sym
}

// InsertFunc records a function declaration under name, tolerating a
// pre-existing forward use the same way Insert does.
func (t *Table) InsertFunc(name string, params []Param) *Symbol {
	if sym, ok := t.symbols[name]; ok {
		sym.Kind = Func
		sym.Params = params
		return sym
	}
	sym := &Symbol{
		Name:   name,
		Kind:   Func,
		Params: params,
	}
	t.symbols[name] = sym
	return sym
}

// Lookup returns the symbol named name, or (nil, false) if unknown.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	sym, ok := t.symbols[name]
	return sym, ok
}

// FindAddress returns the address of an already-known symbol. Per
// spec §4.B it is a caller error to call this for an unknown name;
// callers that want insert-on-first-sight semantics should call
// Insert first (as PROCESS_ID does).
func (t *Table) FindAddress(name string) (int, bool) {
	sym, ok := t.symbols[name]
	if !ok {
		return 0, false
	}
	return sym.Address, true
}

// GetTemporaryAddress allocates and returns the next temporary
// address: TempBase + tempCount*TempSize.
func (t *Table) GetTemporaryAddress() int {
	addr := TempBase + t.tempCount*TempSize
	t.tempCount++
	return addr
}

// Reference records that name was seen at pos, creating a bare
// forward-reference record if name is not yet known (mirrors the
// teacher's assembler-label forward reference, repurposed here to
// build the cross-reference report rather than to resolve a
// relocation).
func (t *Table) Reference(name string, pos Position) {
	sym, ok := t.symbols[name]
	if !ok {
		sym = &Symbol{Name: name}
		t.symbols[name] = sym
	}
	sym.references = append(sym.references, pos)
}

// References returns every position name was referenced at, in the
// order recorded.
func (t *Table) References(name string) []Position {
	sym, ok := t.symbols[name]
	if !ok {
		return nil
	}
	return sym.references
}

// Clear resets the table to empty, as required between compilations
// or test cases sharing a process (spec §4.B, §5).
func (t *Table) Clear() {
	t.symbols = make(map[string]*Symbol)
	t.count = 0
	t.tempCount = 0
}
