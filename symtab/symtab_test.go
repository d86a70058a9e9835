package symtab

import "testing"

func TestInsertAllocatesOnce(t *testing.T) {
	tab := New()
	a := tab.Insert("a")
	if a.Address != DataBase {
		t.Fatalf("a.Address = %d, want %d", a.Address, DataBase)
	}
	b := tab.Insert("b")
	if b.Address != DataBase+DefaultSize {
		t.Fatalf("b.Address = %d, want %d", b.Address, DataBase+DefaultSize)
	}
	again := tab.Insert("a")
	if again != a {
		t.Fatalf("second Insert(%q) returned a different record", "a")
	}
}

func TestInsertArrayReservesContiguousSlots(t *testing.T) {
	tab := New()
	tab.Insert("a")
	arr := tab.InsertArray("arr", 10)
	if arr.Address != DataBase+DefaultSize {
		t.Fatalf("arr.Address = %d, want %d", arr.Address, DataBase+DefaultSize)
	}
	next := tab.Insert("b")
	want := DataBase + DefaultSize + 10*DefaultSize
	if next.Address != want {
		t.Fatalf("b.Address = %d, want %d", next.Address, want)
	}
}

func TestGetTemporaryAddress(t *testing.T) {
	tab := New()
	t0 := tab.GetTemporaryAddress()
	t1 := tab.GetTemporaryAddress()
	if t0 != TempBase {
		t.Fatalf("t0 = %d, want %d", t0, TempBase)
	}
	if t1 != TempBase+TempSize {
		t.Fatalf("t1 = %d, want %d", t1, TempBase+TempSize)
	}
}

func TestFindAddressUnknown(t *testing.T) {
	tab := New()
	if _, ok := tab.FindAddress("nope"); ok {
		t.Fatalf("FindAddress found an address for an unknown name")
	}
}

func TestReferencesTracksForwardAndDeclaredUses(t *testing.T) {
	tab := New()
	tab.Reference("x", Position{Row: 1, Column: 0})
	tab.Insert("x")
	tab.Reference("x", Position{Row: 3, Column: 4})

	refs := tab.References("x")
	if len(refs) != 2 {
		t.Fatalf("len(References(x)) = %d, want 2", len(refs))
	}
	if refs[0].Row != 1 || refs[1].Row != 3 {
		t.Fatalf("References(x) = %+v, unexpected order", refs)
	}
}

func TestClearResetsAllocators(t *testing.T) {
	tab := New()
	tab.Insert("a")
	tab.GetTemporaryAddress()
	tab.Clear()

	a := tab.Insert("a")
	if a.Address != DataBase {
		t.Fatalf("after Clear, a.Address = %d, want %d", a.Address, DataBase)
	}
	if tab.GetTemporaryAddress() != TempBase {
		t.Fatalf("after Clear, temporary allocator did not reset")
	}
}

func TestInsertFuncTracksParams(t *testing.T) {
	tab := New()
	fn := tab.InsertFunc("main", []Param{{Name: "n"}})
	if fn.Kind != Func {
		t.Fatalf("InsertFunc did not set Kind = Func")
	}
	if len(fn.Params) != 1 || fn.Params[0].Name != "n" {
		t.Fatalf("InsertFunc params = %+v", fn.Params)
	}
}
