package labl

import "testing"

type sessionChain = Cons[Labeled[testCount, int], Cons[Labeled[testName, string], Cons[Labeled[testActive, bool], Nil]]]

// newSession builds count=3, name=abc, active=true with count at the head.
func newSession() sessionChain {
	return Prepend[testCount](Prepend[testName](Prepend[testActive](Nil{}, true), "abc"), 3)
}

func TestLen(t *testing.T) {
	tests := []struct {
		name string
		list List
		want int
	}{
		{"empty", Nil{}, 0},
		{"single", Prepend[testCount](Nil{}, 1), 1},
		{"three", newSession(), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.list.Len(); got != tt.want {
				t.Errorf("Len() = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	s := newSession()
	if got := Value(s); got != 3 {
		t.Errorf("count = %d; want 3", got)
	}
	if got := Value(s.Tail); got != "abc" {
		t.Errorf("name = %q; want %q", got, "abc")
	}
	if got := Value(s.Tail.Tail); got != true {
		t.Errorf("active = %v; want true", got)
	}
}

func TestReadOrderIndependent(t *testing.T) {
	s := newSession()
	// Reads in reverse order must see the same values: lookups do not
	// mutate the chain.
	if got := Value(s.Tail.Tail); got != true {
		t.Errorf("active = %v; want true", got)
	}
	if got := Value(s.Tail); got != "abc" {
		t.Errorf("name = %q; want %q", got, "abc")
	}
	if got := Value(s); got != 3 {
		t.Errorf("count = %d; want 3", got)
	}
	if got := Value(s.Tail); got != "abc" {
		t.Errorf("name after rereads = %q; want %q", got, "abc")
	}
}

func TestMutateSingleSlot(t *testing.T) {
	s := newSession()
	*ValueRef(&s) = 7
	if got := Value(s); got != 7 {
		t.Errorf("count after write = %d; want 7", got)
	}
	if got := Value(s.Tail); got != "abc" {
		t.Errorf("name changed by unrelated write: %q", got)
	}
	if got := Value(s.Tail.Tail); got != true {
		t.Errorf("active changed by unrelated write: %v", got)
	}

	*ValueRef(&s.Tail) = "xyz"
	if got := Value(s); got != 7 {
		t.Errorf("count changed by unrelated write: %d", got)
	}
	if got := Value(s.Tail); got != "xyz" {
		t.Errorf("name after write = %q; want %q", got, "xyz")
	}
}

func TestHeadTail(t *testing.T) {
	s := newSession()
	if got := Head(s).Value; got != 3 {
		t.Errorf("Head value = %d; want 3", got)
	}
	rest := Tail(s)
	if got := rest.Len(); got != 2 {
		t.Errorf("Tail len = %d; want 2", got)
	}
	HeadRef(&s).Value = 11
	if got := Value(s); got != 11 {
		t.Errorf("count after HeadRef write = %d; want 11", got)
	}
}

func TestValueCopySemantics(t *testing.T) {
	s := newSession()
	v := Value(s)
	v = v + 100
	_ = v
	if got := Value(s); got != 3 {
		t.Errorf("count mutated through a copy: %d", got)
	}
}
