// Package labl implements labeled heterogeneous lists: ordered collections
// whose elements may have different types, where every element is addressed
// by a compile-time label rather than a numeric index.
//
// A list is a chain of Cons nodes terminated by Nil. Each node holds one
// Labeled value: the payload plus its phantom label type. The label fixes
// the payload type at compile time, so supplying a mismatched value or
// reading through the wrong label fails to build rather than at runtime.
//
// Labels are zero-size marker types embedding Marker. They are typically
// produced by the labelgen tool (cmd/labelgen), which also emits record
// types with per-label accessors; hand-written labels work the same way.
package labl

// Nil is the end of every chain.
type Nil struct{}

// Cons is the building block of a chain: one element plus the rest.
type Cons[H any, T List] struct {
	// Head is the value of this element of the chain.
	Head H
	// Tail is the remaining elements of the chain.
	Tail T
}

// List is the closed family of chain types: Nil and every Cons
// instantiation. The chain's shape is part of its type; List exists so
// generic code can constrain tails and walk chains at runtime for
// diagnostics.
type List interface {
	// Len reports the number of elements in the chain.
	Len() int

	walk(yield func(Entry) bool) bool
}

// Len returns 0.
func (Nil) Len() int { return 0 }

func (Nil) walk(func(Entry) bool) bool { return true }

// Len reports the number of elements in the chain.
func (c Cons[H, T]) Len() int { return 1 + c.Tail.Len() }

func (c Cons[H, T]) walk(yield func(Entry) bool) bool {
	var e Entry
	if p, ok := any(c.Head).(entryProvider); ok {
		e = p.entry()
	} else {
		e = Entry{Value: c.Head}
	}
	if !yield(e) {
		return false
	}
	return c.Tail.walk(yield)
}

// Prepend places value at the front of tail under label L. The label is
// given explicitly; the payload type is checked against its declaration,
// so a mismatched value does not compile:
//
//	chain := labl.Prepend[Count](labl.Prepend[Name](labl.Nil{}, "abc"), 3)
//
// The last prepend becomes the head. Build chains innermost-first to keep
// declaration order; generated record constructors do this for you.
func Prepend[L Of[V], T List, V any](tail T, value V) Cons[Labeled[L, V], T] {
	return Cons[Labeled[L, V], T]{Head: Labeled[L, V]{Value: value}, Tail: tail}
}

// PrependLabel places label L, without a value, at the front of tail.
// Label-only chains describe a shape rather than hold data.
func PrependLabel[L Of[V], V any, T List](tail T) Cons[Tag[L, V], T] {
	return Cons[Tag[L, V], T]{Tail: tail}
}

// Head returns the first element of a chain.
func Head[H any, T List](c Cons[H, T]) H { return c.Head }

// Tail returns the chain without its first element.
func Tail[H any, T List](c Cons[H, T]) T { return c.Tail }

// HeadRef returns a mutable reference to the first element.
func HeadRef[H any, T List](c *Cons[H, T]) *H { return &c.Head }

// Value returns the payload stored at the head of a labeled chain, typed
// by the head's label.
func Value[L Of[V], T List, V any](c Cons[Labeled[L, V], T]) V { return c.Head.Value }

// ValueRef returns a mutable reference to the head payload. Writing
// through it changes that slot only; the chain's shape is fixed.
func ValueRef[L Of[V], T List, V any](c *Cons[Labeled[L, V], T]) *V { return &c.Head.Value }
