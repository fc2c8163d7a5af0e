package labl

import "iter"

// Entry is one chain element as seen by runtime iteration. Label is nil
// for elements that carry no label (plain Cons heads); Value is nil for
// label-only Tag elements.
type Entry struct {
	Label Label
	Value any
}

type entryProvider interface {
	entry() Entry
}

// Entries iterates over the chain head-first. Iteration is a runtime
// projection for diagnostics and display; it does not replace label
// lookup, which stays in the type system.
func Entries(l List) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		l.walk(yield)
	}
}

// Values iterates over the stored values head-first.
func Values(l List) iter.Seq[any] {
	return func(yield func(any) bool) {
		l.walk(func(e Entry) bool {
			return yield(e.Value)
		})
	}
}

// Labels iterates over the chain's labels head-first, skipping unlabeled
// elements.
func Labels(l List) iter.Seq[Label] {
	return func(yield func(Label) bool) {
		l.walk(func(e Entry) bool {
			if e.Label == nil {
				return true
			}
			return yield(e.Label)
		})
	}
}

// HasLabel reports whether target occurs in the chain, by UID identity.
// If the same label somehow occurs twice, lookup through generated
// accessors resolves to the occurrence closest to the head.
func HasLabel(l List, target Label) bool {
	for lb := range Labels(l) {
		if lb.LabelUID() == target.LabelUID() {
			return true
		}
	}
	return false
}
