package labl

import "github.com/google/uuid"

// Label identifies one slot of a labeled list. Implementations are
// zero-size marker types; two labels are the same label exactly when
// their UIDs are equal. Labels with identical payload types are still
// distinct labels.
type Label interface {
	// LabelName returns the display name of the label.
	LabelName() string
	// LabelUID returns the unique identifier of the label declaration.
	LabelUID() uuid.UUID
}

// Of constrains a type parameter to labels whose payload type is V. It is
// how generic code recovers a label's payload type without extra hints: a
// function parameterized [L Of[V], V any] has V fixed by the label alone.
type Of[V any] interface {
	Label
	PayloadZero() V
}

// Marker fixes a label's payload type. A label declaration embeds it:
//
//	type Count struct{ labl.Marker[int] }
//
// and then implements Label. labelgen emits declarations of this form.
type Marker[V any] struct{}

// PayloadZero returns the zero value of the payload type. It exists only
// to tie the label to its payload type; the result carries no meaning.
func (Marker[V]) PayloadZero() (v V) { return }

// Labeled is a value together with its phantom label. The label
// contributes no runtime data; it lives entirely in the type.
type Labeled[L Of[V], V any] struct {
	// Value is the stored payload.
	Value V
}

// NewLabeled wraps value under label L.
func NewLabeled[L Of[V], V any](value V) Labeled[L, V] {
	return Labeled[L, V]{Value: value}
}

func (lv Labeled[L, V]) entry() Entry {
	var l L
	return Entry{Label: l, Value: lv.Value}
}

// Tag is a label-only chain element. It holds no value; chains of tags
// describe shapes (which labels, in which order).
type Tag[L Of[V], V any] struct{}

func (Tag[L, V]) entry() Entry {
	var l L
	return Entry{Label: l}
}

// uidNamespace scopes label UIDs so they cannot collide with UUIDs minted
// elsewhere. labelgen embeds the same namespace.
var uidNamespace = uuid.MustParse("b6c9e2a4-3f4e-4c8a-9f5d-7a1b0c2d8e63")

// UID derives the identifier for a label declared as name within pkg. The
// derivation is deterministic, so hand-written and generated labels share
// one identity scheme and regeneration never changes a label's UID.
func UID(pkg, name string) uuid.UUID {
	return uuid.NewSHA1(uidNamespace, []byte(pkg+"."+name))
}
