// This file lives under testdata so the toolchain never builds it in
// place: every snippet in it must FAIL to compile. TestMisuseFailsToBuild
// copies it into a scratch module and asserts that `go build` rejects
// each snippet with the diagnostic documented on it.
package negative

import (
	"github.com/google/uuid"

	"github.com/funvibe/lablist/examples/session"
	"github.com/funvibe/lablist/pkg/labl"
)

// Count is a complete label declaration; the snippets below misuse only
// its payload type.
type Count struct{ labl.Marker[int] }

func (Count) LabelName() string   { return "Count" }
func (Count) LabelUID() uuid.UUID { return labl.UID("negative", "Count") }

func typeMismatch() {
	// Count is declared over int, so the payload type is inferred as
	// int and the string is rejected:
	//   cannot use "abc" (untyped string constant) as int value
	_ = labl.Prepend[Count](labl.Nil{}, "abc")
}

func absentLabel() {
	s := session.NewSession(3, "abc", true)
	// Session has no Debug field, so no Debug accessor was generated:
	//   s.Debug undefined (type session.Session has no field or method Debug)
	_ = s.Debug()
}

func wrongPayloadOnRecord() {
	// Count is declared as int in labels.yaml:
	//   cannot use "three" (untyped string constant) as int value
	_ = session.NewSession("three", "abc", true)
}

func mismatchedChainShape() {
	// A chain's labels and their order are part of its type, so a
	// single-element chain cannot stand in for SessionChain:
	//   cannot use labl.Prepend[Count](labl.Nil{}, 3) ... as SessionChain value
	var c session.SessionChain
	c = labl.Prepend[Count](labl.Nil{}, 3)
	_ = c
}
