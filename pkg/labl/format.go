package labl

import (
	"fmt"
	"strings"
)

// Format renders a chain in record syntax, head-first:
//
//	(count = 3, name = abc, active = true)
//
// Label-only elements render as their name alone. Generated record types
// use Format for their String method.
func Format(l List) string {
	var b strings.Builder
	b.WriteByte('(')
	first := true
	for e := range Entries(l) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		switch {
		case e.Label != nil && e.Value == nil:
			b.WriteString(e.Label.LabelName())
		case e.Label != nil:
			fmt.Fprintf(&b, "%s = %v", e.Label.LabelName(), e.Value)
		default:
			fmt.Fprintf(&b, "%v", e.Value)
		}
	}
	b.WriteByte(')')
	return b.String()
}
