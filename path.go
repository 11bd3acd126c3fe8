package typeforge

import (
	"strconv"
	"strings"
)

// Segment is one step of a validation path: either a mapping field name or a
// sequence index.
type Segment struct {
	name  string
	index int
	isIdx bool
}

// Field returns a path segment naming a mapping field.
func Field(name string) Segment { return Segment{name: name} }

// Index returns a path segment addressing a sequence element.
func Index(i int) Segment { return Segment{index: i, isIdx: true} }

// Path is an ordered list of segments from the validation root. The zero
// value is the root itself.
type Path []Segment

// Child returns a new path with the segment appended. The receiver is not
// modified; paths built during recursion never alias each other's backing
// arrays.
func (p Path) Child(s Segment) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = s
	return out
}

// String renders the path for reporting: the root is "$", field descents
// append ".name" and index descents append "[i]".
func (p Path) String() string {
	b := &strings.Builder{}
	b.WriteByte('$')
	for _, s := range p {
		if s.isIdx {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.index))
			b.WriteByte(']')
			continue
		}
		b.WriteByte('.')
		b.WriteString(s.name)
	}
	return b.String()
}
