package deserr

import (
	"strconv"
	"strings"
)

type segmentKind uint8

const (
	segmentRoot segmentKind = iota
	segmentKey
	segmentIndex
)

// Location points at a node of a JSON document. The zero value is the root.
type Location struct {
	parent *Location
	kind   segmentKind
	key    string
	index  int
}

// Root returns the location of the whole document.
func Root() Location {
	return Location{}
}

func (l Location) Key(key string) Location {
	return Location{parent: &l, kind: segmentKey, key: key}
}

func (l Location) Index(index int) Location {
	return Location{parent: &l, kind: segmentIndex, index: index}
}

func (l Location) IsRoot() bool {
	return l.kind == segmentRoot
}

// String renders the location as `.field[0].nested`; the root is `.`.
func (l Location) String() string {
	if l.IsRoot() {
		return "."
	}

	var segments []string
	for current := &l; current != nil && !current.IsRoot(); current = current.parent {
		switch current.kind {
		case segmentKey:
			segments = append(segments, "."+current.key)
		case segmentIndex:
			segments = append(segments, "["+strconv.Itoa(current.index)+"]")
		}
	}

	var sb strings.Builder
	for i := len(segments) - 1; i >= 0; i-- {
		sb.WriteString(segments[i])
	}
	return sb.String()
}
