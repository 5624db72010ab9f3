package source

import "sort"

// Position is a 1-based line and column.
type Position struct {
	Line   int
	Column int
}

// LineIndex maps byte offsets of one file to line/column positions.
type LineIndex struct {
	starts []int
	size   int
}

func NewLineIndex(content []byte) *LineIndex {
	idx := &LineIndex{starts: []int{0}, size: len(content)}
	for i, b := range content {
		if b == '\n' {
			idx.starts = append(idx.starts, i+1)
		}
	}
	return idx
}

// Position returns the line/column of offset. Offsets past the end clamp to
// the last position; a nil index maps everything to line 1.
func (idx *LineIndex) Position(offset int) Position {
	if idx == nil {
		return Position{Line: 1, Column: offset + 1}
	}
	if offset < 0 {
		offset = 0
	}
	if offset > idx.size {
		offset = idx.size
	}
	line := sort.Search(len(idx.starts), func(i int) bool {
		return idx.starts[i] > offset
	}) - 1
	return Position{Line: line + 1, Column: offset - idx.starts[line] + 1}
}

// Offset is the inverse of Position. It returns -1 for lines outside the file.
func (idx *LineIndex) Offset(pos Position) int {
	if idx == nil || pos.Line < 1 || pos.Line > len(idx.starts) {
		return -1
	}
	off := idx.starts[pos.Line-1] + pos.Column - 1
	if off > idx.size {
		return idx.size
	}
	return off
}

func (idx *LineIndex) LineCount() int {
	if idx == nil {
		return 0
	}
	return len(idx.starts)
}
