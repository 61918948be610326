package ndarray

import (
	"io"
	"strings"
)

// Text renders the array: elements of the innermost axis are separated by a
// single space, and every axis that wraps emits one newline. A rank-1 array
// is one line, a rank-2 array one line per row, and consecutive planes of a
// rank-3 array are separated by a blank line. Int32 elements print as
// integers, Float32 elements with six decimals.
func (a *Array) Text() (string, error) {
	var sb strings.Builder
	if err := a.WriteText(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteText writes the Text rendering of the array to w.
func (a *Array) WriteText(w io.Writer) error {
	if err := a.live(); err != nil {
		return err
	}

	var sb strings.Builder
	index := make([]int, len(a.shape))
	for flat := 0; ; flat++ {
		sb.WriteString(a.scalarAt(flat).String())
		more, wrapped := a.shape.advance(index)
		if !more {
			sb.WriteByte('\n')
			break
		}
		if wrapped == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(strings.Repeat("\n", wrapped))
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
