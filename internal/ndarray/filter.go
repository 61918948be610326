package ndarray

import (
	"fmt"
	"strings"
)

// Combinator merges the per-position predicate results of one row.
type Combinator int

// Supported combinators.
const (
	Any Combinator = iota // At least one tested position matches
	All                   // Every tested position matches
)

// String returns "any" or "all".
func (c Combinator) String() string {
	switch c {
	case Any:
		return "any"
	case All:
		return "all"
	default:
		return "unknown"
	}
}

// ParseCombinator converts "any" or "all" (case-insensitive) to a Combinator.
func ParseCombinator(name string) (Combinator, error) {
	switch strings.ToLower(name) {
	case "any":
		return Any, nil
	case "all":
		return All, nil
	default:
		return 0, fmt.Errorf("unknown combinator %q (want any or all)", name)
	}
}

// Predicate tests one element.
type Predicate func(v Scalar) bool

// FilterStage is one step of MultiFilter.
type FilterStage struct {
	Predicate Predicate
	Columns   []int // Axis-1 positions to test; empty tests all of them
	Mode      Combinator
}

// Filter keeps the rows (axis-0 entries) whose tested elements satisfy pred
// under mode. columns restricts testing to the listed axis-1 positions;
// when empty every element of the row is tested. The array must have at
// least two axes.
//
// Matching rows are copied, in order, into a new Array whose axis 0 is the
// number of matches. When no row matches Filter returns ok == false and a
// nil Array; this is not an error.
//
// Example:
//
//	hot, ok, err := a.Filter(func(v ndarray.Scalar) bool {
//	    return v.Int32() > 20
//	}, nil, ndarray.All)
func (a *Array) Filter(pred Predicate, columns []int, mode Combinator) (*Array, bool, error) {
	if err := a.live(); err != nil {
		return nil, false, err
	}
	if len(a.shape) < 2 {
		return nil, false, fmt.Errorf("filter: %w: need rank >= 2, got %d", ErrRankMismatch, len(a.shape))
	}
	if mode != Any && mode != All {
		return nil, false, fmt.Errorf("filter: unknown combinator %d", int(mode))
	}
	if pred == nil {
		return nil, false, fmt.Errorf("filter: nil predicate")
	}

	tested, err := a.columnMask(columns)
	if err != nil {
		return nil, false, err
	}

	rows := a.shape[0]
	rowSize := a.stride[0]   // Elements per row
	blockSize := a.stride[1] // Elements per axis-1 position within a row

	var kept []int
	for r := 0; r < rows; r++ {
		if a.rowMatches(r*rowSize, blockSize, tested, pred, mode) {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return nil, false, nil
	}

	outShape := a.shape.Clone()
	outShape[0] = len(kept)
	out := newArray(outShape, a.dtype)
	rowBytes := rowSize * a.dtype.Size()
	for i, r := range kept {
		copy(out.buf.data[i*rowBytes:(i+1)*rowBytes], a.buf.data[r*rowBytes:(r+1)*rowBytes])
	}
	return out, true, nil
}

// FilterBy is Filter with a predicate over the array's Go element type.
// It fails with ErrDTypeMismatch when T does not match the array's dtype.
//
// Example:
//
//	rows, ok, err := ndarray.FilterBy(a, func(v int32) bool { return v > 20 }, nil, ndarray.Any)
func FilterBy[T DType](a *Array, pred func(T) bool, columns []int, mode Combinator) (*Array, bool, error) {
	var zero T
	if dt := inferDataType(zero); dt != a.dtype {
		return nil, false, fmt.Errorf("filter: %w: array is %s, predicate takes %s", ErrDTypeMismatch, a.dtype, dt)
	}
	return a.Filter(Typed(pred), columns, mode)
}

// Typed adapts a typed predicate to a Predicate. The resulting Predicate
// panics if handed a Scalar of another dtype.
func Typed[T DType](pred func(T) bool) Predicate {
	return func(v Scalar) bool {
		x, err := scalarAs[T](v)
		if err != nil {
			panic(err)
		}
		return pred(x)
	}
}

// MultiFilter applies stages in order, each to the previous stage's result.
// ok is false as soon as a stage keeps no rows. With no stages the result
// is a copy of the array.
func (a *Array) MultiFilter(stages ...FilterStage) (*Array, bool, error) {
	cur, err := a.Clone()
	if err != nil {
		return nil, false, err
	}
	for i, st := range stages {
		next, ok, err := cur.Filter(st.Predicate, st.Columns, st.Mode)
		cur.Release()
		if err != nil {
			return nil, false, fmt.Errorf("stage %d: %w", i, err)
		}
		if !ok {
			return nil, false, nil
		}
		cur = next
	}
	return cur, true, nil
}

// columnMask marks which axis-1 positions are tested.
func (a *Array) columnMask(columns []int) ([]bool, error) {
	mask := make([]bool, a.shape[1])
	if len(columns) == 0 {
		for i := range mask {
			mask[i] = true
		}
		return mask, nil
	}
	for _, c := range columns {
		if c < 0 || c >= a.shape[1] {
			return nil, fmt.Errorf("filter: %w: column %d (size %d)", ErrOutOfRange, c, a.shape[1])
		}
		mask[c] = true
	}
	return mask, nil
}

// rowMatches evaluates one row starting at flat offset base.
func (a *Array) rowMatches(base, blockSize int, tested []bool, pred Predicate, mode Combinator) bool {
	for c, ok := range tested {
		if !ok {
			continue
		}
		start := base + c*blockSize
		for flat := start; flat < start+blockSize; flat++ {
			hit := pred(a.scalarAt(flat))
			if mode == Any && hit {
				return true
			}
			if mode == All && !hit {
				return false
			}
		}
	}
	return mode == All
}
