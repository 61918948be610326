package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/zumpy/internal/ndarray"
)

// Document is one array description.
type Document struct {
	Name  string   `yaml:"name,omitempty"`
	DType string   `yaml:"dtype,omitempty"`
	Shape []int    `yaml:"shape,omitempty,flow"`
	Fill  *float64 `yaml:"fill,omitempty"`
	Data  any      `yaml:"data,omitempty"`
}

// Load decodes every document in r.
func Load(r io.Reader) ([]Document, error) {
	dec := yaml.NewDecoder(r)
	var docs []Document
	for {
		var doc Document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %w", ErrBadDocument, len(docs), err)
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: no documents", ErrBadDocument)
	}
	return docs, nil
}

// LoadFile decodes every document in the named file.
func LoadFile(path string) ([]Document, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from the CLI user
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// DataType resolves the document's dtype, defaulting to Int32.
func (d *Document) DataType() (ndarray.DataType, error) {
	if d.DType == "" {
		return ndarray.Int32, nil
	}
	return ndarray.ParseDataType(d.DType)
}

// Build creates the array the document describes.
func (d *Document) Build() (*ndarray.Array, error) {
	dtype, err := d.DataType()
	if err != nil {
		return nil, err
	}
	if d.Data != nil && d.Fill != nil {
		return nil, fmt.Errorf("%w: %q sets both data and fill", ErrBadDocument, d.Name)
	}

	if d.Data == nil {
		a, err := ndarray.New(ndarray.Shape(d.Shape), dtype)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", d.Name, err)
		}
		if d.Fill != nil {
			v, err := ndarray.ScalarOf(dtype, *d.Fill)
			if err != nil {
				a.Release()
				return nil, fmt.Errorf("%q: fill: %w", d.Name, err)
			}
			if err := a.Fill(v); err != nil {
				a.Release()
				return nil, err
			}
		}
		return a, nil
	}

	shape, flat, err := flatten(d.Data)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", d.Name, err)
	}
	if len(d.Shape) > 0 {
		if ndarray.Shape(d.Shape).NumElements() != len(flat) {
			return nil, fmt.Errorf("%w: %q has %d values, shape %v needs %d",
				ErrBadDocument, d.Name, len(flat), d.Shape, ndarray.Shape(d.Shape).NumElements())
		}
		shape = ndarray.Shape(d.Shape)
	}
	a, err := FromValues(flat, shape, dtype)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", d.Name, err)
	}
	return a, nil
}

// FromNested converts nested lists of numbers (as produced by a YAML or
// JSON decoder) into an array, inferring the shape from the nesting.
func FromNested(data any, dtype ndarray.DataType) (*ndarray.Array, error) {
	shape, flat, err := flatten(data)
	if err != nil {
		return nil, err
	}
	return FromValues(flat, shape, dtype)
}

// FromValues builds an array of dtype from row-major float values.
// Int32 arrays require integral values.
func FromValues(values []float64, shape ndarray.Shape, dtype ndarray.DataType) (*ndarray.Array, error) {
	a, err := ndarray.New(shape, dtype)
	if err != nil {
		return nil, err
	}
	if len(values) != shape.NumElements() {
		a.Release()
		return nil, fmt.Errorf("%w: %d values for shape %v", ndarray.ErrInvalidShape, len(values), shape)
	}
	index := make([]int, len(shape))
	for _, v := range values {
		s, err := ndarray.ScalarOf(dtype, v)
		if err != nil {
			a.Release()
			return nil, err
		}
		if err := a.Set(s, index...); err != nil {
			a.Release()
			return nil, err
		}
		next(shape, index)
	}
	return a, nil
}

// flatten walks nested lists, returning the implied shape and the values in
// row-major order.
func flatten(data any) (ndarray.Shape, []float64, error) {
	var shape ndarray.Shape
	var flat []float64
	var walk func(v any, depth int) error
	walk = func(v any, depth int) error {
		list, isList := v.([]any)
		if depth == len(shape) && isList && len(flat) == 0 {
			// First descent along the leading edge fixes the shape.
			shape = append(shape, len(list))
		}
		if !isList {
			if depth != len(shape) {
				return fmt.Errorf("%w: scalar at depth %d, expected %d", ErrRaggedData, depth, len(shape))
			}
			f, err := number(v)
			if err != nil {
				return err
			}
			flat = append(flat, f)
			return nil
		}
		if depth >= len(shape) || len(list) != shape[depth] {
			return fmt.Errorf("%w: list of %d at depth %d", ErrRaggedData, len(list), depth)
		}
		for _, item := range list {
			if err := walk(item, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	if _, ok := data.([]any); !ok {
		return nil, nil, fmt.Errorf("%w: data must be a list", ErrBadDocument)
	}
	if err := walk(data, 0); err != nil {
		return nil, nil, err
	}
	if err := shape.Validate(); err != nil {
		return nil, nil, err
	}
	return shape, flat, nil
}

// number converts a decoded YAML scalar into a float64.
func number(v any) (float64, error) {
	switch x := v.(type) {
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case float64:
		return x, nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrBadDocument, x)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: unexpected value %v (%T)", ErrBadDocument, v, v)
	}
}

// next advances index to the following row-major position.
func next(shape ndarray.Shape, index []int) {
	for axis := len(shape) - 1; axis >= 0; axis-- {
		index[axis]++
		if index[axis] < shape[axis] {
			return
		}
		index[axis] = 0
	}
}
