// Package loader reads and writes arrays as YAML documents.
//
// Document format:
//
//	name: scores        # optional label
//	dtype: int32        # int32 (default) or float32
//	shape: [5, 2]       # optional when data is nested
//	fill: 0             # optional, broadcast into every element
//	data:               # nested lists, one level per axis
//	  - [37, 39]
//	  - [32, 21]
//
// Rules:
//   - Nested data infers the shape; every sibling list must have the same length.
//   - A flat data list combined with shape is read in row-major order.
//   - fill without data gives a constant array; neither gives zeros.
//   - Several documents separated by "---" load several arrays.
//
// Example:
//
//	docs, err := loader.LoadFile("scores.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	arr, err := docs[0].Build()
package loader
