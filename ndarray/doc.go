// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides dense, fixed-rank N-dimensional arrays of int32 or
// float32 elements.
//
// # Basic Usage
//
//	a, err := ndarray.New(ndarray.Shape{3, 2}, ndarray.Int32)
//	if err != nil {
//	    return err
//	}
//	defer a.Release()
//
//	_ = a.Fill(ndarray.Int32Value(10))
//	v, _ := ndarray.Get[int32](a, 2, 1) // 10
//	s, _ := a.Sum()                     // 60
//
// # Slicing
//
// Slice takes one ordered list of positions per axis and returns the
// cartesian product as a new array. Lists may reorder or repeat positions:
//
//	rev, _ := a.Slice([][]int{{2, 1, 0}, {0, 1}}) // rows reversed
//
// # Filtering
//
// Filter keeps the rows (axis-0 entries) whose elements satisfy a predicate,
// combined per row with Any or All. A filter that keeps nothing reports
// ok == false instead of returning an empty array:
//
//	rows, ok, err := ndarray.FilterBy(a, func(v int32) bool { return v > 20 }, nil, ndarray.All)
//	if err != nil {
//	    return err
//	}
//	if !ok {
//	    // no row matched
//	}
//
// # Memory Management
//
// Every Array owns its buffer. Slice, Filter and Clone return deep copies, so
// source and result may be released in any order. Arrays are not safe for
// concurrent use.
package ndarray
