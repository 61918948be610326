package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/zumpy/internal/ndarray"
)

// parseInts parses "1,2,3". An empty string yields nil.
func parseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q in %q", p, s)
		}
		out[i] = n
	}
	return out, nil
}

// parseAxes parses "2,0;1" into [[2 0] [1]].
func parseAxes(s string) ([][]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("missing -axes")
	}
	groups := strings.Split(s, ";")
	out := make([][]int, len(groups))
	for i, g := range groups {
		idx, err := parseInts(g)
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}
	return out, nil
}

// comparison builds a predicate comparing each element against value.
func comparison(op string, value float64) (ndarray.Predicate, error) {
	var cmp func(x float64) bool
	switch op {
	case "gt":
		cmp = func(x float64) bool { return x > value }
	case "ge":
		cmp = func(x float64) bool { return x >= value }
	case "lt":
		cmp = func(x float64) bool { return x < value }
	case "le":
		cmp = func(x float64) bool { return x <= value }
	case "eq":
		cmp = func(x float64) bool { return x == value }
	case "ne":
		cmp = func(x float64) bool { return x != value }
	default:
		return nil, fmt.Errorf("unknown comparison %q", op)
	}
	return func(v ndarray.Scalar) bool { return cmp(v.Float64()) }, nil
}
