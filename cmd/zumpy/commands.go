package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/born-ml/zumpy/internal/loader"
	"github.com/born-ml/zumpy/internal/ndarray"
	"github.com/born-ml/zumpy/internal/registry"
)

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func runDemo(args []string, out io.Writer) error {
	fs := newFlagSet("demo", out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	reg := registry.New()
	defer reg.Close()

	h, err := reg.Create([]int{3, 3, 3}, ndarray.Int32)
	if err != nil {
		return err
	}
	if err := reg.Fill(h, ndarray.Int32Value(10)); err != nil {
		return err
	}
	v, err := reg.Get(h, []int{2, 1, 1})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, v)
	return nil
}

// openFile loads every document of path into reg and returns the handles
// together with the document names.
func openFile(reg *registry.Registry, path string) ([]registry.Handle, []string, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("missing -f <file.yaml>")
	}
	docs, err := loader.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	handles := make([]registry.Handle, 0, len(docs))
	names := make([]string, 0, len(docs))
	for i := range docs {
		a, err := docs[i].Build()
		if err != nil {
			return nil, nil, err
		}
		handles = append(handles, reg.Adopt(a))
		name := docs[i].Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		names = append(names, name)
	}
	return handles, names, nil
}

// pick selects the handle named name, or the first one when name is empty.
func pick(handles []registry.Handle, names []string, name string) (registry.Handle, error) {
	if name == "" {
		return handles[0], nil
	}
	for i, n := range names {
		if n == name {
			return handles[i], nil
		}
	}
	return registry.Handle{}, fmt.Errorf("no array named %q", name)
}

func runShow(args []string, out io.Writer) error {
	fs := newFlagSet("show", out)
	file := fs.String("f", "", "YAML file with one or more arrays")
	if err := fs.Parse(args); err != nil {
		return err
	}

	reg := registry.New()
	defer reg.Close()

	handles, names, err := openFile(reg, *file)
	if err != nil {
		return err
	}
	for i, h := range handles {
		info, err := reg.Info(h)
		if err != nil {
			return err
		}
		text, err := reg.TextDump(h)
		if err != nil {
			return err
		}
		sum, err := reg.Sum(h)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s %v (%d elements, %d bytes)\n", names[i], info.DType, info.Shape, info.NumElements, info.ByteSize)
		fmt.Fprint(out, text)
		fmt.Fprintf(out, "sum: %g\n\n", sum)
	}
	return nil
}

func runSlice(args []string, out io.Writer) error {
	fs := newFlagSet("slice", out)
	file := fs.String("f", "", "YAML file with one or more arrays")
	name := fs.String("name", "", "Array to slice (default: first)")
	axes := fs.String("axes", "", "Positions per axis, axes separated by ';' (e.g. \"2,0;1\")")
	if err := fs.Parse(args); err != nil {
		return err
	}

	indices, err := parseAxes(*axes)
	if err != nil {
		return err
	}

	reg := registry.New()
	defer reg.Close()

	handles, names, err := openFile(reg, *file)
	if err != nil {
		return err
	}
	h, err := pick(handles, names, *name)
	if err != nil {
		return err
	}
	sh, err := reg.Slice(h, indices)
	if err != nil {
		return err
	}
	text, err := reg.TextDump(sh)
	if err != nil {
		return err
	}
	fmt.Fprint(out, text)
	return nil
}

func runFilter(args []string, out io.Writer) error {
	fs := newFlagSet("filter", out)
	file := fs.String("f", "", "YAML file with one or more arrays")
	name := fs.String("name", "", "Array to filter (default: first)")
	op := fs.String("op", "gt", "Comparison: gt, ge, lt, le, eq, ne")
	value := fs.Float64("value", 0, "Value to compare elements against")
	cols := fs.String("cols", "", "Axis-1 positions to test, comma separated (default: all)")
	mode := fs.String("mode", "any", "Row combinator: any or all")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pred, err := comparison(*op, *value)
	if err != nil {
		return err
	}
	combinator, err := ndarray.ParseCombinator(*mode)
	if err != nil {
		return err
	}
	columns, err := parseInts(*cols)
	if err != nil {
		return err
	}

	reg := registry.New()
	defer reg.Close()

	handles, names, err := openFile(reg, *file)
	if err != nil {
		return err
	}
	h, err := pick(handles, names, *name)
	if err != nil {
		return err
	}
	fh, ok, err := reg.Filter(h, pred, columns, combinator)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "no rows matched")
		return nil
	}
	text, err := reg.TextDump(fh)
	if err != nil {
		return err
	}
	fmt.Fprint(out, text)
	return nil
}

func runRandom(args []string, out io.Writer) error {
	fs := newFlagSet("random", out)
	shapeFlag := fs.String("shape", "5,2", "Comma separated dimensions")
	dtypeFlag := fs.String("dtype", "int32", "Element type: int32 or float32")
	seed := fs.Int64("seed", 1, "Random seed")
	lo := fs.Int("lo", 0, "Lowest int32 value (inclusive)")
	hi := fs.Int("hi", 50, "Highest int32 value (exclusive)")
	name := fs.String("name", "random", "Document name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	shape, err := parseInts(*shapeFlag)
	if err != nil {
		return err
	}
	dtype, err := ndarray.ParseDataType(*dtypeFlag)
	if err != nil {
		return err
	}

	if *lo < math.MinInt32 || *lo > math.MaxInt32 || *hi < math.MinInt32 || *hi > math.MaxInt32 {
		return fmt.Errorf("-lo %d / -hi %d outside the int32 range", *lo, *hi)
	}

	rng := rand.New(rand.NewSource(*seed)) //nolint:gosec // G404: reproducible demo data
	var a *ndarray.Array
	if dtype == ndarray.Float32 {
		a, err = ndarray.Rand(ndarray.Shape(shape), rng)
	} else {
		a, err = ndarray.RandInt(ndarray.Shape(shape), int32(*lo), int32(*hi), rng) //nolint:gosec // G115: range checked above
	}
	if err != nil {
		return err
	}
	defer a.Release()
	return loader.Encode(out, *name, a)
}
