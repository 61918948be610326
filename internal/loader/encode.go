package loader

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/zumpy/internal/ndarray"
)

// Encode writes a as a YAML document readable by Load. The innermost axis
// is written in flow style, one list per line.
func Encode(w io.Writer, name string, a *ndarray.Array) error {
	values, tag, err := scalars(a)
	if err != nil {
		return err
	}

	shape := a.Shape()
	pos := 0
	var build func(axis int) *yaml.Node
	build = func(axis int) *yaml.Node {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if axis == len(shape)-1 {
			seq.Style = yaml.FlowStyle
			for i := 0; i < shape[axis]; i++ {
				seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: values[pos]})
				pos++
			}
			return seq
		}
		for i := 0; i < shape[axis]; i++ {
			seq.Content = append(seq.Content, build(axis+1))
		}
		return seq
	}

	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if name != "" {
		doc.Content = append(doc.Content, keyNode("name"), &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name})
	}
	doc.Content = append(doc.Content,
		keyNode("dtype"), &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: a.DType().String()},
		keyNode("data"), build(0),
	)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode %q: %w", name, err)
	}
	return enc.Close()
}

func keyNode(key string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
}

// scalars formats every element of a in row-major order together with the
// YAML tag for its dtype.
func scalars(a *ndarray.Array) ([]string, string, error) {
	switch a.DType() {
	case ndarray.Float32:
		vals, err := ndarray.Values[float32](a)
		if err != nil {
			return nil, "", err
		}
		out := make([]string, len(vals))
		for i, v := range vals {
			out[i] = formatFloat(v)
		}
		return out, "!!float", nil
	default:
		vals, err := ndarray.Values[int32](a)
		if err != nil {
			return nil, "", err
		}
		out := make([]string, len(vals))
		for i, v := range vals {
			out[i] = strconv.FormatInt(int64(v), 10)
		}
		return out, "!!int", nil
	}
}

// formatFloat renders v so that YAML resolves it as a float, never an int.
func formatFloat(v float32) string {
	switch f := float64(v); {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(float64(v), 'g', -1, 32)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
