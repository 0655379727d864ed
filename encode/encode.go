package encode

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/treemath/numagg"
)

type EncState struct {
	depth  int
	indent int

	Color func(numagg.Kind, ColorAttr, string) string
}

type EncodeOption func(*EncState)

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// AutoColor enables the default color scheme when f is a terminal.
func AutoColor(f *os.File) EncodeOption {
	return func(es *EncState) {
		if isatty.IsTerminal(f.Fd()) {
			es.Color = NewColors().Color
		}
	}
}

// Encode writes the aggregate to w as indented key: value lines with sorted
// keys, one level of indentation per level of nesting.
func Encode(a *numagg.Aggregate, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if a.Len() == 0 {
		_, err := io.WriteString(w, "{}\n")
		return err
	}
	return encode(a, w, es)
}

func encode(a *numagg.Aggregate, w io.Writer, es *EncState) error {
	prefix := strings.Repeat(" ", es.depth*es.indent)
	for _, k := range a.Keys() {
		v, _ := a.Get(k)
		field := es.color(v.Kind(), FieldColor, k)
		sep := es.color(v.Kind(), SepColor, ":")
		if !v.IsAggregate() {
			val := es.color(v.Kind(), ValueColor, v.Number().String())
			if _, err := fmt.Fprintf(w, "%s%s%s %s\n", prefix, field, sep, val); err != nil {
				return err
			}
			continue
		}
		sub := v.Aggregate()
		if sub.Len() == 0 {
			if _, err := fmt.Fprintf(w, "%s%s%s {}\n", prefix, field, sep); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, field, sep); err != nil {
			return err
		}
		es.depth++
		err := encode(sub, w, es)
		es.depth--
		if err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) color(k numagg.Kind, attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, attr, s)
}

func String(a *numagg.Aggregate, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(a, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(a *numagg.Aggregate) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(a, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
