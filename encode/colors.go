package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/treemath/numagg"
)

type Colorable struct {
	Kind numagg.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range []numagg.Kind{numagg.NumberKind, numagg.AggregateKind} {
		able := Colorable{Kind: k, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}

	able := Colorable{Kind: numagg.NumberKind, Attr: ValueColor}
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()

	able = Colorable{Kind: numagg.AggregateKind, Attr: FieldColor}
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(s string, _ ...any) string {
	return s
}

func (c *Colors) Color(k numagg.Kind, attr ColorAttr, s string) string {
	f, ok := c.Map[Colorable{Kind: k, Attr: attr}]
	if !ok {
		f = c.Default
	}
	return f(s)
}
