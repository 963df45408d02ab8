package encode

import (
	"strings"

	"github.com/pbx-format/go-pbx/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
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
	for _, t := range ir.Types() {
		able := Colorable{
			Type: t,
			Attr: SepColor,
		}
		colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()
	}
	able := Colorable{Type: ir.DictType, Attr: FieldColor}
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	able = Colorable{Type: ir.StringType, Attr: ValueColor}
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able = Colorable{Type: ir.DataType, Attr: ValueColor}
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	res := c.Get(t, a)(s)
	return res
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
