package parse

import (
	"errors"
	"testing"

	"github.com/pbx-format/go-pbx/ir"
)

type parseTest struct {
	in string
	e  error
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in: `hello`,
		},
		{
			in: `"hello world"`,
		},
		{
			in: `{}`,
		},
		{
			in: `()`,
		},
		{
			in: `{a = b;}`,
		},
		{
			in: `{a = b; c = d;}`,
		},
		{
			in: `{a = {b = c;};}`,
		},
		{
			in: `(a, b)`,
		},
		{
			in: `(a, b,)`,
		},
		{
			in: `((a), (b, (c)))`,
		},
		{
			in: `{a = (x, {y = z;});}`,
		},
		{
			in: `<deadbeef>`,
		},
		{
			in: "// header comment\n{a = b;}",
		},
		{
			in: "{\n\t/* inline */ a = b;\n}",
		},
		{
			in: `{"quoted key" = "quoted value";}`,
		},
		{
			in: "{\n\ta = b;\n\tc = (\n\t\td,\n\t);\n}",
		},
	}
	for _, pt := range pts {
		if _, err := Parse([]byte(pt.in)); err != nil {
			t.Errorf("%q: unexpected error %v", pt.in, err)
		}
	}
}

func TestParseErr(t *testing.T) {
	pts := []parseTest{
		{
			in: ``,
			e:  ErrParse,
		},
		{
			in: `{`,
			e:  ErrParse,
		},
		{
			in: `{a = b}`,
			e:  ErrParse,
		},
		{
			in: `{a b;}`,
			e:  ErrParse,
		},
		{
			in: `{= b;}`,
			e:  ErrParse,
		},
		{
			in: `(a b)`,
			e:  ErrParse,
		},
		{
			in: `{a = b;} extra`,
			e:  ErrParse,
		},
		{
			in: `{a = b; a = c;}`,
			e:  ErrParse,
		},
	}
	for _, pt := range pts {
		_, err := Parse([]byte(pt.in))
		if !errors.Is(err, pt.e) {
			t.Errorf("%q: got %v, want %v", pt.in, err, pt.e)
		}
	}
}

func TestParseTree(t *testing.T) {
	y, err := Parse([]byte(`{a = "x y"; list = (1, 2); data = <beef>;}`))
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != ir.DictType {
		t.Fatalf("root type %s", y.Type)
	}
	if v, _ := ir.GetString(y, "a"); v != "x y" {
		t.Errorf("a = %q", v)
	}
	list := ir.Get(y, "list")
	if list == nil || list.Type != ir.ArrayType || len(list.Values) != 2 {
		t.Fatalf("bad list %v", list)
	}
	if list.Values[1].String != "2" {
		t.Errorf("list[1] = %q", list.Values[1].String)
	}
	data := ir.Get(y, "data")
	if data == nil || data.Type != ir.DataType || len(data.Bytes) != 2 {
		t.Fatalf("bad data %v", data)
	}
}

func TestParseSource(t *testing.T) {
	_, err := Parse([]byte(`{`), Source("broken.pbxproj"))
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); len(got) == 0 || got[:6] != "broken" {
		t.Errorf("source missing from error: %v", err)
	}
}
