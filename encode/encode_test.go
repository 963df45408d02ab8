package encode

import (
	"testing"

	"github.com/pbx-format/go-pbx/ir"
	"github.com/pbx-format/go-pbx/parse"
)

func TestEncodeScalar(t *testing.T) {
	for in, want := range map[string]string{
		"plain":     "plain",
		"two words": `"two words"`,
		"<group>":   `"<group>"`,
		"":          `""`,
	} {
		if got := MustString(ir.FromString(in)); got != want {
			t.Errorf("%q: got %s, want %s", in, got, want)
		}
	}
}

func TestEncodeDict(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "isa", Val: ir.FromString("PBXFileReference")},
		{Key: "path", Val: ir.FromString("a b.m")},
		{Key: "kids", Val: ir.FromSlice([]*ir.Node{
			ir.FromString("x"),
			ir.FromString("y"),
		})},
	})
	want := "{\n\tisa = PBXFileReference;\n\tpath = \"a b.m\";\n\tkids = (\n\t\tx,\n\t\ty,\n\t);\n}"
	if got := MustString(node); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeEmpty(t *testing.T) {
	if got := MustString(ir.Dict()); got != "{}" {
		t.Errorf("empty dict: %s", got)
	}
	if got := MustString(ir.FromSlice(nil)); got != "()" {
		t.Errorf("empty array: %s", got)
	}
}

func TestEncodeDepth(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromString("b")},
	})
	want := "{\n\t\t\ta = b;\n\t\t}"
	if got := MustString(node, Depth(2)); got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

// Encoding then re-parsing then re-encoding must be the identity on the
// encoded text.
func TestEncodeRoundTrip(t *testing.T) {
	docs := []string{
		`{a = b; c = (d, "e f", <beef>); g = {h = i;};}`,
		`{"needs quoting" = ""; empty = {}; arr = ();}`,
	}
	for _, doc := range docs {
		y, err := parse.Parse([]byte(doc))
		if err != nil {
			t.Fatalf("%q: %v", doc, err)
		}
		enc1 := MustString(y)
		y2, err := parse.Parse([]byte(enc1))
		if err != nil {
			t.Fatalf("re-parse %q: %v", enc1, err)
		}
		enc2 := MustString(y2)
		if enc1 != enc2 {
			t.Errorf("round trip not stable:\n%s\nvs:\n%s", enc1, enc2)
		}
	}
}

func TestEncodeColorsPlumbing(t *testing.T) {
	colors := NewColors()
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromString("b")},
	})
	// color escapes must wrap, not replace, the text
	got := MustString(node, EncodeColors(colors))
	if len(got) < len("{\n\ta = b;\n}") {
		t.Errorf("colored output shorter than plain: %q", got)
	}
}
