package ir

import (
	"testing"
)

func TestSetGetRemove(t *testing.T) {
	y := Dict()
	SetString(y, "a", "1")
	SetString(y, "b", "2")
	SetString(y, "c", "3")
	if v, _ := GetString(y, "b"); v != "2" {
		t.Errorf("b = %q", v)
	}
	// replace in place keeps position
	SetString(y, "b", "22")
	if y.Fields[1].String != "b" {
		t.Errorf("b moved to %d", y.Values[1].ParentIndex)
	}
	if v, _ := GetString(y, "b"); v != "22" {
		t.Errorf("b = %q after replace", v)
	}
	if !Remove(y, "b") {
		t.Fatal("remove b")
	}
	if Remove(y, "b") {
		t.Fatal("remove b twice")
	}
	if len(y.Fields) != 2 || y.Fields[1].String != "c" {
		t.Errorf("unexpected fields after remove")
	}
	if y.Values[1].ParentIndex != 1 {
		t.Errorf("reindex after remove: %d", y.Values[1].ParentIndex)
	}
}

func TestInsertionOrder(t *testing.T) {
	y := Dict()
	keys := []string{"z", "a", "m", "b"}
	for _, k := range keys {
		SetString(y, k, k)
	}
	for i, k := range keys {
		if y.Fields[i].String != k {
			t.Errorf("field %d is %q, want %q", i, y.Fields[i].String, k)
		}
	}
}

func TestClone(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromString("1")},
		{Key: "arr", Val: FromSlice([]*Node{FromString("x")})},
		{Key: "d", Val: FromData([]byte{1, 2})},
	})
	c := y.Clone()
	SetString(c, "a", "changed")
	c.Values[2].Bytes[0] = 9
	if v, _ := GetString(y, "a"); v != "1" {
		t.Errorf("clone aliases original: a = %q", v)
	}
	if y.Values[2].Bytes[0] != 1 {
		t.Errorf("clone aliases data bytes")
	}
	if c.Values[1].Parent != c {
		t.Errorf("clone parent links broken")
	}
}

func TestVisit(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromString("1")},
		{Key: "b", Val: FromSlice([]*Node{FromString("x"), FromString("y")})},
	})
	n := 0
	err := y.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			n++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// root, a, arr, x, y
	if n != 5 {
		t.Errorf("visited %d nodes, want 5", n)
	}
}

func TestReindex(t *testing.T) {
	y := Dict()
	SetString(y, "a", "1")
	SetString(y, "b", "2")
	y.Fields[0], y.Fields[1] = y.Fields[1], y.Fields[0]
	y.Values[0], y.Values[1] = y.Values[1], y.Values[0]
	y.Reindex()
	if y.Values[0].ParentIndex != 0 || y.Values[0].ParentField != "b" {
		t.Errorf("reindex: %d %q", y.Values[0].ParentIndex, y.Values[0].ParentField)
	}
}
