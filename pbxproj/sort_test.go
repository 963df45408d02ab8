package pbxproj

import (
	"fmt"
	"strings"
	"testing"
)

func TestSortGroupsByType(t *testing.T) {
	// discovery order interleaves the kinds
	doc := mustDoc(t, `{
	objects = {
		AA0000000000000000000001 = {isa = PBXFileReference; path = a.m;};
		AA0000000000000000000002 = {isa = PBXGroup; children = ();};
		AA0000000000000000000003 = {isa = PBXFileReference; path = b.m;};
		AA0000000000000000000004 = {isa = PBXFileReference; path = c.m;};
	};
}`)
	doc.Objects().Sort()
	n := doc.Objects().Node()
	var order []string
	for i := range n.Fields {
		order = append(order, doc.Objects().section(i))
	}
	want := []string{"PBXFileReference", "PBXFileReference", "PBXFileReference", "PBXGroup"}
	if fmt.Sprint(order) != fmt.Sprint(want) {
		t.Fatalf("section order %v, want %v", order, want)
	}
	// same-type entries keep discovery order
	var uids []string
	for _, f := range n.Fields {
		uids = append(uids, f.String)
	}
	want = []string{
		"AA0000000000000000000001",
		"AA0000000000000000000003",
		"AA0000000000000000000004",
		"AA0000000000000000000002",
	}
	if fmt.Sprint(uids) != fmt.Sprint(want) {
		t.Fatalf("uid order %v, want %v", uids, want)
	}
}

func TestSectionMarkers(t *testing.T) {
	doc := mustDoc(t, sampleProject)
	out := doc.String()
	for _, isa := range []string{
		"PBXBuildFile", "PBXFileReference", "PBXGroup",
		"PBXNativeTarget", "PBXProject", "PBXSourcesBuildPhase",
		"XCBuildConfiguration", "XCConfigurationList",
	} {
		begin := fmt.Sprintf("/* Begin %s section */", isa)
		end := fmt.Sprintf("/* End %s section */", isa)
		if strings.Count(out, begin) != 1 {
			t.Errorf("want exactly one %q", begin)
		}
		if strings.Count(out, end) != 1 {
			t.Errorf("want exactly one %q", end)
		}
		b, e := strings.Index(out, begin), strings.Index(out, end)
		if b >= e {
			t.Errorf("%s markers out of order", isa)
		}
	}
	// markers sit at column 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "section */") && strings.HasPrefix(line, "\t") {
			t.Errorf("indented marker line %q", line)
		}
	}
	if !strings.HasPrefix(out, "// !$*UTF8*$!\n") {
		t.Errorf("missing header:\n%s", out[:40])
	}
}

func TestSerializeIdempotent(t *testing.T) {
	doc := mustDoc(t, sampleProject)
	first := doc.String()
	second := doc.String()
	if first != second {
		t.Errorf("repeated serialization differs:\n%s\n---\n%s", first, second)
	}
	doc2 := mustDoc(t, first)
	if got := doc2.String(); got != first {
		t.Errorf("reparse+serialize differs:\n%s\n---\n%s", first, got)
	}
}

func TestSortStable(t *testing.T) {
	doc := mustDoc(t, sampleProject)
	s := doc.Objects()
	s.Sort()
	var before []string
	for _, f := range s.Node().Fields {
		before = append(before, f.String)
	}
	s.Sort()
	var after []string
	for _, f := range s.Node().Fields {
		after = append(after, f.String)
	}
	if fmt.Sprint(before) != fmt.Sprint(after) {
		t.Errorf("re-sort permuted table: %v -> %v", before, after)
	}
}
