package pbxproj

import (
	"strings"
	"testing"

	"github.com/pbx-format/go-pbx/ir"
)

func containsLine(s, line string) bool {
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimLeft(l, "\t") == line {
			return true
		}
	}
	return false
}

func TestResolveForwardAndBackward(t *testing.T) {
	doc := mustDoc(t, sampleProject)
	s := doc.Objects()

	// PBXBuildFile.fileRef points backward in document order
	bf := s.Get("AA0000000000000000000001").(*BuildFile)
	fr := s.Get("AA0000000000000000000002").(*FileReference)
	if bf.FileRef().Object() != fr {
		t.Errorf("fileRef resolved to %v, want the store's FileReference", bf.FileRef().Object())
	}
	if bf.FileRef().UID() != "AA0000000000000000000002" {
		t.Errorf("fileRef UID = %q", bf.FileRef().UID())
	}

	// PBXNativeTarget.buildConfigurationList points forward
	nt := s.Get("AA0000000000000000000005").(*NativeTarget)
	cl := s.Get("AA0000000000000000000008").(*ConfigurationList)
	if nt.BuildConfigurationList().Object() != cl {
		t.Errorf("buildConfigurationList did not resolve forward")
	}
}

func TestResolveLists(t *testing.T) {
	doc := mustDoc(t, sampleProject)
	s := doc.Objects()

	grp := s.Get("AA0000000000000000000003").(*Group)
	children := grp.Children()
	if len(children) != 1 {
		t.Fatalf("group has %d children, want 1", len(children))
	}
	if children[0].Object() != s.Get("AA0000000000000000000002") {
		t.Errorf("child resolved to wrong record")
	}

	ph := s.Get("AA0000000000000000000004").(*SourcesBuildPhase)
	files := ph.Files()
	if len(files) != 1 || files[0].Object() != s.Get("AA0000000000000000000001") {
		t.Errorf("phase files = %v", files)
	}

	proj := doc.Project()
	targets := proj.Targets()
	if len(targets) != 1 || targets[0].Object() != s.Get("AA0000000000000000000005") {
		t.Errorf("project targets = %v", targets)
	}
	cl := s.Get("AA0000000000000000000008").(*ConfigurationList)
	cfgs := cl.BuildConfigurations()
	if len(cfgs) != 1 || cfgs[0].Object() != s.Get("AA0000000000000000000007") {
		t.Errorf("configuration list entries = %v", cfgs)
	}
}

func TestResolveDangling(t *testing.T) {
	doc := mustDoc(t, `{
	objects = {
		AA0000000000000000000001 = {
			isa = PBXBuildFile;
			fileRef = DEADBEEFDEADBEEFDEADBEEF;
		};
	};
	rootObject = AA0000000000000000000001;
}`)
	bf := doc.Objects().Get("AA0000000000000000000001").(*BuildFile)
	ref := bf.FileRef()
	if ref == nil {
		t.Fatal("dangling ref dropped")
	}
	if ref.Resolved() {
		t.Errorf("dangling ref reports resolved")
	}
	if ref.Object() != nil {
		t.Errorf("dangling ref has object %v", ref.Object())
	}
	if ref.UID() != "DEADBEEFDEADBEEFDEADBEEF" {
		t.Errorf("dangling ref UID = %q", ref.UID())
	}
	// the UID text still serializes untouched
	out := doc.String()
	if !containsLine(out, "fileRef = DEADBEEFDEADBEEFDEADBEEF;") {
		t.Errorf("dangling UID lost on output:\n%s", out)
	}
}

func TestAddRefFreshField(t *testing.T) {
	doc := New()
	fileRef := doc.NewFileReference("", "sourcecode.c.objc", "", "", "a.m", "<group>")
	groupRef := doc.NewGroup("Sources", "", "<group>")
	g := groupRef.Object().(*Group)

	// first append on a field never read before
	g.AddChild(fileRef)
	children := g.Children()
	if len(children) != 1 {
		t.Fatalf("children after one append: %d, want 1", len(children))
	}
	if children[0] != fileRef {
		t.Errorf("child is not the appended ref")
	}
	if !children[0].Resolved() {
		t.Errorf("appended child unresolved")
	}
	backing := ir.Get(g.Node(), "children")
	if backing == nil || len(backing.Values) != 1 {
		t.Fatalf("backing array out of sync: %v", backing)
	}
	if backing.Values[0].String != fileRef.UID() {
		t.Errorf("backing uid = %q", backing.Values[0].String)
	}

	other := doc.NewFileReference("", "sourcecode.c.objc", "", "", "b.m", "<group>")
	g.AddChild(other)
	children = g.Children()
	if len(children) != 2 {
		t.Fatalf("children after two appends: %d, want 2", len(children))
	}
	if len(ir.Get(g.Node(), "children").Values) != 2 {
		t.Errorf("backing array out of sync after second append")
	}
}

func TestResolveMissingField(t *testing.T) {
	doc := mustDoc(t, `{
	objects = {
		AA0000000000000000000001 = {
			isa = PBXBuildFile;
		};
	};
}`)
	bf := doc.Objects().Get("AA0000000000000000000001").(*BuildFile)
	if bf.FileRef() != nil {
		t.Errorf("absent field yields ref %v", bf.FileRef())
	}
	if bf.Settings() != nil {
		t.Errorf("absent settings yields %v", bf.Settings())
	}
}
