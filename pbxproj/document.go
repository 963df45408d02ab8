package pbxproj

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pbx-format/go-pbx/ir"
	"github.com/pbx-format/go-pbx/parse"
)

// bundleExt is the project bundle extension; the effective file inside a
// bundle is always bundleFile.
const (
	bundleExt  = ".xcodeproj"
	bundleFile = "project.pbxproj"
)

// ErrNoPath reports a Save on a document that was not loaded from a file.
var ErrNoPath = errors.New("document has no file path")

// Document is one parsed project file: the root dict, the promoted and
// resolved object table, and the designated root object reference. A
// Document is owned by its caller; nothing here is safe for concurrent
// mutation.
type Document struct {
	root        *ir.Node
	store       *Store
	rootRef     *Ref
	path        string
	projectName string
}

// FromFile reads a project from path. A path ending in .xcodeproj is
// taken as a bundle and the project.pbxproj member inside it is read.
func FromFile(path string) (*Document, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path", ErrNilArgument)
	}
	path = projectFilePath(path)
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	doc := &Document{
		path:        path,
		projectName: projectNameOf(path),
	}
	return doc.build(d, path)
}

// FromReader reads a project from r.
func FromReader(r io.Reader) (*Document, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: reader", ErrNilArgument)
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	doc := &Document{}
	return doc.build(d, "")
}

// FromString reads a project from its text content.
func FromString(content string) (*Document, error) {
	doc := &Document{}
	return doc.build([]byte(content), "")
}

// New returns an empty document: a root dict holding an empty objects
// table.
func New() *Document {
	root := ir.Dict()
	ir.Set(root, objectsKey, ir.Dict())
	doc := &Document{}
	doc.root = root
	doc.store, _ = promote(ir.Get(root, objectsKey))
	return doc
}

// build runs parse, the promotion pass, and the resolution pass, in that
// order. Any input problem surfaces as ErrMalformed; reader internals do
// not leak into the error chain.
func (doc *Document) build(d []byte, source string) (*Document, error) {
	var pOpts []parse.ParseOption
	if source != "" {
		pOpts = append(pOpts, parse.Source(source))
	}
	root, err := parse.Parse(d, pOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if root.Type != ir.DictType {
		return nil, fmt.Errorf("%w: root is not a dict", ErrMalformed)
	}
	store, err := promote(ir.Get(root, objectsKey))
	if err != nil {
		return nil, err
	}
	store.connectAll()
	doc.root = root
	doc.store = store

	if uid, ok := ir.GetString(root, rootObjectKey); ok {
		doc.rootRef = &Ref{uid: uid, obj: store.index[uid]}
	}
	if proj := doc.Project(); proj != nil {
		proj.SetProjectName(doc.projectName)
	}
	return doc, nil
}

// Root returns the document's root dict.
func (d *Document) Root() *ir.Node { return d.root }

// Objects returns the object table.
func (d *Document) Objects() *Store { return d.store }

// RootObject returns the designated root object reference
// (conventionally the PBXProject record), or nil when the document has
// no rootObject entry. The reference may be unresolved.
func (d *Document) RootObject() *Ref { return d.rootRef }

// Project returns the resolved root object as a *Project, or nil.
func (d *Document) Project() *Project {
	p, _ := d.rootRef.Object().(*Project)
	return p
}

// Path returns the project.pbxproj path backing the document, or "".
func (d *Document) Path() string { return d.path }

// SourceRoot returns the directory containing the .xcodeproj bundle, or
// "" for documents not loaded from a file.
func (d *Document) SourceRoot() string {
	if d.path == "" {
		return ""
	}
	return filepath.Dir(filepath.Dir(d.path))
}

// Save writes the document back to the file it was loaded from.
func (d *Document) Save() error {
	if d.path == "" {
		return ErrNoPath
	}
	return d.SaveAs(d.path)
}

// SaveAs writes the document to path, applying the bundle fixup and
// creating parent directories as needed. Output is UTF-8 text.
func (d *Document) SaveAs(path string) error {
	if path == "" {
		return fmt.Errorf("%w: path", ErrNilArgument)
	}
	path = projectFilePath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.Serialize(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// CreateReference allocates a fresh UID and binds it to record. It does
// not insert anything into the object table; insertion is the caller's
// responsibility.
func (d *Document) CreateReference(record Object) (*Ref, error) {
	if record == nil {
		return nil, fmt.Errorf("%w: record", ErrNilArgument)
	}
	return &Ref{uid: NewUID(d.store), obj: record}, nil
}

// NewBuildFile creates a PBXBuildFile for fileRef, inserts it, and
// returns its reference.
func (d *Document) NewBuildFile(fileRef *Ref) *Ref {
	obj := newRecord(Resolve("PBXBuildFile"), nil).(*BuildFile)
	obj.SetFileRef(fileRef)
	return d.insert(obj)
}

// NewFileReference creates a PBXFileReference with the given attributes,
// inserts it, and returns its reference. Empty attributes are omitted.
func (d *Document) NewFileReference(explicitFileType, lastKnownFileType,
	includeInIndex, name, path, sourceTree string) *Ref {
	obj := newRecord(Resolve("PBXFileReference"), nil).(*FileReference)
	obj.setOptStr("explicitFileType", explicitFileType)
	obj.setOptStr("lastKnownFileType", lastKnownFileType)
	obj.setOptStr("includeInIndex", includeInIndex)
	obj.setOptStr("name", name)
	obj.setOptStr("path", path)
	obj.setOptStr("sourceTree", sourceTree)
	return d.insert(obj)
}

// NewGroup creates a PBXGroup, inserts it, and returns its reference.
func (d *Document) NewGroup(name, path, sourceTree string) *Ref {
	obj := newRecord(Resolve("PBXGroup"), nil).(*Group)
	obj.setOptStr("name", name)
	obj.setOptStr("path", path)
	obj.setOptStr("sourceTree", sourceTree)
	return d.insert(obj)
}

func (d *Document) insert(obj Object) *Ref {
	ref, err := d.CreateReference(obj)
	if err != nil {
		panic(err) // obj is never nil here
	}
	d.store.Put(ref)
	return ref
}

// projectFilePath applies the bundle fixup: a path whose extension is
// .xcodeproj means the project.pbxproj member inside it.
func projectFilePath(path string) string {
	if filepath.Ext(path) == bundleExt {
		return filepath.Join(path, bundleFile)
	}
	return path
}

// projectNameOf derives the project display name from the enclosing
// bundle directory, or "" when the file is not inside one.
func projectNameOf(path string) string {
	base := filepath.Base(filepath.Dir(path))
	if strings.HasSuffix(base, bundleExt) {
		return strings.TrimSuffix(base, bundleExt)
	}
	return ""
}
