package pbxproj

import "github.com/pbx-format/go-pbx/ir"

func newBuildFile(k *Kind, n *ir.Node) Object     { return &BuildFile{makeObject(k, n)} }
func newFileReference(k *Kind, n *ir.Node) Object { return &FileReference{makeObject(k, n)} }
func newReferenceProxy(k *Kind, n *ir.Node) Object {
	return &ReferenceProxy{makeObject(k, n)}
}
func newBuildRule(k *Kind, n *ir.Node) Object { return &BuildRule{makeObject(k, n)} }

// BuildFile (PBXBuildFile) places a file reference into a build phase.
type BuildFile struct{ object }

func (b *BuildFile) FileRef() *Ref     { return b.ref("fileRef") }
func (b *BuildFile) SetFileRef(r *Ref) { b.setRef("fileRef", r) }

// Settings returns the per-build-file settings dict, or nil.
func (b *BuildFile) Settings() *ir.Node { return ir.Get(b.node, "settings") }

// FileReference (PBXFileReference) names a file on disk.
type FileReference struct{ object }

func (f *FileReference) Name() string       { return f.str("name") }
func (f *FileReference) SetName(v string)   { f.setStr("name", v) }
func (f *FileReference) Path() string       { return f.str("path") }
func (f *FileReference) SetPath(v string)   { f.setStr("path", v) }
func (f *FileReference) SourceTree() string { return f.str("sourceTree") }
func (f *FileReference) SetSourceTree(v string) {
	f.setStr("sourceTree", v)
}
func (f *FileReference) ExplicitFileType() string { return f.str("explicitFileType") }
func (f *FileReference) SetExplicitFileType(v string) {
	f.setStr("explicitFileType", v)
}
func (f *FileReference) LastKnownFileType() string { return f.str("lastKnownFileType") }
func (f *FileReference) SetLastKnownFileType(v string) {
	f.setStr("lastKnownFileType", v)
}
func (f *FileReference) IncludeInIndex() string { return f.str("includeInIndex") }
func (f *FileReference) SetIncludeInIndex(v string) {
	f.setStr("includeInIndex", v)
}

// ReferenceProxy (PBXReferenceProxy) stands in for a product of another
// project.
type ReferenceProxy struct{ object }

func (r *ReferenceProxy) RemoteRef() *Ref     { return r.ref("remoteRef") }
func (r *ReferenceProxy) SetRemoteRef(x *Ref) { r.setRef("remoteRef", x) }
func (r *ReferenceProxy) Path() string        { return r.str("path") }
func (r *ReferenceProxy) FileType() string    { return r.str("fileType") }
func (r *ReferenceProxy) SourceTree() string  { return r.str("sourceTree") }

// BuildRule (PBXBuildRule) customizes how files of one type are compiled.
type BuildRule struct{ object }

func (b *BuildRule) CompilerSpec() string { return b.str("compilerSpec") }
func (b *BuildRule) FileType() string     { return b.str("fileType") }
func (b *BuildRule) Script() string       { return b.str("script") }
func (b *BuildRule) SetScript(v string)   { b.setStr("script", v) }
