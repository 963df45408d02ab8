package pbxproj

import "github.com/pbx-format/go-pbx/ir"

func newCopyFilesBuildPhase(k *Kind, n *ir.Node) Object {
	return &CopyFilesBuildPhase{buildPhase{makeObject(k, n)}}
}
func newFrameworksBuildPhase(k *Kind, n *ir.Node) Object {
	return &FrameworksBuildPhase{buildPhase{makeObject(k, n)}}
}
func newHeadersBuildPhase(k *Kind, n *ir.Node) Object {
	return &HeadersBuildPhase{buildPhase{makeObject(k, n)}}
}
func newResourcesBuildPhase(k *Kind, n *ir.Node) Object {
	return &ResourcesBuildPhase{buildPhase{makeObject(k, n)}}
}
func newShellScriptBuildPhase(k *Kind, n *ir.Node) Object {
	return &ShellScriptBuildPhase{buildPhase{makeObject(k, n)}}
}
func newSourcesBuildPhase(k *Kind, n *ir.Node) Object {
	return &SourcesBuildPhase{buildPhase{makeObject(k, n)}}
}

// buildPhase is shared by all PBX*BuildPhase kinds: an ordered list of
// build file references plus the action mask fields Xcode writes on
// every phase.
type buildPhase struct{ object }

func (p *buildPhase) Files() []*Ref  { return p.refList("files") }
func (p *buildPhase) AddFile(r *Ref) { p.addRef("files", r) }

func (p *buildPhase) BuildActionMask() string { return p.str("buildActionMask") }
func (p *buildPhase) RunOnlyForDeploymentPostprocessing() string {
	return p.str("runOnlyForDeploymentPostprocessing")
}

type CopyFilesBuildPhase struct{ buildPhase }

func (p *CopyFilesBuildPhase) DstPath() string          { return p.str("dstPath") }
func (p *CopyFilesBuildPhase) DstSubfolderSpec() string { return p.str("dstSubfolderSpec") }

type FrameworksBuildPhase struct{ buildPhase }

type HeadersBuildPhase struct{ buildPhase }

type ResourcesBuildPhase struct{ buildPhase }

type SourcesBuildPhase struct{ buildPhase }

type ShellScriptBuildPhase struct{ buildPhase }

func (p *ShellScriptBuildPhase) ShellPath() string       { return p.str("shellPath") }
func (p *ShellScriptBuildPhase) SetShellPath(v string)   { p.setStr("shellPath", v) }
func (p *ShellScriptBuildPhase) ShellScript() string     { return p.str("shellScript") }
func (p *ShellScriptBuildPhase) SetShellScript(v string) { p.setStr("shellScript", v) }
