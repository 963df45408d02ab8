package pbxproj

import "github.com/pbx-format/go-pbx/ir"

func newProject(k *Kind, n *ir.Node) Object { return &Project{object: makeObject(k, n)} }

// Project (PBXProject) is the root record of a document's object graph.
type Project struct {
	object

	// projectName comes from the enclosing .xcodeproj directory name,
	// not from the record's fields. It is delivered once per build, by
	// the resolver pass.
	projectName string
}

// ProjectName returns the name of the enclosing .xcodeproj bundle, or ""
// when the document was not loaded from one.
func (p *Project) ProjectName() string     { return p.projectName }
func (p *Project) SetProjectName(v string) { p.projectName = v }

func (p *Project) BuildConfigurationList() *Ref { return p.ref("buildConfigurationList") }
func (p *Project) MainGroup() *Ref              { return p.ref("mainGroup") }
func (p *Project) SetMainGroup(r *Ref)          { p.setRef("mainGroup", r) }
func (p *Project) ProductRefGroup() *Ref        { return p.ref("productRefGroup") }
func (p *Project) Targets() []*Ref              { return p.refList("targets") }
func (p *Project) AddTarget(r *Ref)             { p.addRef("targets", r) }

func (p *Project) CompatibilityVersion() string { return p.str("compatibilityVersion") }
func (p *Project) DevelopmentRegion() string    { return p.str("developmentRegion") }

// Attributes returns the project attributes dict, or nil.
func (p *Project) Attributes() *ir.Node { return ir.Get(p.node, "attributes") }
