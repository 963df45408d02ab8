package pbxproj

import "github.com/pbx-format/go-pbx/ir"

func newGroup(k *Kind, n *ir.Node) Object        { return &Group{makeObject(k, n)} }
func newVariantGroup(k *Kind, n *ir.Node) Object { return &VariantGroup{makeObject(k, n)} }

// Group (PBXGroup) is a folder in the project navigator.
type Group struct{ object }

func (g *Group) Name() string           { return g.str("name") }
func (g *Group) SetName(v string)       { g.setStr("name", v) }
func (g *Group) Path() string           { return g.str("path") }
func (g *Group) SetPath(v string)       { g.setStr("path", v) }
func (g *Group) SourceTree() string     { return g.str("sourceTree") }
func (g *Group) SetSourceTree(v string) { g.setStr("sourceTree", v) }

func (g *Group) Children() []*Ref { return g.refList("children") }
func (g *Group) AddChild(r *Ref)  { g.addRef("children", r) }

// VariantGroup (PBXVariantGroup) groups localized variants of one file.
type VariantGroup struct{ object }

func (g *VariantGroup) Name() string       { return g.str("name") }
func (g *VariantGroup) SourceTree() string { return g.str("sourceTree") }
func (g *VariantGroup) Children() []*Ref   { return g.refList("children") }
func (g *VariantGroup) AddChild(r *Ref)    { g.addRef("children", r) }
