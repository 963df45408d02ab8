package pbxproj

import "github.com/pbx-format/go-pbx/ir"

func newNativeTarget(k *Kind, n *ir.Node) Object { return &NativeTarget{makeObject(k, n)} }
func newTargetDependency(k *Kind, n *ir.Node) Object {
	return &TargetDependency{makeObject(k, n)}
}
func newContainerItemProxy(k *Kind, n *ir.Node) Object {
	return &ContainerItemProxy{makeObject(k, n)}
}

// NativeTarget (PBXNativeTarget) builds one product.
type NativeTarget struct{ object }

func (t *NativeTarget) Name() string        { return t.str("name") }
func (t *NativeTarget) SetName(v string)    { t.setStr("name", v) }
func (t *NativeTarget) ProductName() string { return t.str("productName") }
func (t *NativeTarget) SetProductName(v string) {
	t.setStr("productName", v)
}
func (t *NativeTarget) ProductType() string { return t.str("productType") }

func (t *NativeTarget) BuildConfigurationList() *Ref { return t.ref("buildConfigurationList") }
func (t *NativeTarget) ProductReference() *Ref       { return t.ref("productReference") }
func (t *NativeTarget) BuildPhases() []*Ref          { return t.refList("buildPhases") }
func (t *NativeTarget) AddBuildPhase(r *Ref)         { t.addRef("buildPhases", r) }
func (t *NativeTarget) BuildRules() []*Ref           { return t.refList("buildRules") }
func (t *NativeTarget) Dependencies() []*Ref         { return t.refList("dependencies") }
func (t *NativeTarget) AddDependency(r *Ref)         { t.addRef("dependencies", r) }

// TargetDependency (PBXTargetDependency) orders one target after another.
type TargetDependency struct{ object }

func (t *TargetDependency) Target() *Ref      { return t.ref("target") }
func (t *TargetDependency) SetTarget(r *Ref)  { t.setRef("target", r) }
func (t *TargetDependency) TargetProxy() *Ref { return t.ref("targetProxy") }
func (t *TargetDependency) SetTargetProxy(r *Ref) {
	t.setRef("targetProxy", r)
}

// ContainerItemProxy (PBXContainerItemProxy) names an object in another
// (or the same) project container.
type ContainerItemProxy struct{ object }

func (c *ContainerItemProxy) ContainerPortal() *Ref { return c.ref("containerPortal") }
func (c *ContainerItemProxy) ProxyType() string     { return c.str("proxyType") }
func (c *ContainerItemProxy) RemoteGlobalIDString() string {
	return c.str("remoteGlobalIDString")
}
func (c *ContainerItemProxy) RemoteInfo() string { return c.str("remoteInfo") }
