package pbxproj

import "github.com/pbx-format/go-pbx/ir"

func newBuildConfiguration(k *Kind, n *ir.Node) Object {
	return &BuildConfiguration{makeObject(k, n)}
}
func newConfigurationList(k *Kind, n *ir.Node) Object {
	return &ConfigurationList{makeObject(k, n)}
}

// BuildConfiguration (XCBuildConfiguration) is one named set of build
// settings, e.g. Debug or Release.
type BuildConfiguration struct{ object }

func (c *BuildConfiguration) Name() string     { return c.str("name") }
func (c *BuildConfiguration) SetName(v string) { c.setStr("name", v) }

func (c *BuildConfiguration) BaseConfigurationReference() *Ref {
	return c.ref("baseConfigurationReference")
}

// BuildSettings returns the settings dict, creating it on first use so
// callers can write settings into fresh records.
func (c *BuildConfiguration) BuildSettings() *ir.Node {
	v := ir.Get(c.node, "buildSettings")
	if v == nil {
		v = ir.Dict()
		ir.Set(c.node, "buildSettings", v)
	}
	return v
}

// ConfigurationList (XCConfigurationList) holds the configurations of a
// project or target.
type ConfigurationList struct{ object }

func (l *ConfigurationList) BuildConfigurations() []*Ref {
	return l.refList("buildConfigurations")
}
func (l *ConfigurationList) AddBuildConfiguration(r *Ref) {
	l.addRef("buildConfigurations", r)
}
func (l *ConfigurationList) DefaultConfigurationName() string {
	return l.str("defaultConfigurationName")
}
