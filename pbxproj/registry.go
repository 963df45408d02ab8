package pbxproj

import (
	"fmt"

	"github.com/pbx-format/go-pbx/ir"
)

// Kind describes one record type: its isa tag, its constructor, and which
// fields hold references to other records.
type Kind struct {
	Isa string
	New func(*Kind, *ir.Node) Object

	// Refs lists fields holding a single UID; RefLists lists fields
	// holding an ordered array of UIDs.
	Refs     []string
	RefLists []string
}

// registry is the closed, compile-time table of supported record kinds.
// Lookup is by isa tag; anything else promotes to Unknown.
var registry = mkRegistry(
	&Kind{Isa: "PBXBuildFile", New: newBuildFile, Refs: []string{"fileRef"}},
	&Kind{Isa: "PBXFileReference", New: newFileReference},
	&Kind{Isa: "PBXBuildRule", New: newBuildRule},
	&Kind{Isa: "PBXContainerItemProxy", New: newContainerItemProxy, Refs: []string{"containerPortal"}},
	&Kind{Isa: "PBXCopyFilesBuildPhase", New: newCopyFilesBuildPhase, RefLists: []string{"files"}},
	&Kind{Isa: "PBXFrameworksBuildPhase", New: newFrameworksBuildPhase, RefLists: []string{"files"}},
	&Kind{Isa: "PBXGroup", New: newGroup, RefLists: []string{"children"}},
	&Kind{Isa: "PBXHeadersBuildPhase", New: newHeadersBuildPhase, RefLists: []string{"files"}},
	&Kind{
		Isa:      "PBXNativeTarget",
		New:      newNativeTarget,
		Refs:     []string{"buildConfigurationList", "productReference"},
		RefLists: []string{"buildPhases", "buildRules", "dependencies"},
	},
	&Kind{
		Isa:      "PBXProject",
		New:      newProject,
		Refs:     []string{"buildConfigurationList", "mainGroup", "productRefGroup"},
		RefLists: []string{"targets"},
	},
	&Kind{Isa: "PBXReferenceProxy", New: newReferenceProxy, Refs: []string{"remoteRef"}},
	&Kind{Isa: "PBXResourcesBuildPhase", New: newResourcesBuildPhase, RefLists: []string{"files"}},
	&Kind{Isa: "PBXShellScriptBuildPhase", New: newShellScriptBuildPhase, RefLists: []string{"files"}},
	&Kind{Isa: "PBXSourcesBuildPhase", New: newSourcesBuildPhase, RefLists: []string{"files"}},
	&Kind{Isa: "PBXTargetDependency", New: newTargetDependency, Refs: []string{"target", "targetProxy"}},
	&Kind{Isa: "PBXVariantGroup", New: newVariantGroup, RefLists: []string{"children"}},
	&Kind{Isa: "XCBuildConfiguration", New: newBuildConfiguration, Refs: []string{"baseConfigurationReference"}},
	&Kind{Isa: "XCConfigurationList", New: newConfigurationList, RefLists: []string{"buildConfigurations"}},
)

func mkRegistry(kinds ...*Kind) map[string]*Kind {
	res := make(map[string]*Kind, len(kinds))
	for _, k := range kinds {
		if _, dup := res[k.Isa]; dup {
			panic(fmt.Sprintf("pbxproj: duplicate registry entry %q", k.Isa))
		}
		res[k.Isa] = k
	}
	return res
}

// Resolve maps an isa tag to its Kind. It never fails: unrecognized tags
// yield the Unknown kind, whose records preserve every field untouched.
func Resolve(isa string) *Kind {
	if k, ok := registry[isa]; ok {
		return k
	}
	return unknownKind
}

// Kinds returns the isa tags of all registered kinds, in no particular
// order.
func Kinds() []string {
	res := make([]string, 0, len(registry))
	for isa := range registry {
		res = append(res, isa)
	}
	return res
}

// newRecord instantiates kind over node. A registered kind with no
// constructor is a defect in the table itself, not a data error.
func newRecord(kind *Kind, node *ir.Node) Object {
	if kind.New == nil {
		panic(fmt.Sprintf("pbxproj: registry entry %q has no constructor", kind.Isa))
	}
	return kind.New(kind, node)
}
