package pbxproj

import "github.com/pbx-format/go-pbx/ir"

// unknownKind is the fallback for isa tags outside the registry. Its
// records expose no typed fields and no reference fields, so they pass
// through promotion and serialization with every original key and value
// intact.
var unknownKind = &Kind{New: newUnknown}

func newUnknown(k *Kind, n *ir.Node) Object { return &Unknown{makeObject(k, n)} }

// Unknown is the passthrough record for unrecognized isa tags.
type Unknown struct{ object }
