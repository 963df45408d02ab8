// Package ir provides the intermediate representation (IR) for OpenStep
// style property list documents.
//
// # Overview
//
// All documents (whether parsed from text or created programmatically) are
// represented as ir.Node trees. The IR is a simple recursive structure with
// no position information from input documents, making it purely semantic.
//
// # Node Structure
//
// A Node represents a single value in a property list. Nodes can be:
//
//   - StringType: a string, quoted or unquoted in source
//   - DataType: a binary blob, written <deadbeef> in source
//   - DictType: ordered key-value pairs (fields and values)
//   - ArrayType: ordered list of values
//
// # IR Structure Constraints
//
// For DictType nodes, Fields[i] is the key for the value at Values[i], so
// there are always the same number of fields as values. Fields are always
// string typed and keys are unique within one dict. Insertion order is
// meaningful and preserved by all operations in this module.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	dict := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromString("a"),
//	    ir.FromString("b"),
//	})
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships:
//
//   - Parent: parent node (nil for root)
//   - ParentIndex: index in parent's array/dict
//   - ParentField: field name if parent is a dict
//
// Use Get to read a dict field and Set/Remove to mutate one in place.
//
// # Related Packages
//
//   - github.com/pbx-format/go-pbx/parse - Parse text to IR
//   - github.com/pbx-format/go-pbx/encode - Encode IR to text
//   - github.com/pbx-format/go-pbx/pbxproj - Typed object graph over the IR
package ir
