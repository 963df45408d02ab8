// Package encode encodes IR nodes to OpenStep plist text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode nested inside an existing line
//	err := encode.Encode(node, w, encode.Depth(2))
//
// # Related Packages
//
//   - github.com/pbx-format/go-pbx/ir - IR representation
//   - github.com/pbx-format/go-pbx/parse - Parse text to IR
package encode
