// Package pbxproj models Xcode project description documents
// (project.pbxproj) as a typed object graph over the generic plist IR.
//
// # Overview
//
// A project file is a plist dict whose "objects" entry is a flat table of
// records addressed by 24 character uppercase hex UIDs. Each record dict
// carries an "isa" field naming its concrete type, and refers to other
// records by UID.
//
// Loading a document runs two passes:
//
//  1. Promotion: every dict entry of "objects" bearing an isa becomes a
//     typed record wrapping that dict (no copy; typed writes are visible in
//     the tree and vice versa). Unrecognized isa values become Unknown
//     records preserving every field.
//  2. Resolution: every declared reference field is bound to the record
//     bearing its UID, or left explicitly unresolved when no such record
//     exists. Unresolved references are a valid, queryable state, not an
//     error.
//
// Serialization sorts the object table by isa, keeping discovery order
// within one isa, and brackets each run with
//
//	/* Begin PBXFileReference section */
//	/* End PBXFileReference section */
//
// marker comments, re-generated on every save.
//
// # Usage
//
//	doc, err := pbxproj.FromFile("App.xcodeproj")
//	if err != nil { ... }
//	ref := doc.NewFileReference("", "sourcecode.c.objc", "", "", "a.m", "<group>")
//	_ = ref
//	err = doc.Save()
//
// Documents are owned by a single goroutine; no internal locking exists.
//
// # Related Packages
//
//   - github.com/pbx-format/go-pbx/ir - generic node tree
//   - github.com/pbx-format/go-pbx/parse - plist text to IR
//   - github.com/pbx-format/go-pbx/encode - IR to plist text
package pbxproj
