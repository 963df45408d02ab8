package pbxproj

import "errors"

var (
	// ErrMalformed wraps every input condition that prevents constructing
	// a Document: unreadable files, plist syntax errors, a non-dict root,
	// or a missing "objects" table.
	ErrMalformed = errors.New("malformed project file")

	// ErrNilArgument reports a nil required argument.
	ErrNilArgument = errors.New("nil argument")
)
