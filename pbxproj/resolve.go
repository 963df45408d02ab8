package pbxproj

import (
	"fmt"
	"os"

	"github.com/pbx-format/go-pbx/debug"
)

// connectAll is the reference resolution pass. It requires the promotion
// pass to be complete, because references point forward as well as
// backward in storage order; given that, record order does not matter.
// UIDs without a matching entry leave their Ref unresolved; that is not
// an error.
func (s *Store) connectAll() {
	for _, obj := range s.index {
		obj.base().connect(s.index)
		if debug.Resolve() {
			b := obj.base()
			fmt.Fprintf(os.Stderr, "pbx: resolve %s: %d refs, %d ref lists\n",
				obj.Isa(), len(b.refs), len(b.refLists))
		}
	}
}
