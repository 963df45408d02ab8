package pbxproj

import (
	"fmt"
	"os"
	"sort"

	"github.com/pbx-format/go-pbx/debug"
	"github.com/pbx-format/go-pbx/ir"
)

// section is the grouping key of entry i of the table: the record's isa
// tag, or "" for raw entries, which carry no section markers and sort
// ahead of every record.
func (s *Store) section(i int) string {
	uid := s.node.Fields[i].String
	if obj := s.index[uid]; obj != nil {
		return obj.Isa()
	}
	return ""
}

// Sort groups the object table by record type. The secondary key is the
// current storage (discovery) order, so the sort is stable and re-sorting
// sorted data is the identity.
func (s *Store) Sort() {
	n := s.node
	idx := make([]int, len(n.Fields))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return s.section(idx[a]) < s.section(idx[b])
	})
	fields := make([]*ir.Node, len(idx))
	values := make([]*ir.Node, len(idx))
	for o, i := range idx {
		fields[o] = n.Fields[i]
		values[o] = n.Values[i]
	}
	n.Fields = fields
	n.Values = values
	n.Reindex()
	if debug.Sort() {
		for i := range n.Fields {
			fmt.Fprintf(os.Stderr, "pbx: sort %3d %s %s\n", i, n.Fields[i].String, s.section(i))
		}
	}
}
