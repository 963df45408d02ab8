package pbxproj

import (
	"github.com/pbx-format/go-pbx/ir"
)

// Store is the ordered object table of a document: UID to record, in
// discovery order. The backing dict node holds the entries themselves;
// the store adds the promoted typed views and the UID uniqueness domain
// (which covers raw, unpromoted entries too).
type Store struct {
	node  *ir.Node
	index map[string]Object
	keys  map[string]struct{}
}

func newStore(node *ir.Node) *Store {
	s := &Store{
		node:  node,
		index: make(map[string]Object, len(node.Fields)),
		keys:  make(map[string]struct{}, len(node.Fields)),
	}
	for _, f := range node.Fields {
		s.keys[f.String] = struct{}{}
	}
	return s
}

// Node returns the backing "objects" dict.
func (s *Store) Node() *ir.Node { return s.node }

// Len reports the number of promoted records.
func (s *Store) Len() int { return len(s.index) }

// Get returns the record bound to uid, or nil.
func (s *Store) Get(uid string) Object { return s.index[uid] }

// Contains reports whether uid names any entry, promoted or raw.
func (s *Store) Contains(uid string) bool {
	_, ok := s.keys[uid]
	return ok
}

// UIDs returns the UIDs of all promoted records, in storage order.
func (s *Store) UIDs() []string {
	res := make([]string, 0, len(s.index))
	for _, f := range s.node.Fields {
		if _, ok := s.index[f.String]; ok {
			res = append(res, f.String)
		}
	}
	return res
}

// Put inserts the UID to record binding of ref at the end of the table.
// The record becomes reachable by resolution and serialization
// immediately. Re-putting an existing UID replaces its record, keeping
// the key unique.
func (s *Store) Put(ref *Ref) {
	ir.Set(s.node, ref.uid, ref.obj.Node())
	s.index[ref.uid] = ref.obj
	s.keys[ref.uid] = struct{}{}
}
