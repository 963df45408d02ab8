package pbxproj

import (
	"fmt"
	"os"

	"github.com/pbx-format/go-pbx/debug"
	"github.com/pbx-format/go-pbx/ir"
)

const (
	objectsKey    = "objects"
	rootObjectKey = "rootObject"
)

// promote builds the typed object table from the raw "objects" dict in a
// single forward pass. Dict entries bearing an isa become typed records
// wrapping their dict (Unknown for unrecognized tags); entries without an
// isa, and non-dict entries, stay raw. The pass only builds a new index
// from the existing entries, it never restructures the dict it walks.
func promote(rawObjects *ir.Node) (*Store, error) {
	if rawObjects == nil || rawObjects.Type != ir.DictType {
		return nil, fmt.Errorf("%w: missing objects dictionary", ErrMalformed)
	}
	s := newStore(rawObjects)
	for i := range rawObjects.Fields {
		uid := rawObjects.Fields[i].String
		val := rawObjects.Values[i]
		if val.Type != ir.DictType {
			continue
		}
		isa, ok := ir.GetString(val, isaKey)
		if !ok {
			continue
		}
		obj := newRecord(Resolve(isa), val)
		s.index[uid] = obj
		if debug.Promote() {
			fmt.Fprintf(os.Stderr, "pbx: promote %s %s\n", uid, obj.Isa())
		}
	}
	return s, nil
}
