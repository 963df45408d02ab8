package pbxproj

import (
	"github.com/pbx-format/go-pbx/ir"
)

// isaKey is the discriminator field naming a record's concrete type.
const isaKey = "isa"

// Ref pairs a UID with the record it names. The record pointer is unset
// until the resolver pass runs, and stays unset when the UID matches no
// entry in the object table. An unresolved Ref is a valid state: Object
// reports nil, never a panic.
type Ref struct {
	uid string
	obj Object
}

func (r *Ref) UID() string {
	if r == nil {
		return ""
	}
	return r.uid
}

// Object returns the referenced record, or nil while unresolved.
func (r *Ref) Object() Object {
	if r == nil {
		return nil
	}
	return r.obj
}

func (r *Ref) Resolved() bool {
	return r != nil && r.obj != nil
}

// Object is a typed record promoted from one dict entry of the "objects"
// table. It owns a mutable view of its backing dict: typed field writes are
// visible through Node and vice versa. No copy is made at promotion.
type Object interface {
	// Isa returns the record's type tag.
	Isa() string
	// Node returns the backing dict node.
	Node() *ir.Node

	base() *object
}

// object is the shared part of every record kind.
type object struct {
	kind     *Kind
	node     *ir.Node
	refs     map[string]*Ref
	refLists map[string][]*Ref
}

func makeObject(kind *Kind, node *ir.Node) object {
	if node == nil {
		node = ir.Dict()
	}
	if _, ok := ir.GetString(node, isaKey); !ok && kind.Isa != "" {
		ir.SetString(node, isaKey, kind.Isa)
	}
	return object{
		kind:     kind,
		node:     node,
		refs:     map[string]*Ref{},
		refLists: map[string][]*Ref{},
	}
}

func (o *object) base() *object { return o }

func (o *object) Isa() string {
	if s, ok := ir.GetString(o.node, isaKey); ok {
		return s
	}
	return o.kind.Isa
}

func (o *object) Node() *ir.Node { return o.node }

func (o *object) str(field string) string {
	s, _ := ir.GetString(o.node, field)
	return s
}

func (o *object) setStr(field, v string) {
	ir.SetString(o.node, field, v)
}

// setOptStr mirrors the original factory behavior of skipping absent
// attributes rather than writing empty ones.
func (o *object) setOptStr(field, v string) {
	if v == "" {
		return
	}
	ir.SetString(o.node, field, v)
}

// ref reads a single-UID reference field. Before resolution (or for
// fields written since) the result is an unresolved Ref carrying the UID
// from the backing dict; nil when the field is absent.
func (o *object) ref(field string) *Ref {
	if r, ok := o.refs[field]; ok {
		return r
	}
	s, ok := ir.GetString(o.node, field)
	if !ok {
		return nil
	}
	r := &Ref{uid: s}
	o.refs[field] = r
	return r
}

// setRef writes a single-UID reference field through both views.
func (o *object) setRef(field string, r *Ref) {
	if r == nil {
		ir.Remove(o.node, field)
		delete(o.refs, field)
		return
	}
	ir.SetString(o.node, field, r.uid)
	o.refs[field] = r
}

// refList reads a UID-array reference field, in element order.
func (o *object) refList(field string) []*Ref {
	if rs, ok := o.refLists[field]; ok {
		return rs
	}
	v := ir.Get(o.node, field)
	if v == nil || v.Type != ir.ArrayType {
		return nil
	}
	rs := make([]*Ref, 0, len(v.Values))
	for _, e := range v.Values {
		if e.Type != ir.StringType {
			continue
		}
		rs = append(rs, &Ref{uid: e.String})
	}
	o.refLists[field] = rs
	return rs
}

// addRef appends r to a UID-array reference field, creating the array
// as needed. The cached list is read before the node is touched, so a
// fresh field does not rebuild the cache from an array already holding
// the new UID.
func (o *object) addRef(field string, r *Ref) {
	rs := o.refList(field)
	v := ir.Get(o.node, field)
	if v == nil || v.Type != ir.ArrayType {
		v = ir.FromSlice(nil)
		ir.Set(o.node, field, v)
	}
	ir.Append(v, ir.FromString(r.uid))
	o.refLists[field] = append(rs, r)
}

// connect is the resolver pass over one record: each declared reference
// field is re-read from the backing dict and bound against index. Absent
// UIDs leave the Ref unresolved.
func (o *object) connect(index map[string]Object) {
	for _, f := range o.kind.Refs {
		s, ok := ir.GetString(o.node, f)
		if !ok {
			continue
		}
		o.refs[f] = &Ref{uid: s, obj: index[s]}
	}
	for _, f := range o.kind.RefLists {
		v := ir.Get(o.node, f)
		if v == nil || v.Type != ir.ArrayType {
			continue
		}
		rs := make([]*Ref, 0, len(v.Values))
		for _, e := range v.Values {
			if e.Type != ir.StringType {
				continue
			}
			rs = append(rs, &Ref{uid: e.String, obj: index[e.String]})
		}
		o.refLists[f] = rs
	}
}
