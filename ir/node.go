package ir

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String string
	Bytes  []byte
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.String = y.String
	if y.Bytes != nil {
		dst.Bytes = append([]byte(nil), y.Bytes...)
	}
	dst.Fields = make([]*Node, len(y.Fields))
	dst.Values = make([]*Node, len(y.Values))
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	return dst
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromData(d []byte) *Node {
	return &Node{
		Type:  DataType,
		Bytes: d,
	}
}

func Dict() *Node {
	return &Node{Type: DictType}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{}
	return FromKeyValsAt(res, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = DictType
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		yField := &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: kv.Key,
			Type:        StringType,
			String:      kv.Key,
		}
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = kv.Key
		res.Fields[i] = yField
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

// Get returns the value of field in a dict node, or nil if absent
// (or if y is not a dict).
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// GetString reads field as a string value. The second result is false
// when the field is absent or not string typed.
func GetString(y *Node, field string) (string, bool) {
	v := Get(y, field)
	if v == nil || v.Type != StringType {
		return "", false
	}
	return v.String, true
}

// Set binds field to val in a dict node, replacing the existing value in
// place or appending a new field at the end.
func Set(y *Node, field string, val *Node) {
	val.ParentField = field
	val.Parent = y
	for i := range y.Fields {
		if y.Fields[i].String == field {
			val.ParentIndex = i
			y.Values[i] = val
			return
		}
	}
	i := len(y.Fields)
	val.ParentIndex = i
	y.Fields = append(y.Fields, &Node{
		Parent:      y,
		ParentIndex: i,
		ParentField: field,
		Type:        StringType,
		String:      field,
	})
	y.Values = append(y.Values, val)
}

// SetString binds field to the string v.
func SetString(y *Node, field, v string) {
	Set(y, field, FromString(v))
}

// Remove deletes field from a dict node, reporting whether it was present.
// Remaining entries keep their relative order.
func Remove(y *Node, field string) bool {
	for i := range y.Fields {
		if y.Fields[i].String != field {
			continue
		}
		y.Fields = append(y.Fields[:i], y.Fields[i+1:]...)
		y.Values = append(y.Values[:i], y.Values[i+1:]...)
		for j := i; j < len(y.Fields); j++ {
			y.Fields[j].ParentIndex = j
			y.Values[j].ParentIndex = j
		}
		return true
	}
	return false
}

// Append adds val to an array node.
func Append(y *Node, val *Node) {
	val.Parent = y
	val.ParentIndex = len(y.Values)
	y.Values = append(y.Values, val)
}

// Reindex restores ParentIndex invariants after a caller reorders a node's
// Fields and Values directly.
func (y *Node) Reindex() {
	for i, f := range y.Fields {
		f.ParentIndex = i
	}
	for i, v := range y.Values {
		v.ParentIndex = i
		if y.Type == DictType {
			v.ParentField = y.Fields[i].String
		}
	}
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
