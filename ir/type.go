package ir

import "fmt"

type Type int

const (
	StringType Type = iota
	DataType
	DictType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType: "String",
		DataType:   "Data",
		DictType:   "Dict",
		ArrayType:  "Array",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"String": StringType,
		"Data":   DataType,
		"Dict":   DictType,
		"Array":  ArrayType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		StringType,
		DataType,
		DictType,
		ArrayType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case DictType, ArrayType:
		return false
	default:
		return true
	}
}
