package pbxproj

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pbx-format/go-pbx/encode"
	"github.com/pbx-format/go-pbx/token"
)

const utf8Header = "// !$*UTF8*$!\n"

// Serialize sorts the object table by record type and writes the whole
// document as plist text. Type runs in the objects dict are bracketed by
// begin/end marker comments; the markers are regenerated on every call,
// so serializing twice yields identical output.
func (d *Document) Serialize(w io.Writer) error {
	d.store.Sort()
	if _, err := io.WriteString(w, utf8Header); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "{\n"); err != nil {
		return err
	}
	for i := range d.root.Fields {
		key := d.root.Fields[i].String
		val := d.root.Values[i]
		if key == objectsKey && val == d.store.node {
			if err := d.serializeObjects(w); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, "\t"+quoteStr(key)+" = "); err != nil {
			return err
		}
		if err := encode.Encode(val, w, encode.Depth(1)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ";\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

// serializeObjects emits the sorted object table. Whenever the section
// changes, the previous run is closed and the next opened; raw entries
// have no section and get no markers.
func (d *Document) serializeObjects(w io.Writer) error {
	s := d.store
	if _, err := io.WriteString(w, "\tobjects = {\n"); err != nil {
		return err
	}
	last := ""
	for i := range s.node.Fields {
		uid := s.node.Fields[i].String
		val := s.node.Values[i]
		sec := s.section(i)
		if sec != last {
			if last != "" {
				if _, err := fmt.Fprintf(w, "/* End %s section */\n", last); err != nil {
					return err
				}
			}
			if sec != "" {
				if _, err := fmt.Fprintf(w, "\n/* Begin %s section */\n", sec); err != nil {
					return err
				}
			}
			last = sec
		}
		if _, err := io.WriteString(w, "\t\t"+quoteStr(uid)+" = "); err != nil {
			return err
		}
		if err := encode.Encode(val, w, encode.Depth(2)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ";\n"); err != nil {
			return err
		}
	}
	if last != "" {
		if _, err := fmt.Fprintf(w, "/* End %s section */\n", last); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\t};\n")
	return err
}

// String serializes without writing to disk.
func (d *Document) String() string {
	buf := bytes.NewBuffer(nil)
	if err := d.Serialize(buf); err != nil {
		panic(err)
	}
	return buf.String()
}

func quoteStr(s string) string {
	if token.NeedsQuoting(s) {
		return token.Quote(s)
	}
	return s
}
