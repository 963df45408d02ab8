package token

import (
	"strings"
)

// literal bytes may appear unquoted in OpenStep plists.
func isLiteralByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '_', '$', '/', ':', '.', '-', '+':
		return true
	}
	return false
}

// NeedsQuoting reports whether s cannot be written as a bare literal.
func NeedsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for i := 0; i < len(s); i++ {
		if !isLiteralByte(s[i]) {
			return true
		}
	}
	return false
}

// Quote renders s as a double quoted plist string.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Unquote decodes the contents of a quoted string token, including its
// surrounding quotes. Unknown escapes pass the escaped byte through.
func Unquote(d []byte) string {
	if len(d) >= 2 && d[0] == '"' && d[len(d)-1] == '"' {
		d = d[1 : len(d)-1]
	}
	var b strings.Builder
	b.Grow(len(d))
	for i := 0; i < len(d); i++ {
		c := d[i]
		if c != '\\' || i == len(d)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch d[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(d[i])
		}
	}
	return b.String()
}
