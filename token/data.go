package token

import (
	"encoding/hex"
	"fmt"
)

// DecodeData decodes a TData token's bytes, including the surrounding
// angle brackets. Whitespace between hex digits is permitted.
func DecodeData(d []byte) ([]byte, error) {
	if len(d) >= 2 && d[0] == '<' && d[len(d)-1] == '>' {
		d = d[1 : len(d)-1]
	}
	hx := make([]byte, 0, len(d))
	for _, c := range d {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		}
		hx = append(hx, c)
	}
	res, err := hex.DecodeString(string(hx))
	if err != nil {
		return nil, fmt.Errorf("%w: bad data: %v", ErrToken, err)
	}
	return res, nil
}

// EncodeData renders raw bytes as a plist data literal.
func EncodeData(d []byte) string {
	return "<" + hex.EncodeToString(d) + ">"
}
