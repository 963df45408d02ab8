// Package token tokenizes OpenStep style property list text.
package token

import (
	"errors"
	"fmt"
)

var ErrToken = errors.New("token error")

type tkState struct {
	d    []byte
	i    int
	line int
	// byte offset where the current line started
	lineStart int
	comments  bool
}

type TokenOpt func(*tkState)

// KeepComments emits TComment tokens instead of dropping comment text.
func KeepComments() TokenOpt {
	return func(ts *tkState) { ts.comments = true }
}

// Tokenize appends the tokens of src to dst.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	ts := &tkState{d: src, line: 1}
	for _, opt := range opts {
		opt(ts)
	}
	n := len(src)
	for ts.i < n {
		c := src[ts.i]
		switch {
		case c == '\n':
			ts.i++
			ts.line++
			ts.lineStart = ts.i
		case c == ' ' || c == '\t' || c == '\r':
			ts.i++
		case c == '/' && ts.i+1 < n && (src[ts.i+1] == '/' || src[ts.i+1] == '*'):
			tok, err := ts.comment()
			if err != nil {
				return nil, err
			}
			if ts.comments {
				dst = append(dst, tok)
			}
		case c == '"':
			tok, err := ts.quoted()
			if err != nil {
				return nil, err
			}
			dst = append(dst, tok)
		case c == '<':
			tok, err := ts.data()
			if err != nil {
				return nil, err
			}
			dst = append(dst, tok)
		case isLiteralByte(c):
			dst = append(dst, ts.literal())
		default:
			tt, ok := map[byte]TokenType{
				'{': TLCurl,
				'}': TRCurl,
				'(': TLParen,
				')': TRParen,
				'=': TEquals,
				';': TSemi,
				',': TComma,
			}[c]
			if !ok {
				return nil, fmt.Errorf("%w: unexpected byte %q at %s", ErrToken, c, ts.pos())
			}
			dst = append(dst, Token{Type: tt, Pos: ts.pos(), Bytes: src[ts.i : ts.i+1]})
			ts.i++
		}
	}
	return dst, nil
}

func (ts *tkState) pos() Pos {
	return Pos{Offset: ts.i, Line: ts.line, Col: ts.i - ts.lineStart + 1}
}

func (ts *tkState) literal() Token {
	pos := ts.pos()
	start := ts.i
	for ts.i < len(ts.d) && isLiteralByte(ts.d[ts.i]) {
		ts.i++
	}
	return Token{Type: TLiteral, Pos: pos, Bytes: ts.d[start:ts.i]}
}

func (ts *tkState) quoted() (Token, error) {
	pos := ts.pos()
	start := ts.i
	ts.i++ // opening quote
	for ts.i < len(ts.d) {
		switch ts.d[ts.i] {
		case '\\':
			ts.i += 2
		case '\n':
			ts.i++
			ts.line++
			ts.lineStart = ts.i
		case '"':
			ts.i++
			return Token{Type: TString, Pos: pos, Bytes: ts.d[start:ts.i]}, nil
		default:
			ts.i++
		}
	}
	return Token{}, fmt.Errorf("%w: unterminated string at %s", ErrToken, pos)
}

func (ts *tkState) data() (Token, error) {
	pos := ts.pos()
	start := ts.i
	ts.i++ // opening '<'
	for ts.i < len(ts.d) {
		c := ts.d[ts.i]
		if c == '>' {
			ts.i++
			return Token{Type: TData, Pos: pos, Bytes: ts.d[start:ts.i]}, nil
		}
		if c == '\n' {
			ts.line++
			ts.lineStart = ts.i + 1
		}
		ts.i++
	}
	return Token{}, fmt.Errorf("%w: unterminated data at %s", ErrToken, pos)
}

func (ts *tkState) comment() (Token, error) {
	pos := ts.pos()
	start := ts.i
	if ts.d[ts.i+1] == '/' {
		for ts.i < len(ts.d) && ts.d[ts.i] != '\n' {
			ts.i++
		}
		return Token{Type: TComment, Pos: pos, Bytes: ts.d[start:ts.i]}, nil
	}
	ts.i += 2
	for ts.i < len(ts.d) {
		c := ts.d[ts.i]
		if c == '*' && ts.i+1 < len(ts.d) && ts.d[ts.i+1] == '/' {
			ts.i += 2
			return Token{Type: TComment, Pos: pos, Bytes: ts.d[start:ts.i]}, nil
		}
		if c == '\n' {
			ts.line++
			ts.lineStart = ts.i + 1
		}
		ts.i++
	}
	return Token{}, fmt.Errorf("%w: unterminated comment at %s", ErrToken, pos)
}
