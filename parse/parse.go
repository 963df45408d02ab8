// Package parse provides OpenStep property list parsing support.
package parse

import (
	"fmt"

	"github.com/pbx-format/go-pbx/ir"
	"github.com/pbx-format/go-pbx/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, pOpts.wrap(err)
	}
	if len(toks) == 0 {
		return nil, pOpts.errorf("%w: empty document", ErrParse)
	}
	off := 0
	res, err := parseValue(toks, nil, &off, pOpts)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		return nil, pOpts.errorf("%w: trailing content at %s", ErrParse, toks[off].Pos)
	}
	return res, nil
}

func (po *parseOpts) wrap(err error) error {
	if po.source == "" {
		return err
	}
	return fmt.Errorf("%s: %w", po.source, err)
}

func (po *parseOpts) errorf(format string, args ...any) error {
	return po.wrap(fmt.Errorf(format, args...))
}

func parseValue(toks []token.Token, p *ir.Node, pi *int, opts *parseOpts) (*ir.Node, error) {
	if *pi >= len(toks) {
		return nil, opts.errorf("%w: unexpected end of input", ErrParse)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TLCurl:
		if *pi == len(toks)-1 {
			return nil, opts.errorf("%w: unbalanced { at %s", ErrParse, t.Pos)
		}
		*pi++
		dictY := &ir.Node{Type: ir.DictType, Parent: p}
		return parseDict(toks, dictY, pi, opts)
	case token.TLParen:
		if *pi == len(toks)-1 {
			return nil, opts.errorf("%w: unbalanced ( at %s", ErrParse, t.Pos)
		}
		*pi++
		arrY := &ir.Node{Type: ir.ArrayType, Parent: p}
		return parseArr(toks, arrY, pi, opts)
	case token.TString, token.TLiteral:
		*pi++
		sy := ir.FromString(t.String())
		sy.Parent = p
		return sy, nil
	case token.TData:
		*pi++
		d, err := token.DecodeData(t.Bytes)
		if err != nil {
			return nil, opts.errorf("%w: %v at %s", ErrParse, err, t.Pos)
		}
		dy := ir.FromData(d)
		dy.Parent = p
		return dy, nil
	default:
		return nil, opts.errorf("%w: unexpected %s at %s", ErrParse, t.Type, t.Pos)
	}
}

// dict := '{' (key '=' value ';')* '}' with the opening curl consumed.
func parseDict(toks []token.Token, res *ir.Node, pi *int, opts *parseOpts) (*ir.Node, error) {
	for {
		if *pi >= len(toks) {
			return nil, opts.errorf("%w: unterminated dict", ErrParse)
		}
		t := &toks[*pi]
		if t.Type == token.TRCurl {
			*pi++
			return res, nil
		}
		if t.Type != token.TString && t.Type != token.TLiteral {
			return nil, opts.errorf("%w: expected dict key, got %s at %s", ErrParse, t.Type, t.Pos)
		}
		key := t.String()
		*pi++
		if *pi >= len(toks) || toks[*pi].Type != token.TEquals {
			return nil, opts.errorf("%w: expected = after key %q at %s", ErrParse, key, t.Pos)
		}
		*pi++
		val, err := parseValue(toks, res, pi, opts)
		if err != nil {
			return nil, err
		}
		if *pi >= len(toks) || toks[*pi].Type != token.TSemi {
			return nil, opts.errorf("%w: expected ; after value of %q at %s", ErrParse, key, t.Pos)
		}
		*pi++
		if ir.Get(res, key) != nil {
			return nil, opts.errorf("%w: duplicate key %q at %s", ErrParse, key, t.Pos)
		}
		ir.Set(res, key, val)
	}
}

// arr := '(' (value ',')* value? ')' with the opening paren consumed.
// A trailing comma is permitted, as written by Xcode.
func parseArr(toks []token.Token, res *ir.Node, pi *int, opts *parseOpts) (*ir.Node, error) {
	for {
		if *pi >= len(toks) {
			return nil, opts.errorf("%w: unterminated array", ErrParse)
		}
		if toks[*pi].Type == token.TRParen {
			*pi++
			return res, nil
		}
		val, err := parseValue(toks, res, pi, opts)
		if err != nil {
			return nil, err
		}
		ir.Append(res, val)
		if *pi >= len(toks) {
			return nil, opts.errorf("%w: unterminated array", ErrParse)
		}
		switch toks[*pi].Type {
		case token.TComma:
			*pi++
		case token.TRParen:
			// no comma before the close
		default:
			return nil, opts.errorf("%w: expected , or ) at %s", ErrParse, toks[*pi].Pos)
		}
	}
}
