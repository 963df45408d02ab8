package token

import (
	"fmt"
)

type TokenType int

const (
	TString TokenType = iota
	TLiteral
	TData
	TComment
	TLCurl
	TRCurl
	TLParen
	TRParen
	TEquals
	TSemi
	TComma
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TString:  "TString",
		TLiteral: "TLiteral",
		TData:    "TData",
		TComment: "TComment",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TEquals:  "TEquals",
		TSemi:    "TSemi",
		TComma:   "TComma",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the token's value with source quoting removed.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		return Unquote(t.Bytes)
	default:
		return string(t.Bytes)
	}
}
