package token

import (
	"errors"
	"testing"
)

type tokenizeTest struct {
	in   string
	toks []TokenType
	e    error
}

func TestTokenize(t *testing.T) {
	tts := []tokenizeTest{
		{
			in:   `hello`,
			toks: []TokenType{TLiteral},
		},
		{
			in:   `"hello world"`,
			toks: []TokenType{TString},
		},
		{
			in:   `"esc \" quote"`,
			toks: []TokenType{TString},
		},
		{
			in:   `<deadbeef>`,
			toks: []TokenType{TData},
		},
		{
			in:   `{a = b;}`,
			toks: []TokenType{TLCurl, TLiteral, TEquals, TLiteral, TSemi, TRCurl},
		},
		{
			in:   `(a, b,)`,
			toks: []TokenType{TLParen, TLiteral, TComma, TLiteral, TComma, TRParen},
		},
		{
			in:   "// !$*UTF8*$!\n{}",
			toks: []TokenType{TLCurl, TRCurl},
		},
		{
			in:   "/* block */ x",
			toks: []TokenType{TLiteral},
		},
		{
			in: `"unterminated`,
			e:  ErrToken,
		},
		{
			in: `<dead`,
			e:  ErrToken,
		},
		{
			in: `&`,
			e:  ErrToken,
		},
	}
	for _, tt := range tts {
		toks, err := Tokenize(nil, []byte(tt.in))
		if tt.e != nil {
			if !errors.Is(err, tt.e) {
				t.Errorf("%q: got error %v, want %v", tt.in, err, tt.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.in, err)
			continue
		}
		if len(toks) != len(tt.toks) {
			t.Errorf("%q: got %d tokens, want %d", tt.in, len(toks), len(tt.toks))
			continue
		}
		for i := range toks {
			if toks[i].Type != tt.toks[i] {
				t.Errorf("%q: token %d is %s, want %s", tt.in, i, toks[i].Type, tt.toks[i])
			}
		}
	}
}

func TestKeepComments(t *testing.T) {
	toks, err := Tokenize(nil, []byte("// hi\nx /* there */"), KeepComments())
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{TComment, TLiteral, TComment}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i := range toks {
		if toks[i].Type != want[i] {
			t.Errorf("token %d is %s, want %s", i, toks[i].Type, want[i])
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		"plain",
		"has space",
		`has "quotes"`,
		"tab\there",
		"line\nbreak",
		"<group>",
		"$(TARGET_NAME)",
	} {
		q := Quote(s)
		if got := Unquote([]byte(q)); got != s {
			t.Errorf("round trip %q: got %q via %q", s, got, q)
		}
	}
}

func TestNeedsQuoting(t *testing.T) {
	for s, want := range map[string]bool{
		"simple":            false,
		"AA00BB":            false,
		"com.apple.product": false,
		"sourcecode.c.objc": false,
		"":                  true,
		"two words":         true,
		"<group>":           true,
		"paren()":           true,
	} {
		if got := NeedsQuoting(s); got != want {
			t.Errorf("NeedsQuoting(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestDataRoundTrip(t *testing.T) {
	d := []byte{0xde, 0xad, 0xbe, 0xef}
	enc := EncodeData(d)
	got, err := DecodeData([]byte(enc))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(d) {
		t.Errorf("got % x, want % x", got, d)
	}
	if _, err := DecodeData([]byte("<zz>")); !errors.Is(err, ErrToken) {
		t.Errorf("bad hex: got %v, want ErrToken", err)
	}
}

func TestPos(t *testing.T) {
	toks, err := Tokenize(nil, []byte("a\n  b"))
	if err != nil {
		t.Fatal(err)
	}
	if toks[1].Pos.Line != 2 || toks[1].Pos.Col != 3 {
		t.Errorf("got %s, want 2:3", toks[1].Pos)
	}
}
