package token

import "fmt"

// Pos locates a token in its source document.
type Pos struct {
	Offset int
	Line   int // 1 based
	Col    int // 1 based
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
