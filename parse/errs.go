package parse

import (
	"github.com/pbx-format/go-pbx/ir"
)

var (
	ErrParse = ir.ErrParse
)
