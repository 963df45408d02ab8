package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Promote bool
	Resolve bool
	Sort    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Promote = boolEnv("PBX_DEBUG_PROMOTE")
	d.Resolve = boolEnv("PBX_DEBUG_RESOLVE")
	d.Sort = boolEnv("PBX_DEBUG_SORT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Promote() bool {
	return d.Promote
}
func Resolve() bool {
	return d.Resolve
}
func Sort() bool {
	return d.Sort
}
