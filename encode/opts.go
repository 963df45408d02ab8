package encode

type EncodeOption func(*EncState)

// Depth sets the starting indentation depth for nested lines.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// Indent sets the per-level indent string. Xcode writes tabs, the default.
func Indent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
