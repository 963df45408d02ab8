package parse

type parseOpts struct {
	source string
}

type ParseOption func(*parseOpts)

// Source names the input in parse error messages, typically a file path.
func Source(name string) ParseOption {
	return func(po *parseOpts) { po.source = name }
}
