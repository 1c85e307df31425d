package parse

type parseOpts struct {
	altTextLinks bool
}

type ParseOption func(*parseOpts)

// ParseAltTextLinks controls whether [label](url) hyperlinks are
// recognized in addition to bare URLs. The flag holds for the whole
// parse, including nested spans.
func ParseAltTextLinks(v bool) ParseOption {
	return func(o *parseOpts) { o.altTextLinks = v }
}
