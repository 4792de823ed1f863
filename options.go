package marknav

// Options holds configuration for a [Navigator]. The zero value is not
// the default; start from [DefaultOptions] and adjust.
type Options struct {
	// TildeFences accepts ~~~ runs as code fence delimiters alongside
	// backtick runs.
	TildeFences bool

	// Inline indexes the inline categories (links, images, emphasis,
	// inline code, footnotes, math) in addition to the block ones.
	// Turning it off is a fast path for hosts that only navigate
	// headings, blocks and tables.
	Inline bool
}

// DefaultOptions returns the options a plain [New] uses: inline
// categories on, tilde fences off.
func DefaultOptions() Options {
	return Options{
		TildeFences: false,
		Inline:      true,
	}
}
