package cmdtree

// Context is a transient view of one matching site. A fresh Context is built
// at each recursion level and each option match; it is never retained beyond
// the call it is passed to.
type Context struct {
	// Args is the full raw token sequence. Index 0 is the program name.
	Args []string
	// Offset is the index of the token currently being matched.
	Offset int
	// Name is the option or argument name under consideration, or the
	// subcommand name when descending.
	Name string
	// Parser points back at the top-level parser for shared configuration
	// such as the prefix character and the output sink.
	Parser *Parser
}
