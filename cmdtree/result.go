package cmdtree

import (
	"github.com/cmdtree/go-cmdtree/middleware"
)

// ParseResult is the successful outcome of a parse: the deepest matched
// command and the middleware chain accumulated on the way down. The caller
// decides when, and whether, to run the action.
type ParseResult struct {
	Command *Command

	chain middleware.Chain
}

func newParseResult(cmd *Command, chain middleware.Chain) *ParseResult {
	return &ParseResult{Command: cmd, chain: chain}
}

// Action returns the resolved terminal action with the accumulated middleware
// chain applied around it.
func (r *ParseResult) Action() ActionFunc {
	action := middleware.Action(r.Command.action)
	if len(r.chain) > 0 {
		action = r.chain.Apply(action)
	}
	return ActionFunc(action)
}

// Run invokes the resolved action.
func (r *ParseResult) Run() error {
	return r.Action()()
}
