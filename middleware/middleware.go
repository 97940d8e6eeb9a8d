// Package middleware provides composable wrappers around a command's terminal
// action. The parser accumulates a chain while descending the command tree;
// the caller receives the already-wrapped action.
package middleware

// Action is the zero-argument terminal action contract.
type Action func() error

// Middleware wraps an action with additional behavior.
type Middleware func(next Action) Action

// Chain is an ordered middleware list. The first entry becomes the outermost
// wrapper.
type Chain []Middleware

// New creates a chain from the provided middleware, preserving order.
func New(mw ...Middleware) Chain {
	return Chain(mw)
}

// Apply wraps action with the chain.
func (c Chain) Apply(action Action) Action {
	for i := len(c) - 1; i >= 0; i-- {
		action = c[i](action)
	}
	return action
}

// Use returns a new chain with the provided middleware appended. The result
// never shares a backing array with the receiver, so chains accumulated on
// different descent paths cannot overwrite one another.
func (c Chain) Use(mw ...Middleware) Chain {
	out := make(Chain, 0, len(c)+len(mw))
	out = append(out, c...)
	return append(out, mw...)
}
