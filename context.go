package rendezvous

import "context"

// Context is an alias permitting you to refer to rendezvous.Context if you
// so desire; it is always just a context.Context underneath. The host
// concurrency runtime's cancellation-notification hook is realized as
// whatever fires ctx.Done() -- a Channel never constructs its own
// cancellation source, it only reacts to one that's handed in.
type Context = context.Context
