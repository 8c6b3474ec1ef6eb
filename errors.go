package rendezvous

import "errors"

// Namespace prefixes every sentinel error in this package.
const Namespace = "rendezvous"

// ErrMisuse marks violations of this package's contract -- programmer
// error, not a protocol outcome. None of Send, Receive, or Finish ever
// return an error: every protocol-level negative outcome is a plain
// (T, false) or a silent no-op, so ErrMisuse only ever surfaces wrapped
// in a panic, the same way a resolve-once primitive panics on reuse
// instead of returning an error nobody asked for.
var ErrMisuse = errors.New(Namespace + ": programmer error")
