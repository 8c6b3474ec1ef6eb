package rendezvous

// maybe is the boxed-optional value carried across a suspend/resume
// point. Never exposed on the public API (Receive and Iterator.Next
// return the idiomatic (T, bool) pair instead); it only exists
// internally as the payload type for suspension[T].
type maybe[T any] struct {
	value T
	ok    bool
}

func some[T any](v T) maybe[T] { return maybe[T]{value: v, ok: true} }
func none[T any]() maybe[T]    { return maybe[T]{} }

func (m maybe[T]) unwrap() (T, bool) { return m.value, m.ok }
