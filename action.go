package scan

type actionKind int

const (
	actionRequest actionKind = iota
	actionRequire
	actionReturn
)

// Action tells Scan how to proceed after classifying a prefix. A nil
// *Action means the prefix does not, and cannot, continue any accepted
// pattern.
type Action[T any] struct {
	kind  actionKind
	value T
}

// Request marks the prefix as a valid match that a longer prefix may
// still improve on. Scan remembers v and falls back to it if the longer
// attempt fails.
func Request[T any](v T) *Action[T] {
	return &Action[T]{kind: actionRequest, value: v}
}

// Require marks the prefix as a valid partial match that longer input
// must complete. Failing to extend it is an error, not a fallback.
func Require[T any]() *Action[T] {
	return &Action[T]{kind: actionRequire}
}

// Return commits to v immediately, without examining further input.
func Return[T any](v T) *Action[T] {
	return &Action[T]{kind: actionReturn, value: v}
}

// Classify inspects the prefix consumed so far and decides how Scan
// should proceed. It receives only the accumulated prefix, never the
// Scanner itself.
type Classify[T any] func(prefix string) *Action[T]
