package scan

// Scan walks forward from the current cursor position one character at a
// time. After appending each character to an accumulated prefix it
// invokes classify with that prefix and acts on the decision:
//
//   - Return(v): consume the character and succeed with v immediately.
//   - Request(v): consume the character, remember v as the best candidate
//     so far, and keep looping.
//   - Require(): consume the character and keep looping; from this point a
//     prefix that fails to extend is a hard error instead of a fallback.
//   - nil: stop without consuming the character. With a Require obligation
//     outstanding this fails with an InvalidCharacterError carrying the
//     current cursor; otherwise it succeeds with the last Request value.
//
// Reaching the end of input with a Require obligation outstanding fails
// with ErrEndOfInput. The ok result reports whether a value was produced;
// a scan that matches nothing succeeds with ok false.
//
// On failure the cursor has been advanced past every character that was
// part of a Request or Require decision, but not past the rejecting
// character, so InvalidCharacterError points at exactly the first
// character that broke the match.
//
// Scan is a free function rather than a method because Go methods cannot
// introduce type parameters.
func Scan[T any](s *Scanner, classify Classify[T]) (result T, ok bool, err error) {
	var (
		prefix  []rune
		require bool
		pending T
		have    bool
	)

	for {
		ch, more := s.Peek()
		if !more {
			if require {
				var zero T
				return zero, false, ErrEndOfInput
			}
			return pending, have, nil
		}

		prefix = append(prefix, ch)

		action := classify(string(prefix))
		if action == nil {
			if require {
				var zero T
				return zero, false, &InvalidCharacterError{Cursor: s.cursor}
			}
			return pending, have, nil
		}

		switch action.kind {
		case actionReturn:
			s.cursor++
			return action.value, true, nil
		case actionRequest:
			s.cursor++
			require = false
			pending = action.value
			have = true
		case actionRequire:
			s.cursor++
			require = true
		}
	}
}
