package scan

// Scanner processes the characters of a string individually and in groups
// with a single character of lookahead.
type Scanner struct {
	characters []rune
	cursor     int
}

// New returns a Scanner positioned at the start of input. The input is
// decomposed into code points up front, so the cursor counts characters,
// not bytes.
func New(input string) *Scanner {
	return &Scanner{characters: []rune(input)}
}

// Cursor returns the current cursor position. Useful for reporting errors
// against the original input.
func (s *Scanner) Cursor() int {
	return s.cursor
}

// Peek returns the next character without advancing the cursor.
func (s *Scanner) Peek() (rune, bool) {
	if s.cursor >= len(s.characters) {
		return 0, false
	}
	return s.characters[s.cursor], true
}

// IsDone reports whether further progress is possible.
func (s *Scanner) IsDone() bool {
	return s.cursor == len(s.characters)
}

// Pop returns the next character, if available, and advances the cursor.
func (s *Scanner) Pop() (rune, bool) {
	if s.cursor >= len(s.characters) {
		return 0, false
	}
	ch := s.characters[s.cursor]
	s.cursor++
	return ch, true
}

// Take advances the cursor and returns true if target is found at the
// current position. Otherwise it returns false and leaves the cursor
// unchanged. Comparison is exact rune equality.
func (s *Scanner) Take(target rune) bool {
	if s.cursor < len(s.characters) && s.characters[s.cursor] == target {
		s.cursor++
		return true
	}
	return false
}

// Transform applies f to the character at the current position. If f
// reports a value, the cursor advances past the character and that value
// is returned. Otherwise the cursor stays put and ok is false.
//
// Transform is a free function rather than a method because Go methods
// cannot introduce type parameters.
func Transform[T any](s *Scanner, f func(rune) (T, bool)) (T, bool) {
	var zero T
	ch, ok := s.Peek()
	if !ok {
		return zero, false
	}
	v, ok := f(ch)
	if !ok {
		return zero, false
	}
	s.cursor++
	return v, true
}
