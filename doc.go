// Package scan provides a single-character-lookahead scanning primitive
// for hand-written lexers and parsers.
//
// # Overview
//
// A Scanner holds an input string decomposed into characters (code
// points, not bytes) and a cursor into that sequence. The cursor only
// ever moves forward. Peek, Pop, Take and Transform handle individual
// characters; Scan drives multi-character matching with one character of
// lookahead.
//
// # Scanning
//
// Scan repeatedly appends the next character to an accumulated prefix and
// hands the prefix to a classification function, which answers with one
// of three decisions, or with none at all:
//
//	Return(v)  - the match is final, commit to v immediately
//	Request(v) - v is a valid match, but a longer prefix may beat it
//	Require()  - the prefix is incomplete, longer input is mandatory
//	nil        - the prefix cannot continue any accepted pattern
//
// Request supports greedy longest-match lexing with one token of
// retraction: match "=" while hoping for "==", and fall back to "=" if
// the second character does not cooperate. Require supports fixed
// multi-character sequences where a prefix that fails to extend is a hard
// error. When a hard error occurs the failure carries the cursor offset
// of the offending character, which callers can report against the
// original input.
//
// The Scanner is exclusively owned by its caller; nothing in this package
// locks or tolerates concurrent use of one Scanner.
package scan
