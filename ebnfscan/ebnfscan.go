// Package ebnfscan classifies and tokenizes text according to EBNF
// grammars, using the scan package's lookahead loop as the driver.
//
// Productions whose names start with an uppercase letter are treated as
// token productions, the golang.org/x/exp/ebnf convention. The caller
// supplies the grammar; nothing here is specific to any language.
package ebnfscan

import (
	"sort"

	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/scan"
)

// result describes how an expression relates to prefix[i:]. ends holds
// the offsets at which a complete match of the expression ends. open
// reports whether some parse consumed the rest of the prefix and could
// still complete given more input.
type result struct {
	ends map[int]bool
	open bool
}

func noMatch() result {
	return result{ends: map[int]bool{}}
}

func matchAt(i int) result {
	return result{ends: map[int]bool{i: true}}
}

type matchKey struct {
	name   string
	offset int
}

type matcher struct {
	grammar  ebnf.Grammar
	prefix   []rune
	memo     map[matchKey]result
	visiting map[matchKey]bool
}

func (m *matcher) match(expr ebnf.Expression, i int) result {
	switch e := expr.(type) {
	case nil:
		// An empty production matches the empty string.
		return matchAt(i)

	case *ebnf.Token:
		return m.matchLiteral([]rune(e.String), i)

	case *ebnf.Range:
		return m.matchRange(e, i)

	case ebnf.Sequence:
		return m.matchSequence(e, i)

	case ebnf.Alternative:
		res := noMatch()
		for _, alt := range e {
			r := m.match(alt, i)
			for j := range r.ends {
				res.ends[j] = true
			}
			res.open = res.open || r.open
		}
		return res

	case *ebnf.Repetition:
		return m.matchRepetition(e.Body, i)

	case *ebnf.Option:
		r := m.match(e.Body, i)
		res := matchAt(i)
		for j := range r.ends {
			res.ends[j] = true
		}
		res.open = r.open
		return res

	case *ebnf.Group:
		return m.match(e.Body, i)

	case *ebnf.Name:
		return m.matchName(e.String, i)

	default:
		return noMatch()
	}
}

func (m *matcher) matchLiteral(lit []rune, i int) result {
	rest := m.prefix[i:]
	if len(rest) >= len(lit) {
		for k, ch := range lit {
			if rest[k] != ch {
				return noMatch()
			}
		}
		return matchAt(i + len(lit))
	}
	// The remaining prefix is shorter than the literal: a match is still
	// possible if the literal starts with it.
	for k, ch := range rest {
		if lit[k] != ch {
			return noMatch()
		}
	}
	return result{ends: map[int]bool{}, open: true}
}

func (m *matcher) matchRange(e *ebnf.Range, i int) result {
	if i == len(m.prefix) {
		return result{ends: map[int]bool{}, open: true}
	}
	begin := []rune(e.Begin.String)
	end := []rune(e.End.String)
	if len(begin) != 1 || len(end) != 1 {
		return noMatch()
	}
	if ch := m.prefix[i]; ch >= begin[0] && ch <= end[0] {
		return matchAt(i + 1)
	}
	return noMatch()
}

func (m *matcher) matchSequence(items ebnf.Sequence, i int) result {
	ends := map[int]bool{i: true}
	open := false
	for _, item := range items {
		next := map[int]bool{}
		for p := range ends {
			r := m.match(item, p)
			for j := range r.ends {
				next[j] = true
			}
			open = open || r.open
		}
		ends = next
		if len(ends) == 0 {
			break
		}
	}
	return result{ends: ends, open: open}
}

func (m *matcher) matchRepetition(body ebnf.Expression, i int) result {
	ends := map[int]bool{i: true}
	open := false
	frontier := []int{i}
	for len(frontier) > 0 {
		p := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		r := m.match(body, p)
		open = open || r.open
		for j := range r.ends {
			if !ends[j] {
				ends[j] = true
				frontier = append(frontier, j)
			}
		}
	}
	return result{ends: ends, open: open}
}

// matchName matches a named production with memoization and cycle
// detection. Left-recursive references are cut off, so left-recursive
// token productions only match their non-recursive alternatives.
func (m *matcher) matchName(name string, i int) result {
	key := matchKey{name: name, offset: i}
	if r, ok := m.memo[key]; ok {
		return r
	}
	if m.visiting[key] {
		return noMatch()
	}

	prod, ok := m.grammar[name]
	if !ok {
		m.memo[key] = noMatch()
		return noMatch()
	}

	m.visiting[key] = true
	r := m.match(prod.Expr, i)
	delete(m.visiting, key)

	m.memo[key] = r
	return r
}

// Classifier derives a classification function from the token productions
// of g. For each prefix it reports:
//
//   - Request(name) when the prefix completely matches a token production
//     and a longer prefix could still match one,
//   - Return(name) when the prefix completely matches and no extension can,
//   - Require() when the prefix is only a viable beginning of some token,
//   - nil when no token production can do anything with the prefix.
//
// When several productions match the same prefix completely, the
// alphabetically first name wins, so ties are deterministic.
func Classifier(g ebnf.Grammar) scan.Classify[string] {
	var names []string
	for name, prod := range g {
		if prod.Expr == nil || len(name) == 0 {
			continue
		}
		if name[0] < 'A' || name[0] > 'Z' {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return func(prefix string) *scan.Action[string] {
		m := &matcher{
			grammar:  g,
			prefix:   []rune(prefix),
			memo:     make(map[matchKey]result),
			visiting: make(map[matchKey]bool),
		}

		matched := ""
		found := false
		open := false
		for _, name := range names {
			r := m.match(g[name].Expr, 0)
			if !found && r.ends[len(m.prefix)] {
				matched = name
				found = true
			}
			open = open || r.open
		}

		switch {
		case found && open:
			return scan.Request(matched)
		case found:
			return scan.Return(matched)
		case open:
			return scan.Require[string]()
		default:
			return nil
		}
	}
}
