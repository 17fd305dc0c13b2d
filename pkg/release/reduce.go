package release

import "regexp"

// patterns compiles a list of pattern alternatives, panicking on invalid syntax.
func patterns(exprs ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		res[i] = regexp.MustCompile(expr)
	}
	return res
}

// reduce reports whether any of the alternatives matches text. The first
// matching alternative, in declaration order, has every one of its matches
// removed from the returned residual. Without a match text is returned as is.
func reduce(text string, alternatives []*regexp.Regexp) (bool, string) {
	for _, re := range alternatives {
		if re.MatchString(text) {
			return true, re.ReplaceAllLiteralString(text, "")
		}
	}
	return false, text
}

// candidate pairs a tag with the alternatives that identify it.
type candidate[T ~int] struct {
	tag          T
	alternatives []*regexp.Regexp
}

// classify walks candidates in priority order and returns the first tag whose
// alternatives match, together with the residual left after stripping it.
// The zero tag and the unchanged text are returned when nothing matches.
func classify[T ~int](text string, candidates []candidate[T]) (T, string) {
	for _, c := range candidates {
		if matched, residual := reduce(text, c.alternatives); matched {
			return c.tag, residual
		}
	}
	var zero T
	return zero, text
}
