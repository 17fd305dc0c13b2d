package release

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	bracketBlockRegex = regexp.MustCompile(`\[[^\]]*\]`)
	parenBlockRegex   = regexp.MustCompile(`\([^)]*\)`)
	titleDelimRegex   = regexp.MustCompile(`[\s_.()\[\]]+`)
)

// titleSegmentDepth is how many trailing path segments may carry the title.
const titleSegmentDepth = 3

// pathSegments splits name on either path separator and drops empty parts.
func pathSegments(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' })
}

// lastSegment returns the final non-empty path segment of name.
func lastSegment(name string) string {
	segs := pathSegments(name)
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}

// titleSegment picks the path segment most likely to carry the title.
// segments are ordered most specific first (the filename, then its parent
// directories). A segment with upper-case letters that is not just a bare
// season/episode marker wins; release names mix case while generated
// directories like "season_3" do not. Failing that, the first descriptive
// segment wins, then the filename itself.
func titleSegment(segments []string, year int) string {
	if len(segments) == 0 {
		return ""
	}
	for _, seg := range segments {
		if hasUpper(seg) && isDescriptive(seg, year) {
			return seg
		}
	}
	for _, seg := range segments {
		if isDescriptive(seg, year) {
			return seg
		}
	}
	return segments[0]
}

// isDescriptive reports whether seg has any text before its first
// year or season/episode marker.
func isDescriptive(seg string, year int) bool {
	b := resolveBoundary(seg, year)
	head := seg
	if b.first >= 0 {
		head = seg[:b.first]
	}
	return normalizeTitle(trimContainerExt(head)) != ""
}

func hasUpper(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

// parseTitle extracts the title from name, cutting it before the earliest
// year or season/episode marker of the chosen path segment.
func parseTitle(name string, year int) string {
	segs := pathSegments(name)
	// most specific first
	var candidates []string
	for i := len(segs) - 1; i >= 0 && len(candidates) < titleSegmentDepth; i-- {
		candidates = append(candidates, segs[i])
	}

	seg := titleSegment(candidates, year)
	b := resolveBoundary(seg, year)
	return normalizeTitle(trimContainerExt(seg[:b.title]))
}

// normalizeTitle drops bracketed and parenthesized blocks and collapses
// delimiter runs to single spaces.
func normalizeTitle(s string) string {
	s = bracketBlockRegex.ReplaceAllLiteralString(s, "")
	s = parenBlockRegex.ReplaceAllLiteralString(s, "")
	s = titleDelimRegex.ReplaceAllLiteralString(s, " ")
	return strings.TrimSpace(s)
}
