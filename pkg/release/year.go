package release

import (
	"regexp"
	"strconv"
)

var (
	digitRunRegex   = regexp.MustCompile(`\d+`)
	markedYearRegex = regexp.MustCompile(`\((19\d{2}|20\d{2})\)`)
	yearShapedRegex = regexp.MustCompile(`^(19|20)\d{2}$`)
)

// parseYear finds the release year in name.
//
// A parenthesized year wins outright (the leftmost one). Otherwise, when
// several bare years appear, the second is taken: the first is usually part
// of the title (a premiere year or a film called "2012") and the second the
// release year. A single bare year is returned as is.
func parseYear(name string) int {
	if m := markedYearRegex.FindStringSubmatch(name); m != nil {
		return atoi(m[1])
	}

	var bare []string
	for _, run := range digitRunRegex.FindAllString(name, -1) {
		if yearShapedRegex.MatchString(run) {
			bare = append(bare, run)
		}
	}

	switch {
	case len(bare) > 1:
		return atoi(bare[1])
	case len(bare) == 1:
		return atoi(bare[0])
	default:
		return 0
	}
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
