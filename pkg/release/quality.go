package release

import (
	"regexp"
	"strconv"
)

var (
	resolutionRegex = regexp.MustCompile(`(?i)(\d{3,4})[pi]`)
	screenSizeRegex = regexp.MustCompile(`(?i)\d{3,4}\s?x\s?(\d{3,4})`)
)

var qualityByHeight = map[int]Quality{
	480:  Q480,
	576:  Q576,
	720:  Q720,
	900:  Q900,
	1080: Q1080,
	1440: Q1440,
	2160: Q2160,
	2880: Q5K,
	4320: Q8K,
	8640: Q16K,
}

// parseQuality takes the larger of an explicit "1080p"-style marker and the
// height of a "1920x1080"-style screen size. Heights outside the table yield
// QualityUnknown.
func parseQuality(s string) Quality {
	height := max(firstNumber(resolutionRegex, s), firstNumber(screenSizeRegex, s))
	return qualityByHeight[height]
}

// stripQuality removes resolution and screen-size markers from s.
func stripQuality(s string) string {
	s = resolutionRegex.ReplaceAllLiteralString(s, "")
	return screenSizeRegex.ReplaceAllLiteralString(s, "")
}

// firstNumber returns the first capture group of re's leftmost match as an
// int, or 0.
func firstNumber(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
