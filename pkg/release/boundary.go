package release

import (
	"strconv"
	"strings"
)

// boundary holds cut offsets into a name, derived from where its year and
// season/episode markers start.
type boundary struct {
	// title is the earliest marker offset; text before it is the title.
	// It is len(name) when no marker was found.
	title int
	// group is the latest marker offset; the release group trails it.
	// It is 0 when no marker was found.
	group int
	// first is the earliest marker offset including 0, or -1.
	first int
}

// resolveBoundary locates year and season/episode markers in name. The year
// is located by its last textual occurrence so a title that happens to
// contain the same digits does not shift the cut.
func resolveBoundary(name string, year int) boundary {
	offsets := []int{
		markerStart(combinedEpisodeRegex, name),
		markerStart(separatedEpisodeRegex, name),
		markerStart(seasonRegex, name),
		markerStart(episodeRegex, name),
	}
	if year != 0 {
		offsets = append(offsets, strings.LastIndex(name, strconv.Itoa(year)))
	}

	b := boundary{title: len(name), group: 0, first: -1}
	for _, off := range offsets {
		if off < 0 {
			continue
		}
		if b.first < 0 || off < b.first {
			b.first = off
		}
		if off == 0 {
			continue
		}
		b.title = min(b.title, off)
		b.group = max(b.group, off)
	}
	return b
}
