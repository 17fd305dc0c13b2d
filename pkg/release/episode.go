package release

import "regexp"

// Each pattern captures the whole marker in group 1 so its start offset can
// be used as a title/group boundary without the leading separator.
var (
	// S05E03, 2x05, s02ep05
	combinedEpisodeRegex = regexp.MustCompile(`(?i)(?:^|\D)(s?(\d{1,3})[ex]p?(\d{1,3}))`)
	// S2 - 03, 2:05
	separatedEpisodeRegex = regexp.MustCompile(`(?i)(?:^|\D)(s?(\d{1,3})\s*[-:]\s*(\d{1,3}))`)
	// Season 02, S3, season_3. Not after an apostrophe: "Ocean's 8".
	seasonRegex = regexp.MustCompile(`(?i)(?:^|[^\w'])(s(?:eason)?[\s._]*(\d{1,3}))\b`)
	// Episode 5, E01, ep12
	episodeRegex = regexp.MustCompile(`(?i)(?:^|[^\w'])(e(?:p(?:isode)?)?\s*(\d{1,3}))\b`)
)

// parseSeasonEpisode reads season and episode numbers from name.
//
// The separated form wins when it yields both numbers. Otherwise the
// combined form is used, and any field it leaves at 0 is filled from the
// standalone season and episode markers.
func parseSeasonEpisode(name string) (season, episode int) {
	if m := separatedEpisodeRegex.FindStringSubmatch(name); m != nil {
		s, e := atoi(m[2]), atoi(m[3])
		if s != 0 && e != 0 {
			return s, e
		}
	}

	if m := combinedEpisodeRegex.FindStringSubmatch(name); m != nil {
		season, episode = atoi(m[2]), atoi(m[3])
	}
	if season == 0 {
		if m := seasonRegex.FindStringSubmatch(name); m != nil {
			season = atoi(m[2])
		}
	}
	if episode == 0 {
		if m := episodeRegex.FindStringSubmatch(name); m != nil {
			episode = atoi(m[2])
		}
	}
	return season, episode
}

// markerStart returns the offset of re's first capture group in s, or -1.
func markerStart(re *regexp.Regexp, s string) int {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return -1
	}
	return loc[2]
}
