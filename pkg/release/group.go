package release

import (
	"regexp"
	"strings"
)

var (
	leadingGroupRegex = regexp.MustCompile(`^\[([^\]]+)\]`)
	// -={SPARROW}=- style tags trail the group proper and are kept with it.
	braceSuffixRegex = regexp.MustCompile(`\s*-=\{[^}]*\}=-\s*$`)
)

// parseGroup extracts the release group from name. A leading "[Group]"
// block wins outright. Otherwise the group is the token after the last
// dash, looking only past the latest year or season/episode marker and
// after known release type, codec, container and resolution tokens are
// removed so their own dashes (WEB-DL, DTS-HD) are not mistaken for the
// separator and a trailing "- 1080p" is not taken for a group.
func parseGroup(name string, b boundary) string {
	if m := leadingGroupRegex.FindStringSubmatch(name); m != nil {
		return strings.TrimSpace(m[1])
	}

	tail := lastSegment(name[b.group:])
	_, tail = parseReleaseType(tail)
	_, tail = parseVideoCodec(tail)
	_, _, tail = parseAudio(tail)
	_, tail = parseContainer(tail)
	tail = stripQuality(tail)

	var suffix string
	if loc := braceSuffixRegex.FindStringIndex(tail); loc != nil {
		suffix = strings.TrimSpace(tail[loc[0]:])
		tail = tail[:loc[0]]
	}

	i := strings.LastIndex(tail, "-")
	if i < 0 {
		return suffix
	}
	group := strings.Trim(tail[i+1:], ". \t")
	if suffix != "" {
		group = strings.TrimSpace(group + " " + suffix)
	}
	return group
}
