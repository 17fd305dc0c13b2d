package release

import (
	"log/slog"
	"unicode/utf8"
)

// MaxNameLength caps the number of bytes of a name that are inspected.
// Longer names keep their tail, where the filename and its tokens live.
const MaxNameLength = 4096

// Options tunes a single parse.
type Options struct {
	// MediaType forces the media type when not MediaTypeUnknown.
	// MediaTypeMovie also clears season and episode.
	MediaType MediaType
	// Logger receives per-stage debug output. Nil disables it.
	Logger *slog.Logger
}

// Parse extracts metadata from a file or torrent name. It never fails:
// fields that cannot be determined keep their zero value.
func Parse(name string) *MediaInfo {
	return ParseWithOptions(name, Options{})
}

// ParseWithOptions is Parse with a media type hint and optional logging.
//
// The release type, video codec, audio and container classifiers run in
// that order over the filename, each removing its match before the next
// one looks. Quality is read from what remains. Year and season/episode
// are read from the whole name, and their positions bound the title and
// release group.
func ParseWithOptions(name string, opts Options) *MediaInfo {
	name = truncateName(name)
	info := &MediaInfo{}

	working := lastSegment(name)
	info.ReleaseType, working = parseReleaseType(working)
	info.VideoCodec, working = parseVideoCodec(working)
	info.AudioCodec, info.AudioChannels, working = parseAudio(working)
	info.Container, working = parseContainer(working)
	info.Quality = parseQuality(working)

	info.Year = parseYear(name)
	info.Season, info.Episode = parseSeasonEpisode(name)

	b := resolveBoundary(name, info.Year)
	info.Title = parseTitle(name, info.Year)
	info.ReleaseGroup = parseGroup(name, b)
	info.CleanTitle = CleanTitle(info.Title)

	switch opts.MediaType {
	case MediaTypeMovie:
		info.Season, info.Episode = 0, 0
		info.MediaType = MediaTypeMovie
	case MediaTypeEpisode:
		info.MediaType = MediaTypeEpisode
	default:
		if info.Season != 0 || info.Episode != 0 {
			info.MediaType = MediaTypeEpisode
		} else {
			info.MediaType = MediaTypeMovie
		}
	}

	if opts.Logger != nil {
		opts.Logger.Debug("parsed name",
			"name", name,
			"residual", working,
			"title_cut", b.title,
			"group_cut", b.group,
			"title", info.Title,
			"year", info.Year,
			"season", info.Season,
			"episode", info.Episode,
			"quality", info.Quality.String(),
			"release_type", info.ReleaseType.String(),
			"video_codec", info.VideoCodec.String(),
			"audio_codec", info.AudioCodec.String(),
			"audio_channels", info.AudioChannels.String(),
			"container", info.Container.String(),
			"group", info.ReleaseGroup,
			"media_type", info.MediaType.String(),
		)
	}

	return info
}

// truncateName keeps the last MaxNameLength bytes of name, starting on a
// rune boundary.
func truncateName(name string) string {
	if len(name) <= MaxNameLength {
		return name
	}
	cut := len(name) - MaxNameLength
	for cut < len(name) && !utf8.RuneStart(name[cut]) {
		cut++
	}
	return name[cut:]
}
