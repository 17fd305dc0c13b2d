// Package release extracts structured metadata from media file and torrent names.
package release

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MediaType tells movies and episodes apart.
type MediaType int

const (
	MediaTypeUnknown MediaType = iota
	MediaTypeMovie
	MediaTypeEpisode
)

var mediaTypeNames = []string{
	MediaTypeMovie:   "movie",
	MediaTypeEpisode: "episode",
}

func (m MediaType) String() string { return tagName(mediaTypeNames, int(m)) }

// ParseMediaType maps "movie", "episode" or "" (detect) to a MediaType.
func ParseMediaType(s string) (MediaType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return MediaTypeUnknown, nil
	}
	m, ok := lookupTag[MediaType](mediaTypeNames, s)
	if !ok {
		return MediaTypeUnknown, fmt.Errorf("%w: %q", ErrInvalidMediaType, s)
	}
	return m, nil
}

// Quality is the vertical resolution class of a release.
type Quality int

const (
	QualityUnknown Quality = iota
	Q480
	Q576
	Q720
	Q900
	Q1080
	Q1440
	Q2160
	Q5K
	Q8K
	Q16K
)

var qualityNames = []string{
	Q480:  "480p",
	Q576:  "576p",
	Q720:  "720p",
	Q900:  "900p",
	Q1080: "1080p",
	Q1440: "1440p",
	Q2160: "2160p",
	Q5K:   "5K",
	Q8K:   "8K",
	Q16K:  "16K",
}

func (q Quality) String() string { return tagName(qualityNames, int(q)) }

// ReleaseType is the acquisition source of a release.
type ReleaseType int

const (
	ReleaseTypeUnknown ReleaseType = iota
	Cam
	Telesync
	Telecine
	Screener
	DVDRip
	HDTV
	WEBDL
	BluRayRip
)

var releaseTypeNames = []string{
	Cam:       "cam",
	Telesync:  "telesync",
	Telecine:  "telecine",
	Screener:  "screener",
	DVDRip:    "dvdrip",
	HDTV:      "hdtv",
	WEBDL:     "webdl",
	BluRayRip: "blurayrip",
}

func (r ReleaseType) String() string { return tagName(releaseTypeNames, int(r)) }

// VideoCodec is the video compression format.
type VideoCodec int

const (
	VideoCodecUnknown VideoCodec = iota
	DIVX
	XVID
	H262
	H263
	H264
	H265
)

var videoCodecNames = []string{
	DIVX: "divx",
	XVID: "xvid",
	H262: "h262",
	H263: "h263",
	H264: "h264",
	H265: "h265",
}

func (v VideoCodec) String() string { return tagName(videoCodecNames, int(v)) }

// AudioCodec is the audio compression format.
type AudioCodec int

const (
	AudioCodecUnknown AudioCodec = iota
	MP3
	DolbyDigital     // AC3
	DolbyDigitalPlus // E-AC3, DD+, DDP
	DolbyAtmos
	AAC
	FLAC
	DTS
	DolbyTrueHD
	DTSHD
	Opus
	Vorbis
	PCM
	LPCM
)

var audioCodecNames = []string{
	MP3:              "MP3",
	DolbyDigital:     "dolby_digital",
	DolbyDigitalPlus: "dolby_digital_plus",
	DolbyAtmos:       "dolby_atmos",
	AAC:              "AAC",
	FLAC:             "FLAC",
	DTS:              "DTS",
	DolbyTrueHD:      "dolby_true_hd",
	DTSHD:            "DTSHD",
	Opus:             "opus",
	Vorbis:           "vorbis",
	PCM:              "PCM",
	LPCM:             "LPCM",
}

func (a AudioCodec) String() string { return tagName(audioCodecNames, int(a)) }

// AudioChannels is the audio channel layout.
type AudioChannels int

const (
	AudioChannelsUnknown AudioChannels = iota
	Mono
	Stereo
	Chan51
	Chan71
)

var audioChannelsNames = []string{
	Mono:   "mono",
	Stereo: "stereo",
	Chan51: "5.1",
	Chan71: "7.1",
}

func (a AudioChannels) String() string { return tagName(audioChannelsNames, int(a)) }

// Container is the file container format.
type Container int

const (
	ContainerUnknown Container = iota
	AVI
	Matroska
	MP4
	MXF
	Ogg
	QuickTime
)

var containerNames = []string{
	AVI:       "avi",
	Matroska:  "mkv",
	MP4:       "mp4",
	MXF:       "mxf",
	Ogg:       "ogg",
	QuickTime: "quicktime",
}

func (c Container) String() string { return tagName(containerNames, int(c)) }

// MediaInfo contains the metadata extracted from a media name.
// Numeric fields are 0 and strings empty when nothing was found.
type MediaInfo struct {
	Title         string        `json:"title"`
	Season        int           `json:"season"`
	Episode       int           `json:"episode"`
	Year          int           `json:"year"`
	Quality       Quality       `json:"quality"`
	ReleaseType   ReleaseType   `json:"release_type"`
	VideoCodec    VideoCodec    `json:"video_codec"`
	AudioCodec    AudioCodec    `json:"audio_codec"`
	AudioChannels AudioChannels `json:"audio_channels"`
	Container     Container     `json:"container"`
	ReleaseGroup  string        `json:"release_group"`
	MediaType     MediaType     `json:"media_type"`

	// Normalized title for matching
	CleanTitle string `json:"clean_title"`
}

func tagName(names []string, i int) string {
	if i <= 0 || i >= len(names) {
		return ""
	}
	return names[i]
}

func lookupTag[T ~int](names []string, s string) (T, bool) {
	for i, name := range names {
		if name != "" && strings.EqualFold(name, s) {
			return T(i), true
		}
	}
	return 0, false
}

// marshalTag encodes a tag by its wire spelling; unknown tags encode as null.
func marshalTag(name string) ([]byte, error) {
	if name == "" {
		return []byte("null"), nil
	}
	return json.Marshal(name)
}

func unmarshalTag[T ~int](data []byte, names []string, dst *T) error {
	if string(data) == "null" {
		*dst = 0
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*dst = 0
		return nil
	}
	v, ok := lookupTag[T](names, s)
	if !ok {
		return fmt.Errorf("unknown tag %q", s)
	}
	*dst = v
	return nil
}

func (m MediaType) MarshalJSON() ([]byte, error)     { return marshalTag(m.String()) }
func (q Quality) MarshalJSON() ([]byte, error)       { return marshalTag(q.String()) }
func (r ReleaseType) MarshalJSON() ([]byte, error)   { return marshalTag(r.String()) }
func (v VideoCodec) MarshalJSON() ([]byte, error)    { return marshalTag(v.String()) }
func (a AudioCodec) MarshalJSON() ([]byte, error)    { return marshalTag(a.String()) }
func (a AudioChannels) MarshalJSON() ([]byte, error) { return marshalTag(a.String()) }
func (c Container) MarshalJSON() ([]byte, error)     { return marshalTag(c.String()) }

func (m *MediaType) UnmarshalJSON(b []byte) error   { return unmarshalTag(b, mediaTypeNames, m) }
func (q *Quality) UnmarshalJSON(b []byte) error     { return unmarshalTag(b, qualityNames, q) }
func (r *ReleaseType) UnmarshalJSON(b []byte) error { return unmarshalTag(b, releaseTypeNames, r) }
func (v *VideoCodec) UnmarshalJSON(b []byte) error  { return unmarshalTag(b, videoCodecNames, v) }
func (a *AudioCodec) UnmarshalJSON(b []byte) error  { return unmarshalTag(b, audioCodecNames, a) }
func (a *AudioChannels) UnmarshalJSON(b []byte) error {
	return unmarshalTag(b, audioChannelsNames, a)
}
func (c *Container) UnmarshalJSON(b []byte) error { return unmarshalTag(b, containerNames, c) }
