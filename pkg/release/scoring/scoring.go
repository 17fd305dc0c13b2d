// Package scoring ranks parsed media names against quality profiles.
package scoring

import (
	"fmt"
	"strings"

	"github.com/vmunix/vidocq/pkg/release"
)

// Base scores by quality class.
const (
	ScoreQualityUHD   = 100 // 2160p and above
	ScoreQualityFHD   = 80  // 1080p, 1440p
	ScoreQualityHD    = 60  // 720p, 900p
	ScoreQualityOther = 40
)

// Bonus values for a first-choice attribute. Lower choices earn 20% less
// per position.
const (
	BonusReleaseType = 10
	BonusVideoCodec  = 10
	BonusAudioCodec  = 15
)

// Profile lists preferences, most preferred first. An empty Quality list
// accepts any quality; any other empty list awards no bonus.
type Profile struct {
	Quality      []string
	ReleaseTypes []string
	VideoCodecs  []string
	AudioCodecs  []string
	Reject       []string
}

// Bonus is one line of a score breakdown.
type Bonus struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
	Position  int    `json:"position"` // 0-indexed, -1 if not from preference list
	Bonus     int    `json:"bonus"`
	Note      string `json:"note,omitempty"`
}

// aliases maps common spellings found in profiles to tag wire names.
var aliases = map[string]string{
	"bluray":    "blurayrip",
	"bdrip":     "blurayrip",
	"brrip":     "blurayrip",
	"web-dl":    "webdl",
	"webrip":    "webdl",
	"web":       "webdl",
	"ts":        "telesync",
	"hdts":      "telesync",
	"tc":        "telecine",
	"camrip":    "cam",
	"hdcam":     "cam",
	"scr":       "screener",
	"x264":      "h264",
	"avc":       "h264",
	"x265":      "h265",
	"hevc":      "h265",
	"mpeg2":     "h262",
	"dd":        "dolby_digital",
	"ac3":       "dolby_digital",
	"dd+":       "dolby_digital_plus",
	"ddp":       "dolby_digital_plus",
	"eac3":      "dolby_digital_plus",
	"atmos":     "dolby_atmos",
	"truehd":    "dolby_true_hd",
	"dts-hd":    "DTSHD",
	"dts-hd ma": "DTSHD",
	"4k":        "2160p",
	"uhd":       "2160p",
}

// Matches reports whether a tag's wire name satisfies a preference.
func Matches(tag, pref string) bool {
	if tag == "" {
		return false
	}
	if strings.EqualFold(tag, pref) {
		return true
	}
	canonical, ok := aliases[strings.ToLower(strings.TrimSpace(pref))]
	return ok && strings.EqualFold(tag, canonical)
}

// QualityBaseScore returns the base score for a quality class.
func QualityBaseScore(q release.Quality) int {
	switch q {
	case release.Q2160, release.Q5K, release.Q8K, release.Q16K:
		return ScoreQualityUHD
	case release.Q1080, release.Q1440:
		return ScoreQualityFHD
	case release.Q720, release.Q900:
		return ScoreQualityHD
	default:
		return ScoreQualityOther
	}
}

// Rejected reports whether any reject term matches a tag of info.
func Rejected(info *release.MediaInfo, reject []string) bool {
	tags := []string{
		info.Quality.String(),
		info.ReleaseType.String(),
		info.VideoCodec.String(),
		info.AudioCodec.String(),
		info.Container.String(),
	}
	for _, r := range reject {
		for _, tag := range tags {
			if Matches(tag, r) {
				return true
			}
		}
	}
	return false
}

// Score rates info against p and explains the result. A rejected release,
// or one whose quality is not in a non-empty Quality list, scores 0.
func Score(info *release.MediaInfo, p Profile) (int, []Bonus) {
	if Rejected(info, p.Reject) {
		return 0, []Bonus{{
			Attribute: "Reject",
			Value:     "matched reject list",
			Position:  -1,
			Note:      "release rejected",
		}}
	}

	quality := scoreQuality(info.Quality, p.Quality)
	if quality.Bonus == 0 {
		return 0, []Bonus{quality}
	}

	breakdown := []Bonus{quality}
	total := quality.Bonus
	for _, b := range []Bonus{
		scoreAttribute("ReleaseType", info.ReleaseType.String(), p.ReleaseTypes, BonusReleaseType),
		scoreAttribute("VideoCodec", info.VideoCodec.String(), p.VideoCodecs, BonusVideoCodec),
		scoreAttribute("AudioCodec", info.AudioCodec.String(), p.AudioCodecs, BonusAudioCodec),
	} {
		if b.Value == "" {
			continue
		}
		breakdown = append(breakdown, b)
		total += b.Bonus
	}
	return total, breakdown
}

func scoreQuality(q release.Quality, prefs []string) Bonus {
	b := Bonus{
		Attribute: "Quality",
		Value:     q.String(),
		Position:  -1,
		Bonus:     QualityBaseScore(q),
	}
	if len(prefs) == 0 {
		b.Note = "no restrictions"
		return b
	}
	for i, pref := range prefs {
		if Matches(b.Value, pref) {
			b.Position = i
			b.Note = fmt.Sprintf("#%d choice", i+1)
			return b
		}
	}
	b.Bonus = 0
	b.Note = "not in allowed list"
	return b
}

// scoreAttribute awards base, scaled down 20% per preference position.
func scoreAttribute(attr, value string, prefs []string, base int) Bonus {
	b := Bonus{Attribute: attr, Value: value, Position: -1}
	if value == "" || len(prefs) == 0 {
		return b
	}
	for i, pref := range prefs {
		if Matches(value, pref) {
			b.Position = i
			b.Bonus = base * max(5-i, 0) / 5
			b.Note = fmt.Sprintf("#%d choice", i+1)
			return b
		}
	}
	b.Note = "not in preference list"
	return b
}
