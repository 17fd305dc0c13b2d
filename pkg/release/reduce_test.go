package release

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	webDLRegex = regexp.MustCompile(`(?i)WEB[-\s]?DL`)
	x264Regex  = regexp.MustCompile(`(?i)x264`)
)

func TestReduce(t *testing.T) {
	alts := patterns(`(?i)x264`, `(?i)h\.?264`)

	tests := []struct {
		name        string
		input       string
		wantMatched bool
		wantResidue string
	}{
		{"no match", "Movie.2014.1080p", false, "Movie.2014.1080p"},
		{"first alternative", "Movie.x264-GRP", true, "Movie.-GRP"},
		{"all occurrences removed", "x264.Movie.X264", true, ".Movie."},
		{"only first matching alternative", "x264.H.264", true, ".H.264"},
		{"second alternative", "Movie.H.264-GRP", true, "Movie.-GRP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, residual := reduce(tt.input, alts)
			assert.Equal(t, tt.wantMatched, matched)
			assert.Equal(t, tt.wantResidue, residual)
		})
	}
}

func TestReduce_Idempotent(t *testing.T) {
	inputs := []string{
		"Hercules.2014.EXTENDED.1080p.WEB-DL.DD5.1.H264-RARBG",
		"WEB DL WEB-DL webdl",
		"Movie.x264.x264.X264",
	}
	alts := []*regexp.Regexp{webDLRegex, x264Regex}

	for _, input := range inputs {
		for _, re := range alts {
			_, residual := reduce(input, []*regexp.Regexp{re})
			matched, again := reduce(residual, []*regexp.Regexp{re})
			assert.False(t, matched, "%q still matches after reduction", residual)
			assert.Equal(t, residual, again)
		}
	}
}

func TestReduce_NeverGrows(t *testing.T) {
	working := "The.Walking.Dead.S05E03.1080p.WEB-DL.DD5.1.H.264-Cyphanix[rartv].mkv"
	prev := len(working)

	_, working = parseReleaseType(working)
	assert.LessOrEqual(t, len(working), prev)
	prev = len(working)

	_, working = parseVideoCodec(working)
	assert.LessOrEqual(t, len(working), prev)
	prev = len(working)

	_, _, working = parseAudio(working)
	assert.LessOrEqual(t, len(working), prev)
	prev = len(working)

	_, working = parseContainer(working)
	assert.LessOrEqual(t, len(working), prev)
	assert.Equal(t, "The.Walking.Dead.S05E03.1080p...H.-Cyphanix[rartv].", working)
}

func TestClassify_FirstCandidateWins(t *testing.T) {
	codec, _, residual := parseAudio("DD+")
	assert.Equal(t, DolbyDigitalPlus, codec)
	assert.Empty(t, residual)

	codec, _, _ = parseAudio("DTS-HD.MA")
	assert.Equal(t, DTSHD, codec)

	rt, _ := parseReleaseType("Hercules (2014) WEBDL DVDRip XviD-MAX")
	assert.Equal(t, DVDRip, rt)

	vc, _ := parseVideoCodec("HEVC.x264")
	assert.Equal(t, H265, vc)
}
