package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseYear(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1919", 1919},
		{"2030", 2030},
		{"(1920)", 1920},
		{"2012", 2012},
		{"2011 2013 (2012) (2015)", 2012},
		{"2012 2009 S01E02 2015", 2009},
		{"1080p.x264", 0},
		{"Movie.12014.mkv", 0},
		{"1899 2100", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseYear(tt.input))
		})
	}
}

func TestParseSeasonEpisode(t *testing.T) {
	inputs := []string{
		"+2x5",
		"+2X5",
		"2x05",
		"+02x05",
		"+2X05",
		"+02x5",
		"S02E05",
		"s02e05",
		"s02e5",
		"s2e05",
		"s02ep05",
		"s2EP5",
		"-s02e05",
		"-s002e005",
		"S2 - 05",
		"-2x05",
		"Season 02 - Episode 5",
		"Show.S02.E05.720p",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			season, episode := parseSeasonEpisode(input)
			assert.Equal(t, 2, season, "season")
			assert.Equal(t, 5, episode, "episode")
		})
	}
}

func TestParseSeasonEpisode_Partial(t *testing.T) {
	tests := []struct {
		input       string
		wantSeason  int
		wantEpisode int
	}{
		{"Series/Doctor Who (2005)/Season 06/Doctor Who (2005) - E01.avi", 6, 1},
		{"Show Season 3 Complete", 3, 0},
		{"Show Episode 12", 0, 12},
		{"Movie.1920x1080.mkv", 0, 0},
		{"Ocean's.8.2018.1080p.BluRay.x264-SPARKS", 0, 0},
		{"Marvel's E12", 0, 12},
		{"Hercules.2014.EXTENDED.1080p.WEB-DL.DD5.1.H264-RARBG", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			season, episode := parseSeasonEpisode(tt.input)
			assert.Equal(t, tt.wantSeason, season, "season")
			assert.Equal(t, tt.wantEpisode, episode, "episode")
		})
	}
}

func TestParseQuality(t *testing.T) {
	tests := map[string]Quality{
		"480p":       Q480,
		"480px":      Q480,
		"480i":       Q480,
		"720x480":    Q480,
		"852x480":    Q480,
		"576p":       Q576,
		"704x576":    Q576,
		"720p":       Q720,
		"720pHD":     Q720,
		"1280x720":   Q720,
		"900i":       Q900,
		"1600x900":   Q900,
		"1080p":      Q1080,
		"1080phd":    Q1080,
		"1080i":      Q1080,
		"1920x1080":  Q1080,
		"2560x1080":  Q1080,
		"1440p":      Q1440,
		"3440x1440":  Q1440,
		"2160p":      Q2160,
		"3840x2160":  Q2160,
		"5120x2880":  Q5K,
		"4320p":      Q8K,
		"7680x4320":  Q8K,
		"15360x8640": Q16K,
		"Movie 1999": QualityUnknown,
		"1000p":      QualityUnknown,
		"":           QualityUnknown,
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, parseQuality(input))
		})
	}
}

func TestParseQuality_TakesMaximum(t *testing.T) {
	assert.Equal(t, Q1080, parseQuality("720p 1920x1080"))
	assert.Equal(t, Q2160, parseQuality("2160p 1280x720"))
}

func TestResolveBoundary(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		year      int
		wantTitle int
		wantGroup int
		wantFirst int
	}{
		{"no markers", "Some Movie", 0, 10, 0, -1},
		{"year only", "Movie 2014 x264-GRP", 2014, 6, 6, 6},
		{"year and episode", "The Flash 2014 S01E04 HDTV", 2014, 10, 15, 10},
		{"marker at start", "S01E04.mkv", 0, 10, 0, 0},
		{"last year occurrence", "2014 Movie 2014", 2014, 11, 11, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := resolveBoundary(tt.input, tt.year)
			assert.Equal(t, tt.wantTitle, b.title, "title cut")
			assert.Equal(t, tt.wantGroup, b.group, "group cut")
			assert.Equal(t, tt.wantFirst, b.first, "first marker")
		})
	}
}

func TestTitleSegment(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		year     int
		want     string
	}{
		{
			name:     "filename with release name",
			segments: []string{"Rick.and.Morty.S03E10.720p.HDTV.x264-BATV[eztv].mkv", "s03e10", "season_3"},
			want:     "Rick.and.Morty.S03E10.720p.HDTV.x264-BATV[eztv].mkv",
		},
		{
			name:     "upper case beats position",
			segments: []string{"sparks-django-xvid.cd1.avi", "Django Unchained", "movies"},
			want:     "Django Unchained",
		},
		{
			name:     "bare episode marker skipped",
			segments: []string{"S01E02.mkv", "season_1", "The Expanse"},
			want:     "The Expanse",
		},
		{
			name:     "lower case only falls back to descriptive",
			segments: []string{"s01e02.mkv", "the expanse"},
			want:     "the expanse",
		},
		{
			name:     "nothing descriptive",
			segments: []string{"s01e02.mkv", "season_1"},
			want:     "s01e02.mkv",
		},
		{
			name:     "empty",
			segments: nil,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titleSegment(tt.segments, tt.year))
		})
	}
}

func TestParseTitle(t *testing.T) {
	tests := map[string]string{
		"Ant-Man.2015.3D.1080p.BRRip.Half-SBS.x264.AAC-m2g":                "Ant-Man",
		"Ice.Age.Collision.Course.2016.READNFO.720p.HDRIP.X264.AC3.TiTAN":  "Ice Age Collision Course",
		"Red.Sonja.Queen.Of.Plagues.2016.BDRip.x264-W4F[PRiME]":            "Red Sonja Queen Of Plagues",
		"The Purge: Election Year (2016) HC - 720p HDRiP - 900MB - ShAaNi": "The Purge: Election Year",
		"War Dogs (2016) HDTS 600MB - NBY":                                 "War Dogs",
		"[HorribleSubs] Mob Psycho 100 S2 - 10 [720p].mkv":                 "Mob Psycho 100",
		"Marvel's.Agents.of.S.H.I.E.L.D.S02E01.Shadows.1080p.WEB-DL.DD5.1": "Marvel's Agents of S H I E L D",
		"Downton Abbey 5x06 HDTV x264-FoV [eztv]":                          "Downton Abbey",
		"Some_Home_Video.mkv":                                              "Some Home Video",
		"Ocean's.8.2018.1080p.BluRay.x264-SPARKS":                          "Ocean's 8",
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, parseTitle(input, parseYear(input)))
		})
	}
}

func TestParseGroup(t *testing.T) {
	tests := map[string]string{
		"Movie.Name.2018 - ReleaseGroup":                                   "ReleaseGroup",
		"[HorribleSubs] One Punch Man S2 - 03 [1080p].mkv":                 "HorribleSubs",
		"Red.Sonja.Queen.Of.Plagues.2016.BDRip.x264-W4F[PRiME]":            "W4F[PRiME]",
		"WWE Hell in a Cell 2014 PPV WEB-DL x264-WD -={SPARROW}=-":         "WD -={SPARROW}=-",
		"The Simpsons S26E05 HDTV x264 PROPER-LOL [eztv]":                  "LOL [eztv]",
		"Into.The.Storm.2014.1080p.WEB-DL.AAC2.0.H264-RARBG.mkv":           "RARBG",
		"Gotham.S01E05.Viper.WEB-DL.x264.AAC":                              "",
		"Dinosaur 13 2014 WEBrip XviD AC3 MiLLENiUM":                       "",
		"The Purge: Election Year (2016) HC - 720p HDRiP - 900MB - ShAaNi": "ShAaNi",
		"Movie 2014 - 1080p":                                               "",
		"Show S01E02 - 720p":                                               "",
		"Movie.2014.1080p-GRP":                                             "GRP",
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			b := resolveBoundary(input, parseYear(input))
			assert.Equal(t, want, parseGroup(input, b))
		})
	}
}
