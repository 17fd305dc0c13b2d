package release

// videoCodecs checks the modern codec markers before the legacy ones.
var videoCodecs = []candidate[VideoCodec]{
	{H265, patterns(`265`, `(?i)HEVC`)},
	{H264, patterns(`(?i)MPE?G-?4`, `264`, `(?i)AVC(HD)?`)},
	{H263, patterns(`263`)},
	{DIVX, patterns(`(?i)DIV\s?X`)},
	{XVID, patterns(`(?i)X\s?VID`)},
	{H262, patterns(`(?i)MPE?G-?2`, `262`)},
}

func parseVideoCodec(s string) (VideoCodec, string) {
	return classify(s, videoCodecs)
}
