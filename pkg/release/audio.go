package release

// audioCodecs resolves overlapping vocabulary by checking the more specific
// marker first: DD+ before DD, DTS-HD before DTS, LPCM before PCM.
var audioCodecs = []candidate[AudioCodec]{
	{MP3, patterns(`(?i)MP[EG]?-?3`, `(?i)\blame3?`)},
	{DolbyDigitalPlus, patterns(`(?i)DD[P+]`, `(?i)E-?AC-?3`)},
	{DolbyDigital, patterns(
		`(?i)DD`,
		`(?i)DD5\.?1`,
		`(?i)Dolby[ ._-]?Digital`,
		`(?i)AC-?3(-hq)?`,
		`(?i)DD-?EX`,
		`(?i)-EX\b`,
	)},
	{DolbyAtmos, patterns(`(?i)(Dolby)?\s?Atmos(phere)?`)},
	{AAC, patterns(`(?i)AAC`)},
	{FLAC, patterns(`(?i)FLAC`)},
	{DTSHD, patterns(`(?i)DTS[- .]?HD[- .]?(MA)?`, `(?i)\bHRA?\b`, `(?i)DTSMA`)},
	{DTS, patterns(`(?i)DTS-?(ES)?`, `(?i)-ES\b`)},
	{DolbyTrueHD, patterns(`(?i)True[- .]?HD`)},
	{Opus, patterns(`(?i)OPUS`)},
	{Vorbis, patterns(`(?i)VORBIS`)},
	{LPCM, patterns(`(?i)LPCM`)},
	{PCM, patterns(`(?i)PCM`)},
}

var audioChannels = []candidate[AudioChannels]{
	{Mono, patterns(`(?i)1ch`, `(?i)mono`)},
	{Stereo, patterns(`(?i)2ch`, `(?i)2\.0`, `(?i)AAC2\.?0`, `(?i)stereo`)},
	{Chan51, patterns(`(?i)[56]ch`, `(?i)5\.1`, `(?i)DD5\.?1`, `(?i)True-?HD5\.?1`)},
	{Chan71, patterns(`(?i)[78]ch`, `(?i)7\.1`)},
}

// parseAudio classifies the codec and the channel layout. The layout is read
// before the codec is stripped so fused forms like DD51 and AAC20 keep it;
// the residual has both removed.
func parseAudio(s string) (AudioCodec, AudioChannels, string) {
	channels, _ := classify(s, audioChannels)
	codec, s := classify(s, audioCodecs)
	_, s = classify(s, audioChannels)
	return codec, channels, s
}
