package release

// releaseTypes is ordered by priority: disc rips before the broad TV bucket,
// and the loose two-letter theater markers last.
var releaseTypes = []candidate[ReleaseType]{
	{BluRayRip, patterns(
		`(?i)Blu[-\s]?Ray`,
		`(?i)B[RD](Rip|MV|R|25|50|5|9)`,
	)},
	{DVDRip, patterns(
		`(?i)DVDR(IP)?`,
		`(?i)DVDMux`,
		`(?i)DVD-?(Full|\d{1,2})`,
	)},
	{WEBDL, patterns(
		`(?i)WEB[-\s]?DL`,
		`(?i)WEB[-\s]?Rip`,
		`(?i)WEB[-\s]?Cap`,
	)},
	{HDTV, patterns(
		`(HD|PD)TV`,
		`(?i)(HD|DS|SAT|DTH|DVB|TV|HDTV)Rip`,
		`DSR`,
	)},
	{Screener, patterns(
		`(?i)(DVD|BD)?SCR(EENER)?`,
		`(?i)DDC`,
	)},
	// TC and TS are case-sensitive whole words: "ts" is common inside
	// words and "TS" inside DTS.
	{Telecine, patterns(
		`\b(HD)?TC\b`,
		`(?i)TELECINE`,
	)},
	{Telesync, patterns(
		`\b(HD)?TS\b`,
		`(?i)TELESYNC`,
		`(?i)PDVD`,
		`(?i)PreDVDRip`,
	)},
	{Cam, patterns(
		`(?i)(HD)?CAM(RIP)?`,
	)},
}

func parseReleaseType(s string) (ReleaseType, string) {
	return classify(s, releaseTypes)
}
