package release

import "path"

// containers only match whole tokens so words like "Movie" or "Logan" are
// not taken for an extension.
var containers = []candidate[Container]{
	{AVI, patterns(`(?i)\bavi\b`)},
	{Matroska, patterns(`(?i)\bmk[vas]\b`, `(?i)\bmk3d\b`, `(?i)\bwebm\b`)},
	{MP4, patterns(`(?i)\b(mp4|m4[abprv])\b`)},
	{MXF, patterns(`(?i)\bmxf\b`)},
	{Ogg, patterns(`(?i)\bog[gvaxm]\b`, `(?i)\bopus\b`, `(?i)\bspx\b`)},
	{QuickTime, patterns(`(?i)\bmov\b`, `(?i)\bqt\b`)},
}

func parseContainer(s string) (Container, string) {
	return classify(s, containers)
}

// trimContainerExt drops a trailing extension when it names a known container.
func trimContainerExt(name string) string {
	ext := path.Ext(name)
	if len(ext) < 2 {
		return name
	}
	if c, _ := parseContainer(ext[1:]); c == ContainerUnknown {
		return name
	}
	return name[:len(name)-len(ext)]
}
