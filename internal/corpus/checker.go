package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/vmunix/vidocq/pkg/release"
)

//go:generate mockgen -destination=mocks/mock_snapshots.go -package=mocks . Snapshots

// Snapshots is the part of Store the checker needs.
type Snapshots interface {
	List(ctx context.Context) ([]*Entry, error)
	Record(ctx context.Context, name string, hint release.MediaType, info *release.MediaInfo) (*Entry, error)
}

// FieldDiff is one field whose value changed since it was recorded.
type FieldDiff struct {
	Field string `json:"field"`
	Want  string `json:"want"`
	Got   string `json:"got"`
}

// Failure is a recorded name that no longer parses the same way.
type Failure struct {
	Name  string             `json:"name"`
	Hint  release.MediaType  `json:"hint"`
	Diffs []FieldDiff        `json:"diffs"`
	Got   *release.MediaInfo `json:"-"`
}

// Report summarizes a corpus check.
type Report struct {
	Checked  int       `json:"checked"`
	Failures []Failure `json:"failures"`
}

// OK reports whether every entry still parses as recorded.
func (r *Report) OK() bool { return len(r.Failures) == 0 }

// Checker re-parses recorded names and compares the results.
type Checker struct {
	store  Snapshots
	logger *slog.Logger
}

// NewChecker creates a new checker.
func NewChecker(store Snapshots, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{store: store, logger: logger}
}

// Check re-parses every entry with its recorded hint.
func (c *Checker) Check(ctx context.Context) (*Report, error) {
	entries, err := c.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("check corpus: %w", err)
	}

	report := &Report{}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report.Checked++

		got := release.ParseWithOptions(e.Name, release.Options{MediaType: e.Hint})
		diffs := Diff(e.Info, got)
		if len(diffs) == 0 {
			continue
		}
		c.logger.Debug("corpus mismatch", "name", e.Name, "hint", e.Hint.String(), "fields", len(diffs))
		report.Failures = append(report.Failures, Failure{Name: e.Name, Hint: e.Hint, Diffs: diffs, Got: got})
	}

	c.logger.Info("corpus checked", "checked", report.Checked, "failed", len(report.Failures))
	return report, nil
}

// Accept records the current parse of every failure, making it the new
// expectation.
func (c *Checker) Accept(ctx context.Context, report *Report) error {
	for _, f := range report.Failures {
		if _, err := c.store.Record(ctx, f.Name, f.Hint, f.Got); err != nil {
			return fmt.Errorf("accept %q: %w", f.Name, err)
		}
	}
	return nil
}

type field struct {
	name  string
	value func(*release.MediaInfo) string
}

var fields = []field{
	{"title", func(m *release.MediaInfo) string { return m.Title }},
	{"clean_title", func(m *release.MediaInfo) string { return m.CleanTitle }},
	{"year", func(m *release.MediaInfo) string { return itoa(m.Year) }},
	{"season", func(m *release.MediaInfo) string { return itoa(m.Season) }},
	{"episode", func(m *release.MediaInfo) string { return itoa(m.Episode) }},
	{"quality", func(m *release.MediaInfo) string { return m.Quality.String() }},
	{"release_type", func(m *release.MediaInfo) string { return m.ReleaseType.String() }},
	{"video_codec", func(m *release.MediaInfo) string { return m.VideoCodec.String() }},
	{"audio_codec", func(m *release.MediaInfo) string { return m.AudioCodec.String() }},
	{"audio_channels", func(m *release.MediaInfo) string { return m.AudioChannels.String() }},
	{"container", func(m *release.MediaInfo) string { return m.Container.String() }},
	{"release_group", func(m *release.MediaInfo) string { return m.ReleaseGroup }},
	{"media_type", func(m *release.MediaInfo) string { return m.MediaType.String() }},
}

func itoa(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// Diff lists the fields that differ between want and got. A nil record
// compares as an empty one.
func Diff(want, got *release.MediaInfo) []FieldDiff {
	if want == nil {
		want = &release.MediaInfo{}
	}
	if got == nil {
		got = &release.MediaInfo{}
	}

	var diffs []FieldDiff
	for _, f := range fields {
		w, g := f.value(want), f.value(got)
		if w != g {
			diffs = append(diffs, FieldDiff{Field: f.name, Want: w, Got: g})
		}
	}
	return diffs
}
