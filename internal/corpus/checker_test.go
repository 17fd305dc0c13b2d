package corpus_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/vidocq/internal/corpus"
	"github.com/vmunix/vidocq/internal/corpus/mocks"
	"github.com/vmunix/vidocq/internal/logging"
	"github.com/vmunix/vidocq/pkg/release"
)

const hercules = "Hercules.2014.EXTENDED.1080p.WEB-DL.DD5.1.H264-RARBG"

func TestChecker_Check_AllMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSnapshots(ctrl)
	store.EXPECT().
		List(gomock.Any()).
		Return([]*corpus.Entry{
			{Name: hercules, Info: release.Parse(hercules)},
			{Name: hercules, Hint: release.MediaTypeEpisode, Info: release.ParseWithOptions(hercules, release.Options{MediaType: release.MediaTypeEpisode})},
		}, nil)

	report, err := corpus.NewChecker(store, logging.Discard()).Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Checked)
	assert.True(t, report.OK())
}

func TestChecker_Check_Mismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSnapshots(ctrl)

	stale := *release.Parse(hercules)
	stale.ReleaseGroup = "RARBG-OLD"
	stale.Year = 2013

	store.EXPECT().
		List(gomock.Any()).
		Return([]*corpus.Entry{{Name: hercules, Info: &stale}}, nil)

	report, err := corpus.NewChecker(store, logging.Discard()).Check(context.Background())
	require.NoError(t, err)
	require.False(t, report.OK())
	require.Len(t, report.Failures, 1)

	f := report.Failures[0]
	assert.Equal(t, hercules, f.Name)
	assert.Equal(t, []corpus.FieldDiff{
		{Field: "year", Want: "2013", Got: "2014"},
		{Field: "release_group", Want: "RARBG-OLD", Got: "RARBG"},
	}, f.Diffs)
	assert.Equal(t, 2014, f.Got.Year)
}

func TestChecker_Check_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSnapshots(ctrl)
	store.EXPECT().
		List(gomock.Any()).
		Return(nil, errors.New("database is locked"))

	_, err := corpus.NewChecker(store, nil).Check(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}

func TestChecker_Accept(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSnapshots(ctrl)

	got := release.Parse(hercules)
	report := &corpus.Report{
		Checked:  1,
		Failures: []corpus.Failure{{Name: hercules, Hint: release.MediaTypeMovie, Got: got}},
	}

	store.EXPECT().
		Record(gomock.Any(), hercules, release.MediaTypeMovie, got).
		Return(&corpus.Entry{ID: 1, Name: hercules}, nil)

	require.NoError(t, corpus.NewChecker(store, logging.Discard()).Accept(context.Background(), report))
}

func TestChecker_Accept_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSnapshots(ctrl)

	report := &corpus.Report{Failures: []corpus.Failure{
		{Name: "a", Got: &release.MediaInfo{}},
		{Name: "b", Got: &release.MediaInfo{}},
	}}
	store.EXPECT().
		Record(gomock.Any(), "a", gomock.Any(), gomock.Any()).
		Return(nil, corpus.ErrConstraint)

	err := corpus.NewChecker(store, logging.Discard()).Accept(context.Background(), report)
	assert.ErrorIs(t, err, corpus.ErrConstraint)
}

func TestChecker_RoundTripWithStore(t *testing.T) {
	ctx := context.Background()
	s, err := corpus.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	stale := *release.Parse(hercules)
	stale.Title = "Hercules Extended"
	_, err = s.Record(ctx, hercules, release.MediaTypeUnknown, &stale)
	require.NoError(t, err)

	checker := corpus.NewChecker(s, logging.Discard())
	report, err := checker.Check(ctx)
	require.NoError(t, err)
	require.Len(t, report.Failures, 1)

	require.NoError(t, checker.Accept(ctx, report))

	report, err = checker.Check(ctx)
	require.NoError(t, err)
	assert.True(t, report.OK())
}
