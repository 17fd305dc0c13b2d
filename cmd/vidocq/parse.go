package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/vidocq/internal/batch"
	"github.com/vmunix/vidocq/internal/config"
	"github.com/vmunix/vidocq/pkg/release"
	"github.com/vmunix/vidocq/pkg/release/scoring"
)

// ParseResult is one parsed name with its optional score breakdown.
type ParseResult struct {
	Name      string             `json:"name"`
	Info      *release.MediaInfo `json:"info"`
	Score     *int               `json:"score,omitempty"`
	Profile   string             `json:"profile,omitempty"`
	Breakdown []scoring.Bonus    `json:"breakdown,omitempty"`
}

type parseOptions struct {
	mediaType string
	file      string
	profile   string
}

func newParseCmd(g *globalOptions) *cobra.Command {
	opts := &parseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [flags] <name>...",
		Short: "Parse media file or release names",
		Long: `Parse media file or release names to extract metadata.

Examples:
  vidocq parse "The.Walking.Dead.S05E03.720p.HDTV.x264-ASAP[ettv]"
  vidocq parse --type movie "Hercules (2014) 1080p BrRip H264 - YIFY"
  vidocq parse --score hd "Movie.2024.1080p.WEB-DL.x264-GROUP"
  vidocq parse --file names.txt --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, g, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.mediaType, "type", "t", "", "Media type hint: movie or episode")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read names from file (one per line, - for stdin)")
	cmd.Flags().StringVar(&opts.profile, "score", "", "Score against quality profile")
	return cmd
}

func runParse(cmd *cobra.Command, g *globalOptions, opts *parseOptions, args []string) error {
	e, err := g.load(cmd)
	if err != nil {
		return err
	}

	names, err := collectNames(cmd.InOrStdin(), opts.file, args)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("usage: vidocq parse <name> or vidocq parse --file <filename>")
	}

	hint, err := resolveHint(opts.mediaType, e.cfg)
	if err != nil {
		return err
	}

	var profile *scoring.Profile
	if opts.profile != "" {
		p, ok := e.cfg.Quality.Profiles[opts.profile]
		if !ok {
			available := e.cfg.ProfileNames()
			sort.Strings(available)
			return fmt.Errorf("profile '%s' not found. Available: %s", opts.profile, strings.Join(available, ", "))
		}
		sp := p.Scoring()
		profile = &sp
	}

	runner := batch.NewRunner(e.cfg.Parser.Workers, release.Options{MediaType: hint, Logger: e.logger}, e.logger)
	parsed, err := runner.Run(cmd.Context(), names)
	if err != nil {
		return err
	}

	results := make([]ParseResult, len(parsed))
	for i, r := range parsed {
		results[i] = ParseResult{Name: r.Name, Info: r.Info}
		if profile != nil {
			score, breakdown := scoring.Score(r.Info, *profile)
			results[i].Score = &score
			results[i].Profile = opts.profile
			results[i].Breakdown = breakdown
		}
	}

	out := cmd.OutOrStdout()
	if g.jsonOutput {
		// For single result, output object; for multiple, output array
		if len(results) == 1 {
			return writeJSON(out, results[0])
		}
		return writeJSON(out, results)
	}

	if len(results) == 1 {
		printHumanReadable(out, results[0])
		return nil
	}
	printResultTable(out, results)
	return nil
}

// collectNames returns the names from args, or from file when set.
func collectNames(stdin io.Reader, file string, args []string) ([]string, error) {
	if file == "" {
		return args, nil
	}
	if file == "-" {
		return batch.ReadNames(stdin)
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return batch.ReadNames(f)
}

// resolveHint prefers the --type flag over [parser] media_type.
func resolveHint(flag string, cfg *config.Config) (release.MediaType, error) {
	if flag == "" {
		flag = cfg.Parser.MediaType
	}
	hint, err := release.ParseMediaType(flag)
	if err != nil {
		return release.MediaTypeUnknown, fmt.Errorf("--type: %w", err)
	}
	return hint, nil
}

// printHumanReadable outputs the parse result in a human-readable format.
func printHumanReadable(w io.Writer, result ParseResult) {
	info := result.Info

	fmt.Fprintf(w, "Title:       %s\n", valueOrEmpty(info.Title))
	if info.Year > 0 {
		fmt.Fprintf(w, "Year:        %d\n", info.Year)
	}
	if info.Season > 0 || info.Episode > 0 {
		fmt.Fprintf(w, "Season:      %d\n", info.Season)
		fmt.Fprintf(w, "Episode:     %d\n", info.Episode)
	}
	fmt.Fprintf(w, "Type:        %s\n", valueOrEmpty(info.MediaType.String()))
	fmt.Fprintf(w, "Quality:     %s\n", valueOrEmpty(info.Quality.String()))
	fmt.Fprintf(w, "Release:     %s\n", valueOrEmpty(info.ReleaseType.String()))
	fmt.Fprintf(w, "Video:       %s\n", valueOrEmpty(info.VideoCodec.String()))
	if info.AudioCodec != release.AudioCodecUnknown || info.AudioChannels != release.AudioChannelsUnknown {
		fmt.Fprintf(w, "Audio:       %s\n", strings.TrimSpace(info.AudioCodec.String()+" "+info.AudioChannels.String()))
	}
	if info.Container != release.ContainerUnknown {
		fmt.Fprintf(w, "Container:   %s\n", info.Container.String())
	}
	if info.ReleaseGroup != "" {
		fmt.Fprintf(w, "Group:       %s\n", info.ReleaseGroup)
	}
	fmt.Fprintf(w, "CleanTitle:  %s\n", valueOrEmpty(info.CleanTitle))

	// Print score breakdown if available
	if result.Score != nil && len(result.Breakdown) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Score Breakdown (profile: %s):\n", result.Profile)
		for _, b := range result.Breakdown {
			note := ""
			if b.Note != "" {
				note = fmt.Sprintf(", %s", b.Note)
			}
			fmt.Fprintf(w, "  %-12s (%s%s):  %+d\n", b.Attribute, b.Value, note, b.Bonus)
		}
		fmt.Fprintln(w, "  "+strings.Repeat("─", 37))
		fmt.Fprintf(w, "  Total:                           %d\n", *result.Score)
	}
}

func printResultTable(w io.Writer, results []ParseResult) {
	headers := []string{"Title", "Year", "S", "E", "Quality", "Release", "Video", "Audio", "Group"}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight}
	scored := len(results) > 0 && results[0].Score != nil
	if scored {
		headers = append(headers, "Score")
		aligns = append(aligns, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight)
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		info := r.Info
		row := []string{
			info.Title,
			numberOrEmpty(info.Year),
			numberOrEmpty(info.Season),
			numberOrEmpty(info.Episode),
			info.Quality.String(),
			info.ReleaseType.String(),
			info.VideoCodec.String(),
			info.AudioCodec.String(),
			info.ReleaseGroup,
		}
		if scored {
			row = append(row, fmt.Sprint(*r.Score))
		}
		rows = append(rows, row)
	}
	renderTable(w, headers, rows, aligns)
}
