package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/vidocq/pkg/release"
)

// MatchOutput is the match command's JSON shape.
type MatchOutput struct {
	Name   string              `json:"name"`
	Parsed *release.MediaInfo  `json:"parsed"`
	Match  release.MatchResult `json:"match"`
}

func newMatchCmd(g *globalOptions) *cobra.Command {
	var candidatesFile, mediaType string
	cmd := &cobra.Command{
		Use:   "match [flags] <name> [candidate]...",
		Short: "Match a parsed title against candidate titles",
		Long: `Parse a name and pick the closest candidate title.

Candidates ending in "(YYYY)" gain a bonus when the year agrees with the
parsed year.

Examples:
  vidocq match "Rocky.II.1979.1080p.BluRay.x264-GRP" "Rocky (1976)" "Rocky II (1979)"
  vidocq match --candidates titles.txt "Alien.3.1992.720p.BluRay-GRP"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.load(cmd)
			if err != nil {
				return err
			}
			hint, err := resolveHint(mediaType, e.cfg)
			if err != nil {
				return err
			}

			name, candidates := args[0], args[1:]
			if candidatesFile != "" {
				fromFile, err := collectNames(cmd.InOrStdin(), candidatesFile, nil)
				if err != nil {
					return err
				}
				candidates = append(candidates, fromFile...)
			}
			if len(candidates) == 0 {
				return fmt.Errorf("no candidates: pass them as arguments or with --candidates")
			}

			info := release.ParseWithOptions(name, release.Options{MediaType: hint, Logger: e.logger})
			result := release.MatchInfo(info, candidates)
			e.logger.Debug("matched", "title", info.Title, "candidates", len(candidates), "score", result.Score)

			out := cmd.OutOrStdout()
			if g.jsonOutput {
				return writeJSON(out, MatchOutput{Name: name, Parsed: info, Match: result})
			}

			fmt.Fprintf(out, "Parsed:      %s\n", valueOrEmpty(info.Title))
			fmt.Fprintf(out, "Match:       %s\n", valueOrEmpty(result.Title))
			fmt.Fprintf(out, "Score:       %.3f\n", result.Score)
			fmt.Fprintf(out, "Confidence:  %s\n", result.Confidence)
			return nil
		},
	}
	cmd.Flags().StringVar(&candidatesFile, "candidates", "", "Read candidate titles from file (one per line, - for stdin)")
	cmd.Flags().StringVarP(&mediaType, "type", "t", "", "Media type hint: movie or episode")
	return cmd
}
