package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vmunix/vidocq/internal/watch"
	"github.com/vmunix/vidocq/pkg/release"
)

func newWatchCmd(g *globalOptions) *cobra.Command {
	var mediaType string
	var existing bool
	cmd := &cobra.Command{
		Use:   "watch [flags] <dir>",
		Short: "Parse media files as they appear under a directory",
		Long: `Watch a directory tree and parse every new media file whose extension
is listed in [watch] extensions. Runs until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.load(cmd)
			if err != nil {
				return err
			}
			hint, err := resolveHint(mediaType, e.cfg)
			if err != nil {
				return err
			}

			w, err := watch.New(watch.Options{
				Extensions: e.cfg.Watch.Extensions,
				Parse:      release.Options{MediaType: hint},
				Existing:   existing,
			}, e.logger.With("component", "watch"))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			events := make(chan watch.Event)
			errc := make(chan error, 1)
			go func() {
				errc <- w.Run(ctx, args[0], events)
				close(events)
			}()

			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			for ev := range events {
				if g.jsonOutput {
					// one object per line
					if err := enc.Encode(ev); err != nil {
						return fmt.Errorf("encoding JSON: %w", err)
					}
					continue
				}
				fmt.Fprintf(out, "%s\n  %s\n", ev.Path, summary(ev))
			}

			if err := <-errc; err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&mediaType, "type", "t", "", "Media type hint: movie or episode")
	cmd.Flags().BoolVar(&existing, "existing", false, "Also parse files already present")
	return cmd
}

func summary(ev watch.Event) string {
	info := ev.Info
	s := valueOrEmpty(info.Title)
	if info.Year > 0 {
		s += fmt.Sprintf(" (%d)", info.Year)
	}
	if info.Season > 0 || info.Episode > 0 {
		s += fmt.Sprintf(" S%02dE%02d", info.Season, info.Episode)
	}
	for _, tag := range []string{info.Quality.String(), info.ReleaseType.String(), info.VideoCodec.String(), info.ReleaseGroup} {
		if tag != "" {
			s += " " + tag
		}
	}
	return s
}
