package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/vidocq/internal/batch"
	"github.com/vmunix/vidocq/internal/corpus"
	"github.com/vmunix/vidocq/pkg/release"
)

// errCorpusMismatch makes `corpus check` exit non-zero.
var errCorpusMismatch = errors.New("corpus check failed")

func newCorpusCmd(g *globalOptions) *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Record names and check that they still parse the same",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "Corpus database path (default: [corpus] path)")

	open := func(c *cobra.Command) (*env, *corpus.Store, error) {
		e, err := g.load(c)
		if err != nil {
			return nil, nil, err
		}
		path := dbPath
		if path == "" {
			path = e.cfg.Corpus.Path
		}
		store, err := corpus.Open(c.Context(), path)
		if err != nil {
			return nil, nil, fmt.Errorf("corpus: %w", err)
		}
		e.logger.Debug("corpus opened", "path", path)
		return e, store, nil
	}

	cmd.AddCommand(
		newCorpusRecordCmd(g, open),
		newCorpusCheckCmd(g, open),
		newCorpusListCmd(g, open),
		newCorpusDeleteCmd(open),
	)
	return cmd
}

type openFunc func(*cobra.Command) (*env, *corpus.Store, error)

func newCorpusRecordCmd(g *globalOptions, open openFunc) *cobra.Command {
	var mediaType string
	cmd := &cobra.Command{
		Use:   "record [flags] <file>",
		Short: "Parse the names in a file and store the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, store, err := open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			hint, err := release.ParseMediaType(mediaType)
			if err != nil {
				return fmt.Errorf("--type: %w", err)
			}
			names, err := collectNames(cmd.InOrStdin(), args[0], nil)
			if err != nil {
				return err
			}

			results, err := batch.NewRunner(e.cfg.Parser.Workers, release.Options{MediaType: hint}, e.logger).Run(cmd.Context(), names)
			if err != nil {
				return err
			}
			if err := store.RecordAll(cmd.Context(), hint, results); err != nil {
				return err
			}

			e.logger.Info("corpus recorded", "names", len(results), "hint", hint.String())
			if g.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]int{"recorded": len(results)})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d names\n", len(results))
			return nil
		},
	}
	cmd.Flags().StringVarP(&mediaType, "type", "t", "", "Media type hint recorded with each name")
	return cmd
}

func newCorpusCheckCmd(g *globalOptions, open openFunc) *cobra.Command {
	var update bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Re-parse every recorded name and report differences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, store, err := open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			checker := corpus.NewChecker(store, e.logger)
			report, err := checker.Check(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if g.jsonOutput {
				if err := writeJSON(out, report); err != nil {
					return err
				}
			} else {
				printReport(out, report)
			}

			if report.OK() {
				return nil
			}
			if update {
				if err := checker.Accept(cmd.Context(), report); err != nil {
					return err
				}
				e.logger.Info("corpus updated", "names", len(report.Failures))
				return nil
			}
			return fmt.Errorf("%w: %d of %d names differ", errCorpusMismatch, len(report.Failures), report.Checked)
		},
	}
	cmd.Flags().BoolVar(&update, "update", false, "Record the current results for names that differ")
	return cmd
}

func printReport(w io.Writer, report *corpus.Report) {
	if report.OK() {
		fmt.Fprintf(w, "All %d names parse as recorded\n", report.Checked)
		return
	}

	rows := make([][]string, 0, len(report.Failures))
	for _, f := range report.Failures {
		for _, d := range f.Diffs {
			rows = append(rows, []string{f.Name, f.Hint.String(), d.Field, d.Want, d.Got})
		}
	}
	renderTable(w, []string{"Name", "Hint", "Field", "Recorded", "Now"}, rows, nil)
	fmt.Fprintf(w, "%d of %d names differ\n", len(report.Failures), report.Checked)
}

func newCorpusListCmd(g *globalOptions, open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, store, err := open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			entries, err := store.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if g.jsonOutput {
				if entries == nil {
					entries = []*corpus.Entry{}
				}
				return writeJSON(out, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "Corpus is empty")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.Name,
					e.Hint.String(),
					e.Info.Title,
					e.Info.MediaType.String(),
					e.RecordedAt.Local().Format(time.DateTime),
				})
			}
			renderTable(out, []string{"Name", "Hint", "Title", "Type", "Recorded"}, rows, nil)
			return nil
		},
	}
}

func newCorpusDeleteCmd(open openFunc) *cobra.Command {
	var mediaType string
	cmd := &cobra.Command{
		Use:   "delete [flags] <name>",
		Short: "Remove a recorded name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			hint, err := release.ParseMediaType(mediaType)
			if err != nil {
				return fmt.Errorf("--type: %w", err)
			}
			if err := store.Delete(cmd.Context(), args[0], hint); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVarP(&mediaType, "type", "t", "", "Media type hint the name was recorded with")
	return cmd
}
