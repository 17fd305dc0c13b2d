// Package batch parses many media names concurrently.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/vidocq/pkg/release"
)

// Result pairs an input name with its parsed record.
type Result struct {
	Name string             `json:"name"`
	Info *release.MediaInfo `json:"info"`
}

// Runner parses names with a bounded number of goroutines.
type Runner struct {
	workers int
	opts    release.Options
	logger  *slog.Logger
}

// NewRunner creates a new runner. workers < 1 means one per CPU.
func NewRunner(workers int, opts release.Options, logger *slog.Logger) *Runner {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		workers: workers,
		opts:    opts,
		logger:  logger,
	}
}

// Run parses every name and returns results in input order.
// It stops early and returns the context error if ctx is canceled.
func (r *Runner) Run(ctx context.Context, names []string) ([]Result, error) {
	results := make([]Result, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, name := range names {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Result{Name: name, Info: release.ParseWithOptions(name, r.opts)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.logger.Debug("batch parsed", "names", len(names), "workers", r.workers)
	return results, nil
}

// ReadNames reads one name per line. Blank lines and lines starting
// with # are skipped; surrounding whitespace is trimmed.
func ReadNames(rd io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read names: %w", err)
	}
	return names, nil
}
