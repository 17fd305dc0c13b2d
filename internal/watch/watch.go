// Package watch parses media files as they appear under a directory tree.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/vmunix/vidocq/pkg/release"
)

// Event is a media file that appeared and the record parsed from it.
type Event struct {
	Path string             `json:"path"`
	Info *release.MediaInfo `json:"info"`
}

// Options configures a Watcher.
type Options struct {
	Extensions []string // lower-case, with leading dot
	Parse      release.Options
	// Existing also emits files already present when watching starts.
	Existing bool
}

// Watcher recursively watches a directory for new media files.
type Watcher struct {
	watcher *fsnotify.Watcher
	exts    map[string]bool
	opts    Options
	logger  *slog.Logger

	root  string
	seen  map[string]bool
	ready chan struct{}
	once  sync.Once
}

// New creates a watcher. It must be started with Run.
func New(opts Options, logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	exts := make(map[string]bool, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		exts[strings.ToLower(ext)] = true
	}

	return &Watcher{
		watcher: fw,
		exts:    exts,
		opts:    opts,
		logger:  logger,
		seen:    make(map[string]bool),
		ready:   make(chan struct{}),
	}, nil
}

// Ready is closed once the initial directory walk has finished.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches root and sends an Event for every new media file until ctx
// is canceled. Non-fatal errors are logged. Run closes the watcher.
func (w *Watcher) Run(ctx context.Context, root string, out chan<- Event) error {
	defer func() { _ = w.watcher.Close() }()

	fi, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("watch %s: not a directory", root)
	}
	w.root = filepath.Clean(root)

	if err := w.addTree(ctx, w.root, w.opts.Existing, out); err != nil {
		return err
	}
	w.once.Do(func() { close(w.ready) })
	w.logger.Info("watching", "root", w.root, "extensions", len(w.exts))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if err := w.handleEvent(ctx, ev, out); err != nil {
				w.logger.Warn("watch event failed", "path", ev.Name, "error", err)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, ev fsnotify.Event, out chan<- Event) error {
	if !ev.Has(fsnotify.Create) {
		return nil
	}

	fi, err := os.Stat(ev.Name)
	if err != nil {
		// Gone again before we looked.
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if fi.IsDir() {
		// Files may land in the new directory before it is watched.
		return w.addTree(ctx, ev.Name, true, out)
	}
	return w.emit(ctx, ev.Name, out)
}

// addTree watches every directory under dir, optionally emitting the
// media files it finds.
func (w *Watcher) addTree(ctx context.Context, dir string, emitFiles bool, out chan<- Event) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			if err := w.watcher.Add(p); err != nil {
				return fmt.Errorf("watch %s: %w", p, err)
			}
			return nil
		}
		if !emitFiles {
			return nil
		}
		return w.emit(ctx, p, out)
	})
}

func (w *Watcher) emit(ctx context.Context, p string, out chan<- Event) error {
	if !w.exts[strings.ToLower(filepath.Ext(p))] || w.seen[p] {
		return nil
	}
	w.seen[p] = true

	info := release.ParseWithOptions(w.parseName(p), w.opts.Parse)
	w.logger.Debug("media file", "path", p, "title", info.Title, "media_type", info.MediaType.String())

	select {
	case out <- Event{Path: p, Info: info}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// parseName is p relative to the watched root, so parent directories
// can supply the title of a terse filename.
func (w *Watcher) parseName(p string) string {
	rel, err := filepath.Rel(w.root, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}
