package samples

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

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// defaultConcurrency bounds the number of files read at once for EXIF.
const defaultConcurrency = 4

// options configures Generate.
type options struct {
	exif        bool
	concurrency int
	logger      *slog.Logger
}

// Option configures Generate.
type Option func(*options)

// WithEXIF enables reading camera make and model from each image.
func WithEXIF(enabled bool) Option {
	return func(o *options) {
		o.exif = enabled
	}
}

// WithConcurrency sets how many images are read in parallel when EXIF is
// enabled. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithLogger sets the logger used for warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Generate lists the sample images in dir.
//
// A missing directory is not an error: the result holds only the Hatch entry
// and a warning is logged. A path that is not a directory yields
// ErrNotDirectory.
func Generate(ctx context.Context, dir string, opts ...Option) ([]Sample, error) {
	o := options{concurrency: defaultConcurrency}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	names, err := imageNames(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			o.logger.Warn("sample directory not found", "dir", dir)
			return []Sample{Hatch()}, nil
		}
		return nil, err
	}

	list := make([]Sample, 0, len(names)+1)
	list = append(list, Hatch())
	for _, name := range names {
		list = append(list, fromFile(name))
	}

	if o.exif {
		if err := readCameras(ctx, dir, list[1:], o); err != nil {
			return nil, err
		}
	}

	o.logger.Debug("sample list generated", "dir", dir, "count", len(names))
	return list, nil
}

// imageNames returns the sorted JPEG file names in dir.
func imageNames(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if isJPEG(e.Name()) {
			names = append(names, e.Name())
		}
	}

	collate.New(language.English).SortStrings(names)
	return names, nil
}

// isJPEG matches the .jpg and .jpeg extensions in any case.
func isJPEG(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return true
	default:
		return false
	}
}

// readCameras fills Sample.Camera for each entry. Unreadable metadata leaves
// the field empty; only I/O failures and cancellation are errors.
func readCameras(ctx context.Context, dir string, list []Sample, o options) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	var mu sync.Mutex
	for i := range list {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			path := filepath.Join(dir, list[i].Key)
			data, err := os.ReadFile(path) //nolint:gosec // path is built from a directory listing
			if err != nil {
				return fmt.Errorf("failed to read sample %s: %w", list[i].Key, err)
			}

			camera, err := cameraFromEXIF(data)
			if err != nil {
				o.logger.Debug("no camera metadata", "file", path, "error", err)
				return nil
			}

			mu.Lock()
			list[i].Camera = camera
			mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}
