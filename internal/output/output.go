// Package output writes rendered files to disk.
package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/go-cart-ecommerce/service-ts-gen/internal/codemodel"
)

// Save renders f and writes it to dir/<name><ext>, creating dir when
// needed. It returns the written path.
func Save(f *codemodel.File, dir, ext string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, f.Name+ext)
	if err := os.WriteFile(path, []byte(f.Render()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// SaveAll saves files with at most jobs writers at a time. Paths are returned
// in the order of files. The first failure cancels the remaining writes.
func SaveAll(ctx context.Context, files []*codemodel.File, dir, ext string, jobs int) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	paths := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			path, err := Save(f, dir, ext)
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
