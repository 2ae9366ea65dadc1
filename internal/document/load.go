package document

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-logr/logr"
	getter "github.com/hashicorp/go-getter"
)

// Stdin is the identifier that reads the document from standard input.
const Stdin = "-"

type Options struct {
	// Attempts bounds remote fetches. Values below 1 mean a single attempt.
	Attempts uint
	// Delay is the base delay between remote attempts.
	Delay time.Duration
	// Stdin replaces os.Stdin for the "-" identifier.
	Stdin io.Reader
	Log   logr.Logger
}

func DefaultOptions() Options {
	return Options{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Log:      logr.Discard(),
	}
}

// Load reads the document named by identifier and parses it. The identifier
// is "-" for stdin, a path to an existing local file, or anything go-getter
// understands (http(s) URLs, s3::, git::, ...).
func Load(ctx context.Context, identifier string, opts Options) (*Document, error) {
	data, err := fetch(ctx, identifier, opts)
	if err != nil {
		return nil, LoadError{
			Code:    CodeFetchError,
			Source:  identifier,
			Message: "failed to fetch document",
			Err:     err,
		}
	}
	opts.Log.V(1).Info("document fetched", "source", identifier, "bytes", len(data))
	return Parse(data, identifier)
}

func fetch(ctx context.Context, identifier string, opts Options) ([]byte, error) {
	if identifier == Stdin {
		in := opts.Stdin
		if in == nil {
			in = os.Stdin
		}
		return io.ReadAll(in)
	}

	if info, err := os.Stat(identifier); err == nil && !info.IsDir() {
		return os.ReadFile(identifier)
	}

	return download(ctx, identifier, opts)
}

func download(ctx context.Context, identifier string, opts Options) ([]byte, error) {
	basePath, err := os.MkdirTemp("", "service-ts-gen")
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	defer os.RemoveAll(basePath)

	attempts := opts.Attempts
	if attempts < 1 {
		attempts = 1
	}
	log := opts.Log
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	dst := filepath.Join(basePath, "document")
	err = retry.Do(
		func() error {
			// a failed attempt may leave a partial file behind
			_ = os.Remove(dst)
			return getter.GetFile(dst, identifier, getter.WithContext(ctx))
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(opts.Delay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Info("document fetch failed, retrying", "source", identifier, "attempt", n+1, "error", err.Error())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}

	return os.ReadFile(dst)
}
