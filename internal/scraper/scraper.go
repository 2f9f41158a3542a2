// Package scraper downloads daily price histories for registered
// instruments. Oslo Børs tickers come from netfonds as gzip-compressed
// sdv files; Nasdaq OMX indexes come as Excel exports. Downloads are
// rate limited and run on a bounded worker pool.
package scraper

import (
	"compress/gzip"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"nordquant/internal/registry"
)

// Options configures a Scraper.
type Options struct {
	DataDir           string
	RequestsPerSecond float64
	Concurrency       int
	Timeout           time.Duration
	RetryCount        int
}

// Result describes one finished download.
type Result struct {
	Symbol string
	Path   string
	Err    error
}

// Scraper downloads instrument histories into the data directory.
type Scraper struct {
	client  *resty.Client
	limiter *rate.Limiter
	logger  *slog.Logger
	opts    Options
}

// New creates a Scraper. Zero option fields get sensible defaults.
func New(opts Options, logger *slog.Logger) *Scraper {
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 2
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 4
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	client := resty.New()
	client.SetTimeout(opts.Timeout)
	client.SetRetryCount(opts.RetryCount)
	client.SetRetryWaitTime(2 * time.Second)
	client.SetHeader("User-Agent", "nordquant/1.0")

	return &Scraper{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		logger:  logger,
		opts:    opts,
	}
}

// FileName returns the data-dir path a symbol's history is stored at.
func (s *Scraper) FileName(inst *registry.Instrument) string {
	switch inst.SourceFormat {
	case registry.FormatXLSX:
		return filepath.Join(s.opts.DataDir, inst.Symbol+".xlsx")
	default:
		return filepath.Join(s.opts.DataDir, inst.Symbol+".sdv.gz")
	}
}

// FetchAll downloads every given instrument's history, at most
// Concurrency at a time. Per-instrument failures are reported in the
// results rather than aborting the batch; the returned error is only
// non-nil when the context is cancelled.
func (s *Scraper) FetchAll(ctx context.Context, instruments []*registry.Instrument) ([]Result, error) {
	if err := os.MkdirAll(s.opts.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	results := make([]Result, len(instruments))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)

	for i, inst := range instruments {
		g.Go(func() error {
			path, err := s.Fetch(ctx, inst)
			results[i] = Result{Symbol: inst.Symbol, Path: path, Err: err}
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.logger.Warn("download failed",
					"symbol", inst.Symbol,
					"error", err,
				)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// Fetch downloads one instrument's history file and returns its path.
func (s *Scraper) Fetch(ctx context.Context, inst *registry.Instrument) (string, error) {
	if inst.DownloadURL == "" {
		return "", fmt.Errorf("no download URL for %s", inst.Symbol)
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	s.logger.Debug("downloading history", "symbol", inst.Symbol, "url", inst.DownloadURL)

	resp, err := s.client.R().SetContext(ctx).Get(inst.DownloadURL)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", inst.Symbol, err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("fetch %s: unexpected status %d", inst.Symbol, resp.StatusCode())
	}
	body := resp.Body()
	if len(body) == 0 {
		return "", fmt.Errorf("fetch %s: empty response", inst.Symbol)
	}

	path := s.FileName(inst)
	if inst.SourceFormat == registry.FormatSDV {
		// Netfonds serves plain text; store it compressed.
		if err := writeGzip(path, body); err != nil {
			return "", fmt.Errorf("store %s: %w", inst.Symbol, err)
		}
		return path, nil
	}
	if err := writeAtomic(path, body); err != nil {
		return "", fmt.Errorf("store %s: %w", inst.Symbol, err)
	}
	return path, nil
}

// writeAtomic writes to a temp file and renames it into place, so a
// partially written download never replaces a good one.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func writeGzip(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	gz := gzip.NewWriter(tmp)
	if _, err := gz.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
