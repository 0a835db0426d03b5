package assets

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"loyalty-wallet/internal/pkg/errs"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/errgroup"
)

type Kind int

const (
	// KindBinary only needs a non-empty body (certificates, keys, credentials).
	KindBinary Kind = iota
	// KindImage must also carry a PNG or JPEG signature.
	KindImage
)

type Request struct {
	Name string
	URL  string
	Kind Kind
}

// Bundle maps request names to fetched bodies.
type Bundle map[string][]byte

type Fetcher struct {
	http    Source
	s3      Source
	timeout time.Duration
	cache   *expirable.LRU[string, []byte]
	logger  *slog.Logger
}

type Option func(*Fetcher)

func WithS3(src Source) Option {
	return func(f *Fetcher) { f.s3 = src }
}

// WithImageCache keeps validated images for ttl. Certificates are never
// cached so key rotation takes effect on the next call.
func WithImageCache(size int, ttl time.Duration) Option {
	return func(f *Fetcher) {
		if ttl <= 0 || size <= 0 {
			return
		}
		f.cache = expirable.NewLRU[string, []byte](size, nil, ttl)
	}
}

func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.timeout = d }
}

func NewFetcher(httpSrc Source, logger *slog.Logger, opts ...Option) *Fetcher {
	f := &Fetcher{http: httpSrc, logger: logger}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchAll loads every request concurrently. The first failure cancels the
// remaining fetches and fails the whole call.
func (f *Fetcher) FetchAll(ctx context.Context, reqs []Request) (Bundle, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	var (
		mu     sync.Mutex
		bundle = make(Bundle, len(reqs))
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, req := range reqs {
		g.Go(func() error {
			body, err := f.fetchOne(gctx, req)
			if err != nil {
				return err
			}
			mu.Lock()
			bundle[req.Name] = body
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bundle, nil
}

func (f *Fetcher) fetchOne(ctx context.Context, req Request) ([]byte, error) {
	if req.URL == "" {
		return nil, errs.Newf("asset %s: no location configured", req.Name)
	}
	if req.Kind == KindImage && f.cache != nil {
		if body, ok := f.cache.Get(req.URL); ok {
			return body, nil
		}
	}

	src, err := f.sourceFor(req.URL)
	if err != nil {
		return nil, errs.Wrapf(err, "asset %s", req.Name)
	}

	started := time.Now()
	body, err := src.Fetch(ctx, req.URL)
	if err != nil {
		return nil, errs.Wrapf(err, "asset %s", req.Name)
	}
	if len(body) == 0 {
		return nil, errs.Mark(errs.Newf("asset %s: empty body", req.Name), ErrEmptyAsset)
	}
	if req.Kind == KindImage {
		if err := ValidateImage(req.Name, body); err != nil {
			return nil, err
		}
		if f.cache != nil {
			f.cache.Add(req.URL, body)
		}
	}

	f.logger.DebugContext(ctx, "asset fetched",
		slog.String("asset", req.Name),
		slog.Int("bytes", len(body)),
		slog.Duration("duration", time.Since(started)))
	return body, nil
}

func (f *Fetcher) sourceFor(location string) (Source, error) {
	switch {
	case strings.HasPrefix(location, "s3://"):
		if f.s3 == nil {
			return nil, errs.New("s3 source not configured")
		}
		return f.s3, nil
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return f.http, nil
	default:
		return nil, errs.Newf("unsupported location scheme in %q", location)
	}
}
