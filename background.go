package glyphboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
	"golang.org/x/sync/singleflight"
)

// ErrNoImage is returned when a background payload holds no decodable image.
var ErrNoImage = errors.New("glyphboard: no image")

// FetchStatus is the background loader state observed by the editor.
type FetchStatus uint8

const (
	FetchIdle     FetchStatus = iota // blank background, nothing to load
	FetchFetching                    // a fetch is in flight
	FetchReady                       // the image is decoded and available
	FetchFailed                      // the last load failed; render blank
)

func (s FetchStatus) String() string {
	switch s {
	case FetchIdle:
		return "idle"
	case FetchFetching:
		return "fetching"
	case FetchReady:
		return "ready"
	case FetchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Fetcher resolves a background URL into a raster image. Implementations
// must honor ctx cancellation.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (image.Image, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) (image.Image, error)

// Fetch calls f(ctx, url).
func (f FetcherFunc) Fetch(ctx context.Context, url string) (image.Image, error) {
	return f(ctx, url)
}

type fetchResult struct {
	gen uint64
	img image.Image
	err error
}

// BackgroundLoader turns a Background into an image. URL fetches run on
// their own goroutine; their results are applied only by Poll, which the
// editor calls from its single UI thread.
type BackgroundLoader struct {
	fetcher Fetcher

	status FetchStatus
	img    image.Image
	err    error

	gen     uint64
	cancel  context.CancelFunc
	results chan fetchResult
}

// NewBackgroundLoader creates a loader. A nil fetcher uses an HTTPFetcher.
func NewBackgroundLoader(f Fetcher) *BackgroundLoader {
	if f == nil {
		f = NewHTTPFetcher(nil)
	}
	return &BackgroundLoader{
		fetcher: f,
		results: make(chan fetchResult, 4),
	}
}

// Load starts resolving bg, abandoning any fetch still in progress.
// Image data is decoded synchronously; URLs are fetched asynchronously.
func (l *BackgroundLoader) Load(bg Background) {
	l.abandon()
	l.img, l.err = nil, nil

	switch bg.Kind {
	case BackgroundBlank:
		l.status = FetchIdle
	case BackgroundData:
		img, err := decodeImage(bg.Data)
		l.finish(img, err)
	case BackgroundURL:
		ctx, cancel := context.WithCancel(context.Background())
		l.cancel = cancel
		l.status = FetchFetching
		go l.fetch(ctx, l.gen, bg.URL)
	}
}

func (l *BackgroundLoader) fetch(ctx context.Context, gen uint64, u string) {
	img, err := l.fetcher.Fetch(ctx, u)
	if err != nil {
		err = fmt.Errorf("fetch background %s: %w", u, err)
	}
	select {
	case l.results <- fetchResult{gen: gen, img: img, err: err}:
	case <-ctx.Done():
	}
}

// abandon cancels the in-flight fetch and bumps the generation so any result
// already queued is ignored.
func (l *BackgroundLoader) abandon() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
}

// Poll applies completed fetches. It reports whether the status changed.
func (l *BackgroundLoader) Poll() bool {
	changed := false
	for {
		select {
		case r := <-l.results:
			if r.gen != l.gen || l.status != FetchFetching {
				continue
			}
			if l.cancel != nil {
				l.cancel()
				l.cancel = nil
			}
			l.finish(r.img, r.err)
			changed = true
		default:
			return changed
		}
	}
}

func (l *BackgroundLoader) finish(img image.Image, err error) {
	if err == nil && img == nil {
		err = ErrNoImage
	}
	if err != nil {
		l.status = FetchFailed
		l.err = err
		Logger().Warn("background unavailable", slog.Any("err", err))
		return
	}
	l.status = FetchReady
	l.img = img
	b := img.Bounds()
	Logger().Info("background ready", slog.Int("width", b.Dx()), slog.Int("height", b.Dy()))
}

// Status returns the current fetch status.
func (l *BackgroundLoader) Status() FetchStatus { return l.status }

// Image returns the resolved image, or nil unless the status is FetchReady.
func (l *BackgroundLoader) Image() image.Image { return l.img }

// Err returns the error of the last failed load.
func (l *BackgroundLoader) Err() error { return l.err }

// Size returns the resolved image dimensions. ok is false unless the image
// is ready.
func (l *BackgroundLoader) Size() (size Size, ok bool) {
	if l.status != FetchReady || l.img == nil {
		return Size{}, false
	}
	b := l.img.Bounds()
	return Size{float64(b.Dx()), float64(b.Dy())}, true
}

// Close abandons any in-flight fetch.
func (l *BackgroundLoader) Close() {
	l.abandon()
}

// decodeImage decodes PNG, JPEG, GIF, BMP, TIFF or WebP bytes.
func decodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrNoImage
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode background: %w", err)
	}
	return img, nil
}

// defaultMaxImageBytes caps a fetched body.
const defaultMaxImageBytes = 32 << 20

// HTTPFetcher fetches background images over HTTP. Concurrent fetches of
// the same URL share one request; the request is canceled only when every
// caller waiting on it has given up.
type HTTPFetcher struct {
	Client   *http.Client
	MaxBytes int64

	group   singleflight.Group
	mu      sync.Mutex
	flights map[string]*flight
}

// flight is the shared request context for one URL and its waiter count.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// NewHTTPFetcher returns a fetcher using client, or a client with a 30s
// timeout when client is nil.
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPFetcher{Client: client, MaxBytes: defaultMaxImageBytes}
}

// Fetch downloads and decodes the image at rawURL. Canceling ctx abandons
// the wait; the request itself keeps running while other callers need it.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fl, ch := f.join(ctx, rawURL)
	defer f.leave(rawURL, fl)

	select {
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(image.Image), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *HTTPFetcher) join(ctx context.Context, rawURL string) (*flight, <-chan singleflight.Result) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fl := f.flights[rawURL]
	if fl == nil {
		fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		fl = &flight{ctx: fctx, cancel: cancel}
		if f.flights == nil {
			f.flights = make(map[string]*flight)
		}
		f.flights[rawURL] = fl
	}
	fl.waiters++
	ch := f.group.DoChan(rawURL, func() (any, error) {
		return f.get(fl.ctx, rawURL)
	})
	return fl, ch
}

// leave drops one waiter. The last one out cancels the request and forgets
// it, so the next Fetch of the URL starts fresh.
func (f *HTTPFetcher) leave(rawURL string, fl *flight) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fl.waiters--
	if fl.waiters > 0 {
		return
	}
	fl.cancel()
	if f.flights[rawURL] == fl {
		delete(f.flights, rawURL)
		f.group.Forget(rawURL)
	}
}

func (f *HTTPFetcher) get(ctx context.Context, rawURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	limit := f.MaxBytes
	if limit <= 0 {
		limit = defaultMaxImageBytes
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return decodeImage(data)
}

// ImageURL unwraps image search result links: when u carries an imgurl
// query parameter, that URL is the actual image. Otherwise u is returned
// unchanged.
func ImageURL(u string) string {
	parsed, err := url.Parse(u)
	if err != nil {
		return u
	}
	if inner := parsed.Query().Get("imgurl"); inner != "" {
		if _, err := url.Parse(inner); err == nil {
			return inner
		}
	}
	return u
}
