package texture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/rs/zerolog"
)

var (
	// ErrEmptyLocator is returned when no texture locator was configured.
	ErrEmptyLocator = errors.New("texture locator is empty")
	// ErrUnsupported is returned for locator schemes other than http, https and file.
	ErrUnsupported = errors.New("unsupported texture locator scheme")
	// ErrClosed is reported to LoadAsync callers once the loader has been closed.
	ErrClosed = errors.New("texture loader is closed")
)

// maxTextureBytes caps how much encoded data a single fetch will read.
const maxTextureBytes = 64 << 20

// Loader fetches and decodes image textures from a URL or a file path.
type Loader interface {
	// Load fetches and decodes the texture synchronously.
	//
	// Parameters:
	//   - ctx: context bounding the fetch
	//   - locator: http(s) URL, file:// URL or plain file path
	//
	// Returns:
	//   - common.TextureStagingData: decoded RGBA pixels
	//   - error: error if the fetch or decode fails
	Load(ctx context.Context, locator string) (common.TextureStagingData, error)

	// LoadAsync runs Load on the loader's worker pool and calls done with the result.
	// done runs on a worker goroutine; callers that own single-threaded state must hand the
	// result back to their own context.
	//
	// Parameters:
	//   - locator: http(s) URL, file:// URL or plain file path
	//   - done: completion callback, called exactly once
	LoadAsync(locator string, done func(common.TextureStagingData, error))

	// Close stops the worker pool. Loads already running finish and report as usual; later
	// LoadAsync calls report ErrClosed straight away on the calling goroutine.
	// Safe to call multiple times.
	Close()
}

type loaderImpl struct {
	httpClient *http.Client
	pool       worker.DynamicWorkerPool
	workers    int
	timeout    time.Duration
	nextTaskID atomic.Int64
	logger     zerolog.Logger
	closed     atomic.Bool
	closeOnce  sync.Once
}

var _ Loader = &loaderImpl{}

// NewLoader creates a Loader backed by a small dynamic worker pool.
//
// Parameters:
//   - options: functional options for the loader
//
// Returns:
//   - Loader: the new loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loaderImpl{
		workers: 2,
		timeout: 30 * time.Second,
		logger:  zerolog.Nop(),
	}
	for _, opt := range options {
		opt(l)
	}
	if l.httpClient == nil {
		l.httpClient = &http.Client{Timeout: l.timeout}
	}
	l.pool = worker.NewDynamicWorkerPool(l.workers, 256, 1*time.Second)
	return l
}

func (l *loaderImpl) Load(ctx context.Context, locator string) (common.TextureStagingData, error) {
	locator = strings.TrimSpace(locator)
	if locator == "" {
		return common.TextureStagingData{}, ErrEmptyLocator
	}

	rc, err := l.open(ctx, locator)
	if err != nil {
		return common.TextureStagingData{}, err
	}
	defer rc.Close()

	tex, err := common.DecodeTexture(io.LimitReader(rc, maxTextureBytes))
	if err != nil {
		return common.TextureStagingData{}, fmt.Errorf("texture %s: %w", locator, err)
	}
	return tex, nil
}

func (l *loaderImpl) LoadAsync(locator string, done func(common.TextureStagingData, error)) {
	if l.closed.Load() {
		done(common.TextureStagingData{}, ErrClosed)
		return
	}
	id := int(l.nextTaskID.Add(1))
	l.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
			defer cancel()

			start := time.Now()
			tex, err := l.Load(ctx, locator)
			if err != nil {
				l.logger.Debug().Err(err).Str("locator", locator).Msg("texture load failed")
			} else {
				l.logger.Debug().
					Str("locator", locator).
					Uint32("width", tex.Width).
					Uint32("height", tex.Height).
					Dur("took", time.Since(start)).
					Msg("texture loaded")
			}
			done(tex, err)
			return nil, nil
		},
	})
}

func (l *loaderImpl) Close() {
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		l.pool.Stop()
		l.logger.Debug().Int64("tasks", l.nextTaskID.Load()).Msg("texture loader closed")
	})
}

// open resolves the locator to a readable stream.
func (l *loaderImpl) open(ctx context.Context, locator string) (io.ReadCloser, error) {
	u, err := url.Parse(locator)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// plain path; a single-letter scheme is a Windows drive letter
		return openFile(locator)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build texture request: %w", err)
		}
		resp, err := l.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("texture request failed: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("texture request returned status %d", resp.StatusCode)
		}
		return resp.Body, nil
	case "file":
		return openFile(u.Path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, u.Scheme)
	}
}

func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file %s: %w", path, err)
	}
	return f, nil
}
