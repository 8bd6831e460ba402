package download

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/nightwatch-labs/create-nightwatch/internal/console"
	"go.bug.st/downloader/v2"
)

// DefaultPollInterval is how often transfer progress is sampled.
const DefaultPollInterval = 100 * time.Millisecond

// Downloader fetches remote assets with progress reporting. It holds no
// per-download state, so one Downloader may serve concurrent calls.
type Downloader struct {
	client       http.Client
	logger       Logger
	newIndicator func() Indicator
	observer     func(Event)
	pollInterval time.Duration
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithHTTPClient sets the HTTP client used for the transfer.
func WithHTTPClient(c *http.Client) Option {
	return func(d *Downloader) {
		d.client = *c
	}
}

// WithLogger sets the logger receiving skip and success messages.
func WithLogger(l Logger) Option {
	return func(d *Downloader) {
		d.logger = l
	}
}

// WithIndicator sets the factory called once per download to build its
// progress indicator.
func WithIndicator(factory func() Indicator) Option {
	return func(d *Downloader) {
		d.newIndicator = factory
	}
}

// WithObserver registers fn to receive every lifecycle event after the
// indicator and logger have handled it. fn runs on the download goroutine.
func WithObserver(fn func(Event)) Option {
	return func(d *Downloader) {
		d.observer = fn
	}
}

// WithPollInterval sets how often progress is sampled.
func WithPollInterval(interval time.Duration) Option {
	return func(d *Downloader) {
		d.pollInterval = interval
	}
}

// New creates a Downloader. Without options it uses http.DefaultClient, no
// indicator and no logger.
func New(opts ...Option) *Downloader {
	d := &Downloader{
		client:       *http.DefaultClient,
		logger:       nopLogger{},
		newIndicator: func() Indicator { return nopIndicator{} },
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start begins downloading url to dest and returns a channel that receives
// exactly one Result once a terminal event has fired. An existing dest is
// never touched: the download is skipped instead.
func (d *Downloader) Start(ctx context.Context, url, dest string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		ch <- d.run(ctx, url, dest)
	}()
	return ch
}

// Download is Start followed by waiting for the result.
func (d *Downloader) Download(ctx context.Context, url, dest string) Result {
	return <-d.Start(ctx, url, dest)
}

// transfer carries the state of a single download call.
type transfer struct {
	d         *Downloader
	indicator Indicator
	state     State
	percent   int
}

func (d *Downloader) run(ctx context.Context, url, dest string) Result {
	t := &transfer{d: d, indicator: d.newIndicator(), state: StateIdle}

	switch _, err := os.Stat(dest); {
	case err == nil:
		t.emit(Event{Kind: EventSkip, Path: dest})
		return Result{State: StateSkipped, Path: dest}
	case !errors.Is(err, os.ErrNotExist):
		return t.fail(fmt.Errorf("checking %s: %w", dest, err))
	}

	t.emit(Event{Kind: EventStart})

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return t.fail(fmt.Errorf("creating directory for %s: %w", dest, err))
	}

	part := fmt.Sprintf("%s.%s.part", dest, uuid.NewString())
	if err := t.fetch(ctx, url, part); err != nil {
		_ = os.Remove(part)
		return t.fail(err)
	}

	if err := os.Rename(part, dest); err != nil {
		_ = os.Remove(part)
		return t.fail(fmt.Errorf("moving download into place: %w", err))
	}

	t.emit(Event{Kind: EventEnd, Path: dest})
	return Result{State: StateCompleted, Path: dest}
}

// fetch streams url into file, publishing progress as it goes.
func (t *transfer) fetch(ctx context.Context, url, file string) error {
	dl, err := downloader.DownloadWithConfigAndContext(ctx, file, url, downloader.Config{
		HttpClient: t.d.client,
	}, downloader.NoResume)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", url, err)
	}

	if code := dl.Resp.StatusCode; code < 200 || code > 299 {
		_ = dl.Close()
		return fmt.Errorf("downloading %s: server returned %s", url, dl.Resp.Status)
	}

	// -1 when the server sends no Content-Length.
	size := dl.Resp.ContentLength
	err = dl.RunAndPoll(func(current int64) {
		if size > 0 {
			t.progress(int(current * 100 / size))
		}
	}, t.d.pollInterval)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", url, err)
	}
	if size > 0 && dl.Completed() != size {
		return fmt.Errorf("downloading %s: received %d of %d bytes", url, dl.Completed(), size)
	}

	t.progress(100)
	return nil
}

// progress publishes percent if it moves the bar forward. Values are
// clamped so the published sequence never decreases and never passes 100.
func (t *transfer) progress(percent int) {
	if percent > 100 {
		percent = 100
	}
	if percent <= t.percent && t.state == StateInProgress {
		return
	}
	if percent < t.percent {
		percent = t.percent
	}
	t.percent = percent
	t.emit(Event{Kind: EventProgress, Percent: percent})
}

func (t *transfer) fail(err error) Result {
	t.emit(Event{Kind: EventError, Err: err})
	return Result{State: StateFailed, Err: err}
}

// emit advances the lifecycle and dispatches ev to the indicator, the logger
// and the observer, in that order.
func (t *transfer) emit(ev Event) {
	t.state = ev.state()

	switch ev.Kind {
	case EventStart:
		t.indicator.Start(100, 0)
	case EventProgress:
		t.indicator.Update(ev.Percent)
	case EventSkip:
		t.indicator.Stop()
		t.d.logger.Info(fmt.Sprintf("Download skipped! File already present at: '%s'\n",
			console.StripControlChars(ev.Path)))
	case EventEnd:
		t.indicator.Stop()
		t.d.logger.Info(fmt.Sprintf("%s File downloaded at: '%s'\n",
			console.Success("Success!"), console.StripControlChars(ev.Path)))
	case EventError:
		t.indicator.Stop()
	}

	if t.d.observer != nil {
		t.d.observer(ev)
	}
}
