// Package rod provides a browser-rendered fetcher for the direct-fetch
// scrape fallback. Small-business sites built on JS frameworks often serve
// an empty shell over plain HTTP; rendering in headless Chrome recovers the
// actual content.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/siteforge"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultStableWait bounds how long Fetch waits for the page DOM to settle
// after load before snapshotting HTML.
const DefaultStableWait = 2 * time.Second

// Ensure Fetcher implements siteforge.Fetcher at compile time.
var _ siteforge.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser    *rod.Browser
	launcher   *launcher.Launcher
	stableWait time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithStableWait overrides the DOM-settle wait.
func WithStableWait(d time.Duration) Option {
	return func(f *Fetcher) { f.stableWait = d }
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f := &Fetcher{
		browser:    browser,
		launcher:   l,
		stableWait: DefaultStableWait,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML after the page
// has loaded and its DOM has settled.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	// Give client-side rendering a bounded chance to finish. A site that
	// never settles still gets snapshotted after the wait.
	waitCtx, cancel := context.WithTimeout(ctx, f.stableWait)
	_ = page.Context(waitCtx).WaitDOMStable(300*time.Millisecond, 0)
	cancel()

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	err := f.browser.Close()
	f.launcher.Kill()
	return err
}
