// Package export converts rendered resume HTML into a PDF document using
// a headless browser.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a single print run.
const DefaultTimeout = 60 * time.Second

// Options configures PDF generation.
type Options struct {
	Timeout time.Duration
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() *Options {
	return &Options{Timeout: DefaultTimeout}
}

// PDF loads the given HTML in a headless browser and returns the printed
// PDF bytes. Requires Chrome/Chromium to be installed on the system.
//
// A failure here is reported to the caller and nothing else: the resume
// document, in memory or persisted, is never touched by the export path.
func PDF(ctx context.Context, html string, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, opts.Timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf export failed: %w", err)
	}

	return pdf, nil
}
