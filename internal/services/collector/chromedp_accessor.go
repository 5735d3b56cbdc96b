package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/brandex/internal/common"
	"github.com/ternarybob/brandex/internal/interfaces"
	"github.com/ternarybob/brandex/internal/models"
)

// ChromeDPAccessor implements interfaces.PageAccessor over a ChromeDP tab
// context obtained from the pool.
type ChromeDPAccessor struct {
	tabCtx context.Context
	cancel context.CancelFunc
	config common.BrowserConfig
	logger arbor.ILogger
	script string
}

var _ interfaces.PageAccessor = (*ChromeDPAccessor)(nil)

func newChromeDPAccessor(tabCtx context.Context, cancel context.CancelFunc, config common.BrowserConfig, logger arbor.ILogger) *ChromeDPAccessor {
	return &ChromeDPAccessor{
		tabCtx: tabCtx,
		cancel: cancel,
		config: config,
		logger: logger,
	}
}

// SetCollectScript overrides the sampling script evaluated by
// CollectSignals. The branding service sets this once from configuration.
func (a *ChromeDPAccessor) SetCollectScript(script string) {
	a.script = script
}

// Navigate loads the URL, fixes the viewport and waits for the page to
// settle before sampling.
func (a *ChromeDPAccessor) Navigate(ctx context.Context, url string) error {
	timeout := a.config.NavigationTimeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	settle := a.config.JavaScriptWaitTime
	if settle <= 0 {
		settle = 3 * time.Second
	}

	navCtx, cancel := context.WithTimeout(a.tabCtx, timeout)
	defer cancel()

	start := time.Now()
	err := chromedp.Run(navCtx,
		emulation.SetDeviceMetricsOverride(1280, 900, 1, false),
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(settle),
	)
	if err != nil {
		return fmt.Errorf("navigation to %s failed: %w", url, err)
	}

	// Propagate caller cancellation that raced the navigation.
	if ctx.Err() != nil {
		return ctx.Err()
	}

	a.logger.Debug().
		Str("url", url).
		Dur("duration", time.Since(start)).
		Msg("Page loaded")

	return nil
}

// CollectSignals evaluates the in-page sampling script and decodes its
// JSON payload.
func (a *ChromeDPAccessor) CollectSignals(ctx context.Context) (*models.PageSignals, error) {
	script := a.script
	if script == "" {
		script = BuildCollectScript(common.CollectorConfig{})
	}

	evalCtx, cancel := context.WithTimeout(a.tabCtx, 30*time.Second)
	defer cancel()

	var signals models.PageSignals
	if err := chromedp.Run(evalCtx, chromedp.Evaluate(script, &signals)); err != nil {
		return nil, fmt.Errorf("collection script failed: %w", err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return &signals, nil
}

// Screenshot captures the current viewport as PNG.
func (a *ChromeDPAccessor) Screenshot(ctx context.Context) ([]byte, error) {
	shotCtx, cancel := context.WithTimeout(a.tabCtx, 20*time.Second)
	defer cancel()

	var buf []byte
	err := chromedp.Run(shotCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		data, err := page.CaptureScreenshot().
			WithFormat(page.CaptureScreenshotFormatPng).
			Do(ctx)
		if err != nil {
			return err
		}
		buf = data
		return nil
	}))
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return buf, nil
}

// Close releases the tab context.
func (a *ChromeDPAccessor) Close() error {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	return nil
}
