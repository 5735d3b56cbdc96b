package collector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/brandex/internal/common"
)

// BrowserPool manages a fixed set of ChromeDP browser contexts handed out
// round-robin. Each extraction gets its own tab context derived from a
// pooled browser, so concurrent pages never share mutable state.
type BrowserPool struct {
	browsers         []context.Context
	browserCancels   []context.CancelFunc
	allocatorCancels []context.CancelFunc
	mu               sync.Mutex
	next             int
	config           common.BrowserConfig
	logger           arbor.ILogger
	initialized      bool
}

// NewBrowserPool creates an uninitialized browser pool.
func NewBrowserPool(config common.BrowserConfig, logger arbor.ILogger) *BrowserPool {
	return &BrowserPool{
		config: config,
		logger: logger,
	}
}

// Init starts the configured number of browser instances. Partial startup
// is tolerated as long as at least one instance comes up.
func (p *BrowserPool) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return fmt.Errorf("browser pool already initialized")
	}

	instances := p.config.MaxInstances
	if instances <= 0 {
		instances = 1
	}
	if p.config.UserAgent == "" {
		p.config.UserAgent = "Brandex/1.0"
	}

	p.logger.Info().
		Int("pool_size", instances).
		Bool("headless", p.config.Headless).
		Str("user_agent", p.config.UserAgent).
		Msg("Initializing browser pool")

	var lastErr error
	for i := 0; i < instances; i++ {
		if err := p.startInstance(i); err != nil {
			lastErr = err
			p.logger.Warn().Err(err).Int("browser_index", i).Msg("Failed to start browser instance")
		}
	}

	if len(p.browsers) == 0 {
		p.shutdownLocked()
		return fmt.Errorf("failed to start any browser instance: %w", lastErr)
	}

	p.initialized = true
	p.logger.Info().
		Int("browsers_started", len(p.browsers)).
		Int("requested", instances).
		Msg("Browser pool initialized")

	return nil
}

func (p *BrowserPool) startInstance(index int) error {
	start := time.Now()

	opts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", p.config.Headless),
		chromedp.Flag("disable-gpu", p.config.DisableGPU),
		chromedp.Flag("no-sandbox", p.config.NoSandbox),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(p.config.UserAgent),
	)

	allocatorCtx, allocatorCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocatorCtx)

	// Startup probe: an instance that cannot load about:blank is discarded.
	probeCtx, probeCancel := context.WithTimeout(browserCtx, 30*time.Second)
	defer probeCancel()
	if err := chromedp.Run(probeCtx, chromedp.Navigate("about:blank")); err != nil {
		browserCancel()
		allocatorCancel()
		return fmt.Errorf("browser instance failed startup probe: %w", err)
	}

	p.browsers = append(p.browsers, browserCtx)
	p.browserCancels = append(p.browserCancels, browserCancel)
	p.allocatorCancels = append(p.allocatorCancels, allocatorCancel)

	p.logger.Debug().
		Int("browser_index", index).
		Dur("startup_time", time.Since(start)).
		Msg("Browser instance started")

	return nil
}

// Acquire returns a PageAccessor bound to a fresh tab on one of the pooled
// browsers. The accessor must be closed after use.
func (p *BrowserPool) Acquire() (*ChromeDPAccessor, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || len(p.browsers) == 0 {
		return nil, fmt.Errorf("browser pool not initialized")
	}

	index := p.next % len(p.browsers)
	p.next = (p.next + 1) % len(p.browsers)

	tabCtx, tabCancel := chromedp.NewContext(p.browsers[index])

	p.logger.Debug().
		Int("browser_index", index).
		Msg("Browser tab allocated from pool")

	return newChromeDPAccessor(tabCtx, tabCancel, p.config, p.logger), nil
}

// Shutdown stops every pooled browser.
func (p *BrowserPool) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	count := len(p.browsers)
	p.shutdownLocked()
	p.initialized = false

	p.logger.Info().Int("browsers_stopped", count).Msg("Browser pool shut down")
}

func (p *BrowserPool) shutdownLocked() {
	for _, cancel := range p.browserCancels {
		cancel()
	}
	for _, cancel := range p.allocatorCancels {
		cancel()
	}
	p.browsers = nil
	p.browserCancels = nil
	p.allocatorCancels = nil
	p.next = 0
}
