package interfaces

import (
	"context"

	"github.com/ternarybob/brandex/internal/models"
)

// PageAccessor is the capability surface the collector needs from a rendered
// page. The production implementation is backed by a ChromeDP browser
// context; tests substitute a fixture accessor so collection logic runs
// without a browser.
type PageAccessor interface {
	// Navigate loads the URL and waits for the page to settle.
	Navigate(ctx context.Context, url string) error

	// CollectSignals runs the in-page sampling script and returns its raw,
	// unnormalized payload.
	CollectSignals(ctx context.Context) (*models.PageSignals, error)

	// Screenshot captures the current viewport as PNG. Optional; failures
	// are tolerated by callers.
	Screenshot(ctx context.Context) ([]byte, error)

	// Close releases the underlying page resources.
	Close() error
}
