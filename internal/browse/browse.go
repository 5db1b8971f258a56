package browse

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/chromedp/chromedp"

	"github.com/mohammad-safakhou/outfitter/config"
)

// ErrUnavailable is returned when the shared browser cannot be started.
// Fatal to the current request; the manager resets so the next request can
// retry with a fresh launch.
var ErrUnavailable = errors.New("browsing session unavailable")

// Session is a live headless-browser tab shared by all source adapters.
// Adapters borrow it per call and must not close it; the manager owns the
// lifecycle.
type Session struct {
	ctx     context.Context
	cancels []context.CancelFunc
}

// NewSession wraps an existing chromedp context. Exposed for stub sessions
// in tests; production sessions come from Manager.Acquire.
func NewSession(ctx context.Context, cancels ...context.CancelFunc) *Session {
	return &Session{ctx: ctx, cancels: cancels}
}

// Context returns the chromedp context adapters run their actions on.
func (s *Session) Context() context.Context { return s.ctx }

func (s *Session) close() {
	// cancel in reverse creation order: tab before allocator
	for i := len(s.cancels) - 1; i >= 0; i-- {
		s.cancels[i]()
	}
}

// Manager owns the shared browser. Not safe for concurrent use: callers
// must serialize Acquire/Release, which the aggregation engine does by
// running source adapters sequentially.
type Manager struct {
	launch func() (*Session, error)
	sess   *Session
	logger *log.Logger
}

// NewManager creates a manager that lazily launches a headless Chrome
// configured by cfg on first Acquire.
func NewManager(cfg config.BrowserConfig) *Manager {
	return &Manager{
		launch: func() (*Session, error) { return launchChrome(cfg) },
		logger: log.New(log.Writer(), "[BROWSE] ", log.LstdFlags),
	}
}

// Acquire returns the live session, launching the browser on first use.
// Repeated calls before Release return the same session.
func (m *Manager) Acquire() (*Session, error) {
	if m.sess != nil {
		return m.sess, nil
	}
	sess, err := m.launch()
	if err != nil {
		m.logger.Printf("browser launch failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	m.sess = sess
	return m.sess, nil
}

// Release shuts the browser down. Safe to call repeatedly or when no
// session exists; a subsequent Acquire launches a fresh browser.
func (m *Manager) Release() {
	if m.sess == nil {
		return
	}
	m.sess.close()
	m.sess = nil
}

func launchChrome(cfg config.BrowserConfig) (*Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("disable-web-security", true),
		chromedp.Flag("disable-features", "IsolateOrigins,site-per-process"),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(cfg.UserAgent),
	)
	// The allocator hangs off Background on purpose: the session outlives
	// any single request context and is torn down only via Release.
	actx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	bctx, cancelBrowser := chromedp.NewContext(actx)
	if err := chromedp.Run(bctx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, err
	}
	return NewSession(bctx, cancelAlloc, cancelBrowser), nil
}
