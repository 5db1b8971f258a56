package shops

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/mohammad-safakhou/outfitter/models"
)

// Shop is one external catalog. Fetch returns up to limit normalized
// listings for the search phrase and never fails: any timeout or extraction
// error degrades to an empty result so one broken catalog cannot abort the
// whole aggregation.
type Shop interface {
	Name() string
	Fetch(ctx context.Context, phrase string, limit int) []models.Listing
}

// Options tunes every adapter uniformly.
type Options struct {
	Overscan    int           // raw candidates pulled per page before filtering
	NavTimeout  time.Duration // page navigation budget
	WaitTimeout time.Duration // bounded wait for the listing container
}

// All returns every adapter in the fixed iteration order the aggregation
// engine relies on.
func All(opts Options) []Shop {
	return []Shop{
		newWildberries(opts),
		newLamoda(opts),
		newKaspi(opts),
		newAliExpress(opts),
		newAmazon(opts),
		newAsos(opts),
		newFarfetch(opts),
	}
}

// selectors locates listing fields inside one product card. Empty selectors
// mean the catalog does not expose that field.
type selectors struct {
	Card     string // one product card, relative to the document
	Name     string
	Brand    string
	Price    string
	OldPrice string
	Rating   string
	Image    string
	Link     string
}

// catalog is the selector-driven adapter behind every shop. Adding a source
// means adding a descriptor, not touching the engine.
type catalog struct {
	name      string
	searchURL func(phrase string) string
	waitFor   string // selector whose appearance signals the results grid rendered
	sel       selectors
	opts      Options
	logger    *log.Logger
}

func newCatalog(name string, opts Options) *catalog {
	return &catalog{
		name:   name,
		opts:   opts,
		logger: log.New(log.Writer(), "[SHOP:"+name+"] ", log.LstdFlags),
	}
}

func (c *catalog) Name() string { return c.name }

func (c *catalog) Fetch(ctx context.Context, phrase string, limit int) []models.Listing {
	target := c.searchURL(phrase)
	cards, err := c.extract(ctx, target)
	if err != nil {
		c.logger.Printf("extraction failed for %s: %v", target, err)
		fetchTotal.WithLabelValues(c.name, "error").Inc()
		return nil
	}
	listings := normalize(cards, c.name, limit)
	if len(listings) == 0 {
		fetchTotal.WithLabelValues(c.name, "empty").Inc()
		return nil
	}
	fetchTotal.WithLabelValues(c.name, "ok").Inc()
	return listings
}

func (c *catalog) extract(ctx context.Context, target string) ([]rawCard, error) {
	nctx, cancel := context.WithTimeout(ctx, c.opts.NavTimeout)
	defer cancel()
	if err := chromedp.Run(nctx, chromedp.Navigate(target)); err != nil {
		return nil, fmt.Errorf("navigate: %w", err)
	}

	// bounded wait for the results grid; redesigned markup trips this and
	// the adapter degrades to empty results
	wctx, wcancel := context.WithTimeout(ctx, c.opts.WaitTimeout)
	defer wcancel()
	if err := chromedp.Run(wctx, chromedp.WaitVisible(c.waitFor, chromedp.ByQuery)); err != nil {
		return nil, fmt.Errorf("wait %q: %w", c.waitFor, err)
	}

	var cards []rawCard
	if err := chromedp.Run(nctx, chromedp.Evaluate(c.extractJS(), &cards)); err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	return cards, nil
}

// extractJS renders the in-page card mapper. Helpers tolerate empty
// selectors so catalogs without a brand/old-price/rating field just yield
// empty strings.
const extractTemplate = `(() => {
  const txt = (el, sel) => { if (!sel) return ""; const n = el.querySelector(sel); return n && n.textContent ? n.textContent.trim() : ""; };
  const attr = (el, sel, name) => { if (!sel) return ""; const n = el.querySelector(sel); return n ? (n.getAttribute(name) || "") : ""; };
  const prop = (el, sel, name) => { if (!sel) return ""; const n = el.querySelector(sel); return n && n[name] ? String(n[name]) : ""; };
  const cards = document.querySelectorAll(%q);
  return Array.from(cards).slice(0, %d).map(card => ({
    id: attr(card, %q, "data-popup"),
    name: txt(card, %q).replace("/ ", ""),
    brand: txt(card, %q),
    price: txt(card, %q),
    oldPrice: txt(card, %q),
    rating: txt(card, %q),
    imageUrl: prop(card, %q, "src"),
    productUrl: prop(card, %q, "href")
  }));
})()`

func (c *catalog) extractJS() string {
	return fmt.Sprintf(extractTemplate,
		c.sel.Card, c.opts.Overscan,
		c.sel.Link, c.sel.Name, c.sel.Brand,
		c.sel.Price, c.sel.OldPrice, c.sel.Rating,
		c.sel.Image, c.sel.Link,
	)
}
