package search

import (
	"context"
	"log"
	"sort"

	"github.com/mohammad-safakhou/outfitter/internal/browse"
	"github.com/mohammad-safakhou/outfitter/internal/shops"
	"github.com/mohammad-safakhou/outfitter/models"
)

// SessionSource hands out the shared browsing session. Satisfied by
// *browse.Manager.
type SessionSource interface {
	Acquire() (*browse.Session, error)
}

// Engine fans a search plan out across the enabled catalogs and folds the
// results into deduplicated, priority-ordered category groups.
type Engine struct {
	shops   []shops.Shop // fixed iteration order
	browser SessionSource
	logger  *log.Logger
}

// NewEngine creates an engine over the given adapters. The adapter slice
// order is the per-item source iteration order.
func NewEngine(browser SessionSource, catalogs []shops.Shop) *Engine {
	return &Engine{
		shops:   catalogs,
		browser: browser,
		logger:  log.New(log.Writer(), "[AGG] ", log.LstdFlags),
	}
}

// Aggregate runs the plan against every enabled shop. Adapter failures
// surface as missing listings, never as errors; the only error path is the
// shared session failing to start (browse.ErrUnavailable), in which case no
// partial results are returned.
//
// Adapters run strictly one at a time: they share a single browser session
// that is not safe for concurrent use.
func (e *Engine) Aggregate(ctx context.Context, plan models.Plan, enabled map[string]bool, perCategory int) ([]models.Group, error) {
	active := make([]shops.Shop, 0, len(e.shops))
	for _, s := range e.shops {
		if enabled[s.Name()] {
			active = append(active, s)
		}
	}
	if len(active) == 0 || len(plan.Items) == 0 {
		// nothing to search is not an error, just an empty result set
		return nil, nil
	}

	sess, err := e.browser.Acquire()
	if err != nil {
		return nil, err
	}

	// group plan items by category, first-seen order
	var order []string
	byCategory := make(map[string][]models.PlanItem)
	for _, item := range plan.Items {
		if _, ok := byCategory[item.Category]; !ok {
			order = append(order, item.Category)
		}
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	groups := make([]models.Group, 0, len(order))
	for _, category := range order {
		var collected []models.Listing
		for _, item := range byCategory[category] {
			for _, shop := range active {
				found := shop.Fetch(sess.Context(), item.Query, perCategory)
				e.logger.Printf("%s %q -> %d listings", shop.Name(), item.Query, len(found))
				collected = append(collected, found...)
			}
		}
		collected = dedupe(collected)
		if len(collected) == 0 {
			continue
		}
		groups = append(groups, models.Group{Category: category, Listings: collected})
	}

	// stable: unknown categories keep discovery order after the ranked ones
	sort.SliceStable(groups, func(i, j int) bool {
		return models.CategoryRank(groups[i].Category) < models.CategoryRank(groups[j].Category)
	})
	return groups, nil
}

// dedupe keeps the first listing seen per id. Later duplicates are dropped,
// not merged, even when they carry more fields.
func dedupe(listings []models.Listing) []models.Listing {
	seen := make(map[string]struct{}, len(listings))
	out := listings[:0]
	for _, l := range listings {
		if _, ok := seen[l.ID]; ok {
			continue
		}
		seen[l.ID] = struct{}{}
		out = append(out, l)
	}
	return out
}
