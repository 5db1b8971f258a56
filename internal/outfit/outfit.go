package outfit

import (
	"context"
	"log"
	"time"

	"github.com/mohammad-safakhou/outfitter/models"
)

// Request is one outfit search, already validated by the transport layer:
// exactly one of Query or Image is set.
type Request struct {
	Query           string
	Image           string // base64 JPEG
	PictureProperty models.PictureMode
	ItemsQuantity   int
	Shops           map[string]bool
}

// Result pairs the effective query and its plan with the aggregated
// listings. On any error no partial result leaks out.
type Result struct {
	Query  string
	Plan   models.Plan
	Groups []models.Group
}

// PlanSource is the interpretation side of the pipeline. Satisfied by
// *interp.Interpreter.
type PlanSource interface {
	Interpret(ctx context.Context, query string) (models.Plan, error)
	PhraseFromImage(ctx context.Context, imageB64 string, mode models.PictureMode) (string, error)
}

// Aggregator is the fan-out side. Satisfied by *search.Engine.
type Aggregator interface {
	Aggregate(ctx context.Context, plan models.Plan, enabled map[string]bool, perCategory int) ([]models.Group, error)
}

// SessionReleaser tears the shared browser down. Satisfied by
// *browse.Manager.
type SessionReleaser interface {
	Release()
}

// Orchestrator sequences interpret -> aggregate and guarantees the shared
// browsing session is released exactly once per request, whichever path the
// request exits through.
type Orchestrator struct {
	interp      PlanSource
	engine      Aggregator
	browser     SessionReleaser
	perCategory int // default cap when the request omits one
	logger      *log.Logger
}

// NewOrchestrator wires the pipeline together.
func NewOrchestrator(plans PlanSource, engine Aggregator, browser SessionReleaser, defaultPerCategory int) *Orchestrator {
	return &Orchestrator{
		interp:      plans,
		engine:      engine,
		browser:     browser,
		perCategory: defaultPerCategory,
		logger:      log.New(log.Writer(), "[OUTFIT] ", log.LstdFlags),
	}
}

// Search runs one request end to end. Image requests go through the
// two-stage pipeline: image -> search phrase -> plan.
func (o *Orchestrator) Search(ctx context.Context, req Request) (Result, error) {
	defer o.browser.Release()
	started := time.Now()

	query := req.Query
	if req.Image != "" {
		phrase, err := o.interp.PhraseFromImage(ctx, req.Image, req.PictureProperty)
		if err != nil {
			return Result{}, err
		}
		o.logger.Printf("image interpreted as %q", phrase)
		query = phrase
	}

	plan, err := o.interp.Interpret(ctx, query)
	if err != nil {
		return Result{}, err
	}

	perCategory := req.ItemsQuantity
	if perCategory <= 0 {
		perCategory = o.perCategory
	}

	groups, err := o.engine.Aggregate(ctx, plan, req.Shops, perCategory)
	if err != nil {
		return Result{}, err
	}

	o.logger.Printf("search for %q finished in %v: %d items, %d groups", query, time.Since(started), len(plan.Items), len(groups))
	return Result{Query: query, Plan: plan, Groups: groups}, nil
}
