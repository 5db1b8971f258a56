package interp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/mohammad-safakhou/outfitter/models"
	"github.com/mohammad-safakhou/outfitter/provider"
)

// ErrUnparsable flags capability output that is not valid JSON. Distinct
// from ErrInvalidPlan so callers can tell "returned garbage" from
// "understood but broke the contract".
var ErrUnparsable = errors.New("interpretation is not valid JSON")

// ErrInvalidPlan flags a parsed plan that violates the contract: missing
// query, missing or empty items, or an item without a search phrase.
var ErrInvalidPlan = errors.New("interpreted plan is invalid")

// PlanCache is an optional read-through cache for interpreted plans.
// Satisfied by *cache.Plans; a nil cache disables caching.
type PlanCache interface {
	Get(ctx context.Context, query string) (models.Plan, bool)
	Put(ctx context.Context, query string, plan models.Plan)
}

// Interpreter turns raw user requests into validated search plans by
// delegating to the LLM provider. It never retries: a failed interpretation
// propagates immediately rather than silently multiplying calls to a
// rate-limited capability.
type Interpreter struct {
	llm    provider.Provider
	cache  PlanCache
	logger *log.Logger
}

// NewInterpreter creates an interpreter over the given provider. cache may
// be nil.
func NewInterpreter(llm provider.Provider, cache PlanCache) *Interpreter {
	return &Interpreter{
		llm:    llm,
		cache:  cache,
		logger: log.New(log.Writer(), "[INTERP] ", log.LstdFlags),
	}
}

// Interpret decomposes a free-text request into a validated search plan.
func (i *Interpreter) Interpret(ctx context.Context, query string) (models.Plan, error) {
	if strings.TrimSpace(query) == "" {
		return models.Plan{}, fmt.Errorf("%w: empty query", ErrInvalidPlan)
	}

	if i.cache != nil {
		if plan, ok := i.cache.Get(ctx, query); ok {
			i.logger.Printf("plan cache hit for %q", query)
			interpretTotal.WithLabelValues("plan", "cached").Inc()
			return plan, nil
		}
	}

	raw, err := i.llm.Generate(ctx, planSystemPrompt, planUserPrompt(query))
	if err != nil {
		interpretTotal.WithLabelValues("plan", "error").Inc()
		return models.Plan{}, fmt.Errorf("generate plan: %w", err)
	}

	var plan models.Plan
	if err := json.Unmarshal(extractJSON(raw), &plan); err != nil {
		interpretTotal.WithLabelValues("plan", "error").Inc()
		return models.Plan{}, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	if err := validatePlan(plan); err != nil {
		interpretTotal.WithLabelValues("plan", "error").Inc()
		return models.Plan{}, err
	}

	if i.cache != nil {
		i.cache.Put(ctx, query, plan)
	}
	interpretTotal.WithLabelValues("plan", "ok").Inc()
	return plan, nil
}

// PhraseFromImage extracts a single best-effort search phrase from an
// image. Callers feed the phrase back through Interpret: image
// interpretation is always a two-stage pipeline so a malformed phrase and a
// malformed plan stay separate failures.
func (i *Interpreter) PhraseFromImage(ctx context.Context, imageB64 string, mode models.PictureMode) (string, error) {
	if strings.TrimSpace(imageB64) == "" {
		return "", errors.New("empty image")
	}

	var system, user string
	switch mode {
	case models.PictureOnImage:
		system, user = onImageSystemPrompt, onImageUserPrompt
	case models.PictureByImage:
		system, user = byImageSystemPrompt, byImageUserPrompt
	case models.PictureSelfie:
		system, user = selfieSystemPrompt, selfieUserPrompt
	default:
		return "", fmt.Errorf("invalid picture property: %q", mode)
	}

	raw, err := i.llm.GenerateWithImage(ctx, system, user, imageB64)
	if err != nil {
		interpretTotal.WithLabelValues("phrase", "error").Inc()
		return "", fmt.Errorf("generate phrase: %w", err)
	}

	var out struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal(extractJSON(raw), &out); err != nil {
		interpretTotal.WithLabelValues("phrase", "error").Inc()
		return "", fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	if strings.TrimSpace(out.Query) == "" {
		interpretTotal.WithLabelValues("phrase", "error").Inc()
		return "", fmt.Errorf("%w: image phrase missing query", ErrInvalidPlan)
	}
	interpretTotal.WithLabelValues("phrase", "ok").Inc()
	return out.Query, nil
}

func validatePlan(plan models.Plan) error {
	if strings.TrimSpace(plan.Query) == "" {
		return fmt.Errorf("%w: missing query", ErrInvalidPlan)
	}
	if len(plan.Items) == 0 {
		return fmt.Errorf("%w: items must be a non-empty array", ErrInvalidPlan)
	}
	for idx, item := range plan.Items {
		if strings.TrimSpace(item.Query) == "" {
			return fmt.Errorf("%w: item %d has no query", ErrInvalidPlan, idx)
		}
	}
	return nil
}

// extractJSON pulls the first balanced JSON object out of the response,
// tolerating prose or code fences around it.
func extractJSON(response string) []byte {
	start := -1
	depth := 0
	for i, ch := range response {
		if ch == '{' {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == '}' {
			if depth > 0 {
				depth--
			}
			if depth == 0 && start != -1 {
				return []byte(response[start : i+1])
			}
		}
	}
	return []byte(response)
}
