package interp

import (
	"context"
	"errors"
	"testing"

	"github.com/mohammad-safakhou/outfitter/models"
)

// stubLLM replays canned responses and records prompts.
type stubLLM struct {
	response    string
	err         error
	calls       int
	lastUser    string
	lastImage   string
	imageCalled bool
}

func (s *stubLLM) Generate(_ context.Context, _, user string) (string, error) {
	s.calls++
	s.lastUser = user
	return s.response, s.err
}

func (s *stubLLM) GenerateWithImage(_ context.Context, _, _, imageB64 string) (string, error) {
	s.imageCalled = true
	s.lastImage = imageB64
	return s.response, s.err
}

func TestInterpretValidPlan(t *testing.T) {
	llm := &stubLLM{response: `{
		"query": "летнее платье на свидание",
		"style": "casual",
		"items": [
			{"query": "летнее платье миди", "type": "платье/костюм"},
			{"query": "босоножки на каблуке", "type": "обувь"}
		]
	}`}
	in := NewInterpreter(llm, nil)

	plan, err := in.Interpret(context.Background(), "летнее платье на свидание")
	if err != nil {
		t.Fatalf("Interpret() error = %v", err)
	}
	if plan.Query != "летнее платье на свидание" {
		t.Fatalf("plan query = %q, want original text", plan.Query)
	}
	if len(plan.Items) != 2 || plan.Items[1].Category != models.CategoryFootwear {
		t.Fatalf("unexpected plan items: %#v", plan.Items)
	}
}

func TestInterpretToleratesProseAroundJSON(t *testing.T) {
	llm := &stubLLM{response: "Вот результат:\n```json\n{\"query\":\"q\",\"items\":[{\"query\":\"джинсы\",\"type\":\"низ\"}]}\n```"}
	in := NewInterpreter(llm, nil)

	plan, err := in.Interpret(context.Background(), "джинсы")
	if err != nil {
		t.Fatalf("Interpret() error = %v", err)
	}
	if len(plan.Items) != 1 || plan.Items[0].Query != "джинсы" {
		t.Fatalf("unexpected plan: %#v", plan)
	}
}

func TestInterpretValidationFailures(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		response string
		want     error
	}{
		{name: "not json", response: "sorry, can't help with that", want: ErrUnparsable},
		{name: "missing query", response: `{"items":[{"query":"джинсы"}]}`, want: ErrInvalidPlan},
		{name: "missing items", response: `{"query":"x"}`, want: ErrInvalidPlan},
		{name: "empty items", response: `{"query":"x","items":[]}`, want: ErrInvalidPlan},
		{name: "item without query", response: `{"query":"x","items":[{"query":""}]}`, want: ErrInvalidPlan},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			in := NewInterpreter(&stubLLM{response: tt.response}, nil)
			_, err := in.Interpret(context.Background(), "любой запрос")
			if !errors.Is(err, tt.want) {
				t.Fatalf("Interpret() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInterpretRejectsEmptyQueryWithoutLLMCall(t *testing.T) {
	llm := &stubLLM{response: "{}"}
	in := NewInterpreter(llm, nil)

	if _, err := in.Interpret(context.Background(), "   "); !errors.Is(err, ErrInvalidPlan) {
		t.Fatalf("expected ErrInvalidPlan for blank query, got %v", err)
	}
	if llm.calls != 0 {
		t.Fatalf("blank query must not reach the LLM")
	}
}

func TestInterpretDoesNotRetry(t *testing.T) {
	llm := &stubLLM{err: errors.New("rate limited")}
	in := NewInterpreter(llm, nil)

	if _, err := in.Interpret(context.Background(), "пиджак"); err == nil {
		t.Fatalf("expected provider error to propagate")
	}
	if llm.calls != 1 {
		t.Fatalf("expected exactly one attempt, got %d", llm.calls)
	}
}

func TestPhraseFromImage(t *testing.T) {
	llm := &stubLLM{response: `{"query": "черное пальто шерсть оверсайз"}`}
	in := NewInterpreter(llm, nil)

	phrase, err := in.PhraseFromImage(context.Background(), "aW1hZ2U=", models.PictureOnImage)
	if err != nil {
		t.Fatalf("PhraseFromImage() error = %v", err)
	}
	if phrase != "черное пальто шерсть оверсайз" {
		t.Fatalf("phrase = %q", phrase)
	}
	if !llm.imageCalled || llm.lastImage != "aW1hZ2U=" {
		t.Fatalf("expected the image to reach the provider")
	}
}

func TestPhraseFromImageFailures(t *testing.T) {
	in := NewInterpreter(&stubLLM{response: `{"query": "x"}`}, nil)
	if _, err := in.PhraseFromImage(context.Background(), "aW1hZ2U=", "sideways"); err == nil {
		t.Fatalf("expected error for unknown picture property")
	}

	in = NewInterpreter(&stubLLM{response: "not json"}, nil)
	if _, err := in.PhraseFromImage(context.Background(), "aW1hZ2U=", models.PictureSelfie); !errors.Is(err, ErrUnparsable) {
		t.Fatalf("expected ErrUnparsable, got %v", err)
	}

	in = NewInterpreter(&stubLLM{response: `{"query": ""}`}, nil)
	if _, err := in.PhraseFromImage(context.Background(), "aW1hZ2U=", models.PictureByImage); !errors.Is(err, ErrInvalidPlan) {
		t.Fatalf("expected ErrInvalidPlan for empty phrase, got %v", err)
	}
}

type mapCache struct {
	plans map[string]models.Plan
	puts  int
}

func (m *mapCache) Get(_ context.Context, query string) (models.Plan, bool) {
	p, ok := m.plans[query]
	return p, ok
}

func (m *mapCache) Put(_ context.Context, query string, plan models.Plan) {
	m.puts++
	m.plans[query] = plan
}

func TestInterpretUsesCache(t *testing.T) {
	llm := &stubLLM{response: `{"query":"джинсы","items":[{"query":"джинсы","type":"низ"}]}`}
	c := &mapCache{plans: map[string]models.Plan{}}
	in := NewInterpreter(llm, c)

	if _, err := in.Interpret(context.Background(), "джинсы"); err != nil {
		t.Fatalf("Interpret() error = %v", err)
	}
	if c.puts != 1 {
		t.Fatalf("expected the validated plan to be cached")
	}
	if _, err := in.Interpret(context.Background(), "джинсы"); err != nil {
		t.Fatalf("Interpret() error = %v", err)
	}
	if llm.calls != 1 {
		t.Fatalf("expected the second interpretation to come from cache, LLM calls = %d", llm.calls)
	}
}
