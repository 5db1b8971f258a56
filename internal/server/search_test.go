package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mohammad-safakhou/outfitter/internal/outfit"
	"github.com/mohammad-safakhou/outfitter/models"
)

type stubSearcher struct {
	result outfit.Result
	err    error
	got    outfit.Request
	calls  int
}

func (s *stubSearcher) Search(_ context.Context, req outfit.Request) (outfit.Result, error) {
	s.calls++
	s.got = req
	return s.result, s.err
}

func doSearch(t *testing.T, searcher Searcher, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := New(searcher)
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSearchSuccessEnvelope(t *testing.T) {
	searcher := &stubSearcher{result: outfit.Result{
		Query: "летнее платье",
		Plan: models.Plan{
			Query: "летнее платье",
			Style: "casual",
			Items: []models.PlanItem{{Query: "летнее платье миди", Category: models.CategoryDressSuit}},
		},
		Groups: []models.Group{{
			Category: models.CategoryDressSuit,
			Listings: []models.Listing{{ID: "a", Name: "Платье", Price: 3500, Shop: "Wildberries"}},
		}},
	}}

	rec := doSearch(t, searcher, `{"query":"летнее платье","itemsQuantity":2,"requiredShops":{"Wildberries":true}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp searchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not json: %v", err)
	}
	if !resp.Success || resp.Query.Original != "летнее платье" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if len(resp.Results) != 1 || resp.Results[0].Category != models.CategoryDressSuit {
		t.Fatalf("unexpected results: %+v", resp.Results)
	}
	if searcher.got.ItemsQuantity != 2 || !searcher.got.Shops["Wildberries"] {
		t.Fatalf("request not forwarded: %+v", searcher.got)
	}
}

func TestSearchImageRequest(t *testing.T) {
	searcher := &stubSearcher{result: outfit.Result{Query: "пальто"}}

	rec := doSearch(t, searcher, `{"img":"aW1hZ2U=","pictureProperty":"selfie","requiredShops":{"Lamoda":true}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if searcher.got.Image != "aW1hZ2U=" || searcher.got.PictureProperty != models.PictureSelfie {
		t.Fatalf("image request not forwarded: %+v", searcher.got)
	}
	if searcher.got.Query != "" {
		t.Fatalf("image requests must not carry a text query, got %q", searcher.got.Query)
	}
}

func TestSearchRejectsBadRequests(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		body string
	}{
		{name: "no query and no image", body: `{"requiredShops":{"Asos":true}}`},
		{name: "image without mode", body: `{"img":"aW1hZ2U=","requiredShops":{"Asos":true}}`},
		{name: "unknown picture property", body: `{"img":"aW1hZ2U=","pictureProperty":"sideways","requiredShops":{"Asos":true}}`},
		{name: "no shop enabled", body: `{"query":"джинсы","requiredShops":{"Asos":false}}`},
		{name: "missing shops", body: `{"query":"джинсы"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			searcher := &stubSearcher{}
			rec := doSearch(t, searcher, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body %s", rec.Code, rec.Body.String())
			}
			if searcher.calls != 0 {
				t.Fatalf("invalid requests must not reach the orchestrator")
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Success {
				t.Fatalf("expected {success:false} error envelope, got %s", rec.Body.String())
			}
		})
	}
}

func TestSearchFailureHasNoPartialResults(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("browsing session unavailable")}

	rec := doSearch(t, searcher, `{"query":"джинсы","requiredShops":{"Kaspi":true}}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not json: %v", err)
	}
	if resp.Success || resp.Error == "" {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "results") {
		t.Fatalf("failure responses must not leak results: %s", rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	e := New(&stubSearcher{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}
